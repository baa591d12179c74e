package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_Delays(t *testing.T) {
	s := NewScheduler(0, 0)
	defer s.Stop()
	assert.Equal(t, DefaultOptionDelay, s.Delay(KindOption))
	assert.Equal(t, DefaultOptionDelay, s.Delay(KindFollowup))
	assert.Equal(t, DefaultTextDelay, s.Delay(KindText))
}

func TestScheduler_DeliversAfterDelay(t *testing.T) {
	s := NewScheduler(5*time.Millisecond, 10*time.Millisecond)
	defer s.Stop()

	start := time.Now()
	require.True(t, s.Schedule(Delivery{SessionID: "s1", Reply: Reply{Kind: KindText, Content: "hi"}}))

	select {
	case d := <-s.C():
		assert.Equal(t, "hi", d.Reply.Content)
		assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	case <-time.After(time.Second):
		t.Fatal("delivery not received")
	}
	assert.Equal(t, 0, s.Pending())
}

func TestScheduler_StopCancelsPending(t *testing.T) {
	s := NewScheduler(50*time.Millisecond, 50*time.Millisecond)
	require.True(t, s.Schedule(Delivery{Reply: Reply{Kind: KindOption}}))
	assert.Equal(t, 1, s.Pending())

	s.Stop()
	s.Stop()
	assert.Equal(t, 0, s.Pending())
	assert.False(t, s.Schedule(Delivery{Reply: Reply{Kind: KindOption}}))

	select {
	case <-s.C():
		t.Fatal("unexpected delivery after stop")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestScheduler_StaleDeliveryIgnoredAfterReset(t *testing.T) {
	sched := NewScheduler(time.Millisecond, time.Millisecond)
	defer sched.Stop()
	sess := NewSession("s1", nil)

	_, d, err := sess.SendText("hello")
	require.NoError(t, err)
	sched.Schedule(d)
	sess.Reset()

	select {
	case got := <-sched.C():
		_, ok := sess.Deliver(got)
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("delivery not received")
	}
	assert.Len(t, sess.Messages(), 1)
}
