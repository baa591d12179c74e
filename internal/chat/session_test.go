package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	s := NewSession("s1", nil)
	msgs := s.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, RoleAssistant, msgs[0].Role)
	assert.Equal(t, Greeting, msgs[0].Content)
	assert.Equal(t, ViewCategories, s.View())
}

func TestSession_CategoryNavigation(t *testing.T) {
	s := NewSession("s1", nil)

	assert.ErrorIs(t, s.Back(), ErrInvalidView)
	assert.ErrorIs(t, s.SelectCategory("weather"), ErrUnknownCategory)

	require.NoError(t, s.SelectCategory("wellness"))
	assert.Equal(t, ViewCategoryOptions, s.View())
	assert.Len(t, s.Options(), 3)
	assert.ErrorIs(t, s.SelectCategory("growth"), ErrInvalidView)

	require.NoError(t, s.Back())
	assert.Equal(t, ViewCategories, s.View())
	assert.Empty(t, s.Category())
	assert.Nil(t, s.Options())
}

func TestSession_OptionDeliveryShowsQuickActions(t *testing.T) {
	s := NewSession("s1", nil)
	_, _, err := s.ChooseOption("sleep")
	assert.ErrorIs(t, err, ErrInvalidView)

	require.NoError(t, s.SelectCategory("wellness"))
	_, _, err = s.ChooseOption("weather")
	assert.ErrorIs(t, err, ErrUnknownOption)

	user, d, err := s.ChooseOption("sleep")
	require.NoError(t, err)
	assert.Equal(t, "Sleep problems", user.Content)
	assert.Equal(t, "wellness", user.Category)
	assert.Equal(t, ViewCategoryOptions, s.View())

	msg, ok := s.Deliver(d)
	require.True(t, ok)
	assert.Equal(t, RoleAssistant, msg.Role)
	assert.Equal(t, ViewQuickActions, s.View())
	assert.Len(t, s.Messages(), 3)
}

func TestSession_TextAndFollowup(t *testing.T) {
	s := NewSession("s1", nil)

	_, _, err := s.SendText("   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, d, err := s.SendText("I FEEL ANXIOUS TODAY")
	require.NoError(t, err)
	assert.Equal(t, "anxiety", d.Reply.Topic)
	_, ok := s.Deliver(d)
	require.True(t, ok)
	assert.Equal(t, ViewCategories, s.View())

	_, d, err = s.Followup("Find a therapist")
	require.NoError(t, err)
	_, ok = s.Deliver(d)
	require.True(t, ok)
	assert.Len(t, s.Messages(), 5)
}

func TestSession_ResetLeavesOneGreeting(t *testing.T) {
	s := NewSession("s1", nil)
	require.NoError(t, s.SelectCategory("crisis"))
	_, d, err := s.ChooseOption("crisis")
	require.NoError(t, err)

	s.Reset()

	msgs := s.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, Greeting, msgs[0].Content)
	assert.Equal(t, ViewCategories, s.View())

	_, ok := s.Deliver(d)
	assert.False(t, ok)
	assert.Len(t, s.Messages(), 1)
}

func TestRestoreSession(t *testing.T) {
	s := NewSession("s1", nil)
	require.NoError(t, s.SelectCategory("growth"))
	s.Reset()
	require.NoError(t, s.SelectCategory("growth"))

	restored := RestoreSession(s.State(), nil)
	assert.Equal(t, "s1", restored.ID())
	assert.Equal(t, ViewCategoryOptions, restored.View())
	assert.Equal(t, "growth", restored.Category())
	assert.Equal(t, uint64(1), restored.Generation())

	blank := RestoreSession(State{ID: "s2", View: "bogus"}, nil)
	assert.Equal(t, ViewCategories, blank.View())
	assert.Len(t, blank.Messages(), 1)
}
