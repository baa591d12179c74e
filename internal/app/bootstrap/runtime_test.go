package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anshgoswami194/mind-embrace-connect/internal/assessment"
	"github.com/Anshgoswami194/mind-embrace-connect/internal/chat"
	appconfig "github.com/Anshgoswami194/mind-embrace-connect/internal/config"
	"github.com/Anshgoswami194/mind-embrace-connect/internal/notify"
	"github.com/Anshgoswami194/mind-embrace-connect/pkg/logging"
)

func TestBuildRedisClientDisabled(t *testing.T) {
	assert.Nil(t, BuildRedisClient(context.Background(), nil, nil, true))
	assert.Nil(t, BuildRedisClient(context.Background(), &appconfig.Config{RedisAddr: "  "}, nil, true))
}

func TestBuildRedisClientPing(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &appconfig.Config{RedisAddr: mr.Addr()}

	client := BuildRedisClient(context.Background(), cfg, logging.New("error"), true)
	require.NotNil(t, client)
	defer client.Close()
	require.NoError(t, client.Ping(context.Background()).Err())
}

func TestBuildRedisClientUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	client := BuildRedisClient(context.Background(), &appconfig.Config{RedisAddr: addr}, logging.New("error"), true)
	assert.Nil(t, client)
}

func TestBuildStoresFallBackToMemory(t *testing.T) {
	cfg := &appconfig.Config{SessionTTL: time.Hour}

	assert.IsType(t, &assessment.MemoryStore{}, BuildAssessmentStore(nil, cfg))
	assert.IsType(t, &chat.MemoryStore{}, BuildChatStore(nil, cfg))
}

func TestBuildStoresUseRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &appconfig.Config{RedisAddr: mr.Addr(), SessionTTL: time.Hour}
	client := BuildRedisClient(context.Background(), cfg, logging.New("error"), false)
	require.NotNil(t, client)
	defer client.Close()

	store := BuildChatStore(client, cfg)
	require.IsType(t, &chat.RedisStore{}, store)

	sess := chat.NewSession("abc", chat.NewResponder(nil))
	require.NoError(t, store.Save(context.Background(), sess.State()))
	assert.True(t, mr.Exists("chat_session:abc"))
	assert.Equal(t, time.Hour, mr.TTL("chat_session:abc"))

	assert.IsType(t, &assessment.RedisStore{}, BuildAssessmentStore(client, cfg))
}

func TestBuildEmailSender(t *testing.T) {
	logger := logging.New("error")

	assert.IsType(t, &notify.StubEmailSender{}, BuildEmailSender(&appconfig.Config{}, logger))
	assert.IsType(t, &notify.StubEmailSender{}, BuildEmailSender(nil, logger))

	cfg := &appconfig.Config{SendGridAPIKey: "SG.test", SendGridFromEmail: "care@mantara.example"}
	assert.IsType(t, &notify.SendGridSender{}, BuildEmailSender(cfg, logger))
}

func TestBuildBookingNotifier(t *testing.T) {
	logger := logging.New("error")
	sender := notify.NewStubEmailSender(logger)

	assert.Nil(t, BuildBookingNotifier(nil, sender, logger))
	assert.Nil(t, BuildBookingNotifier(&appconfig.Config{}, sender, logger))
	assert.NotNil(t, BuildBookingNotifier(&appconfig.Config{BookingNotifyEmail: "intake@mantara.example", ClinicName: "Mantara"}, sender, logger))
}
