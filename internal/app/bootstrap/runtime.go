package bootstrap

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Anshgoswami194/mind-embrace-connect/internal/assessment"
	"github.com/Anshgoswami194/mind-embrace-connect/internal/chat"
	appconfig "github.com/Anshgoswami194/mind-embrace-connect/internal/config"
	"github.com/Anshgoswami194/mind-embrace-connect/pkg/logging"
)

// BuildRedisClient returns a configured Redis client or nil when disabled.
// When verify is true, a ping is issued and failures return nil.
func BuildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger, verify bool) *redis.Client {
	if cfg == nil || strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	redisOptions := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(redisOptions)
	if !verify {
		return client
	}
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not available, falling back to memory sessions", "error", err)
		_ = client.Close()
		return nil
	}
	return client
}

// BuildAssessmentStore picks Redis when a client is available.
func BuildAssessmentStore(redisClient *redis.Client, cfg *appconfig.Config) assessment.SessionStore {
	ttl := sessionTTL(cfg)
	if redisClient == nil {
		return assessment.NewMemoryStore(ttl)
	}
	return assessment.NewRedisStore(redisClient, ttl)
}

// BuildChatStore picks Redis when a client is available.
func BuildChatStore(redisClient *redis.Client, cfg *appconfig.Config) chat.SessionStore {
	ttl := sessionTTL(cfg)
	if redisClient == nil {
		return chat.NewMemoryStore(ttl)
	}
	return chat.NewRedisStore(redisClient, ttl)
}

func sessionTTL(cfg *appconfig.Config) time.Duration {
	if cfg == nil {
		return 0
	}
	return cfg.SessionTTL
}
