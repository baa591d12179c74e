package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const stateKeyPrefix = "chat_session:"

// ErrSessionNotFound is returned for unknown or expired chat sessions.
var ErrSessionNotFound = errors.New("chat: session not found")

// SessionStore persists chat session snapshots.
type SessionStore interface {
	Load(ctx context.Context, id string) (State, error)
	Save(ctx context.Context, state State) error
}

// MemoryStore keeps snapshots in process memory.
type MemoryStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	states map[string]memoryState
}

type memoryState struct {
	state     State
	expiresAt time.Time
}

// NewMemoryStore creates a store; ttl <= 0 never expires.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, now: time.Now, states: make(map[string]memoryState)}
}

func (m *MemoryStore) Load(_ context.Context, id string) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.states[id]
	if !ok {
		return State{}, ErrSessionNotFound
	}
	if !entry.expiresAt.IsZero() && m.now().After(entry.expiresAt) {
		delete(m.states, id)
		return State{}, ErrSessionNotFound
	}
	st := entry.state
	st.Messages = append([]Message(nil), st.Messages...)
	return st, nil
}

func (m *MemoryStore) Save(_ context.Context, state State) error {
	if state.ID == "" {
		return errors.New("chat: session id required")
	}
	state.Messages = append([]Message(nil), state.Messages...)
	entry := memoryState{state: state}
	if m.ttl > 0 {
		entry.expiresAt = m.now().Add(m.ttl)
	}
	m.mu.Lock()
	m.states[state.ID] = entry
	m.mu.Unlock()
	return nil
}

// RedisStore keeps snapshots in Redis as JSON.
type RedisStore struct {
	redis  *redis.Client
	tracer trace.Tracer
	ttl    time.Duration
}

// NewRedisStore returns nil when no client is configured.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if client == nil {
		return nil
	}
	return &RedisStore{
		redis:  client,
		tracer: otel.Tracer("mindcare.internal.chat.sessions"),
		ttl:    ttl,
	}
}

func (s *RedisStore) Load(ctx context.Context, id string) (State, error) {
	ctx, span := s.tracer.Start(ctx, "chat.session.load")
	defer span.End()

	raw, err := s.redis.Get(ctx, stateKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return State{}, ErrSessionNotFound
	}
	if err != nil {
		span.RecordError(err)
		return State{}, fmt.Errorf("chat: load session: %w", err)
	}
	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		span.RecordError(err)
		return State{}, fmt.Errorf("chat: decode session: %w", err)
	}
	return st, nil
}

func (s *RedisStore) Save(ctx context.Context, state State) error {
	if state.ID == "" {
		return errors.New("chat: session id required")
	}
	ctx, span := s.tracer.Start(ctx, "chat.session.save")
	defer span.End()

	raw, err := json.Marshal(state)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("chat: encode session: %w", err)
	}
	if err := s.redis.Set(ctx, stateKeyPrefix+state.ID, raw, s.ttl).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("chat: persist session: %w", err)
	}
	return nil
}
