package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"movebot/models"

	"github.com/go-redis/redis/v8"
)

// sessionState is the per-session record: the running transcript plus
// ephemeral flags (call requests, long-distance dedup).
type sessionState struct {
	Messages []models.Message   `json:"messages"`
	Meta     models.SessionMeta `json:"meta"`
}

// ConversationStore persists chat sessions between requests.
type ConversationStore interface {
	Load(ctx context.Context, sessionID string) (*sessionState, error)
	Save(ctx context.Context, sessionID string, state *sessionState) error
	Delete(ctx context.Context, sessionID string) error
}

// maxTranscriptLen bounds the transcript to the system prompt plus the most
// recent turns, keeping token usage predictable.
const maxTranscriptLen = 12

func newSessionState() *sessionState {
	return &sessionState{
		Messages: []models.Message{
			{Role: models.RoleSystem, Content: SystemPrompt},
		},
	}
}

// trim keeps the system prompt and the last 11 messages.
func (s *sessionState) trim() {
	if len(s.Messages) > maxTranscriptLen {
		trimmed := make([]models.Message, 0, maxTranscriptLen)
		trimmed = append(trimmed, s.Messages[0])
		trimmed = append(trimmed, s.Messages[len(s.Messages)-(maxTranscriptLen-1):]...)
		s.Messages = trimmed
	}
}

func (s *sessionState) append(role, content string) {
	s.Messages = append(s.Messages, models.Message{Role: role, Content: content})
}

// MemoryStore keeps sessions in process memory. Used when Redis is not
// configured; sessions do not survive restarts.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*sessionState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*sessionState)}
}

func (m *MemoryStore) Load(ctx context.Context, sessionID string) (*sessionState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	// Return a copy so callers mutate freely before Save.
	cp := *state
	cp.Messages = append([]models.Message(nil), state.Messages...)
	return &cp, nil
}

func (m *MemoryStore) Save(ctx context.Context, sessionID string, state *sessionState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionID] = state
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

// RedisStore persists sessions as JSON in Redis with a sliding TTL.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{Client: client, TTL: ttl}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (r *RedisStore) Load(ctx context.Context, sessionID string) (*sessionState, error) {
	raw, err := r.Client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	var state sessionState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("corrupt session data: %w", err)
	}
	return &state, nil
}

func (r *RedisStore) Save(ctx context.Context, sessionID string, state *sessionState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.Client.Set(ctx, sessionKey(sessionID), raw, r.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return r.Client.Del(ctx, sessionKey(sessionID)).Err()
}
