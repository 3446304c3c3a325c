package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrNoSession = errors.New("session: not found")

// TokenStore keeps the opaque API bearer token server-side, keyed by
// session id. Only the session id ever reaches the browser.
type TokenStore interface {
	Save(ctx context.Context, sid, token string, ttl time.Duration) error
	Token(ctx context.Context, sid string) (string, error)
	Delete(ctx context.Context, sid string) error
}

// --------- Redis ---------

const redisKeyPrefix = "session:token:"

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Save(ctx context.Context, sid, token string, ttl time.Duration) error {
	return s.rdb.Set(ctx, redisKeyPrefix+sid, token, ttl).Err()
}

func (s *RedisStore) Token(ctx context.Context, sid string) (string, error) {
	val, err := s.rdb.Get(ctx, redisKeyPrefix+sid).Result()
	if err == redis.Nil {
		return "", ErrNoSession
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	return s.rdb.Del(ctx, redisKeyPrefix+sid).Err()
}

// --------- Memory ---------

// MemoryStore backs sessions in tests and single-process dev runs.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]memoryEntry
}

type memoryEntry struct {
	token   string
	expires time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tokens: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Save(_ context.Context, sid, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[sid] = memoryEntry{token: token, expires: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Token(_ context.Context, sid string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.tokens[sid]
	if !ok || time.Now().After(entry.expires) {
		return "", ErrNoSession
	}
	return entry.token, nil
}

func (s *MemoryStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, sid)
	return nil
}
