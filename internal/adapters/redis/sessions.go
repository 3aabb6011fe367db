package redisad

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"aadhira_hotel/internal/adapters/observability"
	"aadhira_hotel/internal/domain"
)

const keyPrefix = "aadhira:session:"

type sessionRecord struct {
	Language  string    `json:"language"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SessionStore keeps per-conversation language in Redis. Every write
// refreshes the TTL so idle sessions expire on their own.
type SessionStore struct {
	c   *redis.Client
	ttl time.Duration
}

func New(addr, pass string, db int, ttl time.Duration) *SessionStore {
	return NewWithClient(redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}), ttl)
}

func NewWithClient(c *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{c: c, ttl: ttl}
}

func (s *SessionStore) Ping(ctx context.Context) error { return s.c.Ping(ctx).Err() }

func (s *SessionStore) Close() error { return s.c.Close() }

func (s *SessionStore) Language(ctx context.Context, session string) (string, error) {
	v, err := s.c.Get(ctx, keyPrefix+session).Bytes()
	if err == redis.Nil {
		observability.ObserveSession("redis", "miss")
		return "", domain.ErrNotFound
	}
	if err != nil {
		observability.ObserveSession("redis", "error")
		return "", fmt.Errorf("redis get session %s: %w", session, err)
	}
	var rec sessionRecord
	if err := json.Unmarshal(v, &rec); err != nil {
		observability.ObserveSession("redis", "error")
		return "", fmt.Errorf("decode session %s: %w", session, err)
	}
	observability.ObserveSession("redis", "hit")
	return rec.Language, nil
}

func (s *SessionStore) SetLanguage(ctx context.Context, session, lang string) error {
	b, _ := json.Marshal(sessionRecord{Language: lang, UpdatedAt: time.Now().UTC()})
	observability.ObserveSession("redis", "set")
	if err := s.c.Set(ctx, keyPrefix+session, b, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session %s: %w", session, err)
	}
	return nil
}

func (s *SessionStore) Forget(ctx context.Context, session string) error {
	observability.ObserveSession("redis", "del")
	return s.c.Del(ctx, keyPrefix+session).Err()
}
