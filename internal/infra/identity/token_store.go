package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNoToken = errors.New("no session token")

type ITokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}

// RedisTokenStore 把登入 token 存在 redis, 讓多個 CLI 行程共用同一個登入狀態
type RedisTokenStore struct {
	client *redis.Client
	prefix string
	key    string
	ttl    time.Duration
}

func NewRedisTokenStore(client *redis.Client, sessionKey string, ttl time.Duration) *RedisTokenStore {
	return &RedisTokenStore{
		client: client,
		prefix: "storefront:session",
		key:    sessionKey,
		ttl:    ttl,
	}
}

var _ ITokenStore = (*RedisTokenStore)(nil)

func (r *RedisTokenStore) setPrefixKey(key string) string {
	var builder strings.Builder
	builder.Grow(len(r.prefix) + 1 + len(key))
	builder.WriteString(r.prefix)
	builder.WriteString(":")
	builder.WriteString(key)
	return builder.String()
}

func (r *RedisTokenStore) Load(ctx context.Context) (string, error) {
	token, err := r.client.Get(ctx, r.setPrefixKey(r.key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("failed to load session token: %w", err)
	}
	return token, nil
}

func (r *RedisTokenStore) Save(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("empty session token")
	}
	if err := r.client.Set(ctx, r.setPrefixKey(r.key), token, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session token: %w", err)
	}
	return nil
}

func (r *RedisTokenStore) Delete(ctx context.Context) error {
	if err := r.client.Del(ctx, r.setPrefixKey(r.key)).Err(); err != nil {
		return fmt.Errorf("failed to delete session token: %w", err)
	}
	return nil
}

type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryTokenStore(token string) *MemoryTokenStore {
	return &MemoryTokenStore{token: token}
}

var _ ITokenStore = (*MemoryTokenStore)(nil)

func (m *MemoryTokenStore) Load(_ context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token == "" {
		return "", ErrNoToken
	}
	return m.token, nil
}

func (m *MemoryTokenStore) Save(_ context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("empty session token")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryTokenStore) Delete(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
