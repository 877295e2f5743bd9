package ratelimit

import (
	"context"
	"sync"
	"time"
)

type ILimiter interface {
	Allow(ctx context.Context) bool
}

type LimiterConfig struct {
	Capacity     int
	RefillAmount int           // 每個區間補充的 token 數
	RefillRate   time.Duration // 補充時間間隔
}

func GetDefaultLimiterConfig() LimiterConfig {
	return LimiterConfig{
		Capacity:     100,
		RefillAmount: 10,
		RefillRate:   100 * time.Millisecond,
	}
}

/*
TokenBucket 在 Allow 時依經過的完整區間數補充 token
不需要背景 goroutine, 也就不需要 Stop
*/
type TokenBucket struct {
	LimiterConfig
	mu           sync.Mutex
	current      int
	lastRefilled time.Time
	now          func() time.Time
}

type TokenBucketOption func(*TokenBucket)

// WithClock 測試用, 注入時間來源
func WithClock(now func() time.Time) TokenBucketOption {
	return func(t *TokenBucket) { t.now = now }
}

func NewTokenBucket(config *LimiterConfig, opts ...TokenBucketOption) *TokenBucket {
	t := &TokenBucket{now: time.Now}
	if config != nil {
		t.LimiterConfig = *config
	} else {
		t.LimiterConfig = GetDefaultLimiterConfig()
	}
	if t.RefillAmount <= 0 {
		t.RefillAmount = 1
	}
	if t.RefillRate <= 0 {
		t.RefillRate = time.Second
	}
	for _, opt := range opts {
		opt(t)
	}

	t.current = t.Capacity
	t.lastRefilled = t.now()
	return t
}

var _ ILimiter = (*TokenBucket)(nil)

func (t *TokenBucket) Allow(_ context.Context) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill(t.now())
	if t.current <= 0 {
		return false
	}
	t.current--
	return true
}

// Available 目前可用 token 數
func (t *TokenBucket) Available() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.refill(t.now())
	return t.current
}

func (t *TokenBucket) refill(now time.Time) {
	periods := int(now.Sub(t.lastRefilled) / t.RefillRate)
	if periods <= 0 {
		return
	}
	t.current += periods * t.RefillAmount
	if t.current > t.Capacity {
		t.current = t.Capacity
	}
	// 只前進完整區間, 剩餘時間留到下次
	t.lastRefilled = t.lastRefilled.Add(time.Duration(periods) * t.RefillRate)
}
