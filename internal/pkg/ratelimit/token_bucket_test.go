package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type TokenBucketTestSuite struct {
	suite.Suite
	clock  *fakeClock
	config *LimiterConfig
}

func (s *TokenBucketTestSuite) SetupTest() {
	s.clock = &fakeClock{now: time.Unix(1700000000, 0)}
	s.config = &LimiterConfig{
		Capacity:     5,
		RefillAmount: 1,
		RefillRate:   time.Second,
	}
}

func TestTokenBucketSuite(t *testing.T) {
	suite.Run(t, new(TokenBucketTestSuite))
}

func (s *TokenBucketTestSuite) TestBasic() {
	bucket := NewTokenBucket(s.config, WithClock(s.clock.Now))
	ctx := context.Background()

	// 測試初始容量
	for i := 0; i < s.config.Capacity; i++ {
		require.True(s.T(), bucket.Allow(ctx), "應該允許第 %d 次請求", i+1)
	}

	// 超過容量應該被拒絕
	require.False(s.T(), bucket.Allow(ctx), "超過容量限制應該被拒絕")
}

func (s *TokenBucketTestSuite) TestRefill() {
	bucket := NewTokenBucket(s.config, WithClock(s.clock.Now))
	ctx := context.Background()
	for i := 0; i < s.config.Capacity; i++ {
		bucket.Allow(ctx)
	}

	// 未滿一個區間不補充
	s.clock.Advance(900 * time.Millisecond)
	require.False(s.T(), bucket.Allow(ctx))

	// 滿一個區間補充 1 個
	s.clock.Advance(100 * time.Millisecond)
	require.True(s.T(), bucket.Allow(ctx), "應該有 1 個新的 token 可用")
	require.False(s.T(), bucket.Allow(ctx), "不應該有第 2 個 token 可用")
}

func (s *TokenBucketTestSuite) TestCapacityCap() {
	bucket := NewTokenBucket(s.config, WithClock(s.clock.Now))
	ctx := context.Background()
	bucket.Allow(ctx)

	// 等待很久也不會超過容量
	s.clock.Advance(time.Hour)
	require.Equal(s.T(), s.config.Capacity, bucket.Available())
}

func (s *TokenBucketTestSuite) TestConcurrentAllow() {
	bucket := NewTokenBucket(&LimiterConfig{Capacity: 50, RefillAmount: 1, RefillRate: time.Hour}, WithClock(s.clock.Now))
	var allowed atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if bucket.Allow(context.Background()) {
				allowed.Add(1)
			}
		}()
	}
	// 等待所有 goroutine 完成
	wg.Wait()
	require.Equal(s.T(), int64(50), allowed.Load())
}

func (s *TokenBucketTestSuite) TestMiddleware() {
	bucket := NewTokenBucket(&LimiterConfig{Capacity: 1, RefillAmount: 1, RefillRate: time.Hour}, WithClock(s.clock.Now))
	h := NewRateLimitMiddleware(bucket)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	require.Equal(s.T(), http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	require.Equal(s.T(), http.StatusTooManyRequests, rec.Code)
}

func TestDefaultConfig(t *testing.T) {
	bucket := NewTokenBucket(nil)
	require.Equal(t, GetDefaultLimiterConfig().Capacity, bucket.Available())
}
