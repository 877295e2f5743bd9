package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisBucketKey = "storefront:stub:ratelimit"

// 與 TokenBucket 相同的規則: 只補完整區間, 剩餘時間留到下次
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local capacity = tonumber(ARGV[1])
local amount = tonumber(ARGV[2])
local interval = tonumber(ARGV[3])
local now = tonumber(ARGV[4])

local bucket = redis.call('HMGET', key, 'tokens', 'last_refill')
local tokens = tonumber(bucket[1])
local last = tonumber(bucket[2])
if tokens == nil then
	tokens = capacity
	last = now
end

local periods = math.floor((now - last) / interval)
if periods > 0 then
	tokens = math.min(capacity, tokens + periods * amount)
	last = last + periods * interval
end

local allowed = 0
if tokens >= 1 then
	tokens = tokens - 1
	allowed = 1
end
redis.call('HSET', key, 'tokens', tokens, 'last_refill', last)
redis.call('PEXPIRE', key, interval * math.max(1, math.ceil(capacity / amount)) * 2)
return allowed
`)

/*
RedisTokenBucket 多個 stub instance 共用同一個 bucket
redis 無法使用時拒絕請求
*/
type RedisTokenBucket struct {
	LimiterConfig
	client redis.Scripter
	key    string
	now    func() time.Time
}

type RedisTokenBucketOption func(*RedisTokenBucket)

func WithRedisKey(key string) RedisTokenBucketOption {
	return func(r *RedisTokenBucket) {
		if key != "" {
			r.key = key
		}
	}
}

func WithRedisClock(now func() time.Time) RedisTokenBucketOption {
	return func(r *RedisTokenBucket) { r.now = now }
}

func NewRedisTokenBucket(client redis.Scripter, config *LimiterConfig, opts ...RedisTokenBucketOption) *RedisTokenBucket {
	r := &RedisTokenBucket{
		client: client,
		key:    defaultRedisBucketKey,
		now:    time.Now,
	}
	if config != nil {
		r.LimiterConfig = *config
	} else {
		r.LimiterConfig = GetDefaultLimiterConfig()
	}
	if r.RefillAmount <= 0 {
		r.RefillAmount = 1
	}
	if r.RefillRate < time.Millisecond {
		r.RefillRate = time.Second
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ILimiter = (*RedisTokenBucket)(nil)

func (r *RedisTokenBucket) Allow(ctx context.Context) bool {
	res, err := tokenBucketScript.Run(ctx, r.client, []string{r.key},
		r.Capacity,
		r.RefillAmount,
		r.RefillRate.Milliseconds(),
		r.now().UnixMilli(),
	).Int64()
	if err != nil {
		return false
	}
	return res == 1
}
