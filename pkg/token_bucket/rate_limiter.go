package token_bucket

import (
	"sync"
	"time"
)

/*
Алгоритм простой: Allow возвращает true/false, то есть мы либо принимаем
запрос, либо отклоняем. Токены доливаются пропорционально прошедшему времени,
но не выше capacity.
*/

type Limiter interface {
	Allow() bool
}

type TokenBucket struct {
	capacity   int
	tokens     int
	refillRate float64
	lastRefill time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill(time.Now())

	if t.tokens > 0 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) refill(now time.Time) {
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	tokensToAdd := int(elapsed * t.refillRate)
	if tokensToAdd <= 0 {
		return
	}

	t.tokens = min(t.tokens+tokensToAdd, t.capacity)
	t.lastRefill = now
}

// full сообщает, что ведро восстановилось полностью и его можно выбросить.
func (t *TokenBucket) full(now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill(now)
	return t.tokens >= t.capacity
}

// KeyedLimiter держит отдельное ведро на каждый ключ (например IP клиента).
// Полностью восстановившиеся ведра удаляются при очередном проходе очистки.
type KeyedLimiter struct {
	capacity      int
	refillRate    float64
	cleanupPeriod time.Duration

	mu          sync.Mutex
	buckets     map[string]*TokenBucket
	lastCleanup time.Time
}

func NewKeyedLimiter(capacity int, refillRate float64, cleanupPeriod time.Duration) *KeyedLimiter {
	return &KeyedLimiter{
		capacity:      capacity,
		refillRate:    refillRate,
		cleanupPeriod: cleanupPeriod,
		buckets:       make(map[string]*TokenBucket),
		lastCleanup:   time.Now(),
	}
}

func (k *KeyedLimiter) Allow(key string) bool {
	return k.bucket(key).Allow()
}

// Len количество живых ведер, используется в метриках и тестах.
func (k *KeyedLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()

	return len(k.buckets)
}

func (k *KeyedLimiter) bucket(key string) *TokenBucket {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := time.Now()
	if k.cleanupPeriod > 0 && now.Sub(k.lastCleanup) >= k.cleanupPeriod {
		for bucketKey, b := range k.buckets {
			if b.full(now) {
				delete(k.buckets, bucketKey)
			}
		}
		k.lastCleanup = now
	}

	b, ok := k.buckets[key]
	if !ok {
		b = NewTokenBucket(k.capacity, k.refillRate)
		k.buckets[key] = b
	}
	return b
}
