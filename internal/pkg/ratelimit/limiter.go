package ratelimit

import (
	"sync"
	"time"
)

// Limiter 固定窗口计数器限流器。
// 故意保持与线上行为一致的固定窗口语义（窗口边界允许突发），
// 不做滑动窗口或令牌桶的部分回填。
type Limiter struct {
	mu      sync.Mutex
	window  time.Duration
	limit   int
	buckets map[string]*bucket

	now func() time.Time // 测试注入
}

type bucket struct {
	count     int
	resetTime time.Time
}

// NewLimiter 创建限流器，window 为窗口长度，limit 为窗口内上限
func NewLimiter(window time.Duration, limit int) *Limiter {
	return &Limiter{
		window:  window,
		limit:   limit,
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Allow 判定 identity 当前是否放行。
// 不放行时返回距窗口重置的剩余时间，用于 retry-after 提示。
func (s *Limiter) Allow(identity string) (bool, time.Duration) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buckets[identity]
	if !ok || now.After(b.resetTime) {
		s.buckets[identity] = &bucket{count: 1, resetTime: now.Add(s.window)}
		return true, 0
	}

	if b.count < s.limit {
		b.count++
		return true, 0
	}

	return false, b.resetTime.Sub(now)
}

// Sweep 清理已过期的桶，由定时任务周期调用，避免常驻进程内存无限增长
func (s *Limiter) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for identity, b := range s.buckets {
		if now.After(b.resetTime) {
			delete(s.buckets, identity)
			removed++
		}
	}
	return removed
}

// Size 当前桶数量
func (s *Limiter) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buckets)
}
