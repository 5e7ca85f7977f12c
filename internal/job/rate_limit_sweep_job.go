package job

import (
	"Mizan/internal/pkg/ratelimit"
	log "log/slog"
)

// RateLimitSweepJob 周期清理限流器里已过期的桶，防止常驻进程内存缓慢增长
type RateLimitSweepJob struct {
	limiters []*ratelimit.Limiter
}

func NewRateLimitSweepJob(limiters ...*ratelimit.Limiter) *RateLimitSweepJob {
	return &RateLimitSweepJob{
		limiters: limiters,
	}
}

func (s *RateLimitSweepJob) Run() {
	removed, remain := 0, 0
	for _, limiter := range s.limiters {
		removed += limiter.Sweep()
		remain += limiter.Size()
	}
	if removed > 0 {
		log.Info("rate limit buckets swept", "removed", removed, "remain", remain)
	}
}
