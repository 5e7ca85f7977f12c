package cron

import (
	"Mizan/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine          *cron.Cron
	sweepJob        *job.RateLimitSweepJob
	commentStatsJob *job.CommentStatsJob
}

func NewCronManager(sweepJob *job.RateLimitSweepJob, commentStatsJob *job.CommentStatsJob) *Manager {
	return &Manager{
		engine:          cron.New(cron.WithSeconds()),
		sweepJob:        sweepJob,
		commentStatsJob: commentStatsJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@every 10m", s.sweepJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@daily", s.commentStatsJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
