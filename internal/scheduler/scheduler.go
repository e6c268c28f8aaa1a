package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"RotationSentinel/internal/model"
	"RotationSentinel/internal/notifier"
	"RotationSentinel/internal/pipeline"
)

// Scheduler runs the daily signal pipeline on a cron and answers chat
// commands from the last completed snapshot.
type Scheduler struct {
	Cron     *cron.Cron
	Runner   *pipeline.Runner
	Notifier *notifier.TelegramNotifier
	Ctx      context.Context

	mu       sync.Mutex
	lastSnap *model.RunSnapshot
}

// New creates a Scheduler.
func New(ctx context.Context, runner *pipeline.Runner, tn *notifier.TelegramNotifier) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Runner:   runner,
		Notifier: tn,
		Ctx:      ctx,
	}
}

// Register registers the daily signal task.
func (s *Scheduler) Register(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Info().Msg("scheduler stopped")
}

// RunNow executes the daily task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.dailyTask()
}

func (s *Scheduler) dailyTask() {
	snap, err := s.Runner.Run()
	if err != nil {
		log.Error().Err(err).Msg("daily run failed")
		s.trySend(fmt.Sprintf("❌ 今日信号计算失败: %v", err))
		return
	}
	s.mu.Lock()
	s.lastSnap = snap
	s.mu.Unlock()
}

func (s *Scheduler) last() *model.RunSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSnap
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "重新计算", "/run":
		s.dailyTask()
		return ""
	case "查看信号", "/report":
		snap := s.last()
		if snap == nil {
			return "今日尚未计算信号，发送 /run 立即计算"
		}
		return notifier.FormatDailyReport(snap)
	case "查看健康度", "/health":
		snap := s.last()
		if snap == nil {
			return "今日尚未计算信号，发送 /run 立即计算"
		}
		return notifier.FormatHealth(snap.Health)
	default:
		return "可用命令:\n• /run 重新计算\n• /report 查看信号\n• /health 查看健康度"
	}
}

func (s *Scheduler) trySend(text string) {
	if !s.Notifier.Enabled() {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Error().Err(err).Msg("send notification")
	}
}
