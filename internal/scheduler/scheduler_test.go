package scheduler

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RotationSentinel/internal/collector"
	"RotationSentinel/internal/config"
	"RotationSentinel/internal/model"
	"RotationSentinel/internal/notifier"
	"RotationSentinel/internal/pipeline"
	"RotationSentinel/internal/recorder"
	"RotationSentinel/internal/report"
)

func testRunner(t *testing.T) *pipeline.Runner {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.DataSource.LookbackDays = 600
	cfg.Strategy.MomentumPeriod = 20
	cfg.Strategy.BuyThreshold = 0.08
	cfg.Strategy.SellThreshold = 0.02
	cfg.Strategy.ADXPeriod = 14
	cfg.Strategy.TrendThreshold = 25
	cfg.Strategy.MarketIndex = "sz.399006"
	cfg.Strategy.CashETF = "511880"
	cfg.Health.LookbackDays = 800
	cfg.Assets = []model.Asset{
		{Name: "创业板", IndexCode: "sz.399006", ETFCode: "159915", Source: model.SourceIndex},
	}
	cfg.Events.ConfigPath = filepath.Join(dir, "events_config.json")
	cfg.Report.OutputPath = filepath.Join(dir, "report.html")
	return &pipeline.Runner{
		Cfg:       cfg,
		Collector: collector.New(&collector.MockFetcher{}, nil),
		Recorder:  &recorder.NoopRecorder{},
		Renderer:  report.New(cfg.Report.OutputPath),
		Notifier:  &notifier.TelegramNotifier{},
	}
}

func TestHandleCommand_ReportBeforeFirstRun(t *testing.T) {
	s := New(context.Background(), testRunner(t), &notifier.TelegramNotifier{})
	reply := s.HandleCommand("/report")
	assert.Contains(t, reply, "/run")
}

func TestHandleCommand_RunThenReport(t *testing.T) {
	s := New(context.Background(), testRunner(t), &notifier.TelegramNotifier{})

	reply := s.HandleCommand("/run")
	assert.Empty(t, reply)
	require.NotNil(t, s.last(), "run must store the snapshot")

	reply = s.HandleCommand("/report")
	assert.Contains(t, reply, "轮动信号")

	reply = s.HandleCommand("/health")
	assert.Contains(t, reply, "健康度")
}

func TestHandleCommand_UnknownShowsHelp(t *testing.T) {
	s := New(context.Background(), testRunner(t), &notifier.TelegramNotifier{})
	reply := s.HandleCommand("whatever")
	assert.Contains(t, reply, "可用命令")
}
