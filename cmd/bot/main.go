package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"RotationSentinel/internal/collector"
	"RotationSentinel/internal/config"
	"RotationSentinel/internal/notifier"
	"RotationSentinel/internal/pipeline"
	"RotationSentinel/internal/recorder"
	"RotationSentinel/internal/report"
	"RotationSentinel/internal/scheduler"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Info().Msg("RotationSentinel starting")

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	var index, fund collector.Fetcher
	if cfg.DataSource.Mock {
		log.Warn().Msg("mock data source enabled")
		index = &collector.MockFetcher{}
		fund = &collector.MockFetcher{Base: 4.2}
	} else {
		index = collector.NewBaostockFetcher(cfg.DataSource.BaostockURL, cfg.Proxy)
		fund = collector.NewEastMoneyFetcher(cfg.DataSource.EastmoneyURL, cfg.Proxy)
	}
	log.Info().Str("index", index.Name()).Str("fund", fund.Name()).Msg("data sources ready")
	col := collector.New(index, fund)

	var recs []recorder.Recorder
	if cfg.SignalLog.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.SignalLog.SQLitePath)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, skipping")
		} else {
			recs = append(recs, sr)
		}
	}
	if cfg.SignalLog.CSVPath != "" {
		recs = append(recs, recorder.NewCSVRecorder(cfg.SignalLog.CSVPath))
	}
	var rec recorder.Recorder
	switch len(recs) {
	case 0:
		rec = recorder.NewNoopRecorder()
	case 1:
		rec = recs[0]
	default:
		rec = recorder.NewMultiRecorder(recs...)
	}
	defer rec.Close()

	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	runner := &pipeline.Runner{
		Cfg:       cfg,
		Collector: col,
		Recorder:  rec,
		Renderer:  report.New(cfg.Report.OutputPath),
		Notifier:  tn,
	}

	if !cfg.Schedule.Daemon {
		// One-shot mode: compute today's signal, publish, exit.
		if _, err := runner.Run(); err != nil {
			log.Fatal().Err(err).Msg("run failed")
		}
		log.Info().Msg("run complete")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.New(ctx, runner, tn)
	if err := sched.Register(cfg.Schedule.DailyCron); err != nil {
		log.Fatal().Err(err).Msg("register cron task")
	}
	sched.Start()
	defer sched.Stop()

	if tn.Enabled() {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Info().Msg("telegram polling started")
	}

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, computing signal now")
		go sched.RunNow()
	}

	log.Info().Str("cron", cfg.Schedule.DailyCron).Msg("RotationSentinel is running")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	cancel()
	log.Info().Msg("RotationSentinel stopped")
}
