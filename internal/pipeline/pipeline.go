package pipeline

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"RotationSentinel/internal/calculator"
	"RotationSentinel/internal/collector"
	"RotationSentinel/internal/config"
	"RotationSentinel/internal/events"
	"RotationSentinel/internal/health"
	"RotationSentinel/internal/model"
	"RotationSentinel/internal/notifier"
	"RotationSentinel/internal/recorder"
	"RotationSentinel/internal/report"
	"RotationSentinel/internal/strategy"
)

// Runner wires the daily signal pipeline: collect, filter, rank, decide,
// score, publish. One Run per trading day.
type Runner struct {
	Cfg       *config.Config
	Collector *collector.Collector
	Recorder  recorder.Recorder
	Renderer  *report.Renderer
	Notifier  *notifier.TelegramNotifier
}

// Run executes the pipeline for today.
func (r *Runner) Run() (*model.RunSnapshot, error) {
	return r.RunFor(time.Now().Format("2006-01-02"))
}

// RunFor executes the pipeline for the given trading day. The only fatal
// failure is losing the market index: without it neither the trend filter
// nor the health replay can run, so the day's outputs are left untouched.
// Everything downstream of the decision is best-effort.
func (r *Runner) RunFor(day string) (*model.RunSnapshot, error) {
	cfg := r.Cfg
	log.Info().Str("date", day).Msg("pipeline run started")

	// The health replay needs more history than the momentum lookback.
	days := cfg.DataSource.LookbackDays
	if cfg.Health.LookbackDays > days {
		days = cfg.Health.LookbackDays
	}
	market, err := r.Collector.MarketIndex(cfg.Strategy.MarketIndex, days)
	if err != nil {
		return nil, fmt.Errorf("collect market index: %w", err)
	}

	var warnings []string
	adxVal, adxOK := calculator.ADX(market, cfg.Strategy.ADXPeriod)
	trend := strategy.TrendFilter{ADX: adxVal, Valid: adxOK}
	trendStatus := "unknown"
	if adxOK {
		if adxVal >= cfg.Strategy.TrendThreshold {
			trendStatus = "trending"
		} else {
			trendStatus = "choppy"
		}
		log.Info().Float64("adx", adxVal).Str("trend", trendStatus).Msg("trend filter computed")
	} else {
		warnings = append(warnings, "trend filter unavailable: insufficient index history")
		log.Warn().Msg("trend filter unavailable, passing all entries")
	}

	series, fetchWarnings := r.Collector.AssetSeries(cfg.Assets, cfg.DataSource.LookbackDays)
	warnings = append(warnings, fetchWarnings...)

	// Momentum per asset, in configuration order so later stable sorts keep
	// config priority on ties.
	var moms []model.AssetMomentum
	for _, a := range cfg.Assets {
		s, ok := series[a.Name]
		if !ok {
			continue
		}
		mom, err := calculator.Momentum(s, cfg.Strategy.MomentumPeriod)
		if err != nil {
			log.Warn().Err(err).Str("asset", a.Name).Msg("momentum unavailable, skipping")
			warnings = append(warnings, fmt.Sprintf("%s: momentum unavailable", a.Name))
			continue
		}
		last := s.Last()
		moms = append(moms, model.AssetMomentum{
			Name:      a.Name,
			ETFCode:   a.ETFCode,
			Momentum:  mom,
			LastClose: last.Close,
			LastDate:  last.Date,
		})
	}

	evs := events.Load(cfg.Events.ConfigPath)
	active := events.ActiveOn(evs, day)
	ov := events.BuildOverrides(active)
	if len(active) > 0 {
		log.Info().Int("active", len(active)).Msg("event overrides in effect")
	}

	ranked := strategy.Rank(moms, ov)
	decision := strategy.Decide(ranked, trend, ov, strategy.Thresholds{
		Buy:      cfg.Strategy.BuyThreshold,
		Sell:     cfg.Strategy.SellThreshold,
		TrendMin: cfg.Strategy.TrendThreshold,
		CashETF:  cfg.Strategy.CashETF,
	})
	log.Info().Str("signal", string(decision.Signal)).Str("etf", decision.ETFCode).Msg("decision made")

	healthSnap := health.Evaluate(market, cfg.Strategy.MomentumPeriod)
	log.Info().Int("score", healthSnap.Score).Str("status", string(healthSnap.Status)).Msg("strategy health scored")

	snap := &model.RunSnapshot{
		Date:         day,
		Decision:     decision,
		Health:       healthSnap,
		Rankings:     ranked,
		ActiveEvents: active,
		MarketADX:    adxVal,
		ADXValid:     adxOK,
		TrendStatus:  trendStatus,
		Warnings:     warnings,
		GeneratedAt:  time.Now(),
	}

	r.publish(snap)
	return snap, nil
}

// publish pushes the snapshot to the report, the signal log and Telegram.
// Failures are logged, never propagated: a bad disk or a down chat API must
// not lose the day's decision.
func (r *Runner) publish(snap *model.RunSnapshot) {
	if r.Renderer != nil {
		if err := r.Renderer.Render(snap); err != nil {
			log.Error().Err(err).Msg("render report")
		}
	}
	if r.Recorder != nil {
		if err := r.Recorder.Append(snapshotRecord(snap)); err != nil {
			log.Error().Err(err).Msg("append signal log")
		}
	}
	if r.Notifier.Enabled() {
		if err := r.Notifier.Send(notifier.FormatDailyReport(snap)); err != nil {
			log.Error().Err(err).Msg("telegram notify")
		}
	}
}

// snapshotRecord flattens a snapshot into one signal-log row.
func snapshotRecord(snap *model.RunSnapshot) *model.SignalLogRecord {
	rec := &model.SignalLogRecord{
		Date:         snap.Date,
		AssetName:    "cash",
		ETFCode:      snap.Decision.ETFCode,
		MarketADX:    snap.MarketADX,
		ADXValid:     snap.ADXValid,
		HealthScore:  snap.Health.Score,
		HealthStatus: string(snap.Health.Status),
	}
	if snap.Decision.Asset != nil {
		rec.AssetName = snap.Decision.Asset.Name
	}
	if len(snap.Rankings) > 0 {
		rec.TopMomentum = snap.Rankings[0].AdjustedMomentum
	}
	return rec
}
