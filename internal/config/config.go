package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"RotationSentinel/internal/model"
)

// Config holds all application configuration. It is loaded once in main and
// threaded through the pipeline as an immutable value.
type Config struct {
	DataSource struct {
		BaostockURL  string `yaml:"baostock_url" envconfig:"BAOSTOCK_URL"`
		EastmoneyURL string `yaml:"eastmoney_url" envconfig:"EASTMONEY_URL"`
		Mock         bool   `yaml:"mock" envconfig:"MOCK_DATA"`
		LookbackDays int    `yaml:"lookback_days" envconfig:"LOOKBACK_DAYS"`
	} `yaml:"data_source"`
	Strategy struct {
		MomentumPeriod int     `yaml:"momentum_period" envconfig:"MOMENTUM_PERIOD"`
		BuyThreshold   float64 `yaml:"buy_threshold" envconfig:"BUY_THRESHOLD"`
		SellThreshold  float64 `yaml:"sell_threshold" envconfig:"SELL_THRESHOLD"`
		ADXPeriod      int     `yaml:"adx_period" envconfig:"ADX_PERIOD"`
		TrendThreshold float64 `yaml:"trend_threshold" envconfig:"TREND_THRESHOLD"`
		MarketIndex    string  `yaml:"market_index" envconfig:"MARKET_INDEX"`
		CashETF        string  `yaml:"cash_etf" envconfig:"CASH_ETF"`
	} `yaml:"strategy"`
	Health struct {
		LookbackDays int `yaml:"lookback_days" envconfig:"HEALTH_LOOKBACK_DAYS"`
	} `yaml:"health"`
	Assets []model.Asset `yaml:"assets" ignored:"true"`
	Events struct {
		ConfigPath string `yaml:"config_path" envconfig:"EVENTS_PATH"`
	} `yaml:"events"`
	Report struct {
		OutputPath string `yaml:"output_path" envconfig:"REPORT_PATH"`
	} `yaml:"report"`
	SignalLog struct {
		SQLitePath string `yaml:"sqlite_path" envconfig:"SQLITE_PATH"`
		CSVPath    string `yaml:"csv_path" envconfig:"CSV_PATH"`
	} `yaml:"signal_log"`
	Telegram struct {
		BotToken string `yaml:"bot_token" envconfig:"TELEGRAM_BOT_TOKEN"`
		ChatID   string `yaml:"chat_id" envconfig:"TELEGRAM_CHAT_ID"`
	} `yaml:"telegram"`
	Schedule struct {
		Daemon    bool   `yaml:"daemon" envconfig:"DAEMON"`
		DailyCron string `yaml:"daily_cron" envconfig:"DAILY_CRON"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy" envconfig:"HTTPS_PROXY"`
}

// Load reads config from a YAML file, applies ROTOR_* environment variable
// overrides, then fills defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := envconfig.Process("rotor", cfg); err != nil {
		return nil, fmt.Errorf("env overrides: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DataSource.LookbackDays == 0 {
		c.DataSource.LookbackDays = 600
	}
	if c.Strategy.MomentumPeriod == 0 {
		c.Strategy.MomentumPeriod = 20
	}
	if c.Strategy.BuyThreshold == 0 {
		c.Strategy.BuyThreshold = 0.08
	}
	if c.Strategy.SellThreshold == 0 {
		c.Strategy.SellThreshold = 0.02
	}
	if c.Strategy.ADXPeriod == 0 {
		c.Strategy.ADXPeriod = 14
	}
	if c.Strategy.TrendThreshold == 0 {
		c.Strategy.TrendThreshold = 25
	}
	if c.Strategy.MarketIndex == "" {
		c.Strategy.MarketIndex = "sz.399006"
	}
	if c.Strategy.CashETF == "" {
		c.Strategy.CashETF = "511880"
	}
	if c.Health.LookbackDays == 0 {
		c.Health.LookbackDays = 800
	}
	if len(c.Assets) == 0 {
		c.Assets = DefaultAssets()
	}
	if c.Events.ConfigPath == "" {
		c.Events.ConfigPath = "data/events_config.json"
	}
	if c.Report.OutputPath == "" {
		c.Report.OutputPath = "output/report.html"
	}
	if c.SignalLog.CSVPath == "" {
		c.SignalLog.CSVPath = "data/signal_log.csv"
	}
	if c.Schedule.DailyCron == "" {
		c.Schedule.DailyCron = "0 30 15 * * 1-5"
	}
}

// DefaultAssets is the stock rotation universe.
func DefaultAssets() []model.Asset {
	return []model.Asset{
		{Name: "创业板", IndexCode: "sz.399006", ETFCode: "159915", Source: model.SourceIndex},
		{Name: "沪深300", IndexCode: "sh.000300", ETFCode: "510300", Source: model.SourceIndex},
		{Name: "有色金属", IndexCode: "sz.399807", ETFCode: "512400", Source: model.SourceIndex},
		{Name: "电力", IndexCode: "sh.000966", ETFCode: "159611", Source: model.SourceIndex},
		{Name: "黄金", ETFCode: "518880", Source: model.SourceFund},
	}
}

// Validate checks that required fields are coherent.
func (c *Config) Validate() error {
	if !c.DataSource.Mock && c.DataSource.BaostockURL == "" {
		return fmt.Errorf("data_source.baostock_url is required unless mock data is enabled")
	}
	if c.Strategy.MarketIndex == "" {
		return fmt.Errorf("strategy.market_index is required")
	}
	if len(c.Assets) == 0 {
		return fmt.Errorf("at least one asset is required")
	}
	if c.Strategy.SellThreshold >= c.Strategy.BuyThreshold {
		return fmt.Errorf("strategy.sell_threshold must be below buy_threshold")
	}
	if c.Strategy.MomentumPeriod <= 0 || c.Strategy.ADXPeriod <= 0 {
		return fmt.Errorf("strategy periods must be positive")
	}
	for _, a := range c.Assets {
		if a.Name == "" || a.ETFCode == "" {
			return fmt.Errorf("asset entries need both name and etf_code")
		}
		if a.Source == "" && a.IndexCode == "" {
			return fmt.Errorf("asset %s: index_code required for index source", a.Name)
		}
	}
	return nil
}
