package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultStocks is the built-in NSE equity watch list.
var DefaultStocks = []string{
	"RELIANCE.NS", "HDFCBANK.NS", "INFY.NS", "TCS.NS", "ICICIBANK.NS",
	"LT.NS", "SBIN.NS", "KOTAKBANK.NS", "AXISBANK.NS", "BSE.NS",
	"BHARTIARTL.NS", "TITAN.NS", "ASIANPAINT.NS", "OFSS.NS", "MARUTI.NS",
	"BOSCHLTD.NS", "TRENT.NS", "NESTLEIND.NS", "ULTRACEMCO.NS", "MCX.NS",
	"CAMS.NS", "COFORGE.NS",
}

// DefaultIndices is the built-in index watch list.
var DefaultIndices = []string{"^NSEI", "^NSEBANK"}

// Config holds all application configuration.
type Config struct {
	SMTP struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		From     string `yaml:"from"`
		To       string `yaml:"to"`
	} `yaml:"smtp"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Watchlist struct {
		Stocks  []string `yaml:"stocks"`
		Indices []string `yaml:"indices"`
	} `yaml:"watchlist"`
	Market struct {
		Timezone     string `yaml:"timezone"`
		WindowStart  string `yaml:"window_start"`
		WindowEnd    string `yaml:"window_end"`
		LookbackDays int    `yaml:"lookback_days"`
	} `yaml:"market"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Ledger struct {
		File string `yaml:"file"`
	} `yaml:"ledger"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Server struct {
		Listen         string `yaml:"listen"`
		RefreshSeconds int    `yaml:"refresh_seconds"`
	} `yaml:"server"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
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

	// Environment variable overrides
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.SMTP.Host = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.SMTP.Port = p
		}
	}
	if v := os.Getenv("SMTP_USERNAME"); v != "" {
		cfg.SMTP.Username = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		cfg.SMTP.Password = v
	}
	if v := os.Getenv("SMTP_FROM"); v != "" {
		cfg.SMTP.From = v
	}
	if v := os.Getenv("SMTP_TO"); v != "" {
		cfg.SMTP.To = v
	}
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("LEDGER_FILE"); v != "" {
		cfg.Ledger.File = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.Listen = v
	}

	// Defaults
	if len(cfg.Watchlist.Stocks) == 0 {
		cfg.Watchlist.Stocks = DefaultStocks
	}
	if len(cfg.Watchlist.Indices) == 0 {
		cfg.Watchlist.Indices = DefaultIndices
	}
	if cfg.Market.Timezone == "" {
		cfg.Market.Timezone = "Asia/Kolkata"
	}
	if cfg.Market.WindowStart == "" {
		cfg.Market.WindowStart = "09:15"
	}
	if cfg.Market.WindowEnd == "" {
		cfg.Market.WindowEnd = "09:30"
	}
	if cfg.Market.LookbackDays == 0 {
		cfg.Market.LookbackDays = 7
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 */15 * * * *"
	}
	if cfg.Ledger.File == "" {
		cfg.Ledger.File = "data/emailed_stocks.txt"
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = 465
	}
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.RefreshSeconds == 0 {
		cfg.Server.RefreshSeconds = 900
	}

	return cfg, nil
}

// Symbols returns the combined watch list: equities followed by indices.
func (c *Config) Symbols() []string {
	out := make([]string, 0, len(c.Watchlist.Stocks)+len(c.Watchlist.Indices))
	out = append(out, c.Watchlist.Stocks...)
	out = append(out, c.Watchlist.Indices...)
	return out
}

// Location loads the configured market timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Market.Timezone)
}

// SMTPConfigured reports whether an email transport can be built.
func (c *Config) SMTPConfigured() bool {
	return c.SMTP.Host != "" && c.SMTP.From != "" && c.SMTP.To != ""
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if len(c.Symbols()) == 0 {
		return fmt.Errorf("watchlist must not be empty")
	}
	if c.Market.LookbackDays <= 0 {
		return fmt.Errorf("market.lookback_days must be positive")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("market.timezone: %w", err)
	}
	if c.SMTP.Host != "" && (c.SMTP.From == "" || c.SMTP.To == "") {
		return fmt.Errorf("smtp.from and smtp.to are required when smtp.host is set")
	}
	return nil
}
