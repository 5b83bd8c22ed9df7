package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Search  SearchConfig
	Browser BrowserConfig
	Scraper ScraperConfig
	Report  ReportConfig
	Server  ServerConfig
	Logging LoggingConfig
}

// SearchConfig describes what one run looks for. Read once at
// startup and immutable afterwards.
type SearchConfig struct {
	Term           string `env:"SEARCH_TERM" env-default:"PS4"`
	PriceMin       int    `env:"PRICE_MIN" env-default:"275"`
	PriceMax       int    `env:"PRICE_MAX" env-default:"650"`
	BaseURL        string `env:"BASE_URL" env-default:"https://www.amazon.com"`
	CurrencySymbol string `env:"CURRENCY_SYMBOL" env-default:"$"`
}

type BrowserConfig struct {
	Headless       bool          `env:"BROWSER_HEADLESS" env-default:"true"`
	Timeout        time.Duration `env:"BROWSER_TIMEOUT" env-default:"30s"`
	ViewportWidth  int           `env:"BROWSER_VIEWPORT_WIDTH" env-default:"1920"`
	ViewportHeight int           `env:"BROWSER_VIEWPORT_HEIGHT" env-default:"1080"`
	Locale         string        `env:"BROWSER_LOCALE" env-default:"en-US"`
	TimezoneID     string        `env:"BROWSER_TIMEZONE" env-default:"UTC"`
}

type ScraperConfig struct {
	SettleDelay   time.Duration `env:"SCRAPER_SETTLE_DELAY" env-default:"2s"`
	ResultTimeout time.Duration `env:"SCRAPER_RESULT_TIMEOUT" env-default:"10s"`
	RateLimitMin  time.Duration `env:"SCRAPER_RATE_LIMIT_MIN" env-default:"2s"`
	RateLimitMax  time.Duration `env:"SCRAPER_RATE_LIMIT_MAX" env-default:"5s"`
}

type ReportConfig struct {
	OutputDir string `env:"REPORT_OUTPUT_DIR" env-default:"reports"`
}

type ServerConfig struct {
	Addr         string        `env:"SERVER_ADDR" env-default:":8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" env-default:"15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" env-default:"15s"`
}

type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"text"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Search.Term == "" {
		return fmt.Errorf("SEARCH_TERM must not be empty")
	}
	if c.Search.PriceMin > c.Search.PriceMax {
		return fmt.Errorf("PRICE_MIN cannot be greater than PRICE_MAX")
	}
	if c.Search.CurrencySymbol == "" {
		return fmt.Errorf("CURRENCY_SYMBOL must not be empty")
	}
	if c.Scraper.RateLimitMin > c.Scraper.RateLimitMax {
		return fmt.Errorf("SCRAPER_RATE_LIMIT_MIN cannot be greater than SCRAPER_RATE_LIMIT_MAX")
	}
	return nil
}
