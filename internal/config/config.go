// Package config holds all batterbox configuration: reference data location,
// generative service, Naver gateways, browser behavior, and logging.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all batterbox configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	Data    DataConfig    `yaml:"data"`
	LLM     LLMConfig     `yaml:"llm"`
	Naver   NaverConfig   `yaml:"naver"`
	Browser BrowserConfig `yaml:"browser"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig locates the reference CSV tables.
type DataConfig struct {
	Dir           string `yaml:"dir"`
	CurrentSeason string `yaml:"current_season"`
}

// LLMConfig configures the generative-text service.
type LLMConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	Timeout string `yaml:"timeout"`
}

// NaverConfig configures the news search API and the live-stats page.
type NaverConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	NewsURL      string `yaml:"news_url"`
	NewsCount    int    `yaml:"news_count"`
	StatsURL     string `yaml:"stats_url"` // printf template taking the player id
	Timeout      string `yaml:"timeout"`
}

// BrowserConfig configures the headless scrape.
type BrowserConfig struct {
	Headless      bool   `yaml:"headless"`
	PageTimeout   string `yaml:"page_timeout"`
	SettleDelayMs int    `yaml:"settle_delay_ms"` // wait for script-rendered regions
}

// LoggingConfig configures the category file logger.
type LoggingConfig struct {
	DebugMode bool   `yaml:"debug_mode"`
	Dir       string `yaml:"dir"`
	Level     string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "batterbox",
		Version: "1.0.0",

		Data: DataConfig{
			Dir:           "data",
			CurrentSeason: "2025",
		},
		LLM: LLMConfig{
			Model:   "gemini-2.0-flash",
			Timeout: "60s",
		},
		Naver: NaverConfig{
			NewsURL:   "https://openapi.naver.com/v1/search/news.json",
			NewsCount: 3,
			StatsURL:  "https://m.sports.naver.com/player/index?playerId=%s&category=kbo&tab=record",
			Timeout:   "15s",
		},
		Browser: BrowserConfig{
			Headless:      true,
			PageTimeout:   "45s",
			SettleDelayMs: 4000,
		},
		Logging: LoggingConfig{
			DebugMode: false,
			Dir:       ".batterbox/logs",
			Level:     "info",
		},
	}
}

// Load reads a config file and applies environment overrides. A missing file
// yields the defaults (still with overrides applied).
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("NAVER_CLIENT_ID"); v != "" {
		c.Naver.ClientID = v
	}
	if v := os.Getenv("NAVER_CLIENT_SECRET"); v != "" {
		c.Naver.ClientSecret = v
	}
	if v := os.Getenv("BATTERBOX_DATA_DIR"); v != "" {
		c.Data.Dir = v
	}
}

// Validate checks that the pieces needed at runtime are present.
func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("data dir not configured")
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("generative service API key not configured (set GEMINI_API_KEY)")
	}
	if c.Naver.ClientID == "" || c.Naver.ClientSecret == "" {
		return fmt.Errorf("news API credentials not configured (set NAVER_CLIENT_ID / NAVER_CLIENT_SECRET)")
	}
	return nil
}

// LLMTimeout returns the generative-call timeout.
func (c *Config) LLMTimeout() time.Duration {
	return parseDuration(c.LLM.Timeout, 60*time.Second)
}

// NaverTimeout returns the news/scrape HTTP timeout.
func (c *Config) NaverTimeout() time.Duration {
	return parseDuration(c.Naver.Timeout, 15*time.Second)
}

// PageTimeout returns the browser navigation timeout.
func (c *Config) PageTimeout() time.Duration {
	return parseDuration(c.Browser.PageTimeout, 45*time.Second)
}

// SettleDelay returns the wait for script-rendered page regions.
func (c *Config) SettleDelay() time.Duration {
	if c.Browser.SettleDelayMs <= 0 {
		return 4 * time.Second
	}
	return time.Duration(c.Browser.SettleDelayMs) * time.Millisecond
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
