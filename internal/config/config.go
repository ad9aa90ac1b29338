package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

const (
	ReplyFold   = "fold"
	ReplyStrict = "strict"
)

type Config struct {
	Dictionary DictConfig  `json:"dictionary"`
	Match      MatchConfig `json:"match"`
	Cache      CacheConfig `json:"cache"`
	Log        LogConfig   `json:"log"`
}

type DictConfig struct {
	Path      string `json:"path"`
	Type      string `json:"type"`
	Delimiter string `json:"delimiter"`
}

type MatchConfig struct {
	Algorithm   string  `json:"algorithm"`
	Cutoff      float64 `json:"cutoff"`
	Limit       int     `json:"limit"`
	ReplyPolicy string  `json:"reply_policy"`
}

type CacheConfig struct {
	Size int           `json:"size"`
	TTL  time.Duration `json:"ttl"`
}

type LogConfig struct {
	Level string `json:"level"`
}

func Default() Config {
	return Config{
		Dictionary: DictConfig{
			Path: "./dictionary.json",
		},
		Match: MatchConfig{
			Algorithm:   "ratio",
			Cutoff:      0.6,
			Limit:       3,
			ReplyPolicy: ReplyFold,
		},
		Cache: CacheConfig{
			Size: 256,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load reads a JSON config file on top of Default. Fields left empty in
// the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, errors.New("config path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	def := Default()
	if cfg.Dictionary.Path == "" {
		cfg.Dictionary.Path = def.Dictionary.Path
	}
	if cfg.Match.Algorithm == "" {
		cfg.Match.Algorithm = def.Match.Algorithm
	}
	if cfg.Match.Limit == 0 {
		cfg.Match.Limit = def.Match.Limit
	}
	if cfg.Match.ReplyPolicy == "" {
		cfg.Match.ReplyPolicy = def.Match.ReplyPolicy
	}
	if cfg.Cache.Size == 0 {
		cfg.Cache.Size = def.Cache.Size
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Dictionary.Path == "" {
		return errors.New("dictionary path is required")
	}
	if c.Match.Cutoff < 0 || c.Match.Cutoff > 1 {
		return fmt.Errorf("match cutoff must be within [0, 1], got %v", c.Match.Cutoff)
	}
	if c.Match.Limit <= 0 {
		return fmt.Errorf("match limit must be positive, got %d", c.Match.Limit)
	}
	switch c.Match.ReplyPolicy {
	case ReplyFold, ReplyStrict:
	default:
		return fmt.Errorf("unknown reply policy %q", c.Match.ReplyPolicy)
	}
	if c.Cache.Size < 0 {
		return fmt.Errorf("cache size must not be negative, got %d", c.Cache.Size)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}
