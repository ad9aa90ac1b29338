package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Dictionary.Path != "./dictionary.json" {
		t.Fatalf("unexpected default path %q", cfg.Dictionary.Path)
	}
	if cfg.Match.Cutoff != 0.6 || cfg.Match.Limit != 3 {
		t.Fatalf("unexpected match defaults %+v", cfg.Match)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "lexi.json")
	data := `{"dictionary": {"path": "words.yaml"}, "match": {"cutoff": 0.8}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dictionary.Path != "words.yaml" {
		t.Fatalf("path = %q", cfg.Dictionary.Path)
	}
	if cfg.Match.Cutoff != 0.8 {
		t.Fatalf("cutoff = %v", cfg.Match.Cutoff)
	}
	if cfg.Match.Limit != 3 || cfg.Match.Algorithm != "ratio" || cfg.Match.ReplyPolicy != ReplyFold {
		t.Fatalf("defaults lost: %+v", cfg.Match)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("log level = %q", cfg.Log.Level)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for empty path")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"cutoff above one", func(c *Config) { c.Match.Cutoff = 1.5 }},
		{"negative cutoff", func(c *Config) { c.Match.Cutoff = -0.1 }},
		{"zero limit", func(c *Config) { c.Match.Limit = 0 }},
		{"unknown policy", func(c *Config) { c.Match.ReplyPolicy = "loose" }},
		{"empty path", func(c *Config) { c.Dictionary.Path = "" }},
		{"negative cache", func(c *Config) { c.Cache.Size = -1 }},
		{"unknown log level", func(c *Config) { c.Log.Level = "verbose" }},
		{"empty log level", func(c *Config) { c.Log.Level = "" }},
	}
	for _, c := range cases {
		cfg := Default()
		c.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}
}
