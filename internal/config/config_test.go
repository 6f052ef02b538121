package config

import "testing"

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestParseAppliesDefaults(t *testing.T) {
	data := []byte("version: 1\nscreen:\n  theme: latte\n")
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("parse minimal config: %v", err)
	}
	if cfg.Parser.MaxCharCount != defaultMaxCharCount {
		t.Fatalf("max_char_count not default: %d", cfg.Parser.MaxCharCount)
	}
	if cfg.Screen.Theme != "latte" {
		t.Fatalf("theme = %q, want latte", cfg.Screen.Theme)
	}
	if cfg.Screen.Width != defaultWidth {
		t.Fatalf("width not default: %d", cfg.Screen.Width)
	}
}

func TestValidationRejectsUnknownTheme(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Screen.Theme = "unknown"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation error for unknown theme")
	}
}

func TestValidationRejectsZeroMaxCharCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Parser.MaxCharCount = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation error for zero max_char_count")
	}
}

func TestValidationRejectsZeroScreenDims(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Screen.Width = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation error for zero width")
	}
}
