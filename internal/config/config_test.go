package config

import (
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()
	if cfg.Port != "4000" || cfg.Provider != "liiga" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.TopN != 5 || cfg.PollInterval != time.Hour {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	expected := []string{"savepercentage", "shutouts", "goalsagainstavg"}
	if len(cfg.Categories) != len(expected) {
		t.Fatalf("unexpected categories: %v", cfg.Categories)
	}
	for i, c := range expected {
		if cfg.Categories[i] != c {
			t.Fatalf("unexpected categories: %v", cfg.Categories)
		}
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]func(*Config){
		"empty port":     func(c *Config) { c.Port = "" },
		"empty url":      func(c *Config) { c.URL = "" },
		"no categories":  func(c *Config) { c.Categories = nil },
		"zero top_n":     func(c *Config) { c.TopN = 0 },
		"negative top_n": func(c *Config) { c.TopN = -1 },
		"zero interval":  func(c *Config) { c.PollInterval = 0 },
	}
	for name, mutate := range cases {
		cfg := New()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := New().Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}
