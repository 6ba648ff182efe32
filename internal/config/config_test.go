package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_ENV", "nonexistent")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Mode != "release" {
		t.Errorf("Mode = %q, want release", cfg.Mode)
	}
	if cfg.ReadLimit != 65536 {
		t.Errorf("ReadLimit = %d, want 65536", cfg.ReadLimit)
	}
	if cfg.PingPeriod != 54*time.Second {
		t.Errorf("PingPeriod = %v, want 54s", cfg.PingPeriod)
	}
	if cfg.TURN.TTL != 24*time.Hour {
		t.Errorf("TURN.TTL = %v, want 24h", cfg.TURN.TTL)
	}
	if len(cfg.TURN.STUNURLs) == 0 {
		t.Error("TURN.STUNURLs empty, want a default STUN url")
	}
}
