package config

import (
	"slices"
	"testing"
)

func TestDefaultSimMatchesConstants(t *testing.T) {
	cfg := DefaultSim()
	if cfg.StartingMoney != 200 || cfg.StartingLives != 50 {
		t.Errorf("Expected 200 money / 50 lives, got %d / %d", cfg.StartingMoney, cfg.StartingLives)
	}
	if cfg.PlayerName != DefaultPlayerName {
		t.Errorf("Expected default player name, got %q", cfg.PlayerName)
	}
}

func TestSimFromEnv(t *testing.T) {
	t.Setenv("TD_STARTING_MONEY", "500")
	t.Setenv("TD_STARTING_LIVES", "3")
	t.Setenv("TD_SEED", "42")
	t.Setenv("TD_PLAYER_NAME", "  ada ")
	t.Setenv("TD_SPAWN_DELAY_TICKS", "not-a-number")

	cfg := SimFromEnv()
	if cfg.StartingMoney != 500 || cfg.StartingLives != 3 || cfg.Seed != 42 {
		t.Errorf("Overrides not applied: %+v", cfg)
	}
	if cfg.PlayerName != "ada" {
		t.Errorf("Expected trimmed name, got %q", cfg.PlayerName)
	}
	if cfg.SpawnDelayTicks != EnemySpawnDelayTicks {
		t.Errorf("Invalid value must fall back to default, got %d", cfg.SpawnDelayTicks)
	}
}

func TestServerFromEnv(t *testing.T) {
	t.Setenv("TD_CORS_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("TD_RATE_LIMIT_RPS", "2.5")

	cfg := ServerFromEnv()
	if !slices.Equal(cfg.CORSOrigins, []string{"http://a.test", "http://b.test"}) {
		t.Errorf("Unexpected origins %v", cfg.CORSOrigins)
	}
	if cfg.RequestsPerSecond != 2.5 || cfg.Burst != 20 {
		t.Errorf("Unexpected rate limit %v/%d", cfg.RequestsPerSecond, cfg.Burst)
	}
}
