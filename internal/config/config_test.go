package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/p-rivero/EDA-ThePurge2020/internal/domain/planner"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agent.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.Addr)
	}
	if cfg.Tuning != planner.DefaultTuning() {
		t.Fatalf("expected default tuning, got %+v", cfg.Tuning)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
addr: ":9000"
tuning:
  money_profit: 20
  barricade_threshold: 3
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9000" {
		t.Fatalf("unexpected addr %q", cfg.Addr)
	}
	if cfg.Tuning.MoneyProfit != 20 {
		t.Fatalf("expected money_profit override, got %d", cfg.Tuning.MoneyProfit)
	}
	if cfg.Tuning.BarricadeThreshold != 3 {
		t.Fatalf("expected barricade_threshold override, got %d", cfg.Tuning.BarricadeThreshold)
	}
	def := planner.DefaultTuning()
	if cfg.Tuning.AttackProfit != def.AttackProfit || cfg.Tuning.PercentBuild != def.PercentBuild {
		t.Fatalf("untouched fields lost defaults: %+v", cfg.Tuning)
	}
}

func TestLoad_RejectsOutOfRangePercentBuild(t *testing.T) {
	path := writeConfig(t, `
tuning:
  percent_build: 140
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
