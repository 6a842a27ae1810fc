// Package config loads the agent's runtime settings from a YAML file.
// Fields absent from the file keep their defaults, so a tuning experiment
// only needs to list the weights it changes.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/p-rivero/EDA-ThePurge2020/internal/domain/planner"
)

type Config struct {
	Addr   string         `yaml:"addr"`
	Tuning planner.Tuning `yaml:"tuning"`
}

func Default() Config {
	return Config{
		Addr:   ":8080",
		Tuning: planner.DefaultTuning(),
	}
}

// Load reads the file at path over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Tuning.PercentBuild < 0 || c.Tuning.PercentBuild > 100 {
		return fmt.Errorf("percent_build must be in [0,100], got %d", c.Tuning.PercentBuild)
	}
	if c.Tuning.TeammateClaimPenalty < 0 {
		return fmt.Errorf("teammate_claim_penalty must not be negative, got %d", c.Tuning.TeammateClaimPenalty)
	}
	if c.Tuning.CostWalkIntoFriendly < 0 {
		return fmt.Errorf("cost_walk_into_friendly must not be negative, got %d", c.Tuning.CostWalkIntoFriendly)
	}
	return nil
}
