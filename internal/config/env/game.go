package env

import (
	"crash_backend/internal/config"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// yaml-структура секции game в config.yaml
type gameYAML struct {
	Game struct {
		StartingBalance   float64 `yaml:"starting_balance"`
		CrashHistoryLimit int     `yaml:"crash_history_limit"`
		Tiers             []struct {
			MinBalance float64 `yaml:"min_balance"`
			TargetMin  float64 `yaml:"target_min"`
			TargetMax  float64 `yaml:"target_max"`
			Speed      float64 `yaml:"speed"`
		} `yaml:"tiers"`
	} `yaml:"game"`
}

type gameConfig struct {
	tiers             []config.GameTier
	startingBalance   float64
	crashHistoryLimit int
}

// NewGameConfigFromYAML - читает уровни генератора краш-множителя из yaml файла.
// Уровни сортируются по убыванию min_balance, чтобы подбор шел от самого богатого
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	var parsed gameYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if len(parsed.Game.Tiers) == 0 {
		return nil, errors.New("game config has no tiers")
	}

	cfg := &gameConfig{
		startingBalance:   parsed.Game.StartingBalance,
		crashHistoryLimit: parsed.Game.CrashHistoryLimit,
	}

	for _, t := range parsed.Game.Tiers {
		if t.TargetMin < 1.0 || t.TargetMax < t.TargetMin {
			return nil, fmt.Errorf("invalid tier range [%v, %v]", t.TargetMin, t.TargetMax)
		}
		if t.Speed <= 0 {
			return nil, fmt.Errorf("invalid tier speed %v", t.Speed)
		}
		cfg.tiers = append(cfg.tiers, config.GameTier{
			MinBalance: t.MinBalance,
			TargetMin:  t.TargetMin,
			TargetMax:  t.TargetMax,
			Speed:      t.Speed,
		})
	}

	sort.Slice(cfg.tiers, func(i, j int) bool {
		return cfg.tiers[i].MinBalance > cfg.tiers[j].MinBalance
	})

	if cfg.startingBalance <= 0 {
		cfg.startingBalance = 10000.0
	}
	if cfg.crashHistoryLimit <= 0 {
		cfg.crashHistoryLimit = 50
	}

	return cfg, nil
}

func (cfg *gameConfig) Tiers() []config.GameTier {
	return cfg.tiers
}

func (cfg *gameConfig) StartingBalance() float64 {
	return cfg.startingBalance
}

func (cfg *gameConfig) CrashHistoryLimit() int {
	return cfg.crashHistoryLimit
}
