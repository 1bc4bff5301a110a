package game

import (
	"math"
	"math/rand"

	"crash_backend/internal/config"
)

// Generator выдает целевой краш-множитель и скорость роста для раунда.
// Вынесен в интерфейс, чтобы в тестах подставлять фиксированный таргет
type Generator interface {
	Generate(balance float64) (target, speed float64)
}

type tierGenerator struct {
	tiers []config.GameTier
}

// NewGenerator - генератор по уровням баланса: чем выше баланс,
// тем ниже целевой множитель. Уровни должны быть отсортированы
// по убыванию MinBalance (env.NewGameConfigFromYAML это гарантирует)
func NewGenerator(cfg config.GameConfig) Generator {
	return &tierGenerator{
		tiers: cfg.Tiers(),
	}
}

// Generate - выбирает уровень по балансу и тянет таргет равномерно
// из диапазона уровня. Таргет округляется до 2 знаков
func (g *tierGenerator) Generate(balance float64) (float64, float64) {
	tier := g.tiers[len(g.tiers)-1]
	for _, t := range g.tiers {
		if balance > t.MinBalance {
			tier = t
			break
		}
	}

	target := round2(tier.TargetMin + rand.Float64()*(tier.TargetMax-tier.TargetMin))
	return target, tier.Speed
}

// round2 - округление до 2 знаков. Прогресс тоже идет через него,
// иначе накопление 0.05 по float64 не дает ровно 2.00
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
