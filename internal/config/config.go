package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// GameTier - диапазон краш-множителя и скорость роста для уровня баланса.
// Уровень выбирается по первому MinBalance, который меньше баланса игрока
type GameTier struct {
	MinBalance float64
	TargetMin  float64
	TargetMax  float64
	Speed      float64
}

type GameConfig interface {
	Tiers() []GameTier
	StartingBalance() float64
	CrashHistoryLimit() int
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
