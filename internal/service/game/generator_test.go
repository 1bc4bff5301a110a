package game

import (
	"math"
	"testing"

	"crash_backend/internal/config"
)

// stubGameConfig - уровни из config.yaml, захардкоженные для тестов
type stubGameConfig struct{}

func (stubGameConfig) Tiers() []config.GameTier {
	return []config.GameTier{
		{MinBalance: 30000, TargetMin: 1.0, TargetMax: 2.0, Speed: 0.2},
		{MinBalance: 15000, TargetMin: 2.0, TargetMax: 4.0, Speed: 0.1},
		{MinBalance: 0, TargetMin: 4.0, TargetMax: 7.0, Speed: 0.05},
	}
}

func (stubGameConfig) StartingBalance() float64 { return 10000.0 }
func (stubGameConfig) CrashHistoryLimit() int   { return 50 }

func TestGenerator_TierRanges(t *testing.T) {
	gen := NewGenerator(stubGameConfig{})

	cases := []struct {
		name      string
		balance   float64
		wantMin   float64
		wantMax   float64
		wantSpeed float64
	}{
		{"высокий баланс", 50000, 1.0, 2.0, 0.2},
		{"граница верхнего уровня", 30000.01, 1.0, 2.0, 0.2},
		{"средний баланс", 20000, 2.0, 4.0, 0.1},
		{"ровно 30000 - еще средний уровень", 30000, 2.0, 4.0, 0.1},
		{"низкий баланс", 10000, 4.0, 7.0, 0.05},
		{"ровно 15000 - еще нижний уровень", 15000, 4.0, 7.0, 0.05},
		{"нулевой баланс", 0, 4.0, 7.0, 0.05},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Генератор случайный, поэтому проверяем диапазон на выборке
			for i := 0; i < 1000; i++ {
				target, speed := gen.Generate(tc.balance)
				if target < tc.wantMin || target > tc.wantMax {
					t.Fatalf("target %v вне диапазона [%v, %v]", target, tc.wantMin, tc.wantMax)
				}
				if speed != tc.wantSpeed {
					t.Fatalf("speed = %v, ожидалось %v", speed, tc.wantSpeed)
				}
			}
		})
	}
}

func TestGenerator_TargetRoundedToTwoDecimals(t *testing.T) {
	gen := NewGenerator(stubGameConfig{})

	for i := 0; i < 1000; i++ {
		target, _ := gen.Generate(10000)
		scaled := target * 100
		if math.Abs(scaled-math.Round(scaled)) > 1e-9 {
			t.Fatalf("target %v не округлен до 2 знаков", target)
		}
	}
}

func TestRound2(t *testing.T) {
	// Накопление 0.05 по float64 должно давать ровно 2.00 после округления
	progress := 1.0
	for i := 0; i < 20; i++ {
		progress = round2(progress + 0.05)
	}
	if progress != 2.0 {
		t.Errorf("progress = %v, ожидалось ровно 2.0", progress)
	}
}
