package model

import "time"

// Bet - запись о завершенном раунде в истории ставок.
// CashoutMultiplier - множитель на момент выхода (или прогресс на момент краша при проигрыше)
type Bet struct {
	ID                int
	Username          string
	BetAmount         float64
	CashoutMultiplier float64
	WinAmount         float64
	CrashMultiplier   float64
	CreatedAt         time.Time
}

// BetStats - сводка по ставкам пользователя
type BetStats struct {
	TotalBets    int
	TotalWagered float64
	TotalWon     float64
	NetProfit    float64
}

// CrashStats - сводка по последним крашам (глобально)
type CrashStats struct {
	Average float64
	Highest float64
	Lowest  float64
}

// LeaderboardEntry - строка таблицы лидеров
type LeaderboardEntry struct {
	Rank     int
	Username string
	Balance  float64
}

// Profile - данные для панели игрока: баланс, место в таблице лидеров,
// сколько всего ставок сделано
type Profile struct {
	Username  string
	Balance   float64
	IsAdmin   bool
	Rank      int
	TotalBets int
}

// CasinoStats - общая статистика для админки
type CasinoStats struct {
	TotalUsers   int
	TotalBalance float64
	TotalBets    int
}
