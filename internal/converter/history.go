package converter

import (
	"time"

	"crash_backend/internal/api/dto/history"
	"crash_backend/internal/model"
)

const timeLayout = "2006-01-02 15:04"

func toBetResponses(bets []model.Bet) []history.BetResponse {
	result := make([]history.BetResponse, len(bets))
	for i, bet := range bets {
		result[i] = history.BetResponse{
			Username:          bet.Username,
			BetAmount:         bet.BetAmount,
			CashoutMultiplier: bet.CashoutMultiplier,
			WinAmount:         bet.WinAmount,
			CrashMultiplier:   bet.CrashMultiplier,
			Time:              bet.CreatedAt.Format(timeLayout),
		}
	}
	return result
}

func ToMyBetsResponse(bets []model.Bet, stats model.BetStats) history.MyBetsResponse {
	return history.MyBetsResponse{
		Bets:         toBetResponses(bets),
		TotalBets:    stats.TotalBets,
		TotalWagered: stats.TotalWagered,
		TotalWon:     stats.TotalWon,
		NetProfit:    stats.NetProfit,
	}
}

func ToCrashHistoryResponse(bets []model.Bet, stats model.CrashStats) history.CrashHistoryResponse {
	return history.CrashHistoryResponse{
		Bets:              toBetResponses(bets),
		AverageMultiplier: stats.Average,
		HighestMultiplier: stats.Highest,
		LowestMultiplier:  stats.Lowest,
	}
}

func ToLeaderboardResponse(entries []model.LeaderboardEntry) []history.LeaderboardEntry {
	result := make([]history.LeaderboardEntry, len(entries))
	for i, entry := range entries {
		result[i] = history.LeaderboardEntry{
			Rank:     entry.Rank,
			Username: entry.Username,
			Balance:  entry.Balance,
		}
	}
	return result
}

func ToProfileResponse(profile model.Profile) history.ProfileResponse {
	return history.ProfileResponse{
		Username:  profile.Username,
		Balance:   profile.Balance,
		IsAdmin:   profile.IsAdmin,
		Rank:      profile.Rank,
		TotalBets: profile.TotalBets,
	}
}

// FormatTime - форматирование опционального времени для ответов
func FormatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(timeLayout)
}
