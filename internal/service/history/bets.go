package history

import (
	"context"

	"crash_backend/internal/model"
)

// MyBets - последние ставки пользователя со сводкой:
// сколько поставлено, сколько выиграно и чистая прибыль
func (s *serv) MyBets(ctx context.Context, userID int, limit int) ([]model.Bet, *model.BetStats, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	bets, err := s.betRepo.GetBets(ctx, user.Username, limit)
	if err != nil {
		return nil, nil, err
	}

	stats := &model.BetStats{
		TotalBets: len(bets),
	}
	for _, bet := range bets {
		stats.TotalWagered += bet.BetAmount
		stats.TotalWon += bet.WinAmount
	}
	stats.NetProfit = stats.TotalWon - stats.TotalWagered

	return bets, stats, nil
}

// CrashHistory - последние завершенные раунды по всем пользователям
// и сводка по краш-множителям: средний, максимальный, минимальный
func (s *serv) CrashHistory(ctx context.Context) ([]model.Bet, *model.CrashStats, error) {
	bets, err := s.betRepo.GetBets(ctx, "", s.gameCfg.CrashHistoryLimit())
	if err != nil {
		return nil, nil, err
	}

	if len(bets) == 0 {
		return bets, &model.CrashStats{}, nil
	}

	stats := &model.CrashStats{
		Highest: bets[0].CrashMultiplier,
		Lowest:  bets[0].CrashMultiplier,
	}

	var sum float64
	for _, bet := range bets {
		sum += bet.CrashMultiplier
		if bet.CrashMultiplier > stats.Highest {
			stats.Highest = bet.CrashMultiplier
		}
		if bet.CrashMultiplier < stats.Lowest {
			stats.Lowest = bet.CrashMultiplier
		}
	}
	stats.Average = sum / float64(len(bets))

	return bets, stats, nil
}
