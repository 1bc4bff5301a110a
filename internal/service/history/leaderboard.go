package history

import (
	"context"

	"crash_backend/internal/model"
)

// Leaderboard - игроки по убыванию баланса. Админы в таблицу не попадают
func (s *serv) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	var entries []model.LeaderboardEntry
	for _, user := range users {
		if user.IsAdmin {
			continue
		}
		entries = append(entries, model.LeaderboardEntry{
			Rank:     len(entries) + 1,
			Username: user.Username,
			Balance:  user.Balance,
		})
	}

	return entries, nil
}

// Profile - данные для панели игрока: баланс, место в таблице лидеров
// и количество сделанных ставок. У админа ранг нулевой
func (s *serv) Profile(ctx context.Context, userID int) (*model.Profile, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &model.Profile{
		Username: user.Username,
		Balance:  user.Balance,
		IsAdmin:  user.IsAdmin,
	}

	profile.TotalBets, err = s.betRepo.CountBets(ctx, user.Username)
	if err != nil {
		return nil, err
	}

	if !user.IsAdmin {
		entries, err := s.Leaderboard(ctx)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.Username == user.Username {
				profile.Rank = entry.Rank
				break
			}
		}
	}

	return profile, nil
}
