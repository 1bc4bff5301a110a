package admin

import (
	"context"

	"crash_backend/internal/model"
	"crash_backend/internal/repository"
	"crash_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	userRepo  repository.UserRepository
	betRepo   repository.BetRepository
	txManager trm.Manager
}

// NewAdminService - управление пользователями и общая статистика
func NewAdminService(
	userRepo repository.UserRepository,
	betRepo repository.BetRepository,
	txManager trm.Manager,
) service.AdminService {
	return &serv{
		userRepo:  userRepo,
		betRepo:   betRepo,
		txManager: txManager,
	}
}

func (s *serv) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.ListUsers(ctx)
}

// SetBalance - выставляет баланс пользователя в абсолютное значение.
// Обычные списания и начисления идут дельтами, прямой set - только отсюда
func (s *serv) SetBalance(ctx context.Context, userID int, amount float64) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Чтение баланса заодно проверяет, что пользователь существует
		if _, err := s.userRepo.GetBalance(txCtx, userID); err != nil {
			return err
		}
		return s.userRepo.SetBalance(txCtx, userID, amount)
	})
}

func (s *serv) SetAdmin(ctx context.Context, userID int, isAdmin bool) error {
	return s.userRepo.SetAdmin(ctx, userID, isAdmin)
}

func (s *serv) DeleteUser(ctx context.Context, userID int) error {
	return s.userRepo.DeleteUser(ctx, userID)
}

// Stats - сводка для админки: пользователи, суммарный баланс, всего ставок
func (s *serv) Stats(ctx context.Context) (*model.CasinoStats, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	stats := &model.CasinoStats{
		TotalUsers: len(users),
	}
	for _, user := range users {
		stats.TotalBalance += user.Balance
	}

	stats.TotalBets, err = s.betRepo.CountBets(ctx, "")
	if err != nil {
		return nil, err
	}

	return stats, nil
}
