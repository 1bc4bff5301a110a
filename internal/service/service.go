package service

import (
	"crash_backend/internal/model"
	"context"
)

type GameService interface {
	// PlaceBet - валидирует ставку, списывает ее с баланса и запускает раунд
	PlaceBet(ctx context.Context, userID int, req model.PlaceBet) (*model.Round, error)
	// Tick - один дискретный шаг раунда. Пейсинг тиков - забота клиента
	Tick(ctx context.Context, userID int) (*model.Round, error)
	// CashOut - ручной вывод на текущем множителе, допустим только пока раунд идет
	CashOut(ctx context.Context, userID int) (*model.Round, error)
	// CurrentRound - активный раунд пользователя, если есть
	CurrentRound(userID int) (*model.Round, error)
}

type AuthService interface {
	Register(ctx context.Context, username, password string) (*model.AuthData, error)
	Login(ctx context.Context, username, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
	ChangePassword(ctx context.Context, userID int, currentPassword, newPassword string) error
}

type HistoryService interface {
	MyBets(ctx context.Context, userID int, limit int) ([]model.Bet, *model.BetStats, error)
	CrashHistory(ctx context.Context) ([]model.Bet, *model.CrashStats, error)
	Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error)
	Profile(ctx context.Context, userID int) (*model.Profile, error)
}

type AdminService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	SetBalance(ctx context.Context, userID int, amount float64) error
	SetAdmin(ctx context.Context, userID int, isAdmin bool) error
	DeleteUser(ctx context.Context, userID int) error
	Stats(ctx context.Context) (*model.CasinoStats, error)
}
