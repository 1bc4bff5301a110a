package repository

import (
	"crash_backend/internal/model"
	"context"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, username string) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)
	DeleteUser(ctx context.Context, id int) error
	ListUsers(ctx context.Context) ([]model.User, error)

	GetBalance(ctx context.Context, id int) (float64, error)
	// AddBalance - применяет дельту к балансу одним атомарным UPDATE.
	// Дебет - отрицательная дельта, кредит - положительная
	AddBalance(ctx context.Context, id int, delta float64) error
	SetBalance(ctx context.Context, id int, amount float64) error

	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id int) error
	SetAdmin(ctx context.Context, id int, isAdmin bool) error
}

type BetRepository interface {
	// AddBet - добавляет запись о завершенном раунде (append-only)
	AddBet(ctx context.Context, bet *model.Bet) error
	// GetBets - последние ставки, новые первыми. Пустой username - по всем пользователям
	GetBets(ctx context.Context, username string, limit int) ([]model.Bet, error)
	CountBets(ctx context.Context, username string) (int, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}
