package auth

import (
	"crash_backend/internal/model"
	"crash_backend/pkg/pass"
	"crash_backend/pkg/token"
	"context"
	"errors"
	"time"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

func (s *serv) Register(ctx context.Context, username, password string) (*model.AuthData, error) {
	if len(username) < minUsernameLen {
		return nil, errors.New("username must be at least 3 characters")
	}
	if len(password) < minPasswordLen {
		return nil, errors.New("password must be at least 6 characters")
	}

	// Хэширование пароля пользователя
	passwordHash, err := pass.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Password: passwordHash,
		// Новый игрок стартует с балансом из конфига
		Balance: s.gameCfg.StartingBalance(),
	}

	// Переменные для хранения результатов
	var (
		sessionID    string
		refreshToken string
		accessToken  string
	)

	// Начало транзакциии
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Создать пользователя в бд
		user.ID, err = s.userRepo.CreateUser(ctx, user)
		if err != nil {
			return err
		}
		// 2. Генерация sessionID
		sessionID = generateSessionID()
		// 3. Генерация refresh токена
		refreshToken, err = token.GenerateRefreshToken()
		if err != nil {
			return err
		}

		// 4. Создать сессию
		err = s.authRepo.CreateSession(ctx,
			&model.Session{
				ID:           sessionID,
				UserID:       user.ID,
				RefreshToken: token.HashRefreshToken(refreshToken),
				ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenDuration()), // Время жизни refresh токена из конфигурации
			})
		if err != nil {
			return err
		}

		// 5. Создать access токен
		accessToken, err = token.GenerateAccessToken(
			user,
			s.jwtConfig.AccessTokenSecretKey(),
			s.jwtConfig.AccessTokenDuration())
		if err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
