package auth

import (
	"crash_backend/internal/model"
	"crash_backend/pkg/pass"
	"crash_backend/pkg/token"
	"context"
	"errors"
	"log"
	"time"
)

func (s *serv) Login(ctx context.Context, username, password string) (*model.AuthData, error) {
	// Получение пользователя из бд по имени
	user, err := s.userRepo.GetUserByLogin(ctx, username)
	if err != nil {
		return nil, err
	}

	// Верификация пароля
	if !pass.VerifyPassword(user.Password, password) {
		return nil, errors.New("invalid password")
	}

	// Генерация sessionID
	sessionID := generateSessionID()

	// Генерация refresh токена
	refreshToken, err := token.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	// Создать сессию
	err = s.authRepo.CreateSession(ctx,
		&model.Session{
			ID:           sessionID,
			UserID:       user.ID,
			RefreshToken: token.HashRefreshToken(refreshToken),
			ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenDuration()),
		})
	if err != nil {
		return nil, err
	}

	// Отметка времени входа, ошибка не фатальна
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		log.Printf("failed to update last login: %v", err)
	}

	// Создать access токен
	accessToken, err := token.GenerateAccessToken(
		user,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
