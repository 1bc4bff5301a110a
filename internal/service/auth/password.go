package auth

import (
	"crash_backend/pkg/pass"
	"context"
	"errors"
)

// ChangePassword - смена пароля после проверки текущего
func (s *serv) ChangePassword(ctx context.Context, userID int, currentPassword, newPassword string) error {
	if len(newPassword) < minPasswordLen {
		return errors.New("password must be at least 6 characters")
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	// Сначала проверяем текущий пароль
	if !pass.VerifyPassword(user.Password, currentPassword) {
		return errors.New("current password is incorrect")
	}

	passwordHash, err := pass.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, userID, passwordHash)
}
