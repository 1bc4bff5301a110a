package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID        int
	Username  string
	Password  string
	Balance   float64
	IsAdmin   bool
	CreatedAt time.Time
	LastLogin *time.Time
}

type UserClaims struct {
	jwt.RegisteredClaims
	IsAdmin bool `json:"is_admin"`
}

type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
