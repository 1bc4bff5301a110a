package history

import (
	"crash_backend/internal/config"
	"crash_backend/internal/repository"
	"crash_backend/internal/service"
)

type serv struct {
	betRepo  repository.BetRepository
	userRepo repository.UserRepository
	gameCfg  config.GameConfig
}

// NewHistoryService - история ставок, статистика крашей и таблица лидеров
func NewHistoryService(
	betRepo repository.BetRepository,
	userRepo repository.UserRepository,
	gameCfg config.GameConfig,
) service.HistoryService {
	return &serv{
		betRepo:  betRepo,
		userRepo: userRepo,
		gameCfg:  gameCfg,
	}
}
