package game

import (
	"sync"

	"crash_backend/internal/model"
	"crash_backend/internal/repository"
	"crash_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	gen       Generator
	userRepo  repository.UserRepository
	betRepo   repository.BetRepository
	txManager trm.Manager

	// mu защищает только сами карты. Переходы каждого пользователя
	// сериализует его персональный мьютекс: тики применяются в порядке
	// поступления, но медленное завершение одного раунда не держит
	// тики остальных. Блокировки не удаляются, их число ограничено
	// числом пользователей
	mu     sync.Mutex
	rounds map[int]*model.Round
	locks  map[int]*sync.Mutex
}

// NewGameService - движок раунда краш-игры
func NewGameService(
	gen Generator,
	userRepo repository.UserRepository,
	betRepo repository.BetRepository,
	txManager trm.Manager,
) service.GameService {
	return &serv{
		gen:       gen,
		userRepo:  userRepo,
		betRepo:   betRepo,
		txManager: txManager,
		rounds:    make(map[int]*model.Round),
		locks:     make(map[int]*sync.Mutex),
	}
}

// userLock - персональный мьютекс пользователя, создается при первом обращении
func (s *serv) userLock(userID int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

func (s *serv) getRound(userID int) (*model.Round, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	round, ok := s.rounds[userID]
	return round, ok
}

func (s *serv) putRound(round *model.Round) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rounds[round.UserID] = round
}

func (s *serv) dropRound(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rounds, userID)
}
