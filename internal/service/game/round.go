package game

import (
	"context"
	"fmt"

	"crash_backend/internal/model"
)

// PlaceBet - валидирует ставку, атомарно списывает ее с баланса
// и запускает новый раунд. Ошибки валидации возвращаются до любых
// изменений состояния
func (s *serv) PlaceBet(ctx context.Context, userID int, req model.PlaceBet) (*model.Round, error) {
	if req.Stake <= 0 {
		return nil, ErrInvalidStake
	}
	// Авто-вывод ниже 1.0x - ошибка, а не молчаливое приведение к 1.0
	if req.AutoCashout != nil && *req.AutoCashout < 1.0 {
		return nil, ErrInvalidAutoCashout
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if _, ok := s.getRound(userID); ok {
		return nil, ErrRoundActive
	}

	round := &model.Round{
		UserID:      userID,
		State:       model.RoundArmed,
		Stake:       req.Stake,
		Progress:    1.0,
		AutoCashout: req.AutoCashout,
	}

	// Проверка баланса и списание ставки идут в одной транзакции,
	// чтобы конкурентные операции над балансом не разошлись
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.GetUserByID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}

		if req.Stake > user.Balance {
			return ErrInsufficientBalance
		}

		round.Username = user.Username
		// Таргет и скорость зависят от баланса на момент ставки (до списания)
		round.CrashTarget, round.Speed = s.gen.Generate(user.Balance)

		return s.userRepo.AddBalance(txCtx, userID, -req.Stake)
	})
	if err != nil {
		return nil, err
	}

	round.State = model.RoundRunning
	s.putRound(round)

	return copyRound(round), nil
}

// Tick - один дискретный шаг раунда. Сначала проверяются терминальные
// условия на текущем прогрессе, и только потом применяется инкремент:
//  1. progress >= таргета - краш, проигрыш
//  2. задан авто-вывод и progress >= его - выигрыш ровно на заданном множителе
//  3. иначе progress += speed, раунд продолжается
//
// Порядок 1-2 намеренный: если за один тик пересечены и таргет, и
// авто-вывод, раунд проигран - при ничьей выигрывает казино
func (s *serv) Tick(ctx context.Context, userID int) (*model.Round, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	round, ok := s.getRound(userID)
	if !ok || round.State != model.RoundRunning {
		return nil, ErrIllegalTransition
	}

	switch {
	case round.Progress >= round.CrashTarget:
		return s.resolveLost(ctx, round)
	case round.AutoCashout != nil && round.Progress >= *round.AutoCashout:
		// Выигрыш фиксируется на заданном множителе, даже если прогресс его перескочил
		return s.resolveWon(ctx, round, *round.AutoCashout)
	default:
		round.Progress = round2(round.Progress + round.Speed)
		return copyRound(round), nil
	}
}

// CashOut - ручной вывод на текущем множителе. Ручной запрос
// проверяется раньше краша: если клиент успел нажать до тика,
// раскрывшего краш, раунд выигран
func (s *serv) CashOut(ctx context.Context, userID int) (*model.Round, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	round, ok := s.getRound(userID)
	if !ok || round.State != model.RoundRunning {
		return nil, ErrIllegalTransition
	}

	return s.resolveWon(ctx, round, round.Progress)
}

// CurrentRound - активный раунд пользователя
func (s *serv) CurrentRound(userID int) (*model.Round, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	round, ok := s.getRound(userID)
	if !ok {
		return nil, ErrNoActiveRound
	}

	return copyRound(round), nil
}

// resolveWon - завершает раунд выигрышем: начисляет выплату и пишет историю
func (s *serv) resolveWon(ctx context.Context, round *model.Round, exitMultiplier float64) (*model.Round, error) {
	round.State = model.RoundResolved
	round.Outcome = model.OutcomeWon
	round.Payout = round2(round.Stake * exitMultiplier)
	s.dropRound(round.UserID)

	if err := s.userRepo.AddBalance(ctx, round.UserID, round.Payout); err != nil {
		return copyRound(round), fmt.Errorf("failed to credit payout: %w", err)
	}

	return s.record(ctx, round, exitMultiplier)
}

// resolveLost - завершает раунд крашем: выплаты нет, в историю идет
// прогресс на момент краша (первое значение >= таргета, может быть выше него)
func (s *serv) resolveLost(ctx context.Context, round *model.Round) (*model.Round, error) {
	round.State = model.RoundResolved
	round.Outcome = model.OutcomeLost
	round.Payout = 0
	s.dropRound(round.UserID)

	return s.record(ctx, round, round.Progress)
}

// record - пишет запись о завершенном раунде в историю ставок.
// Запись идет после изменения баланса; если она не удалась, баланс
// не откатывается - ошибка всплывает наружу вместе с раундом,
// чтобы расхождение было видно
func (s *serv) record(ctx context.Context, round *model.Round, cashoutMultiplier float64) (*model.Round, error) {
	bet := &model.Bet{
		Username:          round.Username,
		BetAmount:         round.Stake,
		CashoutMultiplier: cashoutMultiplier,
		WinAmount:         round.Payout,
		CrashMultiplier:   round.CrashTarget,
	}

	if err := s.betRepo.AddBet(ctx, bet); err != nil {
		return copyRound(round), fmt.Errorf("%w: %v", ErrRecordingFailed, err)
	}

	return copyRound(round), nil
}

// copyRound - наружу отдается копия, чтобы вызывающий не менял
// состояние раунда в обход движка
func copyRound(round *model.Round) *model.Round {
	cp := *round
	if round.AutoCashout != nil {
		auto := *round.AutoCashout
		cp.AutoCashout = &auto
	}
	return &cp
}
