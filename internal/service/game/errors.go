package game

import "errors"

var (
	// ErrInvalidStake - ставка нулевая или отрицательная
	ErrInvalidStake = errors.New("stake must be positive")
	// ErrInvalidAutoCashout - авто-вывод задан меньше 1.0x
	ErrInvalidAutoCashout = errors.New("auto cashout must be at least 1.0x")
	// ErrInsufficientBalance - ставка больше текущего баланса
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrRoundActive - у пользователя уже идет раунд
	ErrRoundActive = errors.New("round already in progress")
	// ErrNoActiveRound - запрошено состояние, а активного раунда нет
	ErrNoActiveRound = errors.New("no active round")
	// ErrIllegalTransition - tick или cash-out вне состояния Running
	ErrIllegalTransition = errors.New("no running round")
	// ErrRecordingFailed - запись в историю не удалась после изменения баланса.
	// Баланс при этом не откатывается, расхождение должно быть видно
	ErrRecordingFailed = errors.New("failed to record resolved round")
)
