package model

// RoundState - состояние раунда
type RoundState int

const (
	// RoundArmed - ставка принята, раунд еще не запущен
	RoundArmed RoundState = iota
	// RoundRunning - раунд идет, множитель растет по тикам
	RoundRunning
	// RoundResolved - раунд завершен (выигрыш или краш)
	RoundResolved
)

func (s RoundState) String() string {
	switch s {
	case RoundArmed:
		return "armed"
	case RoundRunning:
		return "running"
	case RoundResolved:
		return "resolved"
	}
	return "unknown"
}

// Outcome - исход завершенного раунда
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	}
	return ""
}

// Round - один раунд от ставки до разрешения.
// CrashTarget скрыт от клиента до завершения раунда.
type Round struct {
	UserID      int
	Username    string
	State       RoundState
	Stake       float64
	CrashTarget float64
	Progress    float64
	AutoCashout *float64
	Speed       float64
	Outcome     Outcome
	Payout      float64
}

// PlaceBet - входные данные для создания раунда
type PlaceBet struct {
	Stake       float64
	AutoCashout *float64
}
