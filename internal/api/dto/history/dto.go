package history

type BetResponse struct {
	Username          string  `json:"username"`
	BetAmount         float64 `json:"bet_amount"`
	CashoutMultiplier float64 `json:"cashout_multiplier"`
	WinAmount         float64 `json:"win_amount"`
	CrashMultiplier   float64 `json:"crash_multiplier"`
	Time              string  `json:"time"`
}

type MyBetsResponse struct {
	Bets         []BetResponse `json:"bets"`
	TotalBets    int           `json:"total_bets"`
	TotalWagered float64       `json:"total_wagered"`
	TotalWon     float64       `json:"total_won"`
	NetProfit    float64       `json:"net_profit"`
}

type CrashHistoryResponse struct {
	Bets              []BetResponse `json:"bets"`
	AverageMultiplier float64       `json:"average_multiplier"`
	HighestMultiplier float64       `json:"highest_multiplier"`
	LowestMultiplier  float64       `json:"lowest_multiplier"`
}

type LeaderboardEntry struct {
	Rank     int     `json:"rank"`
	Username string  `json:"username"`
	Balance  float64 `json:"balance"`
}

type ProfileResponse struct {
	Username  string  `json:"username"`
	Balance   float64 `json:"balance"`
	IsAdmin   bool    `json:"is_admin"`
	Rank      int     `json:"rank,omitempty"`
	TotalBets int     `json:"total_bets"`
}
