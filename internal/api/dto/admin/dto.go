package admin

type UserResponse struct {
	ID        int     `json:"id"`
	Username  string  `json:"username"`
	Balance   float64 `json:"balance"`
	IsAdmin   bool    `json:"is_admin"`
	CreatedAt string  `json:"created_at"`
	LastLogin string  `json:"last_login,omitempty"`
}

type SetBalanceRequest struct {
	Balance float64 `json:"balance"`
}

type SetAdminRequest struct {
	IsAdmin bool `json:"is_admin"`
}

type StatsResponse struct {
	TotalUsers   int     `json:"total_users"`
	TotalBalance float64 `json:"total_balance"`
	TotalBets    int     `json:"total_bets"`
}
