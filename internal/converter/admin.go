package converter

import (
	"crash_backend/internal/api/dto/admin"
	"crash_backend/internal/model"
)

func ToUserResponses(users []model.User) []admin.UserResponse {
	result := make([]admin.UserResponse, len(users))
	for i, user := range users {
		result[i] = admin.UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			Balance:   user.Balance,
			IsAdmin:   user.IsAdmin,
			CreatedAt: user.CreatedAt.Format(timeLayout),
			LastLogin: FormatTime(user.LastLogin),
		}
	}
	return result
}

func ToStatsResponse(stats model.CasinoStats) admin.StatsResponse {
	return admin.StatsResponse{
		TotalUsers:   stats.TotalUsers,
		TotalBalance: stats.TotalBalance,
		TotalBets:    stats.TotalBets,
	}
}
