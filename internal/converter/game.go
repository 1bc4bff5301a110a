package converter

import (
	"crash_backend/internal/api/dto/game"
	"crash_backend/internal/model"
)

func ToPlaceBet(req game.PlaceBetRequest) model.PlaceBet {
	return model.PlaceBet{
		Stake:       req.Stake,
		AutoCashout: req.AutoCashout,
	}
}

// ToRoundResponse - отдает раунд клиенту. Целевой краш-множитель
// скрыт, пока раунд не завершен
func ToRoundResponse(round model.Round) game.RoundResponse {
	resp := game.RoundResponse{
		State:       round.State.String(),
		Stake:       round.Stake,
		Progress:    round.Progress,
		AutoCashout: round.AutoCashout,
		Speed:       round.Speed,
		Payout:      round.Payout,
	}

	if round.State == model.RoundResolved {
		resp.Outcome = round.Outcome.String()
		resp.CrashTarget = round.CrashTarget
	}

	return resp
}
