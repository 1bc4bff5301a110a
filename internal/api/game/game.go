package game

import (
	"errors"
	"net/http"

	dto "crash_backend/internal/api/dto/game"
	"crash_backend/internal/converter"
	"crash_backend/internal/middleware"
	"crash_backend/internal/service"
	gamesrv "crash_backend/internal/service/game"
	"crash_backend/pkg/req"
	"crash_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.GameService
}

type Handler struct {
	serv service.GameService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// PlaceBet - принимает ставку и запускает раунд
func (h *Handler) PlaceBet(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PlaceBetRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	round, err := h.serv.PlaceBet(r.Context(), userID, converter.ToPlaceBet(payload))
	if err != nil {
		writeGameError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundResponse(*round))
}

// Tick - один шаг раунда. Клиент сам держит темп опроса
func (h *Handler) Tick(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	round, err := h.serv.Tick(r.Context(), userID)
	if err != nil {
		writeGameError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundResponse(*round))
}

// CashOut - ручной вывод на текущем множителе
func (h *Handler) CashOut(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	round, err := h.serv.CashOut(r.Context(), userID)
	if err != nil {
		writeGameError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundResponse(*round))
}

// State - текущий раунд пользователя
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	round, err := h.serv.CurrentRound(userID)
	if err != nil {
		writeGameError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundResponse(*round))
}

// writeGameError - маппинг ошибок движка на HTTP статусы
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gamesrv.ErrInvalidStake),
		errors.Is(err, gamesrv.ErrInvalidAutoCashout),
		errors.Is(err, gamesrv.ErrInsufficientBalance):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, gamesrv.ErrRoundActive),
		errors.Is(err, gamesrv.ErrIllegalTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, gamesrv.ErrNoActiveRound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
