package history

import (
	"net/http"
	"strconv"

	"crash_backend/internal/converter"
	"crash_backend/internal/middleware"
	"crash_backend/internal/service"
	"crash_backend/pkg/resp"
)

const defaultBetsLimit = 100

type HandlerDeps struct {
	Serv service.HistoryService
}

type Handler struct {
	serv service.HistoryService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// MyBets - ставки текущего пользователя со сводкой.
// Лимит берется из query параметра limit
func (h *Handler) MyBets(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	limit := defaultBetsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	bets, stats, err := h.serv.MyBets(r.Context(), userID, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToMyBetsResponse(bets, *stats))
}

// CrashHistory - последние краши по всем пользователям со сводкой
func (h *Handler) CrashHistory(w http.ResponseWriter, r *http.Request) {
	bets, stats, err := h.serv.CrashHistory(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCrashHistoryResponse(bets, *stats))
}

// Leaderboard - таблица лидеров по балансу
func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.serv.Leaderboard(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLeaderboardResponse(entries))
}

// Profile - баланс, ранг и количество ставок текущего пользователя
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := h.serv.Profile(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToProfileResponse(*profile))
}
