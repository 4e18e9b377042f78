package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	matchservice "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/application"
	matchplay "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/domain"
	matchdb "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/infrastructure/repositories"
	recapservice "github.com/Harbor-Links-Club/matchplay-bot/app/modules/recap/application"
	recapdb "github.com/Harbor-Links-Club/matchplay-bot/app/modules/recap/infrastructure/repositories"
	statsservice "github.com/Harbor-Links-Club/matchplay-bot/app/modules/stats/application"
	statsdb "github.com/Harbor-Links-Club/matchplay-bot/app/modules/stats/infrastructure/repositories"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
)

type handlers struct {
	matchService matchservice.Service
	statsService statsservice.Service
	recapService recapservice.Service
	logger       *slog.Logger
}

// matchStatusResponse is the match read DTO. The full hole inputs stay
// internal; the derived status and result are the public surface.
type matchStatusResponse struct {
	MatchID uuid.UUID              `json:"match_id"`
	RoundID uuid.UUID              `json:"round_id"`
	Format  matchplay.Format       `json:"format"`
	Status  *matchplay.MatchStatus `json:"status,omitempty"`
	Result  *matchplay.MatchResult `json:"result,omitempty"`
}

func (h *handlers) matchStatus(w http.ResponseWriter, r *http.Request) {
	matchID, ok := pathUUID(w, r, "matchID")
	if !ok {
		return
	}

	match, err := h.matchService.GetMatch(r.Context(), matchID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, matchStatusResponse{
		MatchID: match.ID,
		RoundID: match.RoundID,
		Format:  match.Format,
		Status:  match.Status,
		Result:  match.Result,
	})
}

func (h *handlers) momentumChart(w http.ResponseWriter, r *http.Request) {
	matchID, ok := pathUUID(w, r, "matchID")
	if !ok {
		return
	}

	png, err := h.matchService.RenderMomentumChart(r.Context(), matchID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func (h *handlers) roundRecap(w http.ResponseWriter, r *http.Request) {
	roundID, ok := pathUUID(w, r, "roundID")
	if !ok {
		return
	}

	recap, err := h.recapService.GetRoundRecap(r.Context(), roundID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, recap)
}

func (h *handlers) recapWorkbook(w http.ResponseWriter, r *http.Request) {
	roundID, ok := pathUUID(w, r, "roundID")
	if !ok {
		return
	}

	workbook, err := h.recapService.ExportRecapWorkbook(r.Context(), roundID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"recap.xlsx\"")
	_, _ = w.Write(workbook)
}

func (h *handlers) playerStats(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")
	if playerID == "" {
		http.Error(w, "missing player id", http.StatusBadRequest)
		return
	}
	series := r.URL.Query().Get("series")

	stats, err := h.statsService.GetPlayerStats(r.Context(), playerID, series)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, stats)
}

func (h *handlers) writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("Failed to encode response", attr.Error(err))
	}
}

func (h *handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, matchdb.ErrMatchNotFound),
		errors.Is(err, matchdb.ErrRoundNotFound),
		errors.Is(err, statsdb.ErrStatsNotFound),
		errors.Is(err, recapdb.ErrRecapNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		h.logger.ErrorContext(r.Context(), "Request failed",
			attr.String("path", r.URL.Path),
			attr.Error(err),
		)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func pathUUID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		http.Error(w, "invalid "+param, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}
