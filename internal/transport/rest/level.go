package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
	"github.com/heartmarshall/wortschatz-backend/internal/service/level"
)

type levelService interface {
	ListLevels(ctx context.Context) ([]domain.Level, error)
	CreateLevel(ctx context.Context, input level.CreateLevelInput) (*domain.Level, error)
	DeleteLevel(ctx context.Context, input level.DeleteLevelInput) error
}

// LevelHandler serves /api/levels.
type LevelHandler struct {
	svc levelService
	log *slog.Logger
}

// NewLevelHandler creates a LevelHandler.
func NewLevelHandler(svc levelService, logger *slog.Logger) *LevelHandler {
	return &LevelHandler{svc: svc, log: logger.With("handler", "level")}
}

type levelResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type createLevelRequest struct {
	Name string `json:"name"`
}

// List handles GET /api/levels.
func (h *LevelHandler) List(w http.ResponseWriter, r *http.Request) {
	levels, err := h.svc.ListLevels(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]levelResponse, len(levels))
	for i := range levels {
		out[i] = toLevelResponse(&levels[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /api/levels.
func (h *LevelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLevelRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	l, err := h.svc.CreateLevel(r.Context(), level.CreateLevelInput{Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toLevelResponse(l))
}

// Delete handles DELETE /api/levels/{id}.
func (h *LevelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteLevel(r.Context(), level.DeleteLevelInput{LevelID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func toLevelResponse(l *domain.Level) levelResponse {
	return levelResponse{
		ID:        l.ID.String(),
		Name:      l.Name,
		CreatedAt: l.CreatedAt,
	}
}
