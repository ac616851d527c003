package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
	"github.com/heartmarshall/wortschatz-backend/internal/service/topic"
)

type topicService interface {
	ListTopics(ctx context.Context, input topic.ListTopicsInput) ([]domain.Topic, error)
	CreateTopic(ctx context.Context, input topic.CreateTopicInput) (*domain.Topic, error)
	DeleteTopic(ctx context.Context, input topic.DeleteTopicInput) error
}

// TopicHandler serves /api/topics.
type TopicHandler struct {
	svc topicService
	log *slog.Logger
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(svc topicService, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{svc: svc, log: logger.With("handler", "topic")}
}

type topicResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LevelID   string    `json:"levelId"`
	WordCount int       `json:"wordCount"`
	CreatedAt time.Time `json:"createdAt"`
}

type createTopicRequest struct {
	Name    string `json:"name"`
	LevelID string `json:"levelId"`
}

// List handles GET /api/topics?levelId=.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	levelID, err := parseID("levelId", r.URL.Query().Get("levelId"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	topics, err := h.svc.ListTopics(r.Context(), topic.ListTopicsInput{LevelID: levelID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]topicResponse, len(topics))
	for i := range topics {
		out[i] = toTopicResponse(&topics[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /api/topics.
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTopicRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	levelID, err := parseID("levelId", req.LevelID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.CreateTopic(r.Context(), topic.CreateTopicInput{Name: req.Name, LevelID: levelID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTopicResponse(t))
}

// Delete handles DELETE /api/topics/{id}.
func (h *TopicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteTopic(r.Context(), topic.DeleteTopicInput{TopicID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func toTopicResponse(t *domain.Topic) topicResponse {
	return topicResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		LevelID:   t.LevelID.String(),
		WordCount: t.WordCount,
		CreatedAt: t.CreatedAt,
	}
}
