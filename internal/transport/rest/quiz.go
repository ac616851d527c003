package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
	engine "github.com/heartmarshall/wortschatz-backend/internal/quiz"
	"github.com/heartmarshall/wortschatz-backend/internal/service/quiz"
)

type quizService interface {
	StartSession(ctx context.Context, input quiz.StartSessionInput) (*quiz.Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (*quiz.Session, error)
	Answer(ctx context.Context, input quiz.AnswerInput) (*quiz.Session, error)
	Restart(ctx context.Context, id uuid.UUID) (*quiz.Session, error)
	EndSession(ctx context.Context, id uuid.UUID) error
}

// QuizHandler serves /api/quiz/sessions.
type QuizHandler struct {
	svc quizService
	log *slog.Logger
}

// NewQuizHandler creates a QuizHandler.
func NewQuizHandler(svc quizService, logger *slog.Logger) *QuizHandler {
	return &QuizHandler{svc: svc, log: logger.With("handler", "quiz")}
}

type startSessionRequest struct {
	LevelID string `json:"levelId"`
	TopicID string `json:"topicId"`
}

type answerRequest struct {
	Option *int `json:"option"`
}

type questionView struct {
	WordID  string   `json:"wordId"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

type feedbackView struct {
	Option        int  `json:"option"`
	Correct       bool `json:"correct"`
	CorrectOption int  `json:"correctOption"`
}

type sessionView struct {
	ID        string        `json:"id"`
	LevelID   string        `json:"levelId"`
	TopicID   string        `json:"topicId"`
	Stage     string        `json:"stage"`
	Index     int           `json:"index"`
	WordCount int           `json:"wordCount"`
	Total     int           `json:"total"`
	Answered  int           `json:"answered"`
	Correct   int           `json:"correct"`
	Round     int           `json:"round"`
	Completed bool          `json:"completed"`
	Pending   bool          `json:"pending"`
	Question  *questionView `json:"question,omitempty"`
	Feedback  *feedbackView `json:"feedback,omitempty"`
}

// Start handles POST /api/quiz/sessions.
func (h *QuizHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	levelID, err := parseID("levelId", req.LevelID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	topicID, err := parseID("topicId", req.TopicID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sess, err := h.svc.StartSession(r.Context(), quiz.StartSessionInput{LevelID: levelID, TopicID: topicID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionView(sess))
}

// Get handles GET /api/quiz/sessions/{id}.
func (h *QuizHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sess, err := h.svc.GetSession(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionView(sess))
}

// Answer handles POST /api/quiz/sessions/{id}/answer.
func (h *QuizHandler) Answer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req answerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.Option == nil {
		handleError(h.log, w, r, domain.NewValidationError("option", "required"))
		return
	}

	sess, err := h.svc.Answer(r.Context(), quiz.AnswerInput{SessionID: id, Option: *req.Option})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionView(sess))
}

// Restart handles POST /api/quiz/sessions/{id}/restart.
func (h *QuizHandler) Restart(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sess, err := h.svc.Restart(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionView(sess))
}

// End handles DELETE /api/quiz/sessions/{id}.
func (h *QuizHandler) End(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.EndSession(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// toSessionView hides which option is correct until the question has been
// answered.
func toSessionView(sess *quiz.Session) sessionView {
	st := sess.State
	v := sessionView{
		ID:        sess.ID.String(),
		LevelID:   sess.LevelID.String(),
		TopicID:   sess.TopicID.String(),
		Stage:     st.Stage().String(),
		Index:     st.Index(),
		WordCount: st.Len(),
		Total:     st.Total(),
		Answered:  st.Answered(),
		Correct:   st.Correct(),
		Round:     st.Round(),
		Completed: st.Completed(),
		Pending:   sess.Pending,
	}

	q, ok := st.Question()
	if !ok {
		return v
	}
	v.Question = &questionView{
		WordID:  q.WordID.String(),
		Prompt:  q.Prompt,
		Options: optionTexts(q.Options),
	}
	if fb, ok := st.Feedback(); ok {
		v.Feedback = &feedbackView{
			Option:        fb.Option,
			Correct:       fb.Correct,
			CorrectOption: q.CorrectIndex(),
		}
	}
	return v
}

func optionTexts(opts []engine.Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Text
	}
	return out
}
