package rest

import (
	"net/http"

	"github.com/heartmarshall/wortschatz-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health *HealthHandler
	Level  *LevelHandler
	Topic  *TopicHandler
	Word   *WordHandler
	Quiz   *QuizHandler
}

// NewRouter registers all routes. upload wraps only the two import endpoints;
// it may be nil.
func NewRouter(h Handlers, upload middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/levels", h.Level.List)
	mux.HandleFunc("POST /api/levels", h.Level.Create)
	mux.HandleFunc("DELETE /api/levels/{id}", h.Level.Delete)

	mux.HandleFunc("GET /api/topics", h.Topic.List)
	mux.HandleFunc("POST /api/topics", h.Topic.Create)
	mux.HandleFunc("DELETE /api/topics/{id}", h.Topic.Delete)

	mux.HandleFunc("GET /api/words", h.Word.List)
	mux.HandleFunc("GET /api/words/count", h.Word.Count)
	mux.Handle("POST /api/words/upload", middleware.Wrap(h.Word.Upload, upload))
	mux.Handle("POST /api/words/upload/file", middleware.Wrap(h.Word.UploadFile, upload))

	mux.HandleFunc("POST /api/quiz/sessions", h.Quiz.Start)
	mux.HandleFunc("GET /api/quiz/sessions/{id}", h.Quiz.Get)
	mux.HandleFunc("POST /api/quiz/sessions/{id}/answer", h.Quiz.Answer)
	mux.HandleFunc("POST /api/quiz/sessions/{id}/restart", h.Quiz.Restart)
	mux.HandleFunc("DELETE /api/quiz/sessions/{id}", h.Quiz.End)

	return mux
}
