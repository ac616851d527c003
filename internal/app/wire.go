package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/wortschatz-backend/internal/adapter/postgres"
	levelrepo "github.com/heartmarshall/wortschatz-backend/internal/adapter/postgres/level"
	topicrepo "github.com/heartmarshall/wortschatz-backend/internal/adapter/postgres/topic"
	wordrepo "github.com/heartmarshall/wortschatz-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/wortschatz-backend/internal/config"
	"github.com/heartmarshall/wortschatz-backend/internal/service/level"
	"github.com/heartmarshall/wortschatz-backend/internal/service/quiz"
	"github.com/heartmarshall/wortschatz-backend/internal/service/topic"
	"github.com/heartmarshall/wortschatz-backend/internal/service/word"
	"github.com/heartmarshall/wortschatz-backend/internal/transport/middleware"
	"github.com/heartmarshall/wortschatz-backend/internal/transport/rest"
)

// Database is what the application graph needs from the connection pool.
type Database interface {
	postgres.DB
	Ping(ctx context.Context) error
}

// Services is the service layer built on top of a Database.
type Services struct {
	Level *level.Service
	Topic *topic.Service
	Word  *word.Service
	Quiz  *quiz.Service
}

// NewServices wires repositories into services. Call Quiz.Close on shutdown.
func NewServices(cfg *config.Config, db postgres.DB, logger *slog.Logger) *Services {
	txm := postgres.NewTxManager(db)

	levels := levelrepo.New(db)
	topics := topicrepo.New(db)
	words := wordrepo.New(db)

	return &Services{
		Level: level.NewService(logger, levels),
		Topic: topic.NewService(logger, topics, levels),
		Word:  word.NewService(logger, words, levels, topics, txm, cfg.Import),
		Quiz:  quiz.NewService(logger, words, cfg.Quiz),
	}
}

// NewHandler builds the HTTP handler with the global middleware chain. The
// returned stop func releases the upload rate limiter.
func NewHandler(cfg *config.Config, db Database, svcs *Services, logger *slog.Logger) (http.Handler, func()) {
	limiter := middleware.NewRateLimiter(time.Minute)

	mux := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(db, svcs.Quiz, BuildVersion()),
		Level:  rest.NewLevelHandler(svcs.Level, logger),
		Topic:  rest.NewTopicHandler(svcs.Topic, logger),
		Word:   rest.NewWordHandler(svcs.Word, cfg.Import.MaxFileBytes, logger),
		Quiz:   rest.NewQuizHandler(svcs.Quiz, logger),
	}, limiter.Limit(cfg.Import.RateLimitPerMin))

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	return handler, limiter.Stop
}
