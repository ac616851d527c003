package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
	"github.com/heartmarshall/wortschatz-backend/internal/service/word"
	"github.com/heartmarshall/wortschatz-backend/internal/wordfile"
)

type wordService interface {
	ListWords(ctx context.Context, input word.ListWordsInput) ([]domain.Word, error)
	CountWords(ctx context.Context, input word.CountWordsInput) (int, error)
	ImportWords(ctx context.Context, input word.ImportWordsInput) (*word.ImportResult, error)
}

// WordHandler serves /api/words.
type WordHandler struct {
	svc          wordService
	maxFileBytes int64
	log          *slog.Logger
}

// NewWordHandler creates a WordHandler. maxFileBytes caps both upload bodies.
func NewWordHandler(svc wordService, maxFileBytes int64, logger *slog.Logger) *WordHandler {
	return &WordHandler{svc: svc, maxFileBytes: maxFileBytes, log: logger.With("handler", "word")}
}

type wordResponse struct {
	ID        string    `json:"id"`
	German    string    `json:"german"`
	Chinese   string    `json:"chinese"`
	LevelID   string    `json:"levelId"`
	TopicID   string    `json:"topicId"`
	CreatedAt time.Time `json:"createdAt"`
}

type countResponse struct {
	Count int `json:"count"`
}

type uploadWord struct {
	German  string `json:"german"`
	Chinese string `json:"chinese"`
	LevelID string `json:"levelId"`
	TopicID string `json:"topicId"`
}

type uploadRequest struct {
	Words []uploadWord `json:"words"`
}

type uploadResponse struct {
	Count   int `json:"count"`
	Skipped int `json:"skipped"`
}

// List handles GET /api/words?levelId=&topicId=.
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	levelID, err := parseID("levelId", q.Get("levelId"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	topicID, err := parseID("topicId", q.Get("topicId"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	words, err := h.svc.ListWords(r.Context(), word.ListWordsInput{LevelID: levelID, TopicID: topicID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]wordResponse, len(words))
	for i := range words {
		out[i] = toWordResponse(&words[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Count handles GET /api/words/count?topicId=.
func (h *WordHandler) Count(w http.ResponseWriter, r *http.Request) {
	topicID, err := parseID("topicId", r.URL.Query().Get("topicId"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	n, err := h.svc.CountWords(r.Context(), word.CountWordsInput{TopicID: topicID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, countResponse{Count: n})
}

// Upload handles POST /api/words/upload with a JSON body of word tuples.
func (h *WordHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileBytes)

	var req uploadRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	inputs := make([]domain.WordInput, len(req.Words))
	for i, uw := range req.Words {
		levelID, err := parseID(fmt.Sprintf("words[%d].levelId", i), uw.LevelID)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		topicID, err := parseID(fmt.Sprintf("words[%d].topicId", i), uw.TopicID)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		inputs[i] = domain.WordInput{
			German:  uw.German,
			Chinese: uw.Chinese,
			LevelID: levelID,
			TopicID: topicID,
		}
	}

	h.importWords(w, r, inputs)
}

// UploadFile handles POST /api/words/upload/file: a multipart form with a
// CSV, XLSX or TXT "file" plus levelId and topicId fields.
func (h *WordHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileBytes)
	if err := r.ParseMultipartForm(h.maxFileBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handleError(h.log, w, r, err)
			return
		}
		handleError(h.log, w, r, domain.NewValidationError("file", "expected multipart form data"))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	levelID, err := parseID("levelId", r.FormValue("levelId"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	topicID, err := parseID("topicId", r.FormValue("topicId"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("file", "required"))
		return
	}
	defer file.Close()

	pairs, err := wordfile.Parse(header.Filename, file)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.importWords(w, r, wordfile.ToInputs(pairs, levelID, topicID))
}

func (h *WordHandler) importWords(w http.ResponseWriter, r *http.Request, inputs []domain.WordInput) {
	res, err := h.svc.ImportWords(r.Context(), word.ImportWordsInput{Words: inputs})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{Count: res.Inserted, Skipped: res.Skipped})
}

func toWordResponse(wd *domain.Word) wordResponse {
	return wordResponse{
		ID:        wd.ID.String(),
		German:    wd.German,
		Chinese:   wd.Chinese,
		LevelID:   wd.LevelID.String(),
		TopicID:   wd.TopicID.String(),
		CreatedAt: wd.CreatedAt,
	}
}
