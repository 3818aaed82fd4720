// Package httpapi exposes the predictor and the dashboard data over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	chessai "github.com/johaankjis/AI-Powered-Chess-Move-Predictor"
	"github.com/johaankjis/AI-Powered-Chess-Move-Predictor/fixture"
	"github.com/johaankjis/AI-Powered-Chess-Move-Predictor/game"
	"github.com/johaankjis/AI-Powered-Chess-Move-Predictor/model"
	"github.com/johaankjis/AI-Powered-Chess-Move-Predictor/render"
)

// maxBodyBytes bounds a posted game state. A full state with a long history is a few hundred KB at most.
const maxBodyBytes = 1 << 20

const predictFailed = "Failed to generate prediction"

// Handler serves the API.
type Handler struct {
	predictor *chessai.Predictor
	archive   fixture.Archive
	players   []fixture.PlayerStats
	log       zerolog.Logger
	upgrader  websocket.Upgrader
}

// NewRouter creates the HTTP router.
// archive and players back the history and leaderboard pages.
func NewRouter(log zerolog.Logger, p *chessai.Predictor, archive fixture.Archive, players []fixture.PlayerStats) http.Handler {
	h := &Handler{
		predictor: p,
		archive:   archive,
		players:   players,
		log:       log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// the API is public and CORS is open, so any origin may stream
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	log.Info().
		Str("model", p.Model().Name).
		Int("games", len(archive)).
		Int("players", len(players)).
		Msg("router ready")

	mux := http.NewServeMux()
	mux.Handle("/healthz", http.HandlerFunc(h.health))
	mux.Handle("/api/predict", allow(http.MethodPost, h.predict))
	mux.Handle("/api/model-info", allow(http.MethodGet, h.modelInfo))
	mux.Handle("/api/players", allow(http.MethodGet, h.leaderboard))
	mux.Handle("/api/games", allow(http.MethodGet, h.games))
	mux.Handle("/api/analytics", allow(http.MethodGet, h.analytics))
	mux.Handle("/api/board.png", allow(http.MethodGet, h.boardImage))
	mux.Handle("/api/ws/predict", allow(http.MethodGet, h.stream))

	return CORS(RequestID(AccessLog(log, Recover(log, mux))))
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type predictResponse struct {
	Success    bool                `json:"success"`
	Prediction game.MovePrediction `json:"prediction"`
	Latency    int64               `json:"latency"` // milliseconds
	Timestamp  string              `json:"timestamp"`
}

type errorResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func (h *Handler) predict(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeJSONStatus(w, http.StatusBadRequest, errorResponse{Error: predictFailed, Details: []string{err.Error()}})
		return
	}
	status, resp := h.runPrediction(r.Context(), body)
	writeJSONStatus(w, status, resp)
}

// runPrediction decodes a game state and predicts. It returns the HTTP status and the envelope to send.
func (h *Handler) runPrediction(ctx context.Context, body []byte) (int, interface{}) {
	var state game.GameState
	if err := json.Unmarshal(body, &state); err != nil {
		return http.StatusBadRequest, errorResponse{Error: predictFailed, Details: []string{err.Error()}}
	}

	res, err := h.predictor.Predict(ctx, &state)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, errorResponse{Error: predictFailed, Details: []string{"request cancelled"}}
	default:
		return http.StatusBadRequest, errorResponse{Error: predictFailed, Details: details(err)}
	}

	return http.StatusOK, predictResponse{
		Success:    true,
		Prediction: res.Prediction,
		Latency:    res.Latency.Milliseconds(),
		Timestamp:  res.Timestamp.Format(fixture.TimestampLayout),
	}
}

// details flattens a validation error into one message per problem.
func details(err error) []string {
	if merr, ok := errors.Cause(err).(*multierror.Error); ok {
		retVal := make([]string, 0, len(merr.Errors))
		for _, e := range merr.Errors {
			retVal = append(retVal, e.Error())
		}
		return retVal
	}
	return []string{err.Error()}
}

func (h *Handler) modelInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, struct {
		Success bool       `json:"success"`
		Model   model.Info `json:"model"`
	}{true, h.predictor.Model()})
}

func (h *Handler) leaderboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"success": true,
		"players": fixture.Leaderboard(h.players),
	})
}

func (h *Handler) games(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := fixture.ParseResultFilter(q.Get("result"))
	if err != nil {
		writeJSONStatus(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	filtered := h.archive.Filter(q.Get("q"), result)
	writeJSON(w, map[string]interface{}{
		"success":  true,
		"games":    filtered,
		"total":    len(h.archive),
		"filtered": len(filtered),
		"summary":  h.archive.Summary(),
	})
}

func (h *Handler) analytics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"success":           true,
		"model":             h.predictor.Model(),
		"featureImportance": model.FeatureImportance(),
		"history":           h.archive.Summary(),
		"predictor":         h.predictor.Stats(),
	})
}

func (h *Handler) boardImage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fen := q.Get("fen")
	if fen == "" {
		fen = game.StartFEN
	}
	b, _, err := game.FromFEN(fen)
	if err != nil {
		http.Error(w, "invalid FEN: "+err.Error(), http.StatusBadRequest)
		return
	}

	opts := render.DefaultOptions()
	opts.Flip = q.Get("flip") == "1" || q.Get("flip") == "true"
	if s := q.Get("size"); s != "" {
		size, err := strconv.Atoi(s)
		if err != nil || size < 16 || size > 256 {
			http.Error(w, "size must be between 16 and 256", http.StatusBadRequest)
			return
		}
		opts.SquareSize = size
	}

	w.Header().Set("Content-Type", "image/png")
	if err := render.PNG(w, &b, opts); err != nil {
		h.log.Error().Err(err).Str("fen", fen).Msg("render board")
	}
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read request body")
	}
	return body, nil
}

// allow restricts a handler to one method.
func allow(method string, fn http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if r.Method != method {
			w.Header().Set("Allow", method)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		fn(w, r)
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
