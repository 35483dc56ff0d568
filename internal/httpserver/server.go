// internal/httpserver/server.go
//
// HTTP server wiring for the local single-player game.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/metrics".
//   - Game endpoints: GET /game, POST /game/{letter,delete,guess,new}, GET /game/share.
//   - Stats endpoints: GET /stats, DELETE /stats.
//
// Notes:
//   - Every game endpoint answers with the full session View so the page can
//     re-render from a single response.
//   - CORS is origin-aware for a single configured origin.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/session"
)

// Options configures New.
type Options struct {
	ClientOrigin string // allowed CORS origin
	Logger       zerolog.Logger
}

// Server bundles router and session.
type Server struct {
	r      *chi.Mux
	sess   *session.Session
	log    zerolog.Logger
	origin string
}

// New constructs a Server, installs middleware, and registers routes.
func New(sess *session.Session, opts Options) *Server {
	s := &Server{r: chi.NewRouter(), sess: sess, log: opts.Logger, origin: opts.ClientOrigin}
	if s.origin == "" {
		s.origin = "http://localhost:5173"
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(s.accessLog)                     // zerolog access log
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(s.cors)                          // credentials-friendly CORS

	s.r.Handle("/metrics", promhttp.Handler())

	s.r.Group(func(r chi.Router) {
		r.Use(jsonContentType)

		// --- diagnostics ---
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"service":"wordle","endpoints":["/health","/game","/stats","/metrics"]}`))
		})
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"ok":true}`))
		})

		r.Route("/game", func(r chi.Router) {
			r.Get("/", s.handleSnapshot)
			r.Post("/letter", s.handleLetter)
			r.Post("/delete", s.handleDelete)
			r.Post("/guess", s.handleGuess)
			r.Post("/new", s.handleNewRound)
			r.Get("/share", s.handleShare)
		})

		r.Get("/stats", s.handleStats)
		r.Delete("/stats", s.handleClearStats)

		// JSON 404 for easier debugging
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusNotFound, "not_found", r.URL.Path)
		})
	})

	return s
}

// Handler exposes the router (used by main and tests).
func (s *Server) Handler() http.Handler { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// accessLog writes one debug line per request.
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug().
			Str("requestId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// ------------------------------ GAME ---------------------------------------

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.sess.Snapshot())
}

// letterReq is the payload for POST /game/letter.
type letterReq struct {
	Letter string `json:"letter"`
}

func (s *Server) handleLetter(w http.ResponseWriter, r *http.Request) {
	var req letterReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	ch, size := utf8.DecodeRuneInString(req.Letter)
	if size == 0 || size != len(req.Letter) || !isLetter(ch) {
		writeError(w, http.StatusBadRequest, "invalid_letter", "letter must be a single a-z character")
		return
	}
	writeJSON(w, http.StatusOK, s.sess.Type(ch))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.sess.Backspace())
}

// guessErrorRes is returned when a guess is rejected; the board is included
// so the client can keep rendering.
type guessErrorRes struct {
	Error   string       `json:"error"`
	Message string       `json:"message"`
	Game    session.View `json:"game"`
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	v, err := s.sess.Enter(r.Context())
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, v)
	case errors.Is(err, game.ErrInvalidLength):
		writeJSON(w, http.StatusUnprocessableEntity, guessErrorRes{Error: "invalid_length", Message: v.Message, Game: v})
	case errors.Is(err, game.ErrNotInWordList):
		writeJSON(w, http.StatusUnprocessableEntity, guessErrorRes{Error: "not_in_word_list", Message: v.Message, Game: v})
	case errors.Is(err, game.ErrGameFinished):
		writeJSON(w, http.StatusConflict, guessErrorRes{Error: "game_finished", Message: err.Error(), Game: v})
	default:
		s.log.Error().Err(err).Msg("submit guess")
		writeError(w, http.StatusInternalServerError, "server_error", "")
	}
}

func (s *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	v, err := s.sess.NewRound()
	if err != nil {
		s.log.Error().Err(err).Msg("new round")
		writeError(w, http.StatusInternalServerError, "server_error", "")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// shareRes is returned by GET /game/share.
type shareRes struct {
	Share string `json:"share"`
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	grid, ok := s.sess.Share()
	if !ok {
		writeError(w, http.StatusConflict, "not_finished", "the round is still in progress")
		return
	}
	writeJSON(w, http.StatusOK, shareRes{Share: grid})
}

// ------------------------------ STATS --------------------------------------

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.sess.Stats())
}

func (s *Server) handleClearStats(w http.ResponseWriter, r *http.Request) {
	v, err := s.sess.ClearStats(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("clear stats")
		writeError(w, http.StatusInternalServerError, "server_error", "")
		return
	}
	writeJSON(w, http.StatusOK, v.Stats)
}

// ------------------------------- small util --------------------------------

// errorRes is the generic error body.
type errorRes struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorRes{Error: code, Message: msg})
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}
