// Package httpapi exposes wurdle games over a JSON HTTP API.
//
// Routes:
//   - GET  /health
//   - POST /games               start a game ({"source"?, "target"?})
//   - GET  /games/{id}          current board
//   - PUT  /games/{id}/text     replace the in-progress text ({"text"})
//   - POST /games/{id}/guess    submit the in-progress text
//
// Every session is single player and lives in a Store until it expires.
// Submission failures answer 422 with {"error": kind}, where kind is
// wordle.ErrorKind of the failure.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/wurdle/internal/game"
	"github.com/vovakirdan/wurdle/internal/source"
	"github.com/vovakirdan/wurdle/internal/wordle"
)

// maxBody bounds request bodies; every payload is a word or two.
const maxBody = 4 << 10

// Server bundles router, session store and the shared game dependencies.
type Server struct {
	r      *chi.Mux
	store  Store
	deps   game.Deps
	logger *log.Logger
}

// New constructs a Server, installs middleware, and registers routes.
func New(deps game.Deps, st Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{r: chi.NewRouter(), store: st, deps: deps, logger: logger}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(s.requestLogger)
	s.r.Use(jsonContentType)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "sessions": s.store.Len()})
	})

	s.r.Route("/games", func(r chi.Router) {
		r.Post("/", s.handleNewGame)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetGame)
			r.Put("/text", s.handleSetText)
			r.Post("/guess", s.handleGuess)
		})
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	s.r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed")
	})

	return s
}

// Handler exposes the router (useful for tests).
func (s *Server) Handler() http.Handler { return s.r }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.logger.Info("starting HTTP server", "address", addr)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

type newGameReq struct {
	Source string `json:"source"`
	Target string `json:"target"` // optional fixed word
}

type setTextReq struct {
	Text string `json:"text"`
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if !decode(w, r, &req) {
		return
	}

	kind := req.Source
	if req.Target != "" {
		kind = "fixed"
	}
	if kind != "" && !source.Exists(kind) {
		writeError(w, http.StatusBadRequest, "unknown_source")
		return
	}

	g, err := s.deps.NewGame(kind, req.Target, 0)
	if err != nil {
		if errors.Is(err, wordle.ErrInvalidTarget) {
			writeError(w, http.StatusUnprocessableEntity, wordle.ErrorKind(err))
			return
		}
		s.logger.Error("new game", "error", err)
		writeError(w, http.StatusInternalServerError, "internal")
		return
	}

	sess := NewSession(g)
	if err := s.store.Save(r.Context(), sess); err != nil {
		s.logger.Error("save session", "error", err)
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	s.logger.Debug("game created", "id", sess.ID, "source", g.SourceID())
	writeJSON(w, http.StatusCreated, gameView(sess.ID, g))
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var v GameView
	sess.With(func(g *game.Game) { v = gameView(sess.ID, g) })
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleSetText(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var req setTextReq
	if !decode(w, r, &req) {
		return
	}

	var v GameView
	sess.With(func(g *game.Game) {
		g.SetText(req.Text)
		v = gameView(sess.ID, g)
	})
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var (
		res GuessResponse
		err error
	)
	sess.With(func(g *game.Game) {
		var guess wordle.Guess
		guess, err = g.Submit()
		if err != nil {
			return
		}
		res = GuessResponse{Guess: rowView(guess), View: gameView(sess.ID, g)}
	})
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, wordle.ErrorKind(err))
		return
	}

	if res.View.Target != "" {
		s.logger.Info("game finished",
			"id", sess.ID,
			"status", res.View.Status,
			"attempts", res.View.Attempts,
		)
	}
	writeJSON(w, http.StatusOK, res)
}

// session resolves {id} or answers 404.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return nil, false
	}
	return sess, true
}

// decode reads a JSON body into dst. An empty body leaves dst untouched.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, kind string) {
	writeJSON(w, status, ErrorResponse{Error: kind})
}

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs one line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}
