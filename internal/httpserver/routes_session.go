// apps/solver/internal/httpserver/routes_session.go
//
// HTTP routes for solver sessions.
//   - POST   /session/new   → start a round, returns a session token
//   - POST   /session/guess → submit annotated feedback, e.g. "(r)c[a]n[e]"
//   - POST   /session/reset → start a new round in the same session
//   - GET    /session       → what the round has learned so far
//   - DELETE /session       → end the session
//
// Every route except /session/new needs "Authorization: Bearer <token>".

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/input"
	"github.com/robalobadob/wordle/apps/solver/internal/round"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

// ctxSessionKey is the context key type for storing *store.Session.
type ctxSessionKey struct{}

// mountSession registers all /session routes.
func (s *Server) mountSession(r chi.Router) {
	r.Route("/session", func(r chi.Router) {
		r.Post("/new", s.handleNew)

		r.Group(func(r chi.Router) {
			r.Use(s.requireSession)
			r.Get("/", s.handleState)
			r.Delete("/", s.handleDelete)
			r.Post("/guess", s.handleGuess)
			r.Post("/reset", s.handleReset)
		})
	})
}

// -----------------------------------------------------------------------------
// /session/new

type newRes struct {
	SessionID string    `json:"sessionId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Remaining int       `json:"remaining"`
	MaxTurns  int       `json:"maxTurns"`
}

// handleNew creates a session with a fresh round and signs its token.
func (s *Server) handleNew(w http.ResponseWriter, r *http.Request) {
	sess := store.NewSession(genID(), round.New(s.dict, s.opts.MaxTurns))
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := s.signToken(sess.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign session token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	log.Info().Str("session", sess.ID).Msg("session started")
	_ = json.NewEncoder(w).Encode(newRes{
		SessionID: sess.ID,
		Token:     tok,
		ExpiresAt: exp,
		Remaining: sess.Round.Remaining(),
		MaxTurns:  sess.Round.MaxTurns(),
	})
}

// -----------------------------------------------------------------------------
// /session/guess

type guessReq struct {
	Guess string `json:"guess"`
}

type guessRes struct {
	Turn        int      `json:"turn"`
	Suggestions []string `json:"suggestions"`
	Remaining   int      `json:"remaining"`
	State       string   `json:"state"` // playing | solved | exhausted | over | reset | closed
}

// handleGuess parses one line of feedback and plays it. The GG and Q
// sentinels reset and close the session respectively.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())

	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	p := input.Parser{Known: s.dict.Contains}
	cmd, turn, err := p.Parse(req.Guess)
	if err != nil {
		writeError(w, http.StatusBadRequest, inputErrorCode(err))
		return
	}

	switch cmd {
	case input.CommandExit:
		_ = s.store.Delete(r.Context(), sess.ID)
		_ = json.NewEncoder(w).Encode(guessRes{Suggestions: []string{}, State: "closed"})
		return
	case input.CommandReset:
		var res guessRes
		_ = sess.Do(func(rd *round.Round) error {
			rd.Reset()
			res = guessRes{Suggestions: []string{}, Remaining: rd.Remaining(), State: "reset"}
			return nil
		})
		_ = json.NewEncoder(w).Encode(res)
		return
	}

	var res round.Result
	err = sess.Do(func(rd *round.Round) error {
		var err error
		res, err = rd.Play(turn)
		return err
	})
	if errors.Is(err, round.ErrRoundOver) {
		writeError(w, http.StatusConflict, "round_over")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "play_failed")
		return
	}
	_ = json.NewEncoder(w).Encode(guessRes{
		Turn:        res.Turn,
		Suggestions: res.Suggestions,
		Remaining:   res.Remaining,
		State:       string(res.State),
	})
}

// inputErrorCode maps parser errors to stable API codes.
func inputErrorCode(err error) string {
	switch pkgerrors.Cause(err) {
	case input.ErrEmpty:
		return "empty_guess"
	case input.ErrUnbalanced, input.ErrMalformed:
		return "malformed_guess"
	case input.ErrLength:
		return "invalid_length"
	case input.ErrUnknownWord:
		return "not_in_word_list"
	default:
		return "invalid_guess"
	}
}

// -----------------------------------------------------------------------------
// /session/reset, DELETE /session

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	remaining := 0
	_ = sess.Do(func(rd *round.Round) error {
		rd.Reset()
		remaining = rd.Remaining()
		return nil
	})
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "remaining": remaining})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	_ = s.store.Delete(r.Context(), sess.ID)
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// -----------------------------------------------------------------------------
// GET /session

// stateRes describes accumulated constraints in display form.
type stateRes struct {
	Turn      int      `json:"turn"`
	MaxTurns  int      `json:"maxTurns"`
	State     string   `json:"state"`
	Remaining int      `json:"remaining"`
	Pattern   string   `json:"pattern"`  // fixed letters, '_' when unknown
	Excluded  []string `json:"excluded"` // per column, letters not allowed there
	Absent    string   `json:"absent"`
	Required  string   `json:"required"`
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	var res stateRes
	_ = sess.Do(func(rd *round.Round) error {
		c := rd.Constraints()
		res = stateRes{
			Turn:      rd.Turns(),
			MaxTurns:  rd.MaxTurns(),
			State:     string(rd.State()),
			Remaining: rd.Remaining(),
			Pattern:   c.Pattern(),
			Excluded:  make([]string, solver.WordLen),
			Absent:    c.Absent.String(),
			Required:  c.Required().String(),
		}
		for i, set := range c.Excluded {
			res.Excluded[i] = set.String()
		}
		return nil
	})
	_ = json.NewEncoder(w).Encode(res)
}

// ------------------------------ tokens -------------------------------------

// signToken creates an HS256 JWT whose subject is the session ID.
func (s *Server) signToken(sessionID string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.opts.SessionTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := t.SignedString(s.opts.Secret)
	return ss, exp, err
}

// requireSession enforces a valid session token and injects the session
// into the request context.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := bearer(r)
		if tok == "" {
			writeError(w, http.StatusUnauthorized, "missing_token")
			return
		}
		claims := &jwt.RegisteredClaims{}
		t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
			return s.opts.Secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !t.Valid || claims.Subject == "" {
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		sess, err := s.store.Get(r.Context(), claims.Subject)
		if err != nil {
			writeError(w, http.StatusNotFound, "session_not_found")
			return
		}
		ctx := context.WithValue(r.Context(), ctxSessionKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFrom returns the session placed by requireSession.
func sessionFrom(ctx context.Context) *store.Session {
	sess, _ := ctx.Value(ctxSessionKey{}).(*store.Session)
	return sess
}

// bearer extracts a bearer token from the Authorization header.
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}
