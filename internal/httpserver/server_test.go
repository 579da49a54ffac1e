package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

var secret = []byte("test_secret")

func newTestServer(t *testing.T, maxTurns int) (*Server, store.Store) {
	t.Helper()
	st := store.NewMemoryStore()
	dict := words.New([]string{"CRANE", "SLATE", "TRACE", "GRAPE", "RCANE"})
	return New(st, dict, Options{Secret: secret, SessionTTL: time.Hour, MaxTurns: maxTurns}), st
}

func do(t *testing.T, s *Server, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func startSession(t *testing.T, s *Server) newRes {
	t.Helper()
	rec := do(t, s, http.MethodPost, "/session/new", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("new session: %d %s", rec.Code, rec.Body.String())
	}
	return decode[newRes](t, rec)
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t, 0)
	rec := do(t, s, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok":true`) {
		t.Errorf("health = %d %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %s", ct)
	}
}

func TestDebugWords(t *testing.T) {
	s, _ := newTestServer(t, 0)
	rec := do(t, s, http.MethodGet, "/debug/words", "", "")
	got := decode[map[string]any](t, rec)
	if got["words"] != float64(5) {
		t.Errorf("words = %v, want 5", got["words"])
	}
	if fp, _ := got["fingerprint"].(string); len(fp) != 64 {
		t.Errorf("fingerprint = %v", got["fingerprint"])
	}
}

func TestNotFound(t *testing.T) {
	s, _ := newTestServer(t, 0)
	rec := do(t, s, http.MethodGet, "/nope", "", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestGuessFlow(t *testing.T) {
	s, _ := newTestServer(t, 0)
	sess := startSession(t, s)
	if sess.Remaining != 5 || sess.MaxTurns != 6 {
		t.Fatalf("new session = %+v", sess)
	}

	rec := do(t, s, http.MethodPost, "/session/guess", sess.Token, `{"guess":"(r)c[a]n[e]"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("guess: %d %s", rec.Code, rec.Body.String())
	}
	res := decode[guessRes](t, rec)
	if res.Turn != 1 || res.State != "playing" || res.Remaining != 1 {
		t.Errorf("guess result = %+v", res)
	}
	if len(res.Suggestions) != 1 || res.Suggestions[0] != "GRAPE" {
		t.Errorf("suggestions = %v, want [GRAPE]", res.Suggestions)
	}

	rec = do(t, s, http.MethodGet, "/session", sess.Token, "")
	st := decode[stateRes](t, rec)
	if st.Pattern != "__A_E" || st.Absent != "CN" || st.Required != "AER" || st.Excluded[0] != "R" {
		t.Errorf("state = %+v", st)
	}

	rec = do(t, s, http.MethodPost, "/session/guess", sess.Token, `{"guess":"[g][r][a][p][e]"}`)
	if res := decode[guessRes](t, rec); res.State != "solved" {
		t.Errorf("state = %s, want solved", res.State)
	}

	rec = do(t, s, http.MethodPost, "/session/guess", sess.Token, `{"guess":"crane"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("guess after solve = %d, want 409", rec.Code)
	}

	rec = do(t, s, http.MethodPost, "/session/reset", sess.Token, "")
	if got := decode[map[string]any](t, rec); got["remaining"] != float64(5) {
		t.Errorf("reset = %v", got)
	}
}

func TestGuessInputErrors(t *testing.T) {
	s, _ := newTestServer(t, 0)
	sess := startSession(t, s)
	tests := []struct {
		body string
		code string
	}{
		{`{"guess":""}`, "empty_guess"},
		{`{"guess":"[crane"}`, "malformed_guess"},
		{`{"guess":"cran"}`, "invalid_length"},
		{`{"guess":"pious"}`, "not_in_word_list"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/session/guess", sess.Token, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if got := decode[map[string]string](t, rec); got["error"] != tt.code {
				t.Errorf("error = %q, want %q", got["error"], tt.code)
			}
		})
	}

	rec := do(t, s, http.MethodPost, "/session/guess", sess.Token, `not json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad json status = %d", rec.Code)
	}
}

func TestGuessSentinels(t *testing.T) {
	s, st := newTestServer(t, 0)
	sess := startSession(t, s)

	do(t, s, http.MethodPost, "/session/guess", sess.Token, `{"guess":"[c]rane"}`)
	rec := do(t, s, http.MethodPost, "/session/guess", sess.Token, `{"guess":"gg"}`)
	if res := decode[guessRes](t, rec); res.State != "reset" || res.Remaining != 5 {
		t.Errorf("GG = %+v", res)
	}

	rec = do(t, s, http.MethodPost, "/session/guess", sess.Token, `{"guess":"q"}`)
	if res := decode[guessRes](t, rec); res.State != "closed" {
		t.Errorf("Q = %+v", res)
	}
	if _, err := st.Get(context.Background(), sess.SessionID); err == nil {
		t.Error("session still stored after Q")
	}
	rec = do(t, s, http.MethodGet, "/session", sess.Token, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("state after Q = %d, want 404", rec.Code)
	}
}

func TestTurnLimit(t *testing.T) {
	s, _ := newTestServer(t, 2)
	sess := startSession(t, s)
	// Repeating the same feedback keeps GRAPE alive, so only the limit ends it.
	guess := `{"guess":"(r)c[a]n[e]"}`
	do(t, s, http.MethodPost, "/session/guess", sess.Token, guess)
	rec := do(t, s, http.MethodPost, "/session/guess", sess.Token, guess)
	res := decode[guessRes](t, rec)
	if res.Turn != 2 || res.State != "over" || res.Remaining != 1 {
		t.Errorf("second turn = %+v", res)
	}
	rec = do(t, s, http.MethodPost, "/session/guess", sess.Token, guess)
	if rec.Code != http.StatusConflict {
		t.Errorf("third turn status = %d, want 409", rec.Code)
	}
}

func TestRequireSession(t *testing.T) {
	s, _ := newTestServer(t, 0)
	sess := startSession(t, s)

	other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: sess.SessionID})
	forged, err := other.SignedString([]byte("wrong_secret"))
	if err != nil {
		t.Fatal(err)
	}
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sess.SessionID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	expiredTok, err := expired.SignedString(secret)
	if err != nil {
		t.Fatal(err)
	}
	unknown := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "nope"})
	unknownTok, err := unknown.SignedString(secret)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"garbage", "abc.def.ghi", http.StatusUnauthorized},
		{"wrong secret", forged, http.StatusUnauthorized},
		{"expired", expiredTok, http.StatusUnauthorized},
		{"unknown session", unknownTok, http.StatusNotFound},
		{"valid", sess.Token, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodGet, "/session", tt.token, "")
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (%s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestDeleteSession(t *testing.T) {
	s, _ := newTestServer(t, 0)
	sess := startSession(t, s)
	rec := do(t, s, http.MethodDelete, "/session", sess.Token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete = %d", rec.Code)
	}
	rec = do(t, s, http.MethodGet, "/session", sess.Token, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("after delete = %d, want 404", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	s, _ := newTestServer(t, 0)
	rec := do(t, s, http.MethodOptions, "/session/new", "", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Allow-Origin = %q", got)
	}
}
