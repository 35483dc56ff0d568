package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/internal/session"
	"github.com/robalobadob/wordle/internal/stats"
	"github.com/robalobadob/wordle/internal/store"
	"github.com/robalobadob/wordle/internal/words"
)

func newTestServer(t *testing.T) (*Server, store.KV) {
	t.Helper()
	set, err := words.Parse("crane\ntrace\nslate\nspeed")
	require.NoError(t, err)
	kv := store.NewMemory()
	sess, err := session.New(context.Background(), session.Options{Words: set, Store: kv, Target: "crane"})
	require.NoError(t, err)
	return New(sess, Options{ClientOrigin: "http://localhost:5173", Logger: zerolog.Nop()}), kv
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func typeWord(t *testing.T, s *Server, w string) {
	t.Helper()
	for _, r := range w {
		rec := do(t, s, http.MethodPost, "/game/letter", `{"letter":"`+string(r)+`"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestPreflight(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodOptions, "/game/guess", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSnapshot(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/game", "")
	require.Equal(t, http.StatusOK, rec.Code)

	v := decode[map[string]any](t, rec)
	assert.Equal(t, "playing", v["state"])
	assert.NotContains(t, v, "target")
	assert.Len(t, v["rows"], 6)
}

func TestLetterValidation(t *testing.T) {
	s, _ := newTestServer(t)
	for _, body := range []string{`{"letter":""}`, `{"letter":"ab"}`, `{"letter":"1"}`, `{"letter":"é"}`, `nope`} {
		rec := do(t, s, http.MethodPost, "/game/letter", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestTypeDeleteAndRejectedGuess(t *testing.T) {
	s, _ := newTestServer(t)
	typeWord(t, s, "trac")

	rec := do(t, s, http.MethodPost, "/game/guess", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	res := decode[guessErrorRes](t, rec)
	assert.Equal(t, "invalid_length", res.Error)
	assert.Equal(t, "TRAC is not 5 letters long", res.Message)
	assert.Equal(t, "TRAC", res.Game.Rows[0].Letters)

	typeWord(t, s, "x")
	rec = do(t, s, http.MethodPost, "/game/guess", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "not_in_word_list", decode[guessErrorRes](t, rec).Error)

	rec = do(t, s, http.MethodPost, "/game/delete", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "TRAC", decode[session.View](t, rec).Rows[0].Letters)
}

func TestWinFlow(t *testing.T) {
	s, kv := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/game/share", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	typeWord(t, s, "trace")
	rec = do(t, s, http.MethodPost, "/game/guess", "")
	require.Equal(t, http.StatusOK, rec.Code)
	raw := decode[map[string]any](t, rec)
	rows := raw["rows"].([]any)
	assert.Equal(t, []any{"incorrect", "correct", "correct", "in-word", "correct"}, rows[0].(map[string]any)["statuses"])
	assert.Equal(t, "absent", raw["keyboard"].(map[string]any)["T"])

	typeWord(t, s, "crane")
	rec = do(t, s, http.MethodPost, "/game/guess", "")
	require.Equal(t, http.StatusOK, rec.Code)
	v := decode[session.View](t, rec)
	assert.Equal(t, "won", v.State)
	assert.Equal(t, "CRANE", v.Target)
	assert.Equal(t, 1, v.Stats.WinsByGuessCount[2])

	rec = do(t, s, http.MethodPost, "/game/guess", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, s, http.MethodGet, "/game/share", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "⬛🟩🟩🟨🟩\n🟩🟩🟩🟩🟩", decode[shareRes](t, rec).Share)

	rec = do(t, s, http.MethodGet, "/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	st := decode[stats.Stats](t, rec)
	assert.Equal(t, 1, st.GamesWon)

	gh, err := kv.Get(context.Background(), stats.KeyGameHistory)
	require.NoError(t, err)
	assert.JSONEq(t, `{"numGames":1,"numWins":1,"streak":1}`, string(gh))

	rec = do(t, s, http.MethodPost, "/game/new", "")
	require.Equal(t, http.StatusOK, rec.Code)
	v = decode[session.View](t, rec)
	assert.Equal(t, "playing", v.State)
	assert.Equal(t, 1, v.Stats.GamesPlayed)
}

func TestClearStats(t *testing.T) {
	s, kv := newTestServer(t)
	typeWord(t, s, "crane")
	require.Equal(t, http.StatusOK, do(t, s, http.MethodPost, "/game/guess", "").Code)

	rec := do(t, s, http.MethodDelete, "/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, stats.New(), decode[stats.Stats](t, rec))

	_, err := kv.Get(context.Background(), stats.KeyWinHistory)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newTestServer(t)
	typeWord(t, s, "crane")
	do(t, s, http.MethodPost, "/game/guess", "")

	rec := do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "wordle_guesses_total")
	assert.Contains(t, rec.Body.String(), `wordle_rounds_total{result="won"}`)
}

func TestNotFound(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decode[errorRes](t, rec).Error)
}
