package words

import (
	"context"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	set, err := Parse("crane\r\nTrace\n\n  speed  \nerase\ncrane\ntoolong\nab1de\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"CRANE", "ERASE", "SPEED", "TRACE"}, set.Words())
	assert.Equal(t, 4, set.Len())
	assert.Equal(t, 2, set.Skipped())
	assert.True(t, set.Contains("crane"))
	assert.True(t, set.Contains("TRACE"))
	assert.False(t, set.Contains("HELLO"))
}

func TestParseEmpty(t *testing.T) {
	for _, raw := range []string{"", "\n\n", "abc\nsixsix\n"} {
		_, err := Parse(raw)
		assert.ErrorIs(t, err, ErrEmptyWordList, "raw=%q", raw)
	}
}

func TestZeroSet(t *testing.T) {
	var s Set
	assert.False(t, s.Contains("CRANE"))
	assert.Zero(t, s.Len())
	_, err := SelectTarget(s, nil)
	assert.ErrorIs(t, err, ErrEmptyWordList)
}

type fixedRand int

func (f fixedRand) IntN(n int) int { return int(f) % n }

func TestSelectTarget(t *testing.T) {
	set, err := Parse("speed\ncrane\ntrace")
	require.NoError(t, err)

	// index into the sorted list: CRANE, SPEED, TRACE
	w, err := SelectTarget(set, fixedRand(1))
	require.NoError(t, err)
	assert.Equal(t, "SPEED", w)

	w, err = SelectTarget(set, nil)
	require.NoError(t, err)
	assert.True(t, set.Contains(w))
}

func TestSelectTargetSeededIsReproducible(t *testing.T) {
	set, err := Parse("crane\ntrace\nspeed\nerase\nhello\nzooms\nabbey")
	require.NoError(t, err)

	pick := func(seed uint64) []string {
		r := NewRand(seed)
		var out []string
		for i := 0; i < 10; i++ {
			w, err := SelectTarget(set, r)
			require.NoError(t, err)
			out = append(out, w)
		}
		return out
	}
	assert.Equal(t, pick(42), pick(42))
}

func TestSelectTargetCoversSet(t *testing.T) {
	set, err := Parse("crane\ntrace\nspeed")
	require.NoError(t, err)

	r := rand.New(rand.NewPCG(1, 2))
	seen := map[string]int{}
	for i := 0; i < 3000; i++ {
		w, err := SelectTarget(set, r)
		require.NoError(t, err)
		seen[w]++
	}
	require.Len(t, seen, 3)
	for w, n := range seen {
		assert.InDelta(t, 1000, n, 150, "word %s", w)
	}
}

func TestIsWord(t *testing.T) {
	assert.True(t, IsWord("CRANE"))
	assert.False(t, IsWord("crane"))
	assert.False(t, IsWord("CRAN"))
	assert.False(t, IsWord("CRANES"))
	assert.False(t, IsWord("CR4NE"))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("crane\nslate\n"), 0o644))

	set, err := Load(context.Background(), Source{File: path})
	require.NoError(t, err)
	assert.Equal(t, []string{"CRANE", "SLATE"}, set.Words())

	_, err = Load(context.Background(), Source{File: filepath.Join(t.TempDir(), "missing.txt")})
	assert.Error(t, err)
}

func TestLoadURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/words.txt":
			_, _ = w.Write([]byte("crane\nslate\nadieu\n"))
		case "/empty.txt":
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	set, err := Load(context.Background(), Source{URL: ts.URL + "/words.txt"})
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())

	_, err = Load(context.Background(), Source{URL: ts.URL + "/empty.txt"})
	assert.ErrorIs(t, err, ErrEmptyWordList)

	_, err = Load(context.Background(), Source{URL: ts.URL + "/nope.txt"})
	assert.ErrorContains(t, err, "unexpected status")
}

func TestLoadEmbedded(t *testing.T) {
	set, err := Load(context.Background(), Source{})
	require.NoError(t, err)
	assert.Greater(t, set.Len(), 100)
	assert.Zero(t, set.Skipped())
	assert.True(t, set.Contains("CRANE"))
}
