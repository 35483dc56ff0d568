package words

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/robalobadob/wordle/assets"
)

// Source says where the word list comes from.
// File wins over URL; with neither set the embedded list is used.
type Source struct {
	File   string
	URL    string
	Client *http.Client // defaults to a client with a 10s timeout
}

// Load reads the configured list and parses it.
// The returned error wraps ErrEmptyWordList when nothing playable was found.
func Load(ctx context.Context, src Source) (Set, error) {
	switch {
	case src.File != "":
		f, err := os.Open(src.File)
		if err != nil {
			return Set{}, fmt.Errorf("open word list: %w", err)
		}
		defer f.Close()
		set, err := Read(f)
		if err != nil {
			return Set{}, fmt.Errorf("read %s: %w", src.File, err)
		}
		return set, nil

	case src.URL != "":
		raw, err := Fetch(ctx, src.Client, src.URL)
		if err != nil {
			return Set{}, err
		}
		set, err := Parse(raw)
		if err != nil {
			return Set{}, fmt.Errorf("parse %s: %w", src.URL, err)
		}
		return set, nil

	default:
		raw, err := assets.Words()
		if err != nil {
			return Set{}, fmt.Errorf("embedded word list: %w", err)
		}
		return Parse(raw)
	}
}

// Fetch performs the one-time GET of a static word list.
func Fetch(ctx context.Context, client *http.Client, url string) (string, error) {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	res, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch word list: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("fetch word list: unexpected status %s", res.Status)
	}
	b, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read word list body: %w", err)
	}
	return string(b), nil
}
