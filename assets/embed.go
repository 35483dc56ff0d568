// assets/embed.go
//
// Embedded default word list, one word per line.
// Used when neither WORDS_FILE nor WORDS_URL is configured.

package assets

import (
	"embed"
)

//go:embed words.txt
var FS embed.FS

// Words returns the raw text of the embedded word list.
func Words() (string, error) {
	b, err := FS.ReadFile("words.txt")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
