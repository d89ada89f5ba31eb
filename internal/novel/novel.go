package novel

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Document is the structured result of parsing one source text.
type Document struct {
	ID       string    `json:"id"`
	Filename string    `json:"filename"`
	Title    string    `json:"title"`
	Author   string    `json:"author,omitempty"`
	Summary  string    `json:"summary,omitempty"`
	Chapters []Chapter `json:"chapters"`

	// TotalChapters always equals len(Chapters); WordCount is the sum of
	// chapter word counts. Both are recomputed by the parser, never set
	// independently.
	TotalChapters int       `json:"total_chapters"`
	WordCount     int       `json:"word_count"`
	ParsedAt      time.Time `json:"parsed_at"`
}

// Chapter is one entry in a document's chapter sequence.
type Chapter struct {
	// Index is the 0-based position in Document.Chapters. Number is the
	// ordinal declared in the source text; malformed sources can repeat
	// or skip numbers, so it is not guaranteed unique or monotonic.
	Index   int    `json:"index"`
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`

	// WordCount is the number of non-empty lines in Content. Zero for
	// metadata-only parses.
	WordCount int `json:"word_count,omitempty"`
}

// ValidationResult reports structural problems found in a source text.
// Errors are blocking (no title line, no recognizable chapters); warnings
// are advisory (missing author or summary, very few chapters).
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// DeriveID computes a stable identifier from a filename. The extension is
// stripped and the name case-folded, so "Story.TXT" and "story.txt" map to
// the same ID. The hash is not cryptographic; collisions are tolerated.
func DeriveID(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	name = strings.ToLower(strings.TrimSpace(name))

	var h uint64
	for _, r := range name {
		h = h*31 + uint64(r)
	}
	return strconv.FormatUint(h, 36)
}
