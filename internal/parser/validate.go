package parser

import (
	"strings"

	"github.com/luoxb/novelshelf/internal/novel"
)

// Validate scans up to the configured line budget and reports whether the
// text carries the two structural signals a parse needs: a title-bearing
// first line and at least one recognizable chapter heading. Missing author
// or summary labels and sparse chapter counts are warnings only.
func (p *Parser) Validate(text string) novel.ValidationResult {
	lines := strings.Split(normalizeNewlines(text), "\n")
	if len(lines) > p.opts.ValidateLines {
		lines = lines[:p.opts.ValidateLines]
	}

	hasTitle := false
	hasAuthor := false
	hasSummary := false
	chapterCount := 0

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !hasTitle {
			hasTitle = true
		}
		if _, ok := matchHeading(line, chapterCount+1); ok {
			chapterCount++
			continue
		}
		if !hasAuthor {
			if _, ok := matchAuthor(line); ok {
				hasAuthor = true
				continue
			}
		}
		if !hasSummary && summaryLabelRE.MatchString(line) {
			hasSummary = true
		}
	}

	res := novel.ValidationResult{
		Errors:   []string{},
		Warnings: []string{},
	}
	if !hasTitle {
		res.Errors = append(res.Errors, "no title line found")
	}
	if chapterCount == 0 {
		res.Errors = append(res.Errors, "no chapter headings found")
	}
	if !hasAuthor {
		res.Warnings = append(res.Warnings, "no author label found")
	}
	if !hasSummary {
		res.Warnings = append(res.Warnings, "no summary label found")
	}
	if chapterCount > 0 && chapterCount < 2 {
		res.Warnings = append(res.Warnings, "fewer than 2 chapters recognized")
	}
	res.Valid = len(res.Errors) == 0
	return res
}
