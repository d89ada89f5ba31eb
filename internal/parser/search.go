package parser

import (
	"regexp"
	"unicode/utf8"

	"github.com/luoxb/novelshelf/internal/novel"
)

// Match reports search hits within one chapter.
type Match struct {
	ChapterIndex int    `json:"chapter_index"`
	ChapterTitle string `json:"chapter_title"`
	Count        int    `json:"count"`
	Snippet      string `json:"snippet"`
}

// Search runs a case-insensitive literal substring search over every
// chapter's content. The term is escaped first, so pattern metacharacters
// in user input match themselves. Each matching chapter contributes its
// hit count and one context snippet around the first hit.
func (p *Parser) Search(doc *novel.Document, term string) []Match {
	if term == "" || doc == nil {
		return nil
	}
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(term))
	if err != nil {
		return nil
	}

	var out []Match
	for _, ch := range doc.Chapters {
		if ch.Content == "" {
			continue
		}
		locs := re.FindAllStringIndex(ch.Content, -1)
		if len(locs) == 0 {
			continue
		}
		out = append(out, Match{
			ChapterIndex: ch.Index,
			ChapterTitle: ch.Title,
			Count:        len(locs),
			Snippet:      snippet(ch.Content, locs[0][0], locs[0][1], p.opts.SnippetRadius),
		})
	}
	return out
}

// snippet extracts the matched term plus radius runes of context on each
// side, with ellipses marking truncated edges.
func snippet(content string, start, end, radius int) string {
	lo := start
	for i := 0; i < radius && lo > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(content[:lo])
		lo -= size
	}
	hi := end
	for i := 0; i < radius && hi < len(content); i++ {
		_, size := utf8.DecodeRuneInString(content[hi:])
		hi += size
	}

	s := content[lo:hi]
	if lo > 0 {
		s = "..." + s
	}
	if hi < len(content) {
		s = s + "..."
	}
	return s
}
