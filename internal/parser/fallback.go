package parser

import (
	"fmt"
	"strings"

	"github.com/luoxb/novelshelf/internal/novel"
)

// fallbackChapters segments text with no recognizable heading structure
// into synthetic chapters. Lines accumulate greedily; a chapter closes at
// a separator rule line or as soon as the accumulated content reaches the
// chunk threshold, splitting long lines at the boundary if needed. A
// wholly empty document still yields exactly one chapter.
func (p *Parser) fallbackChapters(text string, keepContent bool) []novel.Chapter {
	threshold := p.opts.ChunkThreshold

	var chapters []novel.Chapter
	var buf strings.Builder
	count := 0 // runes in buf

	closeSection := func() {
		if count == 0 {
			return
		}
		chapters = append(chapters, makeSynthetic(len(chapters)+1, buf.String(), keepContent))
		buf.Reset()
		count = 0
	}

	for _, line := range strings.Split(normalizeNewlines(text), "\n") {
		trimmed := strings.TrimSpace(line)
		if fallbackSeparatorRE.MatchString(trimmed) {
			closeSection()
			continue
		}
		if count > 0 {
			buf.WriteByte('\n')
			count++
		}
		for _, r := range line {
			buf.WriteRune(r)
			count++
			if count >= threshold {
				closeSection()
			}
		}
	}
	closeSection()

	if len(chapters) == 0 {
		chapters = append(chapters, makeSynthetic(1, text, keepContent))
	}
	return chapters
}

func makeSynthetic(number int, content string, keepContent bool) novel.Chapter {
	ch := novel.Chapter{
		Number: number,
		Title:  fmt.Sprintf("第%d节", number),
	}
	if keepContent {
		ch.Content = cleanContent(content)
		ch.WordCount = countLines(ch.Content)
	}
	return ch
}
