package parser

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/luoxb/novelshelf/internal/novel"
)

// Options controls parser tuning knobs. Zero values are replaced with the
// defaults, mirroring how the rest of the service clamps configuration.
type Options struct {
	ChunkThreshold int // synthetic chapter size in runes for fallback segmentation
	ValidateLines  int // line budget scanned by Validate
	SnippetRadius  int // runes of context on each side of a search hit
}

// DefaultOptions returns the standard tuning.
func DefaultOptions() Options {
	return Options{
		ChunkThreshold: 3000,
		ValidateLines:  100,
		SnippetRadius:  60,
	}
}

// Parser turns loosely formatted novel text into a structured Document.
// It is stateless and safe for concurrent use; every parse operates on its
// own input and produces an independent record.
type Parser struct {
	opts Options
}

func New(opts Options) *Parser {
	def := DefaultOptions()
	if opts.ChunkThreshold <= 0 {
		opts.ChunkThreshold = def.ChunkThreshold
	}
	if opts.ValidateLines <= 0 {
		opts.ValidateLines = def.ValidateLines
	}
	if opts.SnippetRadius <= 0 {
		opts.SnippetRadius = def.SnippetRadius
	}
	return &Parser{opts: opts}
}

// Parse produces a complete Document with chapter content populated.
// It is total: any input, including the empty string, yields a record with
// at least one chapter.
func (p *Parser) Parse(text, filename string) *novel.Document {
	return p.parse(text, filename, true)
}

// ParseMeta is the metadata-only variant used for indexing and cache
// freshness checks. It agrees with Parse on ID, header fields, and the
// chapter index/number/title sequence, but omits chapter content and word
// counts.
func (p *Parser) ParseMeta(text, filename string) *novel.Document {
	return p.parse(text, filename, false)
}

func (p *Parser) parse(text, filename string, keepContent bool) *novel.Document {
	text = normalizeNewlines(text)

	s := &scan{keepContent: keepContent}
	for _, line := range strings.Split(text, "\n") {
		s.line(line)
	}
	s.finish()

	chapters := s.chapters
	if len(chapters) == 0 {
		chapters = p.fallbackChapters(text, keepContent)
	}

	title := s.title
	if title == "" {
		title = strings.TrimSuffix(filename, filepath.Ext(filename))
	}

	doc := &novel.Document{
		ID:       novel.DeriveID(filename),
		Filename: filename,
		Title:    title,
		Author:   s.author,
		Summary:  s.summary,
		Chapters: chapters,
		ParsedAt: time.Now(),
	}
	total := 0
	for i := range doc.Chapters {
		doc.Chapters[i].Index = i
		total += doc.Chapters[i].WordCount
	}
	doc.TotalChapters = len(doc.Chapters)
	doc.WordCount = total
	return doc
}

type scanState int

const (
	stateHeader scanState = iota
	stateSummary
	stateChapters
)

// scan is the line-by-line state machine: header fields first, an optional
// summary accumulation phase, then chapter segmentation.
type scan struct {
	keepContent bool
	state       scanState

	title    string
	titleSet bool
	author   string

	summaryLines []string
	summary      string

	chapters   []novel.Chapter
	open       bool
	current    novel.Chapter
	curContent []string
}

func (s *scan) line(raw string) {
	trimmed := strings.TrimSpace(raw)
	switch s.state {
	case stateHeader:
		s.headerLine(trimmed)
	case stateSummary:
		s.summaryLine(trimmed)
	case stateChapters:
		s.chapterLine(raw, trimmed)
	}
}

func (s *scan) headerLine(line string) {
	if line == "" {
		return
	}
	if m, ok := matchHeading(line, s.nextNumber()); ok {
		s.state = stateChapters
		s.openChapter(m)
		return
	}
	if separatorRE.MatchString(line) {
		s.state = stateChapters
		return
	}
	if !s.titleSet {
		if m := titleLabelRE.FindStringSubmatch(line); m != nil {
			s.title = strings.TrimSpace(m[1])
			s.titleSet = true
			return
		}
	}
	if s.author == "" {
		if a, ok := matchAuthor(line); ok {
			s.author = a
			return
		}
	}
	if m := summaryLabelRE.FindStringSubmatch(line); m != nil {
		s.state = stateSummary
		if t := strings.TrimSpace(m[1]); t != "" {
			s.summaryLines = append(s.summaryLines, t)
		}
		return
	}
	if !s.titleSet {
		s.title = line
		s.titleSet = true
		return
	}
	// Body text before any heading: open the default chapter so leading
	// prose is not lost.
	s.state = stateChapters
	s.openDefaultChapter()
	s.appendContent(line)
}

func (s *scan) summaryLine(line string) {
	if separatorRE.MatchString(line) {
		s.flushSummary()
		s.state = stateChapters
		return
	}
	if m, ok := matchHeading(line, s.nextNumber()); ok {
		s.flushSummary()
		s.state = stateChapters
		s.openChapter(m)
		return
	}
	if line == "" {
		return
	}
	s.summaryLines = append(s.summaryLines, line)
}

func (s *scan) chapterLine(raw, trimmed string) {
	if m, ok := matchHeading(trimmed, s.nextNumber()); ok {
		s.openChapter(m)
		return
	}
	if !s.open {
		if trimmed == "" {
			return
		}
		s.openDefaultChapter()
	}
	s.appendContent(raw)
}

// nextNumber is the ordinal assigned to a heading pattern that carries no
// ordinal of its own: one past the chapters seen so far.
func (s *scan) nextNumber() int {
	n := len(s.chapters)
	if s.open {
		n++
	}
	return n + 1
}

func (s *scan) openChapter(m headingMatch) {
	s.closeChapter()
	s.current = novel.Chapter{Number: m.number, Title: m.title}
	s.curContent = s.curContent[:0]
	s.open = true
}

func (s *scan) openDefaultChapter() {
	s.openChapter(headingMatch{number: 1, title: "正文"})
}

func (s *scan) appendContent(line string) {
	if !s.keepContent {
		return
	}
	s.curContent = append(s.curContent, line)
}

func (s *scan) closeChapter() {
	if !s.open {
		return
	}
	ch := s.current
	if s.keepContent {
		ch.Content = cleanContent(strings.Join(s.curContent, "\n"))
		ch.WordCount = countLines(ch.Content)
	}
	s.chapters = append(s.chapters, ch)
	s.open = false
}

func (s *scan) flushSummary() {
	s.summary = strings.TrimSpace(strings.Join(s.summaryLines, "\n"))
	s.summaryLines = nil
}

// finish closes out whatever phase the scan ended in: a summary still
// accumulating at EOF becomes the summary as-is, and the open chapter is
// pushed.
func (s *scan) finish() {
	if s.state == stateSummary {
		s.flushSummary()
	}
	s.closeChapter()
}

var (
	spaceRunRE   = regexp.MustCompile(` {2,}`)
	newlineRunRE = regexp.MustCompile(`\n{3,}`)
)

// cleanContent normalizes chapter text: runs of spaces collapse to one
// (tabs untouched), three or more newlines collapse to a blank line, and
// surrounding whitespace is trimmed.
func cleanContent(s string) string {
	s = spaceRunRE.ReplaceAllString(s, " ")
	s = newlineRunRE.ReplaceAllString(s, "\n\n")
	s = strings.Trim(s, "\n")
	return strings.TrimSpace(s)
}

func countLines(content string) int {
	if content == "" {
		return 0
	}
	n := 0
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
