package parser

import (
	"strings"
	"testing"
)

func TestFallback_ChunksAtThreshold(t *testing.T) {
	p := New(DefaultOptions())
	// One long line with no recognizable structure: the scan consumes it
	// as the title, leaves zero chapters, and the fallback re-segments the
	// whole text.
	input := strings.Repeat("测", 7000)
	doc := p.Parse(input, "blob.txt")

	if len(doc.Chapters) != 3 {
		t.Fatalf("expected 3 synthetic chapters, got %d", len(doc.Chapters))
	}
	wantLens := []int{3000, 3000, 1000}
	for i, want := range wantLens {
		got := len([]rune(doc.Chapters[i].Content))
		if got != want {
			t.Errorf("chapter[%d] length = %d runes, want %d", i, got, want)
		}
	}
	for i, ch := range doc.Chapters {
		if ch.Number != i+1 {
			t.Errorf("chapter[%d] number = %d, want %d", i, ch.Number, i+1)
		}
		if !strings.HasPrefix(ch.Title, "第") || !strings.HasSuffix(ch.Title, "节") {
			t.Errorf("chapter[%d] title = %q, want positional section title", i, ch.Title)
		}
	}
}

func TestFallback_SeparatorSplits(t *testing.T) {
	p := New(DefaultOptions())
	chapters := p.fallbackChapters("前半部分\n====\n后半部分\n", true)
	if len(chapters) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(chapters))
	}
	if chapters[0].Content != "前半部分" || chapters[1].Content != "后半部分" {
		t.Errorf("sections = %q / %q", chapters[0].Content, chapters[1].Content)
	}
}

func TestFallback_EmptyDocumentSingleChapter(t *testing.T) {
	p := New(DefaultOptions())
	chapters := p.fallbackChapters("\n\n\n", true)
	if len(chapters) != 1 {
		t.Fatalf("expected 1 chapter, got %d", len(chapters))
	}
	if chapters[0].Content != "" {
		t.Errorf("content = %q, want empty", chapters[0].Content)
	}
}
