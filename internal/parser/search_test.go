package parser

import (
	"strings"
	"testing"
)

func TestSearch_CountsAndChapters(t *testing.T) {
	p := New(DefaultOptions())
	doc := p.Parse("书名:书\n第一章 甲\n宝剑出鞘，宝剑入鞘。\n第二章 乙\n没有关键词。\n第三章 丙\n又见宝剑。\n", "s.txt")

	matches := p.Search(doc, "宝剑")
	if len(matches) != 2 {
		t.Fatalf("expected matches in 2 chapters, got %d", len(matches))
	}
	if matches[0].ChapterIndex != 0 || matches[0].Count != 2 {
		t.Errorf("first match = {%d %d}, want chapter 0 with 2 hits", matches[0].ChapterIndex, matches[0].Count)
	}
	if matches[1].ChapterIndex != 2 || matches[1].Count != 1 {
		t.Errorf("second match = {%d %d}, want chapter 2 with 1 hit", matches[1].ChapterIndex, matches[1].Count)
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	p := New(DefaultOptions())
	doc := p.Parse("Title: Book\n1.One\nThe Dragon roared. the dragon slept.\n", "c.txt")
	matches := p.Search(doc, "dragon")
	if len(matches) != 1 || matches[0].Count != 2 {
		t.Fatalf("expected 1 chapter with 2 case-insensitive hits, got %+v", matches)
	}
}

func TestSearch_MetacharactersLiteral(t *testing.T) {
	p := New(DefaultOptions())
	doc := p.Parse("Title: Book\n1.One\nprices (a.b) rose\n", "m.txt")
	if matches := p.Search(doc, "(a.b)"); len(matches) != 1 {
		t.Fatalf("expected literal match for metacharacter term, got %+v", matches)
	}
	if matches := p.Search(doc, "(axb)"); len(matches) != 0 {
		t.Errorf("dot must not act as a wildcard, got %+v", matches)
	}
}

func TestSearch_SnippetEllipses(t *testing.T) {
	p := New(Options{SnippetRadius: 5})
	doc := p.Parse("Title: Book\n1.One\n"+strings.Repeat("a", 50)+"NEEDLE"+strings.Repeat("b", 50)+"\n", "e.txt")
	matches := p.Search(doc, "NEEDLE")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	want := "...aaaaaNEEDLEbbbbb..."
	if matches[0].Snippet != want {
		t.Errorf("snippet = %q, want %q", matches[0].Snippet, want)
	}
}

func TestSearch_SnippetAtBoundary(t *testing.T) {
	p := New(Options{SnippetRadius: 10})
	doc := p.Parse("Title: Book\n1.One\nNEEDLE tail\n", "b.txt")
	matches := p.Search(doc, "NEEDLE")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if strings.HasPrefix(matches[0].Snippet, "...") {
		t.Errorf("no leading ellipsis expected at content start: %q", matches[0].Snippet)
	}
}

func TestSearch_EmptyTerm(t *testing.T) {
	p := New(DefaultOptions())
	doc := p.Parse(sampleNovel, "t.txt")
	if matches := p.Search(doc, ""); matches != nil {
		t.Errorf("expected nil for empty term, got %+v", matches)
	}
}
