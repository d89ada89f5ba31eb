package parser

import (
	"strings"
	"testing"
)

func TestValidate_WellFormed(t *testing.T) {
	p := New(DefaultOptions())
	res := p.Validate(sampleNovel)
	if !res.Valid {
		t.Errorf("expected valid, got errors %v", res.Errors)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", res.Warnings)
	}
}

func TestValidate_NoChapters(t *testing.T) {
	p := New(DefaultOptions())
	res := p.Validate("一个标题\n一些没有章节结构的内容\n更多内容\n")
	if res.Valid {
		t.Error("expected invalid result")
	}
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0], "chapter") {
		t.Errorf("expected a single chapter-absence error, got %v", res.Errors)
	}
	for _, e := range res.Errors {
		if strings.Contains(e, "title") {
			t.Errorf("unexpected title error: %v", res.Errors)
		}
	}
}

func TestValidate_EmptyText(t *testing.T) {
	p := New(DefaultOptions())
	res := p.Validate("")
	if res.Valid {
		t.Error("expected invalid result for empty text")
	}
	if len(res.Errors) != 2 {
		t.Errorf("expected title and chapter errors, got %v", res.Errors)
	}
}

func TestValidate_Warnings(t *testing.T) {
	p := New(DefaultOptions())
	res := p.Validate("标题\n第一章 孤篇\n内容\n")
	if !res.Valid {
		t.Fatalf("expected valid, got %v", res.Errors)
	}
	want := map[string]bool{"author": false, "summary": false, "fewer": false}
	for _, w := range res.Warnings {
		for key := range want {
			if strings.Contains(w, key) {
				want[key] = true
			}
		}
	}
	for key, seen := range want {
		if !seen {
			t.Errorf("missing %q warning in %v", key, res.Warnings)
		}
	}
}

func TestValidate_LineBudget(t *testing.T) {
	p := New(Options{ValidateLines: 10})
	// Heading beyond the budget is not seen.
	text := "标题\n" + strings.Repeat("填充行\n", 20) + "第一章 迟到\n内容\n"
	res := p.Validate(text)
	if res.Valid {
		t.Error("expected invalid: the only heading is past the line budget")
	}
}
