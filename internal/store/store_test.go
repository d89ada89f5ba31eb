package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/luoxb/novelshelf/internal/novel"
)

func TestProgressStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	s, err := NewProgressStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := s.Get("abc"); ok {
		t.Error("expected no progress for unknown id")
	}
	if err := s.Set("abc", 7); err != nil {
		t.Fatalf("set: %v", err)
	}

	// Reload from disk.
	s2, err := NewProgressStore(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	p, ok := s2.Get("abc")
	if !ok || p.Chapter != 7 {
		t.Errorf("got %+v ok=%v, want chapter 7", p, ok)
	}
	if p.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be set")
	}
}

func TestProgressStore_CorruptFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "progress.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := NewProgressStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.Get("any"); ok {
		t.Error("expected empty store after corrupt load")
	}
}

func TestRecordCache_RoundTrip(t *testing.T) {
	c, err := NewRecordCache(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := &novel.Document{
		ID:       "id1",
		Filename: "b.txt",
		Title:    "书",
		Chapters: []novel.Chapter{{Index: 0, Number: 1, Title: "一", Content: "内容", WordCount: 1}},
		ParsedAt: time.Now().Truncate(time.Second),
	}
	doc.TotalChapters = len(doc.Chapters)

	if _, ok := c.Get("id1"); ok {
		t.Error("expected cache miss before Put")
	}
	if err := c.Put(doc); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, ok := c.Get("id1")
	if !ok {
		t.Fatal("expected cache hit after Put")
	}
	if got.Title != doc.Title || len(got.Chapters) != 1 || got.Chapters[0].Content != "内容" {
		t.Errorf("cached record mismatch: %+v", got)
	}

	if err := c.Delete("id1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := c.Get("id1"); ok {
		t.Error("expected miss after Delete")
	}
	if err := c.Delete("id1"); err != nil {
		t.Errorf("deleting absent record should be a no-op, got %v", err)
	}
}
