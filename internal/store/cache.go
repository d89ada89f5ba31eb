package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/luoxb/novelshelf/internal/novel"
)

// RecordCache persists fully parsed documents as one JSON file per
// document ID, so repeat reads skip the full parse when the source file
// has not changed.
type RecordCache struct {
	dir string
}

func NewRecordCache(dir string) (*RecordCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &RecordCache{dir: dir}, nil
}

// Get returns the cached record for id, or false when absent or unreadable.
func (c *RecordCache) Get(id string) (*novel.Document, bool) {
	data, err := os.ReadFile(c.path(id))
	if err != nil {
		return nil, false
	}
	var doc novel.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false
	}
	return &doc, true
}

func (c *RecordCache) Put(doc *novel.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if err := os.WriteFile(c.path(doc.ID), data, 0o644); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

func (c *RecordCache) Delete(id string) error {
	err := os.Remove(c.path(id))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

func (c *RecordCache) path(id string) string {
	return filepath.Join(c.dir, id+".json")
}
