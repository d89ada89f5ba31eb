package library

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/luoxb/novelshelf/internal/importer"
	"github.com/luoxb/novelshelf/internal/novel"
	"github.com/luoxb/novelshelf/internal/parser"
	"github.com/luoxb/novelshelf/internal/store"
)

// Entry is one indexed book: its metadata-only record plus the source file
// facts used for cache freshness checks.
type Entry struct {
	Doc     *novel.Document `json:"doc"`
	Path    string          `json:"path"`
	Size    int64           `json:"size"`
	ModTime time.Time       `json:"mod_time"`
}

// Library indexes a directory of book files. Scanning quick-parses every
// supported file; full records are produced on demand and cached on disk.
type Library struct {
	dir     string
	workers int
	parser  *parser.Parser
	cache   *store.RecordCache
	log     *slog.Logger

	mu    sync.RWMutex
	index map[string]*Entry
}

func New(dir string, workers int, p *parser.Parser, cache *store.RecordCache, log *slog.Logger) *Library {
	if workers <= 0 {
		workers = 4
	}
	return &Library{
		dir:     dir,
		workers: workers,
		parser:  p,
		cache:   cache,
		log:     log,
		index:   make(map[string]*Entry),
	}
}

// Scan walks the library directory, quick-parses every supported file with
// bounded concurrency, and replaces the in-memory index. Individual file
// failures are logged and skipped; the scan itself only fails when the
// directory cannot be read.
func (l *Library) Scan(ctx context.Context) (int, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return 0, fmt.Errorf("read library dir: %w", err)
	}

	next := make(map[string]*Entry)
	var nextMu sync.Mutex
	sem := make(chan struct{}, l.workers)
	var wg sync.WaitGroup

	var scanErr error
	for _, de := range entries {
		if de.IsDir() || !importer.IsSupported(de.Name()) {
			continue
		}
		select {
		case <-ctx.Done():
			scanErr = ctx.Err()
		case sem <- struct{}{}:
			wg.Add(1)
			go func(name string) {
				defer wg.Done()
				defer func() { <-sem }()

				entry, err := l.indexFile(name)
				if err != nil {
					l.log.Warn("skipping file", "file", name, "error", err)
					return
				}
				nextMu.Lock()
				next[entry.Doc.ID] = entry
				nextMu.Unlock()
			}(de.Name())
		}
		if scanErr != nil {
			break
		}
	}
	wg.Wait()
	if scanErr != nil {
		return 0, scanErr
	}

	l.mu.Lock()
	l.index = next
	l.mu.Unlock()

	l.log.Info("library scanned", "dir", l.dir, "books", len(next))
	return len(next), nil
}

func (l *Library) indexFile(name string) (*Entry, error) {
	path := filepath.Join(l.dir, name)
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	text, err := importer.Extract(data, name)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	return &Entry{
		Doc:     l.parser.ParseMeta(text, name),
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// List returns all indexed entries ordered by title.
func (l *Library) List() []*Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Entry, 0, len(l.index))
	for _, e := range l.index {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Doc.Title != out[j].Doc.Title {
			return out[i].Doc.Title < out[j].Doc.Title
		}
		return out[i].Doc.ID < out[j].Doc.ID
	})
	return out
}

// Entry returns the indexed entry for a document ID.
func (l *Library) Entry(id string) (*Entry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	e, ok := l.index[id]
	return e, ok
}

// Document returns the full parsed record for a document ID. A cached
// record is reused when it is newer than the source file; otherwise the
// file is re-imported, fully parsed, and the cache refreshed.
func (l *Library) Document(id string) (*novel.Document, error) {
	entry, ok := l.Entry(id)
	if !ok {
		return nil, fmt.Errorf("unknown document: %s", id)
	}

	if cached, ok := l.cache.Get(id); ok && cached.ParsedAt.After(entry.ModTime) {
		return cached, nil
	}

	data, err := os.ReadFile(entry.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", entry.Path, err)
	}
	text, err := importer.Extract(data, filepath.Base(entry.Path))
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", entry.Path, err)
	}
	doc := l.parser.Parse(text, filepath.Base(entry.Path))

	if err := l.cache.Put(doc); err != nil {
		l.log.Warn("record cache write failed", "id", id, "error", err)
	}
	return doc, nil
}

// Search runs an in-content search over the full record for a document.
func (l *Library) Search(id, term string) ([]parser.Match, error) {
	doc, err := l.Document(id)
	if err != nil {
		return nil, err
	}
	return l.parser.Search(doc, term), nil
}
