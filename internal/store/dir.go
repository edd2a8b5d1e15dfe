package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/siterender/internal/site"
	siteerrors "github.com/alexisbeaulieu97/siterender/pkg/errors"
)

const dirBackend = "dir"

// DefaultDebounce is how long Watch waits for a file to settle.
const DefaultDebounce = 200 * time.Millisecond

var documentExts = []string{".json", ".yaml", ".yml"}

// Dir serves every document file in a directory; the id is the file stem.
// YAML documents are converted to JSON when read. Put always writes JSON.
type Dir struct {
	root     string
	mu       sync.Mutex
	Debounce time.Duration
}

// OpenDir uses root, creating it when missing.
func OpenDir(root string) (*Dir, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, siteerrors.NewStoreError(dirBackend, "open", err)
	}
	return &Dir{root: root, Debounce: DefaultDebounce}, nil
}

// Root returns the watched directory.
func (d *Dir) Root() string { return d.root }

// Get implements Source.
func (d *Dir) Get(ctx context.Context, id string) (Record, error) {
	if err := ValidateID(id); err != nil {
		return Record{}, ErrNotFound
	}
	path, ok := d.find(id)
	if !ok {
		return Record{}, ErrNotFound
	}
	rec, err := d.read(id, path)
	if err != nil {
		return Record{}, siteerrors.NewStoreError(dirBackend, "get", err)
	}
	return rec, nil
}

// List implements Source. Files whose stem is not a valid id or whose
// content cannot be parsed are left out.
func (d *Dir) List(ctx context.Context) ([]Record, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, siteerrors.NewStoreError(dirBackend, "list", err)
	}

	seen := make(map[string]struct{})
	var records []Record
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !site.IsDocumentPath(entry.Name()) {
			continue
		}
		id := stem(entry.Name())
		if _, dup := seen[id]; dup || ValidateID(id) != nil {
			continue
		}
		seen[id] = struct{}{}

		rec, err := d.read(id, filepath.Join(d.root, entry.Name()))
		if err != nil {
			continue
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

// Put implements Store. The document is written atomically as <id>.json and
// any YAML file with the same id is removed.
func (d *Dir) Put(ctx context.Context, rec Record) (Record, error) {
	rec, err := prepare(rec, time.Now().UTC())
	if err != nil {
		return Record{}, siteerrors.NewStoreError(dirBackend, "put", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, rec.Definition, "", "  "); err != nil {
		return Record{}, siteerrors.NewStoreError(dirBackend, "put", err)
	}

	target := filepath.Join(d.root, rec.ID+".json")
	tmpPath := target + ".tmp"
	if err := os.WriteFile(tmpPath, pretty.Bytes(), 0o644); err != nil {
		return Record{}, siteerrors.NewStoreError(dirBackend, "put", fmt.Errorf("write temporary file: %w", err))
	}
	if err := os.Rename(tmpPath, target); err != nil {
		_ = os.Remove(tmpPath)
		return Record{}, siteerrors.NewStoreError(dirBackend, "put", fmt.Errorf("rename temporary file: %w", err))
	}

	for _, ext := range documentExts[1:] {
		_ = os.Remove(filepath.Join(d.root, rec.ID+ext))
	}

	return d.read(rec.ID, target)
}

// Delete implements Store.
func (d *Dir) Delete(ctx context.Context, id string) error {
	if ValidateID(id) != nil {
		return ErrNotFound
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	removed := false
	for _, ext := range documentExts {
		err := os.Remove(filepath.Join(d.root, id+ext))
		if err == nil {
			removed = true
			continue
		}
		if !errors.Is(err, os.ErrNotExist) {
			return siteerrors.NewStoreError(dirBackend, "delete", err)
		}
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}

// Close implements Store.
func (d *Dir) Close() error { return nil }

// Watch calls onChange with the id of every document that is created,
// written, renamed or removed, once per burst of events. It blocks until ctx
// is done.
func (d *Dir) Watch(ctx context.Context, onChange func(id string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return siteerrors.NewStoreError(dirBackend, "watch", err)
	}
	defer watcher.Close()

	if err := watcher.Add(d.root); err != nil {
		return siteerrors.NewStoreError(dirBackend, "watch", err)
	}

	debounce := d.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	changes := newDebouncer(debounce, func(id string) {
		if ctx.Err() == nil {
			onChange(id)
		}
	})
	defer changes.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !site.IsDocumentPath(event.Name) {
				continue
			}
			id := stem(filepath.Base(event.Name))
			if ValidateID(id) != nil {
				continue
			}
			changes.trigger(id)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return siteerrors.NewStoreError(dirBackend, "watch", err)
		}
	}
}

// debouncer coalesces bursts of triggers per id into one call of fire.
// Calls of fire are serialised, and none starts once stop has returned.
type debouncer struct {
	delay time.Duration
	fire  func(id string)

	mu      sync.Mutex
	stopped bool
	timers  map[string]*time.Timer
}

func newDebouncer(delay time.Duration, fire func(id string)) *debouncer {
	return &debouncer{delay: delay, fire: fire, timers: make(map[string]*time.Timer)}
}

func (b *debouncer) trigger(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopped {
		return
	}
	if t, ok := b.timers[id]; ok {
		t.Stop()
	}
	b.timers[id] = time.AfterFunc(b.delay, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.timers, id)
		if !b.stopped {
			b.fire(id)
		}
	})
}

func (b *debouncer) stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopped = true
	for id, t := range b.timers {
		t.Stop()
		delete(b.timers, id)
	}
}

func (d *Dir) find(id string) (string, bool) {
	for _, ext := range documentExts {
		path := filepath.Join(d.root, id+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

func (d *Dir) read(id, path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return Record{}, err
	}

	format := site.FormatForPath(path, data)
	if format == site.FormatYAML {
		def, err := site.ParseNamed(path, data, format)
		if err != nil {
			return Record{}, err
		}
		if data, err = json.Marshal(def); err != nil {
			return Record{}, err
		}
	} else if !json.Valid(data) {
		return Record{}, siteerrors.NewParseError(path, 0, fmt.Errorf("invalid JSON"))
	}

	var meta struct {
		Metadata struct {
			Title string `json:"title"`
		} `json:"metadata"`
	}
	_ = json.Unmarshal(data, &meta)

	return Record{
		ID:         id,
		Name:       meta.Metadata.Title,
		Definition: data,
		CreatedAt:  info.ModTime().UTC(),
		UpdatedAt:  info.ModTime().UTC(),
	}, nil
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
