// Package store is the key-value persistence collaborator. Records live under
// slash-separated logical paths (for example
// rauchfrei_dailyEntries/demo-user-001/2026_09_01) and hold loosely-typed
// JSON objects; the engine owns all interpretation of the fields.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"
)

// Record is the raw, shallow representation of a stored object.
type Record = map[string]any

// Persistence defines the persistence contract for the tracker.
//
// Merge applies shallow semantics: fields present in the partial record
// overlay the stored ones, every other field stays untouched. There is no
// compare-and-swap; when two writers race on the same path the later merge
// wins.
type Persistence interface {
	Read(ctx context.Context, path string) (Record, bool, error)
	Write(ctx context.Context, path string, rec Record) error
	Merge(ctx context.Context, path string, partial Record) (Record, error)
	Append(ctx context.Context, prefix string, rec Record) (string, error)
	Keys(ctx context.Context, prefix string) ([]string, error)
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Read(ctx context.Context, path string) (Record, bool, error) {
	val, err := p.d.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("store: read %s: %w", path, err)
	}
	rec := Record{}
	if err := json.Unmarshal(val, &rec); err != nil {
		return nil, false, fmt.Errorf("store: decode %s: %w", path, err)
	}
	return rec, true, nil
}

func (p *persistence) Write(ctx context.Context, path string, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", path, err)
	}
	if err := p.d.Write(path, data); err != nil {
		return fmt.Errorf("store: write %s: %w", path, err)
	}
	return nil
}

// Merge reads the current record, overlays the partial fields, and writes the
// result back. The read-overlay-write happens in one call so independent
// field updates within a day do not clobber each other's fields.
func (p *persistence) Merge(ctx context.Context, path string, partial Record) (Record, error) {
	current, _, err := p.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	if current == nil {
		current = Record{}
	}
	for k, v := range partial {
		current[k] = v
	}
	if err := p.Write(ctx, path, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (p *persistence) Append(ctx context.Context, prefix string, rec Record) (string, error) {
	key := prefix + "/" + uuid.NewString()
	if err := p.Write(ctx, key, rec); err != nil {
		return "", err
	}
	return key, nil
}

func (p *persistence) Keys(ctx context.Context, prefix string) ([]string, error) {
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if strings.HasPrefix(key, prefix+"/") {
			keys = append(keys, key)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("store: list %s: %w", prefix, err)
	}
	return keys, nil
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s/%s", strings.Join(pathKey.Path, "/"), pathKey.FileName)
}
