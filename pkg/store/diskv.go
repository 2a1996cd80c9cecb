package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// Persistence defines the persistence contract for the checklist
// records. Loads never fail: missing or corrupt records fall back to an
// empty collection with the counter reset to 1, and the failure is
// logged rather than surfaced.
type Persistence interface {
	LoadItems(ctx context.Context) ItemsRecord
	SaveItems(rec ItemsRecord) error
	LoadCategories(ctx context.Context) CategoriesRecord
	SaveCategories(rec CategoriesRecord) error
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
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// flatTransform keeps both records at the store root; there are only
// two fixed keys.
func flatTransform(string) []string { return []string{} }

func (p *persistence) LoadItems(_ context.Context) ItemsRecord {
	rec := EmptyItems()
	if !p.read(itemsKey, &rec) {
		return EmptyItems()
	}
	return rec.normalized()
}

func (p *persistence) SaveItems(rec ItemsRecord) error {
	return p.write(itemsKey, rec.normalized())
}

func (p *persistence) LoadCategories(_ context.Context) CategoriesRecord {
	rec := EmptyCategories()
	if !p.read(categoriesKey, &rec) {
		return EmptyCategories()
	}
	return rec.normalized()
}

func (p *persistence) SaveCategories(rec CategoriesRecord) error {
	return p.write(categoriesKey, rec.normalized())
}

// read fills target from the stored record. A missing key is silent; an
// unreadable record is logged. Either way the caller keeps its fallback.
func (p *persistence) read(key string, target any) bool {
	val, err := p.d.Read(key)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
		}
		return false
	}
	if err := json.Unmarshal(val, target); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
		return false
	}
	return true
}

func (p *persistence) write(key string, rec any) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}
