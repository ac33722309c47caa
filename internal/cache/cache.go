// Package cache wraps go-cache with GOB file persistence. It backs the
// projects section of the portfolio, where repository metadata and star
// counts change slowly enough to keep across runs. Snippet content is never
// cached here: every snippet load fetches fresh.
package cache

import (
	"bytes"
	"encoding/gob"
	"log"
	"os"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	defaultTTL      = 4 * time.Hour
	cleanupInterval = 6 * time.Hour
)

func init() {
	gob.Register(0) // star counts
}

// Cache wraps go-cache with GOB persistence.
type Cache struct {
	inner *gocache.Cache
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{inner: gocache.New(defaultTTL, cleanupInterval)}
}

// LoadFromFile loads a cache from a GOB file, returning a fresh cache when
// the file is missing or unreadable as GOB.
func LoadFromFile(filename string) (*Cache, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, err
	}
	dec := gob.NewDecoder(bytes.NewBuffer(data))
	items := map[string]gocache.Item{}
	if err := dec.Decode(&items); err != nil {
		log.Printf("Cache decode error (starting fresh): %v", err)
		return New(), nil
	}
	return &Cache{inner: gocache.NewFrom(defaultTTL, cleanupInterval, items)}, nil
}

// SaveToFile saves the cache to a GOB file.
func (c *Cache) SaveToFile(filename string) error {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(c.inner.Items()); err != nil {
		return err
	}
	return os.WriteFile(filename, buf.Bytes(), 0600)
}

// Get retrieves a value by key.
func (c *Cache) Get(key string) (any, bool) {
	return c.inner.Get(key)
}

// Set stores a value with the default expiration.
func (c *Cache) Set(key string, val any) {
	c.inner.Set(key, val, gocache.DefaultExpiration)
}

// Flush clears all cached items.
func (c *Cache) Flush() {
	c.inner.Flush()
}
