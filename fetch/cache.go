package fetch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	bolt "go.etcd.io/bbolt"
)

var pagesBucket = []byte("pages")

// PageCache stores raw fetched HTML keyed by URL in a bbolt file. Only page
// bytes are cached; rankings and outlines are never persisted.
type PageCache struct {
	db *bolt.DB
	mu sync.RWMutex
}

// OpenPageCache opens (creating if needed) the cache database at path.
func OpenPageCache(path string) (*PageCache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open page cache: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(pagesBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &PageCache{db: db}, nil
}

// Get returns the cached HTML for a URL, if present.
func (c *PageCache) Get(pageURL string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var html string
	var found bool
	c.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(pagesBucket).Get([]byte(pageURL))
		if v != nil {
			html = string(v)
			found = true
		}
		return nil
	})
	return html, found
}

// Put stores the HTML for a URL.
func (c *PageCache) Put(pageURL, html string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(pagesBucket).Put([]byte(pageURL), []byte(html))
	})
}

// Clear drops all cached pages.
func (c *PageCache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(pagesBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucket(pagesBucket)
		return err
	})
}

// Close closes the underlying database.
func (c *PageCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
