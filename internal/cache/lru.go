// Package cache provides caching utilities for fetched document files.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// File is a fetched document: its raw bytes plus the server-suggested
// filename, when one was supplied.
type File struct {
	Data          []byte
	SuggestedName string
}

// FileCache is a thread-safe LRU cache of fetched files keyed by file URL,
// so preview, download and bulk export don't re-fetch the same document.
type FileCache struct {
	cache *lru.Cache[string, *File]
}

// NewFileCache creates a new LRU cache with the specified maximum number of files.
func NewFileCache(maxItems int) (*FileCache, error) {
	c, err := lru.New[string, *File](maxItems)
	if err != nil {
		return nil, err
	}
	return &FileCache{cache: c}, nil
}

// Get retrieves a cached file by its URL.
func (c *FileCache) Get(fileURL string) (*File, bool) {
	return c.cache.Get(fileURL)
}

// Put adds or updates a file in the cache.
func (c *FileCache) Put(fileURL string, f *File) {
	c.cache.Add(fileURL, f)
}

// Len returns the current number of cached files.
func (c *FileCache) Len() int {
	return c.cache.Len()
}
