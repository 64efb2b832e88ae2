/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cache provides an LRU cache of parsed token files. Entries
// are invalidated when a file's size or modification time changes,
// which keeps watch-mode rebuilds from re-parsing unchanged inputs.
package cache

import (
	"io/fs"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"bennypowers.dev/nol/token"
)

// entry pairs parsed tokens with the file metadata they were read at.
type entry struct {
	size    int64
	modTime time.Time
	tokens  []*token.Token
}

// Cache is an LRU cache of parsed token lists. Tokens are immutable
// after parsing, so cached slices are shared, not copied.
type Cache struct {
	lru *lru.Cache[string, entry]
}

// New creates a cache holding up to size entries.
func New(size int) (*Cache, error) {
	l, err := lru.New[string, entry](size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: l}, nil
}

// Get returns the cached tokens for key when the file described by
// info has not changed since they were stored.
func (c *Cache) Get(key string, info fs.FileInfo) ([]*token.Token, bool) {
	e, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	if e.size != info.Size() || !e.modTime.Equal(info.ModTime()) {
		c.lru.Remove(key)
		return nil, false
	}
	return e.tokens, true
}

// Put stores tokens for key along with the file metadata used for
// invalidation.
func (c *Cache) Put(key string, info fs.FileInfo, tokens []*token.Token) {
	c.lru.Add(key, entry{
		size:    info.Size(),
		modTime: info.ModTime(),
		tokens:  tokens,
	})
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Purge drops every cached entry.
func (c *Cache) Purge() {
	c.lru.Purge()
}
