// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gamut

import (
	"log/slog"
	"sync"

	"cogentcore.org/gamut/models"
)

// key identifies a cached boundary. Hue and lightness are bucket indexes.
type key struct {
	profile   uint64
	model     models.Model
	hue       int32
	lightness int32
}

// Cache holds gamut boundaries keyed by profile, model, hue bucket
// and lightness bucket. It is safe for concurrent use; concurrent
// misses on one entry may compute it more than once, and the first
// stored result wins.
type Cache struct {
	m sync.Map
}

// NewCache returns a new empty cache.
func NewCache() *Cache { return &Cache{} }

func (c *Cache) load(k key) (Boundary, bool) {
	v, ok := c.m.Load(k)
	if !ok {
		return Boundary{}, false
	}
	return v.(Boundary), true
}

func (c *Cache) store(k key, b Boundary) Boundary {
	v, _ := c.m.LoadOrStore(k, b)
	return v.(Boundary)
}

func (c *Cache) delete(k key) { c.m.Delete(k) }

// Len returns the number of cached boundaries.
func (c *Cache) Len() int {
	n := 0
	c.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Invalidate drops the boundaries of one profile context,
// returning how many were dropped. Searches still running on an
// engine of that profile store their results afterwards unless the
// engine was retired first; see [Engine.Retire].
func (c *Cache) Invalidate(profileID uint64) int {
	n := 0
	c.m.Range(func(k, _ any) bool {
		if k.(key).profile == profileID {
			c.m.Delete(k)
			n++
		}
		return true
	})
	if n > 0 {
		slog.Debug("invalidated gamut boundaries", "profile", profileID, "entries", n)
	}
	return n
}

// Clear drops all boundaries.
func (c *Cache) Clear() { c.m.Clear() }
