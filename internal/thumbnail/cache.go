package thumbnail

import "image/color"

// Placeholder is shown in place of a thumbnail whose file cannot be decoded.
const Placeholder = "unreadable"

type cacheKey struct {
	path string
	cols int
	rows int
}

type cacheEntry struct {
	view string
	err  error
}

// Cache stores rendered thumbnails keyed by path and cell bound.
// Decode failures are cached too, so a broken file is read once.
// It is not safe for concurrent use; confine it to the Bubble Tea update loop.
type Cache struct {
	bg      color.Color
	entries map[cacheKey]cacheEntry
	load    func(path string, width, height int) (string, error)
}

// NewCache creates an empty cache that renders on bg.
func NewCache(bg color.Color) *Cache {
	c := &Cache{
		bg:      bg,
		entries: make(map[cacheKey]cacheEntry),
	}
	c.load = c.render
	return c
}

// Get returns the thumbnail for path fitted to cols×rows terminal cells.
// On failure it returns Placeholder together with the decode error.
func (c *Cache) Get(path string, cols, rows int) (string, error) {
	key := cacheKey{path: path, cols: cols, rows: rows}
	if e, ok := c.entries[key]; ok {
		return e.view, e.err
	}

	view, err := c.load(path, cols, rows*2)
	if err != nil {
		view = Placeholder
	}
	c.entries[key] = cacheEntry{view: view, err: err}
	return view, err
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Invalidate clears all cached entries.
func (c *Cache) Invalidate() {
	c.entries = make(map[cacheKey]cacheEntry)
}

func (c *Cache) render(path string, width, height int) (string, error) {
	img, err := Load(path, width, height)
	if err != nil {
		return "", err
	}
	return Render(img, c.bg), nil
}
