package images

import (
	"image"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultFrameCacheSize bounds the number of zoomed base frames kept.
const DefaultFrameCacheSize = 8

// FrameKey identifies a base frame: one source at one padding and zoom.
type FrameKey struct {
	Source  any // comparable identity of the source bitmap
	Padding int
	Zoom    int
}

// FrameCache keeps recently built base frames so that overlay-only redraws
// (dragging a box) skip rescaling the source image.
type FrameCache struct {
	cache  *lru.Cache[FrameKey, *image.RGBA]
	logger *slog.Logger
	hits   uint64
	misses uint64
}

// NewFrameCache returns a cache holding up to size frames.
func NewFrameCache(size int, logger *slog.Logger) (*FrameCache, error) {
	if size <= 0 {
		size = DefaultFrameCacheSize
	}
	c, err := lru.New[FrameKey, *image.RGBA](size)
	if err != nil {
		return nil, err
	}
	return &FrameCache{cache: c, logger: logger}, nil
}

// Get returns the frame for key, building and storing it on a miss. The
// returned image is shared; callers must Clone before drawing on it.
func (c *FrameCache) Get(key FrameKey, build func() *image.RGBA) *image.RGBA {
	if c == nil || c.cache == nil {
		return build()
	}
	if img, ok := c.cache.Get(key); ok {
		c.hits++
		return img
	}
	c.misses++
	img := build()
	if img != nil {
		c.cache.Add(key, img)
	}
	if c.logger != nil {
		c.logger.Debug("frame cache miss", "zoom", key.Zoom, "padding", key.Padding, "hits", c.hits, "misses", c.misses)
	}
	return img
}

// Purge drops every cached frame.
func (c *FrameCache) Purge() {
	if c == nil || c.cache == nil {
		return
	}
	c.cache.Purge()
}

// Len returns the number of cached frames.
func (c *FrameCache) Len() int {
	if c == nil || c.cache == nil {
		return 0
	}
	return c.cache.Len()
}
