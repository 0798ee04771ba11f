package bitmap

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache provides thread-safe caching of loaded bitmaps to avoid redundant disk reads.
//
// Entries are keyed by the exact path string passed to Load. Concurrent loads
// of a path that is not cached yet share a single read, and the cached Bitmap
// also keeps its decoded pixels, so repeated tool calls on the same file
// decode it once.
//
// # Memory Management
//
// Cached bitmaps remain in memory until explicitly removed via Evict() or Clear().
//
// # Example Usage
//
//	cache := bitmap.NewCache()
//	bmp, err := cache.Load("/path/to/image.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cache.Evict("/path/to/image.png") // Optional: free memory
type Cache struct {
	mu      sync.RWMutex
	bitmaps map[string]*Bitmap
	loads   singleflight.Group
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		bitmaps: make(map[string]*Bitmap),
	}
}

// Load returns the cached Bitmap for path, reading the file on a miss.
// Failed reads are not cached.
func (c *Cache) Load(path string) (*Bitmap, error) {
	c.mu.RLock()
	if b, ok := c.bitmaps[path]; ok {
		c.mu.RUnlock()
		return b, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.loads.Do(path, func() (interface{}, error) {
		b, err := FromFile(path)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.bitmaps[path] = b
		c.mu.Unlock()
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Bitmap), nil
}

// Len returns the number of cached bitmaps.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.bitmaps)
}

// Clear removes all bitmaps from the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.bitmaps = make(map[string]*Bitmap)
	c.mu.Unlock()
}

// Evict removes the bitmap cached for path. Unknown paths are ignored.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.bitmaps, path)
	c.mu.Unlock()
}
