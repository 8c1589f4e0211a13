// Package variancecache wraps variance.VarianceMap with memoization and
// request deduplication. The engine itself holds no cross-call state (see
// internal/variance), so the caching concerns live here, as an explicit
// wrapper around it rather than inside it.
package variancecache

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/lumen-lang/lumen/internal/classmodel"
	"github.com/lumen-lang/lumen/internal/variance"
)

// result is what's memoized: the computed map plus the error VarianceMap
// returned, so a fatal result is cached too rather than recomputed on every
// call (a projection bug is deterministic for a given class and resolver).
type result struct {
	vm  map[string]variance.Variance
	err error
}

// Cache memoizes VarianceMap results per class, deduplicating concurrent
// requests for the same class with a singleflight.Group so N goroutines
// asking for the same class's variance map at once share one fixpoint
// computation instead of racing duplicate work.
type Cache struct {
	group singleflight.Group

	mu    sync.RWMutex
	cache map[classmodel.QualifiedName]result
}

func New() *Cache {
	return &Cache{cache: make(map[classmodel.QualifiedName]result)}
}

// VarianceMap returns c's variance map, computing and caching it on first
// request. resolver is only consulted on a cache miss.
func (c *Cache) VarianceMap(cls *classmodel.ClassDef, resolver variance.Resolver) (map[string]variance.Variance, error) {
	name := cls.QName()

	c.mu.RLock()
	if r, ok := c.cache[name]; ok {
		c.mu.RUnlock()
		return r.vm, r.err
	}
	c.mu.RUnlock()

	v, err, _ := c.group.Do(name.String(), func() (interface{}, error) {
		vm, err := variance.VarianceMap(cls, resolver)
		c.mu.Lock()
		c.cache[name] = result{vm: vm, err: err}
		c.mu.Unlock()
		return vm, err
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]variance.Variance), nil
}

// Invalidate drops a single class's cached result, so the next VarianceMap
// call for it recomputes from scratch. Nothing in this repository calls it
// automatically; in particular the stub library's override watcher only
// invalidates its own stub index, not this cache.
func (c *Cache) Invalidate(name classmodel.QualifiedName) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cache, name)
}

// InvalidateAll clears the entire cache.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[classmodel.QualifiedName]result)
}
