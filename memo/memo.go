// Package memo caches surfaces by their inputs.
//
// The surface package itself keeps no state between calls. Interactive front
// ends, which regenerate the same surface whenever a user presses a button
// without changing anything, can put a [Cache] in front of it.
package memo

import (
	"math"
	"strconv"
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/schuko/tracing"

	"honnef.co/go/surface"
)

// tracer traces with key 'surface.memo'.
func tracer() tracing.Trace {
	return tracing.Select("surface.memo")
}

// DefaultCapacity is the capacity of caches created with a non-positive
// capacity.
const DefaultCapacity = 16

// Stats reports cache effectiveness.
type Stats struct {
	Hits      int
	Misses    int
	Evictions int
}

// Cache memoizes [surface.Generate], keyed by control points and resolution
// parameters. When full, it evicts the oldest entry. It is safe for concurrent
// use.
//
// Cached results are shared between callers and must not be modified.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  *linkedhashmap.Map // key → *surface.Result, oldest first
	stats    Stats
}

// New returns an empty cache holding at most capacity results.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		capacity: capacity,
		entries:  linkedhashmap.New(),
	}
}

// Key returns the cache key for points and opts. Options that don't influence
// the result, such as the number of workers, are not part of the key, and
// defaults are resolved first, so that zero options and their explicit
// default values share a key.
func Key(points []surface.Point, opts surface.Options) string {
	// Invalid options fail in Generate and are never stored; their raw
	// values are good enough for a key.
	samples, err := opts.Curve.Samples()
	if err != nil {
		samples = opts.Curve.SamplesPerSegment
	}
	rings, err := opts.Revolve.Rings()
	if err != nil {
		rings = opts.Revolve.AngleSamples
	}
	sweep, err := opts.Revolve.SweepAngle()
	switch {
	case err != nil:
		sweep = opts.Revolve.Sweep
	case rings == 1:
		// A single ring lies at angle 0 whatever the sweep.
		sweep = 0
	}

	b := make([]byte, 0, 16+len(points)*34)
	b = strconv.AppendInt(b, int64(samples), 10)
	b = append(b, '/')
	b = strconv.AppendInt(b, int64(opts.Curve.Parametrization), 10)
	b = append(b, '/')
	b = strconv.AppendInt(b, int64(rings), 10)
	b = append(b, '/')
	b = strconv.AppendUint(b, math.Float64bits(sweep), 16)
	for _, p := range points {
		b = append(b, ';')
		b = strconv.AppendUint(b, math.Float64bits(p.X), 16)
		b = append(b, ',')
		b = strconv.AppendUint(b, math.Float64bits(p.Y), 16)
	}
	return string(b)
}

// Generate returns the cached result for points and opts, computing and
// storing it with [surface.Generate] on a miss. Errors are not cached.
func (c *Cache) Generate(points []surface.Point, opts surface.Options) (*surface.Result, error) {
	key := Key(points, opts)
	c.mu.Lock()
	if v, ok := c.entries.Get(key); ok {
		c.stats.Hits++
		c.mu.Unlock()
		return v.(*surface.Result), nil
	}
	c.stats.Misses++
	c.mu.Unlock()

	// Computed without holding the lock. Concurrent misses for the same key
	// compute the same value, and the last one stored wins.
	res, err := surface.Generate(points, opts)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Put(key, res)
	for c.entries.Size() > c.capacity {
		it := c.entries.Iterator()
		if !it.First() {
			break
		}
		c.entries.Remove(it.Key())
		c.stats.Evictions++
	}
	tracer().Debugf("memo: stored result, %d of %d entries", c.entries.Size(), c.capacity)
	return res, nil
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Size()
}

// Purge drops all cached results. Statistics are kept.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Clear()
}

// Stats returns a snapshot of the cache statistics.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
