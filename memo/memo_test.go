package memo

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/surface"
)

var bump = []surface.Point{
	surface.Pt(0, 0),
	surface.Pt(1, 2),
	surface.Pt(2, 3),
	surface.Pt(3, 1),
	surface.Pt(4, 0),
}

var small = surface.Options{
	Curve:   surface.CurveOptions{SamplesPerSegment: 8},
	Revolve: surface.RevolveOptions{AngleSamples: 6},
}

func TestCacheHit(t *testing.T) {
	c := New(4)
	first, err := c.Generate(bump, small)
	require.NoError(t, err)
	second, err := c.Generate(bump, small)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, Stats{Hits: 1, Misses: 1}, c.Stats())
	assert.Equal(t, 1, c.Len())

	want, err := surface.Generate(bump, small)
	require.NoError(t, err)
	assert.Equal(t, want, first)
}

func TestCacheWorkersShareEntry(t *testing.T) {
	c := New(4)
	_, err := c.Generate(bump, small)
	require.NoError(t, err)

	par := small
	par.Curve.Workers = 4
	par.Revolve.Workers = 4
	_, err = c.Generate(bump, par)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Stats().Hits)
}

func TestCacheEviction(t *testing.T) {
	c := New(2)
	opts := func(n int) surface.Options {
		o := small
		o.Curve.SamplesPerSegment = n
		return o
	}
	for n := 1; n <= 3; n++ {
		_, err := c.Generate(bump, opts(n))
		require.NoError(t, err)
	}
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 1, c.Stats().Evictions)

	// The oldest entry is gone, the newer ones remain.
	_, err := c.Generate(bump, opts(3))
	require.NoError(t, err)
	_, err = c.Generate(bump, opts(2))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Stats().Hits)
	_, err = c.Generate(bump, opts(1))
	require.NoError(t, err)
	assert.Equal(t, Stats{Hits: 2, Misses: 4, Evictions: 2}, c.Stats())
}

func TestCacheErrorsNotCached(t *testing.T) {
	c := New(0)
	for range 2 {
		_, err := c.Generate(bump[:3], small)
		require.Error(t, err)
		assert.True(t, errors.Is(err, surface.ErrTooFewPoints))
	}
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, Stats{Misses: 2}, c.Stats())
}

func TestCachePurge(t *testing.T) {
	c := New(DefaultCapacity)
	_, err := c.Generate(bump, small)
	require.NoError(t, err)
	c.Purge()
	assert.Equal(t, 0, c.Len())
	_, err = c.Generate(bump, small)
	require.NoError(t, err)
	assert.Equal(t, Stats{Misses: 2}, c.Stats())
}

func TestCacheConcurrent(t *testing.T) {
	c := New(8)
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o := small
			o.Curve.SamplesPerSegment = 1 + i%4
			res, err := c.Generate(bump, o)
			if assert.NoError(t, err) {
				assert.Len(t, res.Curve, 2*o.Curve.SamplesPerSegment)
			}
		}()
	}
	wg.Wait()
	st := c.Stats()
	assert.Equal(t, 32, st.Hits+st.Misses)
	assert.LessOrEqual(t, c.Len(), 4)
}

func TestKey(t *testing.T) {
	base := Key(bump, small)
	assert.Equal(t, base, Key(append([]surface.Point(nil), bump...), small))

	moved := append([]surface.Point(nil), bump...)
	moved[2].Y += 1e-15
	variants := map[string]string{
		"moved point":     Key(moved, small),
		"fewer points":    Key(bump[:4], small),
		"parametrization": Key(bump, surface.Options{Curve: surface.CurveOptions{SamplesPerSegment: 8, Parametrization: surface.Chordal}, Revolve: small.Revolve}),
		"angles":          Key(bump, surface.Options{Curve: small.Curve, Revolve: surface.RevolveOptions{AngleSamples: 7}}),
		"sweep":           Key(bump, surface.Options{Curve: small.Curve, Revolve: surface.RevolveOptions{AngleSamples: 6, Sweep: 1}}),
	}
	seen := map[string]string{base: "base"}
	for name, k := range variants {
		if prev, ok := seen[k]; ok {
			t.Errorf("%s has the same key as %s", name, prev)
		}
		seen[k] = name
	}
}

func TestKeyResolvesDefaults(t *testing.T) {
	explicit := surface.Options{
		Curve:   surface.CurveOptions{SamplesPerSegment: surface.DefaultSamples},
		Revolve: surface.RevolveOptions{AngleSamples: surface.DefaultAngles, Sweep: 2 * math.Pi},
	}
	assert.Equal(t, Key(bump, surface.Options{}), Key(bump, explicit))

	// The sweep of a single ring is irrelevant.
	one := surface.Options{Curve: small.Curve, Revolve: surface.RevolveOptions{AngleSamples: 1}}
	oneSwept := one
	oneSwept.Revolve.Sweep = math.Pi
	assert.Equal(t, Key(bump, one), Key(bump, oneSwept))
	oneBroken := one
	oneBroken.Revolve.Sweep = math.NaN()
	assert.NotEqual(t, Key(bump, one), Key(bump, oneBroken))

	c := New(4)
	_, err := c.Generate(bump, surface.Options{})
	require.NoError(t, err)
	_, err = c.Generate(bump, explicit)
	require.NoError(t, err)
	assert.Equal(t, Stats{Hits: 1, Misses: 1}, c.Stats())
	assert.Equal(t, 1, c.Len())

	// Invalid options still fail after a valid entry was cached.
	_, err = c.Generate(bump, one)
	require.NoError(t, err)
	_, err = c.Generate(bump, oneBroken)
	assert.ErrorIs(t, err, surface.ErrResolution)
}

func ExampleCache() {
	c := New(DefaultCapacity)
	for range 3 {
		if _, err := c.Generate(bump, small); err != nil {
			panic(err)
		}
	}
	fmt.Printf("%+v\n", c.Stats())
	// Output:
	// {Hits:2 Misses:1 Evictions:0}
}
