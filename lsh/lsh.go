// Package lsh implements random-hyperplane locality-sensitive hashing
// for dense float vectors.
//
// An Index draws several independent families of hyperplanes (the
// universes). A vector's bucket in one universe is the bit pattern of
// its dot-product signs against that universe's planes; vectors that
// share a bucket in many universes are likely close in cosine terms.
// An Index is not safe for concurrent mutation, guard it externally.
package lsh

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
)

const (
	// DefaultMaxBuckets bounds the per-universe bucket space.
	DefaultMaxBuckets = 1024
	// DefaultUniverses is the number of independent hash families.
	DefaultUniverses = 25
)

var (
	// ErrDims rejects a non-positive vector dimension.
	ErrDims = errors.New("lsh: dims must be positive")
	// ErrBuckets rejects a bucket space smaller than two.
	ErrBuckets = errors.New("lsh: need at least two buckets")
)

// Options tunes an Index. Zero fields fall back to the defaults; the
// seed picks the hyperplane draw, so equal seeds rebuild identical
// indexes.
type Options struct {
	MaxBuckets int
	Universes  int
	Seed       int64
}

// Index buckets vectors by the sign pattern of their hyperplane
// projections, once per universe.
type Index struct {
	dims    int
	planes  [][][]float64        // [universe][plane][dim]
	buckets []map[uint32][]int   // universe -> bucket -> sample indices
	vecs    [][]float64
}

// New creates an empty index for dims-dimensional vectors. The plane
// count per universe is floor(log2(MaxBuckets)), so the bucket space
// is the largest power of two not above MaxBuckets.
func New(dims int, o Options) (*Index, error) {
	if dims <= 0 {
		return nil, ErrDims
	}
	if o.MaxBuckets == 0 {
		o.MaxBuckets = DefaultMaxBuckets
	}
	if o.Universes <= 0 {
		o.Universes = DefaultUniverses
	}
	if o.MaxBuckets < 2 {
		return nil, ErrBuckets
	}

	nPlanes := int(math.Log2(float64(o.MaxBuckets)))
	rng := rand.New(rand.NewSource(o.Seed))

	planes := make([][][]float64, o.Universes)
	for u := range planes {
		planes[u] = make([][]float64, nPlanes)
		for p := range planes[u] {
			v := make([]float64, dims)
			for d := range v {
				v[d] = rng.NormFloat64()
			}
			planes[u][p] = v
		}
	}
	buckets := make([]map[uint32][]int, o.Universes)
	for u := range buckets {
		buckets[u] = make(map[uint32][]int)
	}
	return &Index{dims: dims, planes: planes, buckets: buckets}, nil
}

// Universes returns the number of hash families.
func (ix *Index) Universes() int { return len(ix.planes) }

// Len returns the number of indexed vectors.
func (ix *Index) Len() int { return len(ix.vecs) }

// Vec returns the indexed vector with the given id, for exact
// re-ranking of Query candidates. Callers must not modify it.
func (ix *Index) Vec(id int) []float64 { return ix.vecs[id] }

// Hash returns vec's bucket in the given universe: bit k is set iff
// the dot product with plane k is non-negative.
func (ix *Index) Hash(universe int, vec []float64) uint32 {
	var h uint32
	for k, plane := range ix.planes[universe] {
		var dot float64
		for d, x := range vec {
			dot += x * plane[d]
		}
		if dot >= 0 {
			h |= 1 << uint(k)
		}
	}
	return h
}

// Add appends the vectors and buckets each one in every universe.
// Sample indices are assigned in insertion order.
func (ix *Index) Add(vecs [][]float64) error {
	for _, v := range vecs {
		if len(v) != ix.dims {
			return fmt.Errorf("lsh: vector has %d dims, index wants %d", len(v), ix.dims)
		}
	}
	for _, v := range vecs {
		id := len(ix.vecs)
		ix.vecs = append(ix.vecs, v)
		for u := range ix.planes {
			h := ix.Hash(u, v)
			ix.buckets[u][h] = append(ix.buckets[u][h], id)
		}
	}
	return nil
}

// Query returns the indices of up to n indexed vectors that share
// vec's bucket in the most universes, most frequent first, equal
// counts ordered by index. n <= 0 returns every candidate.
func (ix *Index) Query(vec []float64, n int) ([]int, error) {
	if len(vec) != ix.dims {
		return nil, fmt.Errorf("lsh: query has %d dims, index wants %d", len(vec), ix.dims)
	}

	counts := make(map[int]int)
	for u := range ix.planes {
		for _, id := range ix.buckets[u][ix.Hash(u, vec)] {
			counts[id]++
		}
	}

	ids := make([]int, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if counts[ids[i]] != counts[ids[j]] {
			return counts[ids[i]] > counts[ids[j]]
		}
		return ids[i] < ids[j]
	})
	if n > 0 && len(ids) > n {
		ids = ids[:n]
	}
	return ids, nil
}
