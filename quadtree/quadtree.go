// Package quadtree implements a point-region quadtree over moving 2D
// particles with bucketed leaves: half-open boundary containment (a
// point on a shared edge belongs to exactly one child), leaf-bucket-
// then-subdivide insertion, parent back-references for relocation, and
// best-first k-NN.
package quadtree

import "github.com/RogerHuauya/utec-eda/geom"

// Tree is a point-region quadtree over a fixed world rectangle.
type Tree struct {
	root       *Node
	bucketSize int
}

// New builds an empty quadtree over world with the given per-leaf bucket
// capacity. world must satisfy geom.Rect.IsValid (pmin <= pmax
// componentwise); bucketSize must be positive.
func New(world geom.Rect, bucketSize int) *Tree {
	return &Tree{
		root:       newLeaf(world, nil),
		bucketSize: bucketSize,
	}
}

// Insert adds particles to the tree one at a time. It returns the number
// of particles actually accepted; those outside the world boundary are
// silently rejected, so the caller can compare the returned count
// against len(particles) to detect rejects.
func (t *Tree) Insert(particles ...*Particle) int {
	accepted := 0
	for _, p := range particles {
		if t.root.insert(p, t.bucketSize) {
			accepted++
		}
	}
	return accepted
}

// UpdateTree relocates every particle that has moved outside its leaf's
// boundary since the last pass. It must not be called concurrently with
// Insert or KNN — the tree requires external synchronization across all
// three.
func (t *Tree) UpdateTree() {
	t.root.updateNode(t.bucketSize)
}

// Root returns the tree's root node.
func (t *Tree) Root() *Node {
	return t.root
}

// BucketSize returns the configured per-leaf capacity.
func (t *Tree) BucketSize() int {
	return t.bucketSize
}

// Particles returns every particle reachable from the root, for
// coverage checks and brute-force comparison in tests.
func (t *Tree) Particles() []*Particle {
	var out []*Particle
	t.root.collect(&out)
	return out
}
