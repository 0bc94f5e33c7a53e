// Package sstree implements a height-balanced similarity-search tree
// (SS-tree) over high-dimensional vector embeddings: hypersphere bounding
// envelopes, direction-of-maximum-variance splitting, and best-first
// k-nearest-neighbor search. It is grounded on original_source/src/sstree.cpp
// and include/sstree.h, adapted into the node/tree split this module uses
// elsewhere (bsptree.Tree, quadtree.Tree) and onto the container/heap
// best-first pattern from quadtree/knn.go.
package sstree

import (
	"container/heap"
	"errors"

	"github.com/RogerHuauya/utec-eda/geom"
)

// SplitStrategy selects the coordinate-split heuristic used once a node
// overflows MaxEntries. Both are named in spec.md §4.4; MedianSplit is the
// tree's default.
type SplitStrategy int

const (
	// MedianSplit sorts entries along the direction of maximum variance
	// and splits at the median index.
	MedianSplit SplitStrategy = iota
	// MinVarianceSplit sweeps the direction of maximum variance for the
	// split point minimizing the two partitions' summed squared deviations
	// from their means.
	MinVarianceSplit
)

// ErrDimensionMismatch is returned when an embedding's dimensionality
// does not match the tree's configured dimension.
var ErrDimensionMismatch = errors.New("sstree: embedding dimension mismatch")

// Tree is a similarity-search tree over fixed-dimension embeddings.
type Tree struct {
	root          *Node
	dim           int
	maxEntries    int
	splitStrategy SplitStrategy
}

// New builds an empty SS-tree for embeddings of the given dimension. Nodes
// split once they exceed maxEntries entries, per spec.md §4.4.
func New(dim, maxEntries int, strategy SplitStrategy) *Tree {
	return &Tree{dim: dim, maxEntries: maxEntries, splitStrategy: strategy}
}

// Dim returns the tree's configured embedding dimension.
func (t *Tree) Dim() int { return t.dim }

// Root returns the tree's root node, or nil if the tree is empty.
func (t *Tree) Root() *Node { return t.root }

// IsEmpty reports whether the tree holds no data.
func (t *Tree) IsEmpty() bool { return t.root == nil }

// splitIndexFor picks the split index along direction using the tree's
// configured strategy.
func (t *Tree) splitIndexFor(n *Node) int {
	direction := n.directionOfMaxVariance()
	if t.splitStrategy == MinVarianceSplit {
		return n.minVarianceSplitIndex(direction)
	}
	return n.findSplitIndex(direction)
}

// Insert adds d to the tree, splitting nodes bottom-up from the leaf it
// lands in whenever an overflowing node exceeds maxEntries, and growing a
// new root when the split propagates past the top — exactly the recursive
// contract of SSTree::insert / SSNode::insert in original_source/src/sstree.cpp.
func (t *Tree) Insert(d *Data) error {
	if d.Embedding.Dim() != t.dim {
		return ErrDimensionMismatch
	}
	if t.root == nil {
		t.root = newLeafNode(d.Embedding, nil)
	} else if searchNode(t.root, d) != nil {
		return nil
	}

	left, right := t.insert(t.root, d)
	if left != nil {
		newRoot := newInternalNode(t.root.Centroid, nil)
		newRoot.Children = []*Node{left, right}
		left.Parent = newRoot
		right.Parent = newRoot
		newRoot.updateBoundingEnvelope()
		t.root = newRoot
	}
	return nil
}

// insert recurses to the leaf closest to d's embedding, inserts, and
// propagates a split upward when an overflowing node must be divided. It
// returns the two replacement nodes when n itself split, or (nil, nil)
// when no split was needed at this level.
func (t *Tree) insert(n *Node, d *Data) (left, right *Node) {
	if n.Leaf {
		for _, existing := range n.Data {
			if existing.Equal(d) {
				return nil, nil
			}
		}
		n.Data = append(n.Data, d)
		n.updateBoundingEnvelope()
		if len(n.Data) <= t.maxEntries {
			return nil, nil
		}
		return n.split(t.splitIndexFor(n))
	}

	closest := n.findClosestChild(d.Embedding)
	childLeft, childRight := t.insert(closest, d)
	if childLeft == nil {
		n.updateBoundingEnvelope()
		return nil, nil
	}

	n.Children = replaceChild(n.Children, closest, childLeft, childRight)
	childLeft.Parent = n
	childRight.Parent = n
	n.updateBoundingEnvelope()
	if len(n.Children) <= t.maxEntries {
		return nil, nil
	}
	return n.split(t.splitIndexFor(n))
}

func replaceChild(children []*Node, old, newLeft, newRight *Node) []*Node {
	out := make([]*Node, 0, len(children)+1)
	for _, c := range children {
		if c != old {
			out = append(out, c)
		}
	}
	return append(out, newLeft, newRight)
}

// Search returns the leaf holding an entry with d's identity (per
// Data.Equal), or nil if d is not present. It descends into every child
// whose bounding sphere contains d's embedding.
func (t *Tree) Search(d *Data) *Node {
	if t.root == nil {
		return nil
	}
	return searchNode(t.root, d)
}

func searchNode(n *Node, d *Data) *Node {
	if n.Leaf {
		for _, existing := range n.Data {
			if existing.Equal(d) {
				return n
			}
		}
		return nil
	}
	for _, c := range n.Children {
		if c.Centroid.Distance(d.Embedding) > c.Radius+geom.Epsilon {
			continue
		}
		if leaf := searchNode(c, d); leaf != nil {
			return leaf
		}
	}
	return nil
}

// searchItem is a node queued for best-first traversal, ordered by the
// sphere's lower-bound distance to the query: max(0, dist-radius).
type searchItem struct {
	node *Node
	dist geom.Scalar
}

type nodePQ []*searchItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*searchItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

type resultItem struct {
	data *Data
	dist geom.Scalar
}

// resultPQ is a bounded max-heap keyed on distance, mirroring
// quadtree/knn.go's resultPQ so the farthest of the current top-k sits at
// the root and can be evicted in O(log k).
type resultPQ []*resultItem

func (pq resultPQ) Len() int            { return len(pq) }
func (pq resultPQ) Less(i, j int) bool  { return pq[i].dist > pq[j].dist }
func (pq resultPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *resultPQ) Push(x interface{}) { *pq = append(*pq, x.(*resultItem)) }
func (pq *resultPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

func lowerBound(n *Node, query Vector) geom.Scalar {
	d := n.Centroid.Distance(query) - n.Radius
	if d < 0 {
		return 0
	}
	return d
}

// KNN returns the k entries nearest to query by Euclidean distance between
// embeddings, in ascending distance order, via the same best-first
// branch-and-bound pattern as quadtree.Tree.KNN: nodes are expanded in
// order of their bounding sphere's lower-bound distance to query, and a
// child is only descended into when that bound can still beat the current
// k-th best candidate.
func (t *Tree) KNN(query Vector, k int) []*Data {
	if t.root == nil || k <= 0 {
		return nil
	}

	nodes := &nodePQ{{node: t.root, dist: lowerBound(t.root, query)}}
	heap.Init(nodes)
	results := &resultPQ{}

	for nodes.Len() > 0 {
		top := heap.Pop(nodes).(*searchItem)
		if results.Len() == k && top.dist > (*results)[0].dist {
			continue
		}

		if top.node.Leaf {
			for _, d := range top.node.Data {
				dist := d.Embedding.Distance(query)
				if results.Len() < k {
					heap.Push(results, &resultItem{data: d, dist: dist})
				} else if dist < (*results)[0].dist {
					heap.Pop(results)
					heap.Push(results, &resultItem{data: d, dist: dist})
				}
			}
			continue
		}

		for _, child := range top.node.Children {
			bound := lowerBound(child, query)
			if results.Len() < k || bound < (*results)[0].dist {
				heap.Push(nodes, &searchItem{node: child, dist: bound})
			}
		}
	}

	out := make([]*Data, results.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(results).(*resultItem).data
	}
	return out
}
