package sstree

import (
	"sort"

	"github.com/RogerHuauya/utec-eda/geom"
)

// Node is an SS-tree node: a centroid/radius bounding hypersphere, plus
// either data entries (leaf) or child nodes (internal). Grounded on
// original_source/include/sstree.h and src/sstree.cpp.
type Node struct {
	Centroid Vector
	Radius   geom.Scalar
	Leaf     bool
	Parent   *Node
	Data     []*Data
	Children []*Node
}

func newLeafNode(centroid Vector, parent *Node) *Node {
	return &Node{Centroid: centroid.Clone(), Leaf: true, Parent: parent}
}

func newInternalNode(centroid Vector, parent *Node) *Node {
	return &Node{Centroid: centroid.Clone(), Leaf: false, Parent: parent}
}

// IntersectsPoint reports whether point lies inside the node's bounding
// sphere.
func (n *Node) IntersectsPoint(point Vector) bool {
	return n.Centroid.Distance(point) <= n.Radius
}

// findClosestChild returns the child whose centroid is nearest target.
// It panics if called on a leaf, mirroring the original's defensive
// exit(0) — a programming error, not a data condition, so it is not
// surfaced as a Go error.
func (n *Node) findClosestChild(target Vector) *Node {
	if n.Leaf {
		panic("sstree: findClosestChild called on a leaf node")
	}
	var closest *Node
	best := geom.Scalar(0)
	for i, child := range n.Children {
		d := child.Centroid.Distance(target)
		if i == 0 || d < best {
			best = d
			closest = child
		}
	}
	return closest
}

// entriesCentroids returns the centroids of this node's entries: data
// embeddings for a leaf, child centroids for an internal node.
func (n *Node) entriesCentroids() []Vector {
	if n.Leaf {
		out := make([]Vector, len(n.Data))
		for i, d := range n.Data {
			out[i] = d.Embedding
		}
		return out
	}
	out := make([]Vector, len(n.Children))
	for i, c := range n.Children {
		out[i] = c.Centroid
	}
	return out
}

// updateBoundingEnvelope recomputes the node's centroid (componentwise
// mean of its entries) and radius, per spec.md §4.4.
func (n *Node) updateBoundingEnvelope() {
	centroids := n.entriesCentroids()
	if len(centroids) == 0 {
		return
	}
	dim := centroids[0].Dim()
	mean := make(Vector, dim)
	for _, c := range centroids {
		for i := 0; i < dim; i++ {
			mean[i] += c[i]
		}
	}
	for i := range mean {
		mean[i] /= geom.Scalar(len(centroids))
	}
	n.Centroid = mean

	var radius geom.Scalar
	if n.Leaf {
		for _, c := range centroids {
			if d := c.Distance(mean); d > radius {
				radius = d
			}
		}
	} else {
		for _, child := range n.Children {
			if d := child.Centroid.Distance(mean) + child.Radius; d > radius {
				radius = d
			}
		}
	}
	n.Radius = radius
}

// directionOfMaxVariance returns the dimension index with the highest
// sample variance among this node's entry centroids.
func (n *Node) directionOfMaxVariance() int {
	centroids := n.entriesCentroids()
	if len(centroids) == 0 {
		return 0
	}
	dim := centroids[0].Dim()
	best, bestVar := 0, geom.Scalar(0)
	for i := 0; i < dim; i++ {
		var mean geom.Scalar
		for _, c := range centroids {
			mean += c[i]
		}
		mean /= geom.Scalar(len(centroids))

		var variance geom.Scalar
		for _, c := range centroids {
			diff := c[i] - mean
			variance += diff * diff
		}
		variance /= geom.Scalar(len(centroids))

		if variance > bestVar {
			bestVar = variance
			best = i
		}
	}
	return best
}

// findSplitIndex sorts this node's entries along coordinate i and
// returns the median index, the default split strategy of spec.md §4.4.
func (n *Node) findSplitIndex(i int) int {
	n.sortEntriesByCoordinate(i)
	return n.entryCount() / 2
}

// minVarianceSplitIndex sweeps coordinate i looking for the split point
// that minimizes the two partitions' summed squared deviations from
// their own means — the
// alternate strategy named in spec.md §4.4 ("also defined and may be
// substituted"), grounded on SSNode::minVarianceSplit in
// original_source/src/sstree.cpp.
func (n *Node) minVarianceSplitIndex(i int) int {
	n.sortEntriesByCoordinate(i)
	centroids := n.entriesCentroids()
	values := make([]geom.Scalar, len(centroids))
	for j, c := range centroids {
		values[j] = c[i]
	}

	minIndex := 1
	minVarianceSum := geom.Scalar(0)
	first := true
	for split := 1; split < len(values); split++ {
		leftMean, rightMean := mean(values[:split]), mean(values[split:])
		varianceSum := sumSquaredDiff(values[:split], leftMean) + sumSquaredDiff(values[split:], rightMean)
		if first || varianceSum < minVarianceSum {
			minVarianceSum = varianceSum
			minIndex = split
			first = false
		}
	}
	return minIndex
}

func mean(values []geom.Scalar) geom.Scalar {
	var sum geom.Scalar
	for _, v := range values {
		sum += v
	}
	return sum / geom.Scalar(len(values))
}

func sumSquaredDiff(values []geom.Scalar, m geom.Scalar) geom.Scalar {
	var sum geom.Scalar
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return sum
}

func (n *Node) entryCount() int {
	if n.Leaf {
		return len(n.Data)
	}
	return len(n.Children)
}

func (n *Node) sortEntriesByCoordinate(i int) {
	if n.Leaf {
		sort.Slice(n.Data, func(a, b int) bool {
			return n.Data[a].Embedding[i] < n.Data[b].Embedding[i]
		})
		return
	}
	sort.Slice(n.Children, func(a, b int) bool {
		return n.Children[a].Centroid[i] < n.Children[b].Centroid[i]
	})
}

// split partitions the node's entries at splitIndex into two sibling
// nodes of the same kind, re-parenting children when splitting an
// internal node, and recomputes both siblings' bounding envelopes.
func (n *Node) split(splitIndex int) (left, right *Node) {
	if n.Leaf {
		left = newLeafNode(n.Centroid, n.Parent)
		right = newLeafNode(n.Centroid, n.Parent)
		left.Data = append([]*Data(nil), n.Data[:splitIndex]...)
		right.Data = append([]*Data(nil), n.Data[splitIndex:]...)
	} else {
		left = newInternalNode(n.Centroid, n.Parent)
		right = newInternalNode(n.Centroid, n.Parent)
		left.Children = append([]*Node(nil), n.Children[:splitIndex]...)
		right.Children = append([]*Node(nil), n.Children[splitIndex:]...)
		for _, c := range left.Children {
			c.Parent = left
		}
		for _, c := range right.Children {
			c.Parent = right
		}
	}
	left.updateBoundingEnvelope()
	right.updateBoundingEnvelope()
	return left, right
}
