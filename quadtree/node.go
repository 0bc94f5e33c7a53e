package quadtree

import "github.com/RogerHuauya/utec-eda/geom"

// Node is a single quadtree node: a rectangular boundary, a bucket of
// particles when it is a leaf, and four exclusively-owned children
// otherwise. Parent is a non-owning back-reference used by relocation,
// valid for the node's lifetime because the tree's root owns the whole
// structure.
type Node struct {
	Boundary Rect
	Bucket   []*Particle
	Children [4]*Node
	Parent   *Node
	Leaf     bool
}

// Rect is an alias kept local to the package so call sites read
// quadtree.Node.Boundary without importing geom at every use site.
type Rect = geom.Rect

func newLeaf(boundary Rect, parent *Node) *Node {
	return &Node{Boundary: boundary, Parent: parent, Leaf: true}
}

// insert places p into this node's subtree: a leaf under capacity takes
// it directly, a leaf at capacity subdivides first, and an internal node
// always propagates to the matching child.
func (n *Node) insert(p *Particle, bucketSize int) bool {
	if !n.Boundary.Contains(p.Position) {
		return false
	}

	if n.Leaf {
		if len(n.Bucket) < bucketSize {
			n.Bucket = append(n.Bucket, p)
			return true
		}
		n.subdivide(bucketSize)
	}

	return n.propagate(p, bucketSize)
}

// subdivide creates the four children in {NW, NE, SW, SE} order at the
// boundary's midpoint and reassigns every bucketed particle into the
// child that now contains it.
func (n *Node) subdivide(bucketSize int) {
	quads := n.Boundary.Quadrants()
	for i, q := range quads {
		n.Children[i] = newLeaf(q, n)
	}
	n.Leaf = false

	old := n.Bucket
	n.Bucket = nil
	for _, particle := range old {
		n.propagate(particle, bucketSize)
	}
}

// propagate tries each child in fixed order, stopping at the first that
// accepts — exactly one child's boundary contains any interior point,
// and a point on a split line goes to the child on its high-X / high-Y
// side, since Rect.Contains is half-open.
func (n *Node) propagate(p *Particle, bucketSize int) bool {
	for _, c := range n.Children {
		if c.insert(p, bucketSize) {
			return true
		}
	}
	return false
}

// updateNode implements the relocation pass: leaves split their bucket
// into particles still inside the boundary and particles that escaped,
// keep the former, and relocate the latter; internal nodes simply
// recurse.
func (n *Node) updateNode(bucketSize int) {
	if n.Leaf {
		var stay []*Particle
		var escaped []*Particle
		for _, p := range n.Bucket {
			if n.Boundary.Contains(p.Position) {
				stay = append(stay, p)
			} else {
				escaped = append(escaped, p)
			}
		}
		n.Bucket = stay
		for _, p := range escaped {
			n.relocate(p, bucketSize)
		}
		return
	}

	for _, c := range n.Children {
		c.updateNode(bucketSize)
	}
}

// relocate walks up the parent chain from the leaf a particle escaped
// until it finds the first ancestor whose boundary still contains the
// particle, then propagates from there. If no ancestor (including the
// root) contains it, the particle has left the world entirely and is
// silently dropped.
func (n *Node) relocate(p *Particle, bucketSize int) {
	cur := n
	for cur != nil && !cur.Boundary.Contains(p.Position) {
		cur = cur.Parent
	}
	if cur == nil {
		return
	}
	cur.propagate(p, bucketSize)
}

// collect appends every particle reachable from this subtree to out, for
// coverage checks and brute-force comparisons.
func (n *Node) collect(out *[]*Particle) {
	if n.Leaf {
		*out = append(*out, n.Bucket...)
		return
	}
	for _, c := range n.Children {
		c.collect(out)
	}
}
