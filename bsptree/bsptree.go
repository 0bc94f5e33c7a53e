// Package bsptree implements a binary space partitioning tree over 3D
// convex polygons: each node owns a partition plane (the support plane of
// the polygon that first landed there), a list of polygons coincident
// with that plane, and up to two exclusively-owned children.
package bsptree

import (
	"github.com/RogerHuauya/utec-eda/geom"
)

// Node is a single BSP partition: a plane, the polygons coincident with
// it, and the front/back subtrees it owns.
type Node struct {
	Partition geom.Plane
	Polygons  []geom.Polygon
	Front     *Node
	Back      *Node
}

func newNode(partition geom.Plane) *Node {
	return &Node{Partition: partition}
}

// PolygonCount returns the number of polygons stored in this node's
// subtree (itself plus front and back).
func (n *Node) PolygonCount() int {
	if n == nil {
		return 0
	}
	return len(n.Polygons) + n.Front.PolygonCount() + n.Back.PolygonCount()
}

// insert routes polygon into this node's subtree: coincident polygons
// join this node, front/back polygons recurse into the matching child
// (created lazily on the polygon's own support plane), and a polygon
// straddling the plane is split and each half routed independently.
func (n *Node) insert(polygon geom.Polygon) {
	switch polygon.RelationWithPlane(n.Partition) {
	case geom.Coincident:
		n.Polygons = append(n.Polygons, polygon)

	case geom.InFront:
		if n.Front == nil {
			n.Front = newNode(polygon.Plane())
		}
		n.Front.insert(polygon)

	case geom.Behind:
		if n.Back == nil {
			n.Back = newNode(polygon.Plane())
		}
		n.Back.insert(polygon)

	case geom.Split:
		// Each half is routed exactly like a freshly inserted polygon: a
		// child created to receive it partitions on the half's own
		// support plane, so it is immediately Coincident there and never
		// sits empty. Reusing the parent's partition here would insert a
		// half whose relation to that same plane is InFront/Behind, not
		// Coincident, leaving a pass-through node with no polygons of its
		// own, which violates the invariant that every node holds at
		// least one coincident polygon.
		frontHalf, backHalf := polygon.Split(n.Partition)
		if len(frontHalf.Vertices) > 0 {
			if n.Front == nil {
				n.Front = newNode(frontHalf.Plane())
			}
			n.Front.insert(frontHalf)
		}
		if len(backHalf.Vertices) > 0 {
			if n.Back == nil {
				n.Back = newNode(backHalf.Plane())
			}
			n.Back.insert(backHalf)
		}
	}
}

// detectCollision walks the near side of the partition first. A segment
// that stays on one side has this node's coincident polygons tested
// before that side's subtree; a segment that crosses the partition is
// tested against the near subtree, then the coincident polygons, then the
// far subtree.
func (n *Node) detectCollision(s geom.LineSegment) *geom.Polygon {
	if n == nil {
		return nil
	}

	relA := n.Partition.Classify(s.A)
	relB := n.Partition.Classify(s.B)

	switch {
	case relA != geom.Behind && relB != geom.Behind:
		if hit := testCoincident(n, s); hit != nil {
			return hit
		}
		return n.Front.detectCollision(s)

	case relA != geom.InFront && relB != geom.InFront:
		if hit := testCoincident(n, s); hit != nil {
			return hit
		}
		return n.Back.detectCollision(s)

	default:
		t, ok := s.IntersectPlane(n.Partition)
		if !ok {
			if hit := testCoincident(n, s); hit != nil {
				return hit
			}
			return nil
		}
		mid := s.PointAt(t)

		var near, far *Node
		var nearSeg, farSeg geom.LineSegment
		if relA == geom.InFront {
			near, far = n.Front, n.Back
			nearSeg = geom.LineSegment{A: s.A, B: mid}
			farSeg = geom.LineSegment{A: mid, B: s.B}
		} else {
			near, far = n.Back, n.Front
			nearSeg = geom.LineSegment{A: s.A, B: mid}
			farSeg = geom.LineSegment{A: mid, B: s.B}
		}

		if hit := near.detectCollision(nearSeg); hit != nil {
			return hit
		}
		if hit := testCoincident(n, s); hit != nil {
			return hit
		}
		return far.detectCollision(farSeg)
	}
}

// testCoincident checks the segment against every polygon coincident
// with this node's partition, returning the first whose intersection
// point with the plane lies within the polygon's boundary.
func testCoincident(n *Node, s geom.LineSegment) *geom.Polygon {
	for i := range n.Polygons {
		poly := &n.Polygons[i]
		t, ok := s.IntersectPlane(poly.Plane())
		if !ok {
			continue
		}
		if t < 0 || t > 1 {
			continue
		}
		hit := s.PointAt(t)
		if poly.ContainsPoint(hit) {
			return poly
		}
	}
	return nil
}

// Tree is a binary space partitioning tree with a lazily-created root.
type Tree struct {
	root *Node
}

// New returns an empty BSP tree.
func New() *Tree {
	return &Tree{}
}

// Insert inserts polygon into the tree, creating the root from the
// polygon's support plane if the tree was empty.
func (t *Tree) Insert(polygon geom.Polygon) {
	if t.root == nil {
		t.root = newNode(polygon.Plane())
	}
	t.root.insert(polygon)
}

// DetectCollision returns the first polygon the segment hits, nearest to
// s.A, or nil if the tree is empty or the segment hits nothing.
func (t *Tree) DetectCollision(s geom.LineSegment) *geom.Polygon {
	if t.root == nil {
		return nil
	}
	return t.root.detectCollision(s)
}

// IsEmpty reports whether the tree has no root yet.
func (t *Tree) IsEmpty() bool {
	return t.root == nil
}

// Root returns the tree's root node (nil if empty).
func (t *Tree) Root() *Node {
	return t.root
}
