package quadtree

import (
	"container/heap"

	"github.com/RogerHuauya/utec-eda/geom"
)

// searchItem is an entry in the best-first node queue: a node paired with
// its minimum possible distance from the query point.
type searchItem struct {
	node *Node
	dist geom.Scalar
}

// nodePQ is a min-heap of searchItem by dist, grounded on
// katalvlaran-lvlath/dijkstra's container/heap.Interface implementation
// style (nodeItem/nodePQ), adapted from graph-distance ordering to
// node-boundary min-distance ordering.
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

// resultItem is an entry in the bounded result max-heap: a particle
// paired with its exact distance to the query point.
type resultItem struct {
	particle *Particle
	dist     geom.Scalar
}

// resultPQ is a max-heap of resultItem by dist, capped at k entries: once
// it is full, the caller pops the farthest entry before pushing a closer
// one.
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

// KNN returns the k particles closest to query, ascending by distance,
// using a best-first search: a min-heap of nodes ordered by minimum
// distance to the query point, and a bounded max-heap of the best
// candidates found so far.
func (t *Tree) KNN(query geom.Point2D, k int) []*Particle {
	if t.root == nil || k <= 0 {
		return nil
	}

	nodes := &nodePQ{{node: t.root, dist: 0}}
	heap.Init(nodes)

	results := &resultPQ{}
	heap.Init(results)

	for nodes.Len() > 0 {
		top := heap.Pop(nodes).(*searchItem)
		node := top.node
		if node == nil {
			continue
		}

		if node.Leaf {
			for _, particle := range node.Bucket {
				dist := query.Distance(particle.Position)
				if results.Len() < k {
					heap.Push(results, &resultItem{particle: particle, dist: dist})
				} else if dist < (*results)[0].dist {
					heap.Pop(results)
					heap.Push(results, &resultItem{particle: particle, dist: dist})
				}
			}
			continue
		}

		for _, child := range node.Children {
			if child == nil {
				continue
			}
			childDist := child.Boundary.MinDist(query)
			if results.Len() == k && childDist >= (*results)[0].dist {
				continue
			}
			heap.Push(nodes, &searchItem{node: child, dist: childDist})
		}
	}

	out := make([]*Particle, results.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(results).(*resultItem).particle
	}
	return out
}
