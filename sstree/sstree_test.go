package sstree_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RogerHuauya/utec-eda/geom"
	"github.com/RogerHuauya/utec-eda/sstree"
)

const (
	numPoints        = 100
	maxPointsPerNode = 20
	embeddingDim     = 8
)

func randomEmbedding(rng *rand.Rand) sstree.Vector {
	coords := make([]geom.Scalar, embeddingDim)
	for i := range coords {
		coords[i] = rng.Float64()*200 - 100
	}
	return sstree.NewVector(coords...)
}

func buildTree(t *testing.T, strategy sstree.SplitStrategy) (*sstree.Tree, []*sstree.Data) {
	t.Helper()
	rng := rand.New(rand.NewSource(7))
	tree := sstree.New(embeddingDim, maxPointsPerNode, strategy)

	data := make([]*sstree.Data, numPoints)
	for i := 0; i < numPoints; i++ {
		d := sstree.NewData(randomEmbedding(rng), fmt.Sprintf("eda_%d.jpg", i))
		data[i] = d
		assert.NoError(t, tree.Insert(d))
	}
	return tree, data
}

// collectDFS mirrors collectDataDFS from the original Google Test suite.
func collectDFS(n *sstree.Node, out map[*sstree.Data]bool) {
	if n.Leaf {
		for _, d := range n.Data {
			out[d] = true
		}
		return
	}
	for _, c := range n.Children {
		collectDFS(c, out)
	}
}

func TestAllDataPresent(t *testing.T) {
	tree, data := buildTree(t, sstree.MedianSplit)

	found := make(map[*sstree.Data]bool)
	collectDFS(tree.Root(), found)

	assert.Len(t, found, len(data))
	for _, d := range data {
		assert.True(t, found[d], "data %q missing from tree", d.Path)
	}
}

// leavesAtSameLevel mirrors leavesAtSameLevelDFS: every leaf must sit at
// the same depth, since splits always propagate to a fresh root rather
// than growing one branch deeper than another.
func leavesAtSameLevel(n *sstree.Node, level int, leafLevel *int) bool {
	if n.Leaf {
		if *leafLevel == -1 {
			*leafLevel = level
		}
		return *leafLevel == level
	}
	for _, c := range n.Children {
		if !leavesAtSameLevel(c, level+1, leafLevel) {
			return false
		}
	}
	return true
}

func TestLeavesAtSameLevel(t *testing.T) {
	tree, _ := buildTree(t, sstree.MedianSplit)
	leafLevel := -1
	assert.True(t, leavesAtSameLevel(tree.Root(), 0, &leafLevel))
}

func noNodeExceedsMaxEntries(n *sstree.Node, max int) bool {
	count := len(n.Data)
	if !n.Leaf {
		count = len(n.Children)
	}
	if count > max {
		return false
	}
	for _, c := range n.Children {
		if !noNodeExceedsMaxEntries(c, max) {
			return false
		}
	}
	return true
}

func TestNoNodeExceedsMaxEntries(t *testing.T) {
	tree, _ := buildTree(t, sstree.MedianSplit)
	assert.True(t, noNodeExceedsMaxEntries(tree.Root(), maxPointsPerNode))
}

func sphereCoversAllPoints(n *sstree.Node) bool {
	if n.Leaf {
		for _, d := range n.Data {
			if n.Centroid.Distance(d.Embedding) > n.Radius+geom.Epsilon {
				return false
			}
		}
		return true
	}
	for _, c := range n.Children {
		if !sphereCoversAllPoints(c) {
			return false
		}
	}
	return true
}

func TestSphereCoversAllPoints(t *testing.T) {
	tree, _ := buildTree(t, sstree.MedianSplit)
	assert.True(t, sphereCoversAllPoints(tree.Root()))
}

func sphereCoversAllChildrenSpheres(n *sstree.Node) bool {
	if n.Leaf {
		return true
	}
	for _, c := range n.Children {
		if n.Centroid.Distance(c.Centroid)+c.Radius > n.Radius+geom.Epsilon {
			return false
		}
	}
	for _, c := range n.Children {
		if !sphereCoversAllChildrenSpheres(c) {
			return false
		}
	}
	return true
}

func TestSphereCoversAllChildrenSpheres(t *testing.T) {
	tree, _ := buildTree(t, sstree.MedianSplit)
	assert.True(t, sphereCoversAllChildrenSpheres(tree.Root()))
}

// TestMinVarianceSplitStrategyAlsoHoldsInvariants exercises the alternate
// split heuristic named in spec.md §4.4 against the same structural
// invariants, since the strategy only changes where a node divides, not
// the envelope/fanout guarantees that must hold regardless.
func TestMinVarianceSplitStrategyAlsoHoldsInvariants(t *testing.T) {
	tree, data := buildTree(t, sstree.MinVarianceSplit)

	found := make(map[*sstree.Data]bool)
	collectDFS(tree.Root(), found)
	assert.Len(t, found, len(data))
	assert.True(t, noNodeExceedsMaxEntries(tree.Root(), maxPointsPerNode))
	assert.True(t, sphereCoversAllPoints(tree.Root()))
}

func TestInsertRejectsDimensionMismatch(t *testing.T) {
	tree := sstree.New(embeddingDim, maxPointsPerNode, sstree.MedianSplit)
	bad := sstree.NewData(sstree.NewVector(1, 2, 3), "short.jpg")
	assert.ErrorIs(t, tree.Insert(bad), sstree.ErrDimensionMismatch)
}

func TestSearchFindsInsertedData(t *testing.T) {
	tree, data := buildTree(t, sstree.MedianSplit)
	for _, d := range data {
		leaf := tree.Search(d)
		if assert.NotNil(t, leaf, "search missed %q", d.Path) {
			assert.Contains(t, leaf.Data, d)
		}
	}
}

func TestSearchMissingDataReturnsNil(t *testing.T) {
	tree, _ := buildTree(t, sstree.MedianSplit)
	absent := sstree.NewData(sstree.NewVector(1000, 1000, 1000, 1000, 1000, 1000, 1000, 1000), "absent.jpg")
	assert.Nil(t, tree.Search(absent))
}

// TestKNNMatchesBruteForce is the SS-tree analogue of the quadtree
// k-NN-correctness property in spec.md §8.
func TestKNNMatchesBruteForce(t *testing.T) {
	tree, data := buildTree(t, sstree.MedianSplit)
	query := sstree.NewVector(0, 0, 0, 0, 0, 0, 0, 0)
	k := 5

	got := tree.KNN(query, k)
	assert.Len(t, got, k)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Embedding.Distance(query), got[i].Embedding.Distance(query))
	}

	bruteForceSorted := append([]*sstree.Data(nil), data...)
	for i := 0; i < len(bruteForceSorted); i++ {
		for j := i + 1; j < len(bruteForceSorted); j++ {
			if bruteForceSorted[j].Embedding.Distance(query) < bruteForceSorted[i].Embedding.Distance(query) {
				bruteForceSorted[i], bruteForceSorted[j] = bruteForceSorted[j], bruteForceSorted[i]
			}
		}
	}

	for i := range got {
		assert.InDelta(t, bruteForceSorted[i].Embedding.Distance(query), got[i].Embedding.Distance(query), 1e-9)
	}
}

func TestKNNOnEmptyTreeReturnsNil(t *testing.T) {
	tree := sstree.New(embeddingDim, maxPointsPerNode, sstree.MedianSplit)
	assert.Nil(t, tree.KNN(sstree.NewVector(0, 0, 0, 0, 0, 0, 0, 0), 3))
}
