// Package seed generates random particles, polygons and embeddings for
// the CLI demo subcommands and for tests that need non-trivial trees
// without hand-rolling random geometry in every call site. The
// generators are grounded directly on the random-data helpers in
// original_source's Google Test suites: generateRandomPolygons
// (Google_tests/bsptree/test.cpp), generateRandomData
// (Google_tests/sstree/test.cpp), and the driver-position seeding in
// 444lessio-GeoRunner/main.go's simulateDriver.
package seed

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/RogerHuauya/utec-eda/geom"
	"github.com/RogerHuauya/utec-eda/quadtree"
	"github.com/RogerHuauya/utec-eda/sstree"
)

// Particles returns n particles with positions drawn uniformly from
// world, matching the random-position seeding 444lessio-GeoRunner's
// simulateDriver uses for each driver's starting point.
func Particles(rng *rand.Rand, world geom.Rect, n int) []*quadtree.Particle {
	out := make([]*quadtree.Particle, n)
	width := world.Pmax.X - world.Pmin.X
	height := world.Pmax.Y - world.Pmin.Y
	for i := range out {
		position := geom.Point2D{
			X: world.Pmin.X + rng.Float64()*width,
			Y: world.Pmin.Y + rng.Float64()*height,
		}
		out[i] = quadtree.NewParticle(position)
	}
	return out
}

// randomUnitVector draws a uniformly random direction on the unit
// sphere, matching randomUnitVector in Google_tests/bsptree/test.cpp.
func randomUnitVector(rng *rand.Rand) geom.Vector3D {
	theta := rng.Float64() * 2 * math.Pi
	phi := math.Acos(rng.Float64()*2 - 1)
	return geom.Vector3D{
		X: math.Sin(phi) * math.Cos(theta),
		Y: math.Sin(phi) * math.Sin(theta),
		Z: math.Cos(phi),
	}.Unit()
}

// orthogonalFrame builds two vectors orthogonal to v and to each other,
// matching generateOrthogonalVectors in the same test file.
func orthogonalFrame(v geom.Vector3D) (geom.Vector3D, geom.Vector3D) {
	var a geom.Vector3D
	if math.Abs(v.X) > math.Abs(v.Z) {
		a = geom.Vector3D{X: v.Y, Y: -v.X, Z: 0}
	} else {
		a = geom.Vector3D{X: 0, Y: -v.Z, Z: v.Y}
	}
	b := v.Cross(a)
	return a.Unit(), b.Unit()
}

// Polygons returns up to n random coplanar triangles centered at random
// points inside [0,box]^3, built on a random orthogonal frame the way
// generateRandomPolygons does. A vanishingly rare degenerate draw is
// silently skipped rather than retried, so the caller may get fewer
// than n polygons back.
func Polygons(rng *rand.Rand, n int, box geom.Scalar) []geom.Polygon {
	out := make([]geom.Polygon, 0, n)
	const numVertices = 3
	angleIncrement := 2 * math.Pi / numVertices

	for i := 0; i < n; i++ {
		center := geom.Point3D{
			X: rng.Float64() * box,
			Y: rng.Float64() * box,
			Z: rng.Float64() * box,
		}
		normal := randomUnitVector(rng)
		u, w := orthogonalFrame(normal)

		verts := make([]geom.Point3D, numVertices)
		for j := 0; j < numVertices; j++ {
			angle := geom.Scalar(j)*angleIncrement + rng.Float64()*(angleIncrement/4)
			radius := 0.5 + rng.Float64()
			verts[j] = center.
				Add(u.Scale(radius * math.Cos(angle))).
				Add(w.Scale(radius * math.Sin(angle)))
		}

		poly, err := geom.NewPolygon(verts)
		if err != nil {
			continue
		}
		out = append(out, poly)
	}
	return out
}

// Embeddings returns n random Data entries of the given dimension, with
// coordinates in [-scale, scale] and image-path naming matching
// generateRandomData's "eda_<i>.jpg" convention.
func Embeddings(rng *rand.Rand, n, dim int, scale geom.Scalar) []*sstree.Data {
	out := make([]*sstree.Data, n)
	for i := range out {
		coords := make([]geom.Scalar, dim)
		for d := range coords {
			coords[d] = rng.Float64()*2*scale - scale
		}
		out[i] = sstree.NewData(sstree.NewVector(coords...), fmt.Sprintf("eda_%d.jpg", i))
	}
	return out
}
