package geom

import (
	"math"
	"testing"
)

func TestPlaneClassify(t *testing.T) {
	pl := NewPlane(Point3D{X: 0, Y: 0, Z: 0}, Vector3D{X: 0, Y: 0, Z: 1})

	cases := []struct {
		q    Point3D
		want Relation
	}{
		{Point3D{X: 1, Y: 1, Z: 5}, InFront},
		{Point3D{X: 1, Y: 1, Z: -5}, Behind},
		{Point3D{X: 1, Y: 1, Z: 0}, Coincident},
	}
	for _, c := range cases {
		if got := pl.Classify(c.q); got != c.want {
			t.Errorf("Classify(%+v) = %v, want %v", c.q, got, c.want)
		}
	}
}

func TestPlaneEqualIgnoresOrientation(t *testing.T) {
	p1 := NewPlane(Point3D{X: 0, Y: 0, Z: 0}, Vector3D{X: 0, Y: 0, Z: 1})
	p2 := NewPlane(Point3D{X: 5, Y: 5, Z: 0}, Vector3D{X: 0, Y: 0, Z: -1})
	if !p1.Equal(p2) {
		t.Error("planes sharing a surface with opposite-orientation normals should be Equal")
	}

	p3 := NewPlane(Point3D{X: 0, Y: 0, Z: 1}, Vector3D{X: 0, Y: 0, Z: 1})
	if p1.Equal(p3) {
		t.Error("parallel but offset planes should not be Equal")
	}
}

func square(z Scalar) Polygon {
	verts := []Point3D{
		{X: 0, Y: 0, Z: z},
		{X: 10, Y: 0, Z: z},
		{X: 10, Y: 10, Z: z},
		{X: 0, Y: 10, Z: z},
	}
	p, err := NewPolygon(verts)
	if err != nil {
		panic(err)
	}
	return p
}

func TestNewPolygonRejectsDegenerateInput(t *testing.T) {
	_, err := NewPolygon([]Point3D{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}})
	if err != ErrTooFewVertices {
		t.Errorf("got %v, want ErrTooFewVertices", err)
	}

	_, err = NewPolygon([]Point3D{
		{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0},
	})
	if err != ErrDuplicateVertex {
		t.Errorf("got %v, want ErrDuplicateVertex", err)
	}

	_, err = NewPolygon([]Point3D{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0},
	})
	if err != ErrCollinearVertices {
		t.Errorf("got %v, want ErrCollinearVertices", err)
	}

	_, err = NewPolygon([]Point3D{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 5},
	})
	if err != ErrNotPlanar {
		t.Errorf("got %v, want ErrNotPlanar", err)
	}
}

func TestPolygonRelationWithPlane(t *testing.T) {
	poly := square(0)
	horizontal := NewPlane(Point3D{X: 0, Y: 0, Z: 0}, Vector3D{X: 0, Y: 0, Z: 1})
	if rel := poly.RelationWithPlane(horizontal); rel != Coincident {
		t.Errorf("coplanar polygon should be Coincident, got %v", rel)
	}

	above := NewPlane(Point3D{X: 0, Y: 0, Z: -1}, Vector3D{X: 0, Y: 0, Z: 1})
	if rel := poly.RelationWithPlane(above); rel != InFront {
		t.Errorf("polygon entirely above plane should be InFront, got %v", rel)
	}

	below := NewPlane(Point3D{X: 0, Y: 0, Z: 1}, Vector3D{X: 0, Y: 0, Z: 1})
	if rel := poly.RelationWithPlane(below); rel != Behind {
		t.Errorf("polygon entirely below plane should be Behind, got %v", rel)
	}

	straddle := NewPlane(Point3D{X: 5, Y: 0, Z: 0}, Vector3D{X: 1, Y: 0, Z: 0})
	if rel := poly.RelationWithPlane(straddle); rel != Split {
		t.Errorf("polygon straddling the plane should be Split, got %v", rel)
	}
}

func TestPolygonSplitProducesConvexHalves(t *testing.T) {
	poly := square(0)
	cutter := NewPlane(Point3D{X: 5, Y: 0, Z: 0}, Vector3D{X: 1, Y: 0, Z: 0})

	front, back := poly.Split(cutter)
	if len(front.Vertices) < 3 || len(back.Vertices) < 3 {
		t.Fatalf("split halves must be valid polygons, got %d/%d vertices",
			len(front.Vertices), len(back.Vertices))
	}

	if rel := front.RelationWithPlane(cutter); rel != InFront && rel != Coincident {
		t.Errorf("front half relation = %v, want InFront or Coincident", rel)
	}
	if rel := back.RelationWithPlane(cutter); rel != Behind && rel != Coincident {
		t.Errorf("back half relation = %v, want Behind or Coincident", rel)
	}

	for _, v := range front.Vertices {
		if v.X < 5-Epsilon {
			t.Errorf("front vertex %+v lies beyond the cut plane", v)
		}
	}
	for _, v := range back.Vertices {
		if v.X > 5+Epsilon {
			t.Errorf("back vertex %+v lies beyond the cut plane", v)
		}
	}
}

func TestPolygonSplitDegenerateReturnsOriginal(t *testing.T) {
	poly := square(0)
	nonIntersecting := NewPlane(Point3D{X: 100, Y: 0, Z: 0}, Vector3D{X: 1, Y: 0, Z: 0})

	front, back := poly.Split(nonIntersecting)
	if len(front.Vertices) != 0 {
		t.Errorf("front half should be empty when the plane never crosses the polygon, got %d vertices", len(front.Vertices))
	}
	if len(back.Vertices) != len(poly.Vertices) {
		t.Errorf("back half should equal the original polygon, got %d vertices, want %d", len(back.Vertices), len(poly.Vertices))
	}
}

func TestPolygonContainsPoint(t *testing.T) {
	poly := square(0)
	if !poly.ContainsPoint(Point3D{X: 5, Y: 5, Z: 0}) {
		t.Error("center of square should be contained")
	}
	if poly.ContainsPoint(Point3D{X: 50, Y: 50, Z: 0}) {
		t.Error("far outside point should not be contained")
	}
	if !poly.ContainsPoint(Point3D{X: 0, Y: 5, Z: 0}) {
		t.Error("point exactly on an edge should be contained")
	}
}

func TestRectContainsIsHalfOpen(t *testing.T) {
	r := NewRect(Point2D{X: 0, Y: 0}, Point2D{X: 10, Y: 10})
	if !r.Contains(Point2D{X: 0, Y: 0}) {
		t.Error("Pmin should be contained")
	}
	if r.Contains(Point2D{X: 10, Y: 5}) {
		t.Error("Pmax.X edge should not be contained")
	}
	if r.Contains(Point2D{X: 5, Y: 10}) {
		t.Error("Pmax.Y edge should not be contained")
	}
}

func TestRectQuadrantsPartitionWithoutOverlap(t *testing.T) {
	r := NewRect(Point2D{X: 0, Y: 0}, Point2D{X: 100, Y: 100})
	quads := r.Quadrants()

	corner := Point2D{X: 50, Y: 50}
	owners := 0
	for _, q := range quads {
		if q.Contains(corner) {
			owners++
		}
	}
	if owners != 1 {
		t.Errorf("shared-corner point should belong to exactly one quadrant under half-open Contains, got %d", owners)
	}
}

func TestRectMinDist(t *testing.T) {
	r := NewRect(Point2D{X: 0, Y: 0}, Point2D{X: 10, Y: 10})
	got := r.MinDist(Point2D{X: 15, Y: -5})
	want := math.Sqrt(5*5 + 5*5)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("MinDist = %v, want %v", got, want)
	}
	if d := r.MinDist(Point2D{X: 5, Y: 5}); d != 0 {
		t.Errorf("MinDist of an interior point should be 0, got %v", d)
	}
}

func TestDivByNearZeroFails(t *testing.T) {
	if _, err := Div(1, 0); err != ErrDivisionByZero {
		t.Errorf("Div by 0 should fail with ErrDivisionByZero, got %v", err)
	}
	if _, err := Div(1, 1e-12); err != ErrDivisionByZero {
		t.Errorf("Div by a sub-epsilon value should fail, got %v", err)
	}
	v, err := Div(10, 2)
	if err != nil || v != 5 {
		t.Errorf("Div(10,2) = %v, %v; want 5, nil", v, err)
	}
}
