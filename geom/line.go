package geom

// LineSegment is a bounded segment from A to B, used for BSP collision
// probes (e.g. a ray cast straight down through the world).
type LineSegment struct {
	A, B Point3D
}

// Direction returns the (non-unit) vector from A to B.
func (s LineSegment) Direction() Vector3D {
	return s.B.Sub(s.A)
}

// PointAt evaluates the segment's parametric form A + t*(B-A).
func (s LineSegment) PointAt(t Scalar) Point3D {
	return s.A.Add(s.Direction().Scale(t))
}

// IntersectPlane finds the parameter t at which the segment crosses
// plane pl, assuming the segment actually straddles it (ok is false when
// the segment is parallel to the plane, i.e. A and B have equal signed
// distance).
func (s LineSegment) IntersectPlane(pl Plane) (t Scalar, ok bool) {
	dA := pl.SignedDistance(s.A)
	dB := pl.SignedDistance(s.B)
	t, err := Div(dA, dA-dB)
	if err != nil {
		return 0, false
	}
	return t, true
}
