package geom

// Point2D is a point in the plane. It also doubles as the velocity type
// for quadtree particles: a Particle is a (position, velocity) pair of
// Point2D.
type Point2D struct {
	X, Y Scalar
}

// Add returns p translated by vector v.
func (p Point2D) Add(v Point2D) Point2D {
	return Point2D{p.X + v.X, p.Y + v.Y}
}

// Sub returns the vector from q to p (p - q).
func (p Point2D) Sub(q Point2D) Point2D {
	return Point2D{p.X - q.X, p.Y - q.Y}
}

// Scale returns p scaled by s, as a vector operation.
func (p Point2D) Scale(s Scalar) Point2D {
	return Point2D{p.X * s, p.Y * s}
}

// Equal reports exact equality; no epsilon tolerance is applied here
// beyond what Scalar itself encodes.
func (p Point2D) Equal(q Point2D) bool {
	return p.X == q.X && p.Y == q.Y
}

// Distance returns the Euclidean distance between p and q.
func (p Point2D) Distance(q Point2D) Scalar {
	d := p.Sub(q)
	return Sqrt(d.X*d.X + d.Y*d.Y)
}

// Point3D is a point in space, used for polygon vertices and BSP planes.
type Point3D struct {
	X, Y, Z Scalar
}

// Add returns p translated by vector v.
func (p Point3D) Add(v Vector3D) Point3D {
	return Point3D{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the vector from q to p.
func (p Point3D) Sub(q Point3D) Vector3D {
	return Vector3D{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Scale returns p's coordinates scaled by s, reinterpreted as a point.
func (p Point3D) Scale(s Scalar) Point3D {
	return Point3D{p.X * s, p.Y * s, p.Z * s}
}

// Lerp linearly interpolates from p to q at parameter t.
func (p Point3D) Lerp(q Point3D, t Scalar) Point3D {
	return p.Add(q.Sub(p).Scale(t))
}

// Equal reports exact equality.
func (p Point3D) Equal(q Point3D) bool {
	return p.X == q.X && p.Y == q.Y && p.Z == q.Z
}
