package geom

// Vector3D is a free vector in space: displacement, normal, or direction.
type Vector3D struct {
	X, Y, Z Scalar
}

// Add returns the sum of two vectors.
func (v Vector3D) Add(w Vector3D) Vector3D {
	return Vector3D{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vector3D) Sub(w Vector3D) Vector3D {
	return Vector3D{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale multiplies v by a scalar.
func (v Vector3D) Scale(s Scalar) Vector3D {
	return Vector3D{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and w.
func (v Vector3D) Dot(w Vector3D) Scalar {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product v x w.
func (v Vector3D) Cross(w Vector3D) Vector3D {
	return Vector3D{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Magnitude returns the Euclidean length of v.
func (v Vector3D) Magnitude() Scalar {
	return Sqrt(v.Dot(v))
}

// Unit returns v normalized to unit length. It returns the zero vector
// unchanged rather than dividing by (near) zero, since a degenerate
// normal is a construction error the caller (Polygon validation) rejects
// before a Plane is ever built from it.
func (v Vector3D) Unit() Vector3D {
	mag := v.Magnitude()
	if mag < Epsilon {
		return v
	}
	inv, _ := Div(1, mag)
	return v.Scale(inv)
}
