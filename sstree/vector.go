package sstree

import "github.com/RogerHuauya/utec-eda/geom"

// Vector is a dense embedding vector. The specification treats this type
// as an external collaborator (elementwise arithmetic, L2 norm); this
// module still has to provide a concrete one to compile against, so it
// follows original_source/src/point.cpp's Eigen::VectorXf-backed Point
// class — elementwise +/-, scalar *//, and norm — using a plain []float64
// instead of a linear-algebra dependency, since no example repo in this
// retrieval pack depends on one.
type Vector []geom.Scalar

// NewVector copies coords into a new Vector.
func NewVector(coords ...geom.Scalar) Vector {
	v := make(Vector, len(coords))
	copy(v, coords)
	return v
}

// Dim returns the vector's dimensionality.
func (v Vector) Dim() int { return len(v) }

// Add returns the elementwise sum of v and w.
func (v Vector) Add(w Vector) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + w[i]
	}
	return out
}

// Sub returns the elementwise difference v - w.
func (v Vector) Sub(w Vector) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] - w[i]
	}
	return out
}

// Scale returns v scaled by s.
func (v Vector) Scale(s geom.Scalar) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] * s
	}
	return out
}

// Norm returns the L2 (Euclidean) norm of v.
func (v Vector) Norm() geom.Scalar {
	var sumSq geom.Scalar
	for _, c := range v {
		sumSq += c * c
	}
	return geom.Sqrt(sumSq)
}

// Distance returns the L2 distance between v and w.
func (v Vector) Distance(w Vector) geom.Scalar {
	return v.Sub(w).Norm()
}

// Clone returns a defensive copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}
