package sstree

// Data is the immutable (embedding, path) payload of an SS-tree leaf,
// grounded on original_source/include/data.h. Identity is by path, per
// spec.md §3.
type Data struct {
	Embedding Vector
	Path      string
}

// NewData builds a Data entry.
func NewData(embedding Vector, path string) *Data {
	return &Data{Embedding: embedding, Path: path}
}

// Equal reports whether two Data entries share the same identity.
func (d *Data) Equal(other *Data) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.Path == other.Path
}
