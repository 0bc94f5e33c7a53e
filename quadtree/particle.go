package quadtree

import "github.com/RogerHuauya/utec-eda/geom"

// Particle is a moving point: a mutable 2D position and velocity. The
// quadtree stores particles by shared-identity handle (here, a pointer)
// so the same particle can be referenced by its old and new leaf for the
// instant between relocation and reinsertion.
type Particle struct {
	Position geom.Point2D
	Velocity geom.Point2D
}

// NewParticle builds a stationary particle at the given position.
func NewParticle(position geom.Point2D) *Particle {
	return &Particle{Position: position}
}

// Advance moves the particle by its velocity, with no bounds checking —
// the quadtree's UpdateTree is what discovers a particle has left its
// leaf and relocates it.
func (p *Particle) Advance() {
	p.Position = p.Position.Add(p.Velocity)
}

// ReflectOn advances the particle and bounces its velocity off the faces
// of bound. This is demo/simulation behavior, not a quadtree invariant: nothing in
// the tree requires particles to stay inside the world, since UpdateTree
// already handles particles that escape their leaf (or the world
// entirely, in which case Node.relocate simply fails to find a new
// home — see Tree.UpdateTree).
func (p *Particle) ReflectOn(bound geom.Rect) {
	p.Advance()
	if p.Position.X < bound.Pmin.X || p.Position.X >= bound.Pmax.X {
		p.Velocity.X = -p.Velocity.X
	}
	if p.Position.Y < bound.Pmin.Y || p.Position.Y >= bound.Pmax.Y {
		p.Velocity.Y = -p.Velocity.Y
	}
}
