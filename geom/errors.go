package geom

import "errors"

// ErrTooFewVertices is returned when a polygon is constructed with fewer
// than three vertices.
var ErrTooFewVertices = errors.New("geom: polygon needs at least 3 vertices")

// ErrDuplicateVertex is returned when two consecutive vertices coincide.
var ErrDuplicateVertex = errors.New("geom: consecutive vertices must be distinct")

// ErrCollinearVertices is returned when three consecutive vertices are
// collinear, so no well-defined interior angle exists at the middle one.
var ErrCollinearVertices = errors.New("geom: consecutive vertices must not be collinear")

// ErrNotPlanar is returned when a polygon's vertices do not all lie on a
// single plane.
var ErrNotPlanar = errors.New("geom: vertices are not coplanar")

// ErrDegenerateNormal is returned when a support plane's normal could not
// be computed (first three vertices collinear).
var ErrDegenerateNormal = errors.New("geom: degenerate polygon normal")
