package tanner

import "errors"

// ErrNilMatrix is returned when Build is given a nil ParityMatrix.
var ErrNilMatrix = errors.New("tanner: nil parity matrix")

// ErrDuplicateVertex is returned when the same vertex ID is registered
// twice; Build never triggers this itself (check and variable IDs never
// collide), so seeing it means a caller reused the internal graph type
// incorrectly.
var ErrDuplicateVertex = errors.New("tanner: vertex already registered")

// ErrUnknownVertex is returned when an edge names a vertex that was
// never added.
var ErrUnknownVertex = errors.New("tanner: unknown vertex")

// ErrNoCycle is returned by Girth when the graph contains no cycle at all
// (every edge is a bridge). Tree-like Tanner graphs are degenerate for
// QC-LDPC purposes but not malformed, so callers that only want a
// best-effort diagnostic should treat this as "girth is undefined," not
// as a hard failure.
var ErrNoCycle = errors.New("tanner: graph has no cycle")
