package curve

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/bezpath"
)

// PointRef is an index into a control-point arena. Two segments sharing a
// joint carry the same PointRef, so joint identity is index equality.
type PointRef int

// NoPoint is the zero-value-adjacent invalid reference.
const NoPoint PointRef = -1

// Arena owns the backing storage for all control points of a path.
// Slots are never freed individually; a slot orphaned by segment removal
// simply stays unreferenced (paths are small, single digits to low tens
// of segments).
type Arena struct {
	pts []mgl64.Vec3
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Alloc stores p in a fresh slot and returns its reference.
func (a *Arena) Alloc(p mgl64.Vec3) PointRef {
	a.pts = append(a.pts, p)
	return PointRef(len(a.pts) - 1)
}

// At returns the point stored at r.
func (a *Arena) At(r PointRef) mgl64.Vec3 {
	return a.pts[r]
}

// Set overwrites the point stored at r. Every segment referencing r
// observes the new value on its next resampling.
func (a *Arena) Set(r PointRef, p mgl64.Vec3) {
	a.pts[r] = p
}

// CopyInto copies the coordinates of p into slot r, zapping near-zero
// coordinates. Copy-from semantics match what host engines expect from
// their vector types.
func (a *Arena) CopyInto(r PointRef, p mgl64.Vec3) {
	a.pts[r] = bezpath.ZapPt(p)
}

// Valid is a predicate: does r address an allocated slot?
func (a *Arena) Valid(r PointRef) bool {
	return r >= 0 && int(r) < len(a.pts)
}

// Len returns the number of allocated slots.
func (a *Arena) Len() int {
	return len(a.pts)
}
