package pathedit

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/bezpath/curve"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// === Host engine contract ==================================================

// The rendering engine hosting a path is an external collaborator. The
// controller reaches it exclusively through these three interfaces; tests
// substitute them with fakes.

// LineGeometry is a geometry container with a replaceable vertex buffer
// for a polyline-set primitive. SetVertices replaces positions and
// per-vertex colors wholesale.
type LineGeometry interface {
	SetVertices(pts []mgl64.Vec3, colors []color.RGBA)
}

// HandleNode is one pickable, draggable marker (a sphere-like instance in
// typical hosts). Dispose releases its rendering resources; it never owns
// the control point it proxies.
type HandleNode interface {
	MoveTo(p mgl64.Vec3)
	Dispose()
}

// HandleFactory creates handle nodes on demand. The drag callback fires
// with world coordinates while the user drags the node; slot identifies
// the handle within the controller's pool.
type HandleFactory interface {
	NewHandle(slot int, drag func(to mgl64.Vec3)) HandleNode
}

// === Slot mapping ==========================================================

// Slot resolves a handle pool index to the control point it edits. A
// joint handle edits the start slot of the right-hand segment, which the
// left-hand segment's end aliases; only the path's final handle edits an
// end slot directly.
type Slot struct {
	Segment int
	Role    curve.Role
}

// SlotOf maps a handle pool index to (segment, role) for a path of
// segCount segments. Pool indices run 0..segCount: index i < segCount is
// the start joint of segment i, index segCount is the final endpoint.
// Pure; recomputed against the current segment count on every use so
// surviving handles stay valid across pool shrinks.
func SlotOf(slot, segCount int) (Slot, error) {
	if segCount < 1 {
		return Slot{}, fmt.Errorf("%w: path has %d segments", curve.ErrIndexOutOfRange, segCount)
	}
	if slot < 0 || slot > segCount {
		return Slot{}, fmt.Errorf("%w: handle slot %d of %d", curve.ErrIndexOutOfRange, slot, segCount+1)
	}
	if slot < segCount {
		return Slot{Segment: slot, Role: curve.RoleStart}, nil
	}
	return Slot{Segment: segCount - 1, Role: curve.RoleEnd}, nil
}
