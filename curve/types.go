package curve

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

var (
	// ErrNilPath indicates a nil path pointer.
	ErrNilPath = errors.New("path must not be nil")
	// ErrInvalidSampleCount indicates a sample count below 1.
	ErrInvalidSampleCount = errors.New("sample count must be at least 1")
	// ErrInvalidRemoval indicates an attempt to remove the only remaining segment.
	ErrInvalidRemoval = errors.New("cannot remove the last remaining segment")
	// ErrIndexOutOfRange indicates a segment or vertex index beyond the path.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Role names one of the four control points of a segment.
type Role int8

const (
	// RoleStart is the first on-curve point of a segment.
	RoleStart Role = iota
	// RoleCtrl1 is the control handle following the start point.
	RoleCtrl1
	// RoleCtrl2 is the control handle preceding the end point.
	RoleCtrl2
	// RoleEnd is the last on-curve point of a segment.
	RoleEnd
)

func (r Role) String() string {
	switch r {
	case RoleStart:
		return "start"
	case RoleCtrl1:
		return "ctrl1"
	case RoleCtrl2:
		return "ctrl2"
	case RoleEnd:
		return "end"
	}
	return "<invalid role>"
}
