// Package footprint derives a planar hit area from a sampled path.
//
// The combined polyline of a path is projected onto the XY working plane
// and thickened into a band, represented as one quad contour per polyline
// edge. Adjacent quads overlap: each quad is extended along its edge
// direction so the band stays closed across joints and sharp turns.
// Hosts use the footprint for coarse "did the user click near the curve"
// tests; precise picking of handle nodes stays with the host engine.
package footprint

import (
	"math"

	"github.com/akavel/polyclip-go"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/bezpath"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to the graphics tracer.
func L() tracing.Trace {
	return tracing.Select("graphics")
}

// Outline projects the polyline onto the XY plane and thickens every edge
// to 2*width (width on each side of the centerline), extending it by
// width past both endpoints. The quads are returned as the contours of
// one polygon and are deliberately left un-unioned: neighbors touch at
// the shared joint vertex, and membership is evaluated per contour by
// Contains. Degenerate edges are skipped; fewer than two distinct
// projected points yield an empty polygon.
func Outline(pts []mgl64.Vec3, width float64) polyclip.Polygon {
	var poly polyclip.Polygon
	if width <= 0 {
		L().Errorf("footprint width must be positive, got %g", width)
		return poly
	}
	for i := 0; i+1 < len(pts); i++ {
		if q := edgeQuad(pts[i], pts[i+1], width); q != nil {
			poly = append(poly, q)
		}
	}
	return poly
}

// edgeQuad thickens the projected edge a→b into a quad contour, or nil
// for an edge that collapses under projection.
func edgeQuad(a, b mgl64.Vec3, width float64) polyclip.Contour {
	ax, ay := a.X(), a.Y()
	bx, by := b.X(), b.Y()
	dx, dy := bx-ax, by-ay
	d := math.Hypot(dx, dy)
	if bezpath.Is0(d) {
		return nil
	}
	// unit direction and normal of the projected edge, scaled to width
	ux, uy := dx/d*width, dy/d*width
	nx, ny := -uy, ux
	// extend past the endpoints so neighboring quads overlap at joints
	ax, ay = ax-ux, ay-uy
	bx, by = bx+ux, by+uy
	return polyclip.Contour{
		{X: ax + nx, Y: ay + ny},
		{X: bx + nx, Y: by + ny},
		{X: bx - nx, Y: by - ny},
		{X: ax - nx, Y: ay - ny},
	}
}

// Contains reports whether (x,y) lies within the footprint. The contours
// of a footprint overlap pairwise at joints, so even-odd counting would
// cancel there; point-in-union of a quad set is membership in any quad.
func Contains(poly polyclip.Polygon, x, y float64) bool {
	for _, c := range poly {
		if c.Contains(polyclip.Point{X: x, Y: y}) {
			return true
		}
	}
	return false
}
