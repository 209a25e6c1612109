// Package altitude maps point heights to colors for visualization.
package altitude

import (
	"math"

	"github.com/seqsense/pcdstats/pcd"
)

// RGB is a color with channels in [0, 1].
type RGB struct {
	R, G, B float32
}

// Gradient maps a normalized height t to a color going from blue at t=0
// to red at t=1. t is clamped into [0, 1].
func Gradient(t float64) RGB {
	switch {
	case math.IsNaN(t), t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	return RGB{R: float32(t), G: 0, B: float32(1 - t)}
}

// ZRange returns the minimum and maximum z of points.
// maxZ is lifted to minZ+1 when all heights are equal.
func ZRange(points []pcd.Point3) (minZ, maxZ float64, ok bool) {
	if len(points) == 0 {
		return 0, 0, false
	}
	minZ, maxZ = points[0].Z, points[0].Z
	for _, p := range points[1:] {
		minZ = math.Min(minZ, p.Z)
		maxZ = math.Max(maxZ, p.Z)
	}
	if maxZ == minZ {
		maxZ = minZ + 1
	}
	return minZ, maxZ, true
}

// Normalize maps z in [minZ, maxZ] to [0, 1].
// Halves are subtracted so that the span of finite values never overflows.
// It returns 0 when the span is too small to be represented.
func Normalize(z, minZ, maxZ float64) float64 {
	span := maxZ/2 - minZ/2
	if !(span > 0) {
		return 0
	}
	return (z/2 - minZ/2) / span
}

// Colors returns one color per point in the same order.
// It returns false without coloring when the cloud has no z or no point.
func Colors(points []pcd.Point3, hasZ bool) ([]RGB, bool) {
	if !hasZ {
		return nil, false
	}
	minZ, maxZ, ok := ZRange(points)
	if !ok {
		return nil, false
	}
	colors := make([]RGB, len(points))
	for i, p := range points {
		colors[i] = Gradient(Normalize(p.Z, minZ, maxZ))
	}
	return colors, true
}

// Float32Buffer interleaves colors as r, g, b for a vertex color buffer.
func Float32Buffer(colors []RGB) []float32 {
	buf := make([]float32, 0, len(colors)*3)
	for _, c := range colors {
		buf = append(buf, c.R, c.G, c.B)
	}
	return buf
}
