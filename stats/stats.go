// Package stats computes structural statistics of decoded point clouds.
package stats

import (
	"math"

	"github.com/seqsense/pcdstats/pcd"
)

// Decimals is the number of decimal places of reported scalars.
const Decimals = 4

// BoundingBox is an axis aligned bounding box.
type BoundingBox struct {
	MinX float64 `json:"minX"`
	MaxX float64 `json:"maxX"`
	MinY float64 `json:"minY"`
	MaxY float64 `json:"maxY"`
	MinZ float64 `json:"minZ"`
	MaxZ float64 `json:"maxZ"`
}

// PointCloudStats is the summary of one decoded file.
type PointCloudStats struct {
	NumPoints int `json:"numPoints"`
	// BoundingBox is nil when there is no point.
	BoundingBox *BoundingBox `json:"boundingBox"`
}

// BoundingBoxOf returns the bounding box of points at full precision.
// It returns false for an empty sequence.
func BoundingBoxOf(points []pcd.Point3) (BoundingBox, bool) {
	if len(points) == 0 {
		return BoundingBox{}, false
	}
	p := points[0]
	b := BoundingBox{
		MinX: p.X, MaxX: p.X,
		MinY: p.Y, MaxY: p.Y,
		MinZ: p.Z, MaxZ: p.Z,
	}
	for _, p := range points[1:] {
		b.MinX, b.MaxX = math.Min(b.MinX, p.X), math.Max(b.MaxX, p.X)
		b.MinY, b.MaxY = math.Min(b.MinY, p.Y), math.Max(b.MaxY, p.Y)
		b.MinZ, b.MaxZ = math.Min(b.MinZ, p.Z), math.Max(b.MaxZ, p.Z)
	}
	return b, true
}

// Rounded returns b with every scalar rounded by Round.
func (b BoundingBox) Rounded() BoundingBox {
	return BoundingBox{
		MinX: Round(b.MinX), MaxX: Round(b.MaxX),
		MinY: Round(b.MinY), MaxY: Round(b.MaxY),
		MinZ: Round(b.MinZ), MaxZ: Round(b.MaxZ),
	}
}

// Compute returns the point count and the rounded bounding box.
func Compute(points []pcd.Point3) PointCloudStats {
	s := PointCloudStats{NumPoints: len(points)}
	if b, ok := BoundingBoxOf(points); ok {
		r := b.Rounded()
		s.BoundingBox = &r
	}
	return s
}

// Round rounds v to Decimals decimal places, half away from zero.
func Round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) >= 1e15 {
		return v
	}
	scale := math.Pow10(Decimals)
	r := math.Round(v*scale) / scale
	if r == 0 {
		// Drop the sign of negative zero.
		return 0
	}
	return r
}
