package pcd

import (
	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

// Point3 is a decoded point. Z is 0 when the source has no z field.
type Point3 struct {
	X, Y, Z float64
}

// Vec3 converts the point to single precision.
func (p Point3) Vec3() mat.Vec3 {
	return mat.Vec3{float32(p.X), float32(p.Y), float32(p.Z)}
}

// Cloud is a decoded point sequence in file order.
type Cloud struct {
	Header Header
	Points []Point3
	// Dropped is the number of rows or records discarded as malformed or
	// implausible.
	Dropped int
}

// HasZ reports whether the points carry a z coordinate from the file.
func (c *Cloud) HasZ() bool {
	return c.Header.HasZ()
}

// Vec3Slice returns the points as a single precision slice for rendering.
func Vec3Slice(points []Point3) pc.Vec3Slice {
	out := make(pc.Vec3Slice, len(points))
	for i, p := range points {
		out[i] = p.Vec3()
	}
	return out
}
