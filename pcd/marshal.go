package pcd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/seqsense/pcgol/pc"
)

// MarshalASCII writes points as an ASCII PCD file.
// z is omitted from the FIELDS line when hasZ is false.
func MarshalASCII(w io.Writer, points []Point3, hasZ bool) error {
	fields := []string{"x", "y", "z"}
	if !hasZ {
		fields = fields[:2]
	}
	bw := bufio.NewWriter(w)
	if err := writeHeader(bw, fields, len(points), "ascii"); err != nil {
		return err
	}

	var line []byte
	for _, p := range points {
		line = strconv.AppendFloat(line[:0], p.X, 'f', -1, 64)
		line = append(line, ' ')
		line = strconv.AppendFloat(line, p.Y, 'f', -1, 64)
		if hasZ {
			line = append(line, ' ')
			line = strconv.AppendFloat(line, p.Z, 'f', -1, 64)
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeHeader(w io.Writer, fields []string, n int, data string) error {
	repeat := func(s string) string {
		r := make([]string, len(fields))
		for i := range r {
			r[i] = s
		}
		return strings.Join(r, " ")
	}
	_, err := fmt.Fprintf(w,
		"VERSION 0.7\nFIELDS %s\nSIZE %s\nTYPE %s\nCOUNT %s\nWIDTH %d\nHEIGHT 1\nVIEWPOINT 0 0 0 1 0 0 0\nPOINTS %d\nDATA %s\n",
		strings.Join(fields, " "), repeat("4"), repeat("F"), repeat("1"), n, n, data,
	)
	return err
}

// Export writes points as a binary PCD file with x, y, z float fields.
func Export(w io.Writer, points []Point3) error {
	pp := &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Version:   0.7,
			Fields:    []string{"x", "y", "z"},
			Size:      []int{4, 4, 4},
			Type:      []string{"F", "F", "F"},
			Count:     []int{1, 1, 1},
			Width:     len(points),
			Height:    1,
			Viewpoint: []float32{0, 0, 0, 1, 0, 0, 0},
		},
		Points: len(points),
	}
	pp.Data = make([]byte, len(points)*pp.Stride())

	if len(points) > 0 {
		it, err := pp.Vec3Iterator()
		if err != nil {
			return err
		}
		for _, p := range points {
			it.SetVec3(p.Vec3())
			it.Incr()
		}
	}
	return pc.Marshal(pp, w)
}
