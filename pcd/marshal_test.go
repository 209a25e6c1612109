package pcd

import (
	"bytes"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

func TestMarshalASCII_RoundTrip(t *testing.T) {
	testCases := map[string]struct {
		points []Point3
		hasZ   bool
	}{
		"XYZ": {
			points: []Point3{
				{1.23456, -2.5, 3},
				{-1000.0001, 0, 999999.9999},
				{0.00005, -0.00004, 42},
			},
			hasZ: true,
		},
		"XY": {
			points: []Point3{{1.5, 2.5, 0}, {-3.25, 4.125, 0}},
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := MarshalASCII(&buf, tt.points, tt.hasZ); err != nil {
				t.Fatal(err)
			}
			c, err := Parse(buf.Bytes(), DecodeOptions{})
			if err != nil {
				t.Fatal(err)
			}
			if c.Header.Points != len(tt.points) {
				t.Errorf("Expected declared points: %d, got: %d", len(tt.points), c.Header.Points)
			}
			if c.HasZ() != tt.hasZ {
				t.Errorf("Expected HasZ: %v, got: %v", tt.hasZ, c.HasZ())
			}
			opt := cmpopts.EquateApprox(0, 1e-4)
			if diff := cmp.Diff(tt.points, c.Points, opt); diff != "" {
				t.Errorf("Points differ (-expected +got):\n%s", diff)
			}
		})
	}
}

func TestExport(t *testing.T) {
	points := []Point3{
		{1, 2, 3},
		{-4.5, 5.25, -6},
		{0.5, 0, 100},
	}

	var buf bytes.Buffer
	if err := Export(&buf, points); err != nil {
		t.Fatal(err)
	}
	b := buf.Bytes()

	t.Run("Parse", func(t *testing.T) {
		c, err := Parse(b, DecodeOptions{})
		if err != nil {
			t.Fatal(err)
		}
		if c.Header.Encoding != Binary {
			t.Errorf("Expected encoding: %v, got: %v", Binary, c.Header.Encoding)
		}
		if diff := cmp.Diff(points, c.Points); diff != "" {
			t.Errorf("Points differ (-expected +got):\n%s", diff)
		}
	})
	t.Run("Unmarshal", func(t *testing.T) {
		pp, err := pc.Unmarshal(bytes.NewReader(b))
		if err != nil {
			t.Fatal(err)
		}
		if pp.Points != len(points) {
			t.Fatalf("Expected points: %d, got: %d", len(points), pp.Points)
		}
		it, err := pp.Vec3Iterator()
		if err != nil {
			t.Fatal(err)
		}
		min, max, err := pc.MinMaxVec3(it)
		if err != nil {
			t.Fatal(err)
		}
		expectedMin := mat.Vec3{-4.5, 0, -6}
		expectedMax := mat.Vec3{1, 5.25, 100}
		if !expectedMin.Equal(min) {
			t.Errorf("Expected min: %v, got: %v", expectedMin, min)
		}
		if !expectedMax.Equal(max) {
			t.Errorf("Expected max: %v, got: %v", expectedMax, max)
		}
	})
}

func TestVec3Slice(t *testing.T) {
	in := []Point3{{1, 2, 3}, {math.Pi, -1, 0}}
	v := Vec3Slice(in)
	if v.Len() != len(in) {
		t.Fatalf("Expected length: %d, got: %d", len(in), v.Len())
	}
	for i, p := range in {
		if e := p.Vec3(); !e.Equal(v.Vec3At(i)) {
			t.Errorf("Expected Vec3At(%d): %v, got: %v", i, e, v.Vec3At(i))
		}
	}
}
