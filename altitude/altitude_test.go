package altitude

import (
	"math"
	"reflect"
	"testing"

	"github.com/seqsense/pcdstats/pcd"
)

func TestGradient(t *testing.T) {
	testCases := map[string]struct {
		t        float64
		expected RGB
	}{
		"Bottom":     {0, RGB{0, 0, 1}},
		"Top":        {1, RGB{1, 0, 0}},
		"Middle":     {0.5, RGB{0.5, 0, 0.5}},
		"BelowRange": {-3, RGB{0, 0, 1}},
		"AboveRange": {7, RGB{1, 0, 0}},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			if c := Gradient(tt.t); c != tt.expected {
				t.Errorf("Expected color: %v, got: %v", tt.expected, c)
			}
		})
	}
}

func TestGradient_Monotonic(t *testing.T) {
	prev := Gradient(0)
	for i := 1; i <= 100; i++ {
		c := Gradient(float64(i) / 100)
		if c.R < prev.R || c.B > prev.B {
			t.Fatalf("Gradient must be order preserving at %d: %v -> %v", i, prev, c)
		}
		if c.R < 0 || c.R > 1 || c.B < 0 || c.B > 1 || c.G != 0 {
			t.Fatalf("Channel out of range at %d: %v", i, c)
		}
		prev = c
	}
}

func TestColors(t *testing.T) {
	points := []pcd.Point3{
		{X: 0, Y: 0, Z: 10},
		{X: 1, Y: 0, Z: 20},
		{X: 2, Y: 0, Z: 15},
	}
	colors, ok := Colors(points, true)
	if !ok {
		t.Fatal("Colors must be computed")
	}
	expected := []RGB{
		{0, 0, 1},
		{1, 0, 0},
		{0.5, 0, 0.5},
	}
	if !reflect.DeepEqual(expected, colors) {
		t.Errorf("Expected colors: %v, got: %v", expected, colors)
	}

	buf := Float32Buffer(colors)
	expectedBuf := []float32{0, 0, 1, 1, 0, 0, 0.5, 0, 0.5}
	if !reflect.DeepEqual(expectedBuf, buf) {
		t.Errorf("Expected buffer: %v, got: %v", expectedBuf, buf)
	}
}

func TestColors_EqualZ(t *testing.T) {
	points := []pcd.Point3{{Z: 3}, {X: 1, Z: 3}, {X: 2, Z: 3}}
	colors, ok := Colors(points, true)
	if !ok {
		t.Fatal("Colors must be computed")
	}
	if len(colors) != len(points) {
		t.Fatalf("Expected %d colors, got: %d", len(points), len(colors))
	}
	for i, c := range colors {
		if c != colors[0] {
			t.Errorf("Color %d must equal the others, expected: %v, got: %v", i, colors[0], c)
		}
		if c != (RGB{0, 0, 1}) {
			t.Errorf("Expected bottom color for flat cloud, got: %v", c)
		}
	}
}

func TestColors_NotComputed(t *testing.T) {
	if c, ok := Colors([]pcd.Point3{{X: 1, Y: 2}}, false); ok || c != nil {
		t.Errorf("Colors must not be computed without z, got: %v", c)
	}
	if c, ok := Colors(nil, true); ok || c != nil {
		t.Errorf("Colors must not be computed without points, got: %v", c)
	}
}

func TestColors_ExtremeZ(t *testing.T) {
	points := []pcd.Point3{{Z: -1e308}, {Z: 0}, {Z: 1e308}, {Z: -math.MaxFloat64}, {Z: math.MaxFloat64}}
	colors, ok := Colors(points, true)
	if !ok {
		t.Fatal("Colors must be computed")
	}
	order := []int{3, 0, 1, 2, 4}
	for i := 1; i < len(order); i++ {
		lo, hi := colors[order[i-1]], colors[order[i]]
		if hi.R < lo.R || hi.B > lo.B {
			t.Errorf("Colors must be order preserving: z=%v %v, z=%v %v",
				points[order[i-1]].Z, lo, points[order[i]].Z, hi)
		}
	}
	if c := colors[4]; c != (RGB{1, 0, 0}) {
		t.Errorf("Expected top color for the highest point, got: %v", c)
	}
	if c := colors[3]; c != (RGB{0, 0, 1}) {
		t.Errorf("Expected bottom color for the lowest point, got: %v", c)
	}
	if c := colors[1]; c.R < 0.49 || c.R > 0.51 {
		t.Errorf("Expected middle color for z=0, got: %v", c)
	}
}

func TestNormalize(t *testing.T) {
	testCases := map[string]struct {
		z, minZ, maxZ, expected float64
	}{
		"Bottom":      {10, 10, 20, 0},
		"Top":         {20, 10, 20, 1},
		"Middle":      {15, 10, 20, 0.5},
		"Overflowing": {math.MaxFloat64, -math.MaxFloat64, math.MaxFloat64, 1},
		"LostSpan":    {1e308, 1e308, 1e308 + 1, 0},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			v := Normalize(tt.z, tt.minZ, tt.maxZ)
			if v != tt.expected {
				t.Errorf("Expected t: %v, got: %v", tt.expected, v)
			}
		})
	}
}
