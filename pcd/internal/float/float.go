// Package float converts between float32 slices and little-endian bytes.
package float

import (
	"encoding/binary"
	"math"
)

// Float32SliceAsByteSlice encodes f as little-endian 32-bit floats.
func Float32SliceAsByteSlice(f []float32) []byte {
	b := make([]byte, len(f)*4)
	for i, v := range f {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(v))
	}
	return b
}

// ByteSliceAsFloat32Slice decodes little-endian 32-bit floats.
// Trailing bytes shorter than a float are ignored.
func ByteSliceAsFloat32Slice(b []byte) []float32 {
	f := make([]float32, len(b)/4)
	for i := range f {
		f[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return f
}
