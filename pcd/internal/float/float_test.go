package float

import (
	"bytes"
	"reflect"
	"testing"
)

func TestFloat32SliceAsByteSlice(t *testing.T) {
	in := []float32{1, 2, -3.5}
	bytesExpected := []byte{
		0x00, 0x00, 0x80, 0x3F, // 1.0
		0x00, 0x00, 0x00, 0x40, // 2.0
		0x00, 0x00, 0x60, 0xC0, // -3.5
	}
	b := Float32SliceAsByteSlice(in)
	if !bytes.Equal(bytesExpected, b) {
		t.Errorf("Expected data: %v, got: %v", bytesExpected, b)
	}

	out := ByteSliceAsFloat32Slice(append(b, 0xFF))
	if !reflect.DeepEqual(in, out) {
		t.Errorf("Expected floats: %v, got: %v", in, out)
	}
}
