package pcd

// XYZHeader returns the implicit header of a headerless "x y z" file.
func XYZHeader() Header {
	l, _ := NewFieldLayout([]string{"x", "y", "z"})
	return Header{Layout: l, Encoding: Ascii}
}

// DecodeXYZ decodes a headerless whitespace separated "x y z" text file.
// Rows are tolerated the same way as ASCII PCD payloads.
func DecodeXYZ(b []byte, opts DecodeOptions) (*Cloud, error) {
	return Decode(b, XYZHeader(), opts)
}
