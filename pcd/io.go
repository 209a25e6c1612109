package pcd

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Encoding is the payload encoding declared by the DATA line.
type Encoding int

const (
	Ascii Encoding = iota
	Binary
)

func (e Encoding) String() string {
	switch e {
	case Ascii:
		return "ascii"
	case Binary:
		return "binary"
	}
	return fmt.Sprintf("Encoding(%d)", int(e))
}

// Header is the result of scanning the text header of a PCD file.
type Header struct {
	Layout FieldLayout
	// Points is the declared POINTS value.
	Points   int
	Encoding Encoding
	// PayloadOffset is the offset in the original bytes right after the
	// DATA line.
	PayloadOffset int
}

// HasZ reports whether the declared fields include z.
func (h Header) HasZ() bool {
	return h.Layout.HasZ()
}

// ScanHeader locates and parses the header lines of a PCD file.
// Only FIELDS, POINTS and DATA are interpreted. Scanning stops at DATA.
func ScanHeader(b []byte) (Header, error) {
	var (
		h          Header
		fields     []string
		hasFields  bool
		hasData    bool
		pos, lines int
	)

L_HEADER:
	for pos < len(b) {
		end := len(b)
		next := len(b)
		if i := bytes.IndexByte(b[pos:], '\n'); i >= 0 {
			end = pos + i
			next = end + 1
		}
		line := bytes.TrimSpace(b[pos:end])
		pos = next
		if len(line) == 0 {
			continue
		}
		lines++

		args := strings.Fields(string(line))
		switch args[0] {
		case "FIELDS":
			fields = args[1:]
			hasFields = true
		case "POINTS":
			if len(args) < 2 {
				return Header{}, fmt.Errorf("%w: POINTS must have value", ErrMalformedHeader)
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return Header{}, fmt.Errorf("%w: invalid POINTS %q", ErrMalformedHeader, args[1])
			}
			if n < 0 {
				return Header{}, fmt.Errorf("%w: negative POINTS %d", ErrMalformedHeader, n)
			}
			h.Points = n
		case "DATA":
			if len(args) < 2 {
				return Header{}, fmt.Errorf("%w: DATA must have value", ErrMalformedHeader)
			}
			switch args[1] {
			case "ascii":
				h.Encoding = Ascii
			case "binary":
				h.Encoding = Binary
			default:
				return Header{}, fmt.Errorf("%w: unsupported data encoding %q", ErrMalformedHeader, args[1])
			}
			h.PayloadOffset = pos
			hasData = true
			break L_HEADER
		}
	}
	if !hasData {
		return Header{}, fmt.Errorf("%w: no DATA line in %d lines", ErrMalformedHeader, lines)
	}
	if !hasFields {
		return Header{}, fmt.Errorf("%w: no FIELDS line", ErrUnsupportedFields)
	}

	l, err := NewFieldLayout(fields)
	if err != nil {
		return Header{}, err
	}
	h.Layout = l
	return h, nil
}
