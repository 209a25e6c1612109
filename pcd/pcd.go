package pcd

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/seqsense/pcdstats/pcd/internal/float"
)

// DefaultMaxAbsCoordinate is the default implausibility bound of
// DecodeOptions.MaxAbsCoordinate.
const DefaultMaxAbsCoordinate = 1e6

// DecodeOptions controls payload decoding.
type DecodeOptions struct {
	// MaxAbsCoordinate drops binary points having a coordinate whose
	// magnitude exceeds it. This is a heuristic against misaligned records,
	// not a format rule. Zero or negative means DefaultMaxAbsCoordinate.
	MaxAbsCoordinate float64
}

func (o DecodeOptions) maxAbs() float64 {
	if o.MaxAbsCoordinate <= 0 {
		return DefaultMaxAbsCoordinate
	}
	return o.MaxAbsCoordinate
}

// Parse scans the header of b and decodes its payload.
func Parse(b []byte, opts DecodeOptions) (*Cloud, error) {
	h, err := ScanHeader(b)
	if err != nil {
		return nil, err
	}
	return Decode(b, h, opts)
}

// Decode decodes the payload of b described by h.
// b is the whole file content; h.PayloadOffset is relative to it.
func Decode(b []byte, h Header, opts DecodeOptions) (*Cloud, error) {
	if h.PayloadOffset < 0 || h.PayloadOffset > len(b) {
		return nil, fmt.Errorf("%w: payload offset %d outside of %d bytes", ErrOffsetError, h.PayloadOffset, len(b))
	}

	c := &Cloud{Header: h}
	var err error
	switch h.Encoding {
	case Ascii:
		c.Points, c.Dropped, err = decodeASCII(b[h.PayloadOffset:], h.Layout)
	case Binary:
		c.Points, c.Dropped, err = decodeBinary(b, h, opts.maxAbs())
	default:
		return nil, fmt.Errorf("%w: unknown encoding %v", ErrMalformedHeader, h.Encoding)
	}
	if err != nil {
		return nil, err
	}
	if len(c.Points) == 0 {
		return nil, fmt.Errorf("%w: %d records dropped", ErrNoValidPoints, c.Dropped)
	}
	return c, nil
}

func decodeASCII(data []byte, l FieldLayout) ([]Point3, int, error) {
	ix, okX := l.Index(FieldX)
	iy, okY := l.Index(FieldY)
	if !okX || !okY {
		return nil, 0, fmt.Errorf("%w: x and y must be declared", ErrMissingRequiredField)
	}
	iz, hasZ := l.Index(FieldZ)
	minTokens := l.minTokens()

	var (
		points  []Point3
		dropped int
		vals    []float64
	)
	for len(data) > 0 {
		var line []byte
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			line, data = data, nil
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		var ok bool
		vals, ok = parseRow(string(line), minTokens, vals[:0])
		if !ok {
			dropped++
			continue
		}
		p := Point3{X: vals[ix], Y: vals[iy]}
		if hasZ {
			p.Z = vals[iz]
		}
		points = append(points, p)
	}
	return points, dropped, nil
}

// parseRow parses every token of line. The row is rejected if it has less
// than minTokens tokens or any token is not a finite number.
func parseRow(line string, minTokens int, vals []float64) ([]float64, bool) {
	tokens := strings.Fields(line)
	if len(tokens) < minTokens {
		return vals, false
	}
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return vals, false
		}
		vals = append(vals, v)
	}
	return vals, true
}

// BinaryAnchor returns the absolute offset of the first binary record:
// the file length minus the declared point count times the record width.
func BinaryAnchor(fileLen int, h Header) (int, error) {
	width := h.Layout.RecordWidth()
	if width == 0 {
		return 0, fmt.Errorf("%w: no declared fields", ErrMissingRequiredField)
	}
	remain := fileLen - h.PayloadOffset
	if h.Points < 0 || remain < 0 || h.Points > remain/width {
		return 0, fmt.Errorf("%w: %d points of %d bytes need more than %d bytes",
			ErrOffsetError, h.Points, width, remain)
	}
	return fileLen - h.Points*width, nil
}

func decodeBinary(b []byte, h Header, maxAbs float64) ([]Point3, int, error) {
	ix, okX := h.Layout.Index(FieldX)
	iy, okY := h.Layout.Index(FieldY)
	if !okX || !okY {
		return nil, 0, fmt.Errorf("%w: x and y offsets are not resolvable", ErrMissingRequiredField)
	}
	iz, hasZ := h.Layout.Index(FieldZ)

	anchor, err := BinaryAnchor(len(b), h)
	if err != nil {
		return nil, 0, err
	}
	// Every field is a float32, so the records form a flat float array.
	vals := float.ByteSliceAsFloat32Slice(b[anchor:])
	stride := h.Layout.Len()

	points := make([]Point3, 0, h.Points)
	var dropped int
	for pos := 0; pos+stride <= len(vals); pos += stride {
		p := Point3{
			X: float64(vals[pos+ix]),
			Y: float64(vals[pos+iy]),
		}
		if hasZ {
			p.Z = float64(vals[pos+iz])
		}
		if !plausible(p, maxAbs) {
			dropped++
			continue
		}
		points = append(points, p)
	}
	return points, dropped, nil
}

func plausible(p Point3, maxAbs float64) bool {
	for _, v := range [3]float64{p.X, p.Y, p.Z} {
		// NaN fails every comparison, so test the accepted range.
		if !(math.Abs(v) <= maxAbs) {
			return false
		}
	}
	return true
}
