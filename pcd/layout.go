package pcd

import (
	"fmt"
)

// Field is one of the point channels understood by the decoder.
type Field int

const (
	FieldX Field = iota
	FieldY
	FieldZ
)

func (f Field) String() string {
	switch f {
	case FieldX:
		return "x"
	case FieldY:
		return "y"
	case FieldZ:
		return "z"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// FieldLayout is the ordered list of declared field names together with
// the resolved position of x, y and the optional z.
// The zero value resolves no field.
type FieldLayout struct {
	names []string
	// index+1 of each Field in names, 0 if not declared.
	index [3]int
}

// NewFieldLayout validates the declared field names.
// x and y must each appear exactly once. z is optional.
func NewFieldLayout(names []string) (FieldLayout, error) {
	l := FieldLayout{
		names: append([]string{}, names...),
	}
	for i, name := range names {
		var f Field
		switch name {
		case "x":
			f = FieldX
		case "y":
			f = FieldY
		case "z":
			f = FieldZ
		default:
			continue
		}
		if l.index[f] != 0 {
			if f == FieldZ {
				continue
			}
			return FieldLayout{}, fmt.Errorf("%w: field %q declared twice", ErrUnsupportedFields, name)
		}
		l.index[f] = i + 1
	}
	if l.index[FieldX] == 0 || l.index[FieldY] == 0 {
		return FieldLayout{}, fmt.Errorf("%w: fields %v must include x and y", ErrUnsupportedFields, names)
	}
	return l, nil
}

// Names returns a copy of the declared field names.
func (l FieldLayout) Names() []string {
	return append([]string{}, l.names...)
}

// Len returns the number of declared fields.
func (l FieldLayout) Len() int {
	return len(l.names)
}

// HasZ reports whether z was declared.
func (l FieldLayout) HasZ() bool {
	return l.index[FieldZ] != 0
}

// Index returns the position of f among the declared fields.
func (l FieldLayout) Index(f Field) (int, bool) {
	if f < FieldX || f > FieldZ || l.index[f] == 0 {
		return 0, false
	}
	return l.index[f] - 1, true
}

// Offset returns the byte offset of f inside a binary record.
// Every field is a 4 byte float.
func (l FieldLayout) Offset(f Field) (int, bool) {
	i, ok := l.Index(f)
	if !ok {
		return 0, false
	}
	return i * 4, true
}

// RecordWidth returns the byte width of a binary record.
func (l FieldLayout) RecordWidth() int {
	return len(l.names) * 4
}

// minTokens returns the number of ASCII tokens a row needs to carry every
// mapped field.
func (l FieldLayout) minTokens() int {
	n := 2
	if l.HasZ() {
		n = 3
	}
	for _, i := range l.index {
		if i > n {
			n = i
		}
	}
	return n
}
