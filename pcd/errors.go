package pcd

import (
	"errors"
)

// Error kinds reported by the scanner and the decoder.
// Returned errors wrap one of them; test with errors.Is.
var (
	ErrMalformedHeader      = errors.New("malformed header")
	ErrUnsupportedFields    = errors.New("unsupported fields")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrOffsetError          = errors.New("payload offset inconsistent with point count")
	ErrNoValidPoints        = errors.New("no valid points")
)

var errorKinds = []struct {
	err  error
	name string
}{
	{ErrMalformedHeader, "MalformedHeader"},
	{ErrUnsupportedFields, "UnsupportedFields"},
	{ErrMissingRequiredField, "MissingRequiredField"},
	{ErrOffsetError, "OffsetError"},
	{ErrNoValidPoints, "NoValidPoints"},
}

// KindOf returns the name of the error kind wrapped by err.
// It returns an empty string for nil and "Unknown" for errors of other origin.
func KindOf(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "Unknown"
}
