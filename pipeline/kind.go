package pipeline

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// Kind is the analysis selected from a file name.
type Kind int

const (
	// KindOther files only carry metadata.
	KindOther Kind = iota
	// KindPCD files are decoded as PCD.
	KindPCD
	// KindXYZ files are decoded as headerless "x y z" text.
	KindXYZ
	// KindGIS files are passed through to a map viewer.
	KindGIS
)

func (k Kind) String() string {
	switch k {
	case KindOther:
		return "other"
	case KindPCD:
		return "pcd"
	case KindXYZ:
		return "xyz"
	case KindGIS:
		return "gis"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Classify selects the analysis by file extension.
func Classify(name string) Kind {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pcd":
		return KindPCD
	case ".xyz":
		return KindXYZ
	case ".json", ".geojson":
		return KindGIS
	}
	return KindOther
}

func mimeType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".pcd":
		return "application/x-pcd"
	case ".geojson":
		return "application/geo+json"
	}
	t := mime.TypeByExtension(ext)
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = t[:i]
	}
	return t
}
