package pipeline

import (
	"github.com/seqsense/pcgol/pc"

	"github.com/seqsense/pcdstats/altitude"
	"github.com/seqsense/pcdstats/pcd"
	"github.com/seqsense/pcdstats/stats"
)

// Result is the outcome of one file.
// A failed file has no Stats and a non-nil Err.
type Result struct {
	Name  string `json:"name"`
	Size  int    `json:"size"`
	Type  string `json:"type,omitempty"`
	Kind  Kind   `json:"kind"`
	State State  `json:"state"`

	Stats   *stats.PointCloudStats `json:"stats,omitempty"`
	HasZ    bool                   `json:"hasZ"`
	Dropped int                    `json:"dropped,omitempty"`
	Colors  []altitude.RGB         `json:"-"`

	Err       error  `json:"-"`
	ErrorKind string `json:"error,omitempty"`
	Message   string `json:"message,omitempty"`

	points []pcd.Point3
}

// ReadFailure is the result of a file whose content could not be read.
func ReadFailure(name string, err error) Result {
	return Result{
		Name:      name,
		Type:      mimeType(name),
		Kind:      Classify(name),
		State:     Failed,
		Err:       err,
		ErrorKind: "ReadError",
		Message:   err.Error(),
	}
}

// Failed reports whether the file analysis failed.
func (r *Result) Failed() bool {
	return r.Err != nil
}

// NumPoints returns the number of points, 0 for failed or unanalyzed files.
func (r *Result) NumPoints() int {
	if r.Stats == nil {
		return 0
	}
	return r.Stats.NumPoints
}

// Points returns the decoded points. They must not be modified.
func (r *Result) Points() []pcd.Point3 {
	return r.points
}

// Positions returns the points in single precision for a renderer.
func (r *Result) Positions() pc.Vec3Slice {
	return pcd.Vec3Slice(r.points)
}

// Result summarizes the analysis in its current state.
func (a *Analysis) Result() Result {
	r := Result{
		Name:  a.file.Name,
		Size:  len(a.file.Data),
		Type:  mimeType(a.file.Name),
		Kind:  a.kind,
		State: a.state,
		Stats: a.stats,
	}
	if a.state == Failed {
		r.Err = a.err
		r.ErrorKind = pcd.KindOf(a.err)
		r.Message = a.err.Error()
		return r
	}
	if a.cloud != nil {
		r.HasZ = a.cloud.HasZ()
		r.Dropped = a.cloud.Dropped
		r.points = a.cloud.Points
	}
	r.Colors = a.colors
	return r
}
