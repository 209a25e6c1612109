package pipeline

import (
	"errors"
	"fmt"

	"github.com/seqsense/pcdstats/altitude"
	"github.com/seqsense/pcdstats/pcd"
	"github.com/seqsense/pcdstats/stats"
)

var errNotAnalyzable = errors.New("file kind is not analyzable")

// File is the full content of one uploaded file.
type File struct {
	Name string
	Data []byte
}

// Analysis runs scan, decode and aggregation of a single file step by step.
// It is not safe for concurrent use.
type Analysis struct {
	file File
	kind Kind
	opts Options

	state  State
	err    error
	header pcd.Header
	cloud  *pcd.Cloud
	stats  *stats.PointCloudStats
	colors []altitude.RGB
}

func NewAnalysis(f File, opts Options) *Analysis {
	return &Analysis{
		file: f,
		kind: Classify(f.Name),
		opts: opts,
	}
}

func (a *Analysis) State() State {
	return a.state
}

// Err returns the failure cause in the Failed state.
func (a *Analysis) Err() error {
	return a.err
}

// Stats returns nil until StatsReady and in the Failed state.
func (a *Analysis) Stats() *stats.PointCloudStats {
	return a.stats
}

// Colors returns the altitude colors in the ColorReady state.
func (a *Analysis) Colors() []altitude.RGB {
	return a.colors
}

// Points returns the decoded points. They must not be modified.
func (a *Analysis) Points() []pcd.Point3 {
	if a.cloud == nil {
		return nil
	}
	return a.cloud.Points
}

func (a *Analysis) HasZ() bool {
	return a.cloud != nil && a.cloud.HasZ()
}

func (a *Analysis) transit(from, to State, step string) error {
	if a.state != from {
		return fmt.Errorf("%w: %s in %v", errInvalidTransition, step, a.state)
	}
	a.state = to
	return nil
}

func (a *Analysis) fail(err error) error {
	a.state = Failed
	a.err = err
	a.cloud = nil
	a.stats = nil
	a.colors = nil
	a.opts.logger().Printf("%s: %v", a.file.Name, err)
	return err
}

// ScanHeader moves from Idle to HeaderScanned.
func (a *Analysis) ScanHeader() error {
	if a.state != Idle {
		return a.transit(Idle, HeaderScanned, "ScanHeader")
	}
	switch a.kind {
	case KindPCD:
		h, err := pcd.ScanHeader(a.file.Data)
		if err != nil {
			return a.fail(err)
		}
		a.header = h
	case KindXYZ:
		a.header = pcd.XYZHeader()
	default:
		return a.fail(fmt.Errorf("%w: %v", errNotAnalyzable, a.kind))
	}
	return a.transit(Idle, HeaderScanned, "ScanHeader")
}

// Decode moves from HeaderScanned to Decoded.
func (a *Analysis) Decode() error {
	if a.state != HeaderScanned {
		return a.transit(HeaderScanned, Decoded, "Decode")
	}
	c, err := pcd.Decode(a.file.Data, a.header, a.opts.Decode)
	if err != nil {
		return a.fail(err)
	}
	if c.Dropped > 0 {
		a.opts.logger().Printf("%s: dropped %d malformed records", a.file.Name, c.Dropped)
	}
	a.cloud = c
	return a.transit(HeaderScanned, Decoded, "Decode")
}

// Aggregate moves from Decoded to StatsReady.
func (a *Analysis) Aggregate() error {
	if err := a.transit(Decoded, StatsReady, "Aggregate"); err != nil {
		return err
	}
	s := stats.Compute(a.cloud.Points)
	a.stats = &s
	return nil
}

// Colorize moves from StatsReady to ColorReady.
// A cloud without z stays in StatsReady and gets no color.
func (a *Analysis) Colorize() error {
	if a.state != StatsReady {
		return a.transit(StatsReady, ColorReady, "Colorize")
	}
	colors, ok := altitude.Colors(a.cloud.Points, a.cloud.HasZ())
	if !ok {
		return nil
	}
	a.colors = colors
	return a.transit(StatsReady, ColorReady, "Colorize")
}

// Run performs every step. Colors are computed only if requested by Options.
func (a *Analysis) Run() error {
	steps := []func() error{a.ScanHeader, a.Decode, a.Aggregate}
	if a.opts.ColorByAltitude {
		steps = append(steps, a.Colorize)
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
