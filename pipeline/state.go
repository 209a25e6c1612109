package pipeline

import (
	"errors"
	"fmt"
)

// State is the progress of one file analysis.
//
//	Idle -> HeaderScanned -> Decoded -> StatsReady -> ColorReady
//
// Any failure moves to Failed.
type State int

const (
	Idle State = iota
	HeaderScanned
	Decoded
	StatsReady
	ColorReady
	Failed
)

var errInvalidTransition = errors.New("invalid state transition")

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case HeaderScanned:
		return "header_scanned"
	case Decoded:
		return "decoded"
	case StatsReady:
		return "stats_ready"
	case ColorReady:
		return "color_ready"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
