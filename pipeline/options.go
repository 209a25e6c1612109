package pipeline

import (
	"io"
	"log"

	"github.com/seqsense/pcdstats/config"
	"github.com/seqsense/pcdstats/pcd"
)

const defaultConcurrency = 4

type Options struct {
	Decode pcd.DecodeOptions
	// ColorByAltitude computes altitude colors for clouds having z.
	ColorByAltitude bool
	// Concurrency bounds the number of files analyzed at once by AnalyzeAll.
	Concurrency int
	// Logger receives diagnostics. nil discards them.
	Logger *log.Logger
}

var discard = log.New(io.Discard, "", 0)

// OptionsFromConfig builds Options from a loaded configuration.
func OptionsFromConfig(c config.Config, logger *log.Logger) Options {
	return Options{
		Decode: pcd.DecodeOptions{
			MaxAbsCoordinate: c.MaxAbsCoordinate,
		},
		ColorByAltitude: c.ColorByAltitude,
		Concurrency:     c.Concurrency,
		Logger:          logger,
	}
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return discard
	}
	return o.Logger
}

func (o Options) concurrency() int {
	if o.Concurrency < 1 {
		return defaultConcurrency
	}
	return o.Concurrency
}
