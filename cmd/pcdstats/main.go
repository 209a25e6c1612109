// Command pcdstats prints point counts and bounding boxes of PCD files.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/seqsense/pcdstats/blob"
	"github.com/seqsense/pcdstats/config"
	"github.com/seqsense/pcdstats/pcd"
	"github.com/seqsense/pcdstats/pipeline"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML configuration file")
		jsonOut    = flag.Bool("json", false, "print results as JSON")
		color      = flag.Bool("color", false, "compute altitude colors; overrides color_by_altitude when given")
		exportDir  = flag.String("export", "", "write decoded clouds as binary PCD into this directory")
		verbose    = flag.Bool("v", false, "log dropped records and failures")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] files...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}
	overrideColor(flag.CommandLine, &cfg, *color)
	limit, err := cfg.MaxFileSizeBytes()
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	var logger *log.Logger
	if *verbose {
		logger = log.Default()
	}
	opts := pipeline.OptionsFromConfig(cfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := run(ctx, flag.Args(), limit, opts)
	if err != nil {
		log.Fatalf("aborted: %v", err)
	}

	if *exportDir != "" {
		if err := exportAll(*exportDir, results); err != nil {
			log.Fatalf("export failed: %v", err)
		}
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			log.Fatalf("failed to encode results: %v", err)
		}
	} else {
		for i := range results {
			printResult(os.Stdout, &results[i])
		}
	}

	for i := range results {
		if results[i].Failed() {
			os.Exit(1)
		}
	}
}

// run reads every file before analysis so that an interrupted read never
// reaches the parser. Results keep the order of paths.
func run(ctx context.Context, paths []string, limit int64, opts pipeline.Options) ([]pipeline.Result, error) {
	results := make([]pipeline.Result, len(paths))
	var (
		files []pipeline.File
		index []int
	)
	for i, p := range paths {
		b, err := blob.Open(ctx, p, limit)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			results[i] = pipeline.ReadFailure(filepath.Base(p), err)
			continue
		}
		files = append(files, pipeline.File{Name: filepath.Base(p), Data: b})
		index = append(index, i)
	}

	analyzed, err := pipeline.AnalyzeAll(ctx, files, opts)
	if err != nil {
		return nil, err
	}
	for j, r := range analyzed {
		results[index[j]] = r
	}
	return results, nil
}

// overrideColor applies -color to cfg only when the flag was given, so that
// both -color and -color=false win over the configuration file.
func overrideColor(fs *flag.FlagSet, cfg *config.Config, color bool) {
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "color" {
			cfg.ColorByAltitude = color
		}
	})
}

// exportName replaces the extension of name with .pcd and appends -1, -2, ...
// when the result is already taken by another file of the same run.
func exportName(name string, used map[string]bool) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	out := base + ".pcd"
	for i := 1; used[out]; i++ {
		out = fmt.Sprintf("%s-%d.pcd", base, i)
	}
	used[out] = true
	return out
}

func exportAll(dir string, results []pipeline.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	used := make(map[string]bool)
	for i := range results {
		r := &results[i]
		if r.Failed() || len(r.Points()) == 0 {
			continue
		}
		name := exportName(r.Name, used)
		if err := exportFile(filepath.Join(dir, name), r.Points()); err != nil {
			return fmt.Errorf("%s: %w", r.Name, err)
		}
	}
	return nil
}

func exportFile(path string, points []pcd.Point3) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return pcd.Export(f, points)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func printResult(w io.Writer, r *pipeline.Result) {
	fmt.Fprintf(w, "%s - %d bytes (%s)\n", r.Name, r.Size, humanize.IBytes(uint64(r.Size)))
	switch {
	case r.Failed():
		fmt.Fprintf(w, "  Number of Points: 0\n  Error: %s: %v\n", r.ErrorKind, r.Err)
	case r.Stats != nil:
		fmt.Fprintf(w, "  Number of Points: %d\n", r.Stats.NumPoints)
		if b := r.Stats.BoundingBox; b != nil {
			fmt.Fprintf(w, "  Bounding Box:\n    X[%s, %s]\n    Y[%s, %s]\n    Z[%s, %s]\n",
				formatFloat(b.MinX), formatFloat(b.MaxX),
				formatFloat(b.MinY), formatFloat(b.MaxY),
				formatFloat(b.MinZ), formatFloat(b.MaxZ),
			)
		}
		if r.Dropped > 0 {
			fmt.Fprintf(w, "  Dropped Records: %d\n", r.Dropped)
		}
		if len(r.Colors) > 0 {
			fmt.Fprintf(w, "  Altitude Colors: %d\n", len(r.Colors))
		}
	default:
		fmt.Fprintf(w, "  Kind: %v\n", r.Kind)
	}
}
