// Package pipeline analyzes uploaded files: PCD and XYZ files are decoded
// and summarized, other files pass through with their metadata.
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Analyze runs the analysis selected by the file name.
func Analyze(f File, opts Options) Result {
	switch Classify(f.Name) {
	case KindPCD, KindXYZ:
		a := NewAnalysis(f, opts)
		_ = a.Run() // the failure is kept in the result
		return a.Result()
	default:
		return Result{
			Name: f.Name,
			Size: len(f.Data),
			Type: mimeType(f.Name),
			Kind: Classify(f.Name),
		}
	}
}

// AnalyzeAll analyzes files concurrently and returns the results in the
// order of files. A failing file does not affect the others.
// Files not yet started when ctx is done are not analyzed and ctx.Err() is
// returned.
func AnalyzeAll(ctx context.Context, files []File, opts Options) ([]Result, error) {
	results := make([]Result, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency())
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Analyze(f, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
