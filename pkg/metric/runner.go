package metric

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mchmarny/modelrep/pkg/artifact"
	"golang.org/x/sync/errgroup"
)

// DefaultParallelism is the runner's default worker count.
const DefaultParallelism = 4

// Run executes all metrics against one artifact concurrently, bounded by
// maxParallelism (clamped to at least 1). Every metric yields exactly one
// Result: scores are clamped to [0, 1], failures are captured as zero-score
// results with the error message attached, and one metric's failure never
// affects the rest of the batch. Result order follows task completion, not
// input order.
func Run(ctx context.Context, metrics []Metric, a *artifact.Metadata, maxParallelism int) []Result {
	if maxParallelism < 1 {
		maxParallelism = 1
	}

	out := make(chan Result, len(metrics))

	g := new(errgroup.Group)
	g.SetLimit(maxParallelism)
	for _, m := range metrics {
		m := m
		g.Go(func() error {
			out <- runOne(ctx, m, a)
			return nil
		})
	}
	_ = g.Wait()
	close(out)

	results := make([]Result, 0, len(metrics))
	for r := range out {
		results = append(results, r)
	}
	return results
}

func runOne(ctx context.Context, m Metric, a *artifact.Metadata) (res Result) {
	start := time.Now()

	defer func() {
		if p := recover(); p != nil {
			slog.Debug("metric panicked", "metric", m.Name(), "panic", p)
			res = failedResult(m.Name(), execErrorf("panic: %v", p), time.Since(start))
		}
	}()

	score, err := m.Score(ctx, a)
	elapsed := time.Since(start)
	if err != nil {
		slog.Debug("metric failed", "metric", m.Name(), "error", err)
		return failedResult(m.Name(), err, elapsed)
	}

	score = clamp(score)
	res = Result{
		Name:    m.Name(),
		Score:   score,
		Passed:  score >= PassThreshold,
		Details: details(m, a),
		Elapsed: elapsed,
	}
	return res
}

func failedResult(name string, err error, elapsed time.Duration) Result {
	return Result{
		Name:    name,
		Score:   0,
		Passed:  false,
		Error:   fmt.Sprintf("%v", err),
		Elapsed: elapsed,
	}
}

func details(m Metric, a *artifact.Metadata) map[string]any {
	if d, ok := m.(Detailer); ok {
		return d.Details(a)
	}
	return nil
}
