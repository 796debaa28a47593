// Package score combines per-dimension metric results into a weighted
// NetScore for one artifact.
package score

import (
	"context"
	"math"

	"github.com/mchmarny/modelrep/pkg/artifact"
	"github.com/mchmarny/modelrep/pkg/llm"
	"github.com/mchmarny/modelrep/pkg/metric"
)

// NetScoreKey names the aggregate entry in the board.
const NetScoreKey = "NetScore"

// Fixed per-dimension weights. These always apply to the NetScore,
// regardless of whether the heuristic or enhanced variant produced the
// per-dimension score. They sum to 1.0.
var weights = map[string]float64{
	"size":               0.10,
	"license":            0.15,
	"ramp_up_time":       0.15,
	"bus_factor":         0.10,
	"availability":       0.10,
	"dataset_quality":    0.10,
	"code_quality":       0.15,
	"performance_claims": 0.15,
}

// Weights returns a copy of the fixed NetScore weights.
func Weights() map[string]float64 {
	out := make(map[string]float64, len(weights))
	for k, v := range weights {
		out[k] = v
	}
	return out
}

// Board holds the per-metric scores for one scoring request. The size
// dimension additionally carries its hardware-tier breakdown; its scalar
// entry in Scores is the mean across tiers.
type Board struct {
	Scores    map[string]float64 `json:"scores" yaml:"scores"`
	SizeTiers map[string]float64 `json:"size_by_tier" yaml:"sizeByTier"`
	NetScore  float64            `json:"net_score" yaml:"netScore"`
}

// Scorer runs the full metric set against normalized artifacts.
type Scorer struct {
	metrics []metric.Metric
	workers int
}

// Option configures the Scorer.
type Option func(*Scorer)

// WithWorkers sets the runner's parallelism.
func WithWorkers(n int) Option {
	return func(s *Scorer) {
		s.workers = n
	}
}

// WithAnalyzer swaps the readme-driven metrics for their analysis-enhanced
// variants sharing one client. The remaining dimensions have no enhanced
// counterpart and stay heuristic.
func WithAnalyzer(client llm.Analyzer) Option {
	return func(s *Scorer) {
		for i, m := range s.metrics {
			switch m.(type) {
			case metric.RampUpMetric:
				s.metrics[i] = llm.NewRampUpMetric(client)
			case metric.CodeQualityMetric:
				s.metrics[i] = llm.NewCodeQualityMetric(client)
			case metric.DatasetQualityMetric:
				s.metrics[i] = llm.NewDatasetQualityMetric(client)
			}
		}
	}
}

// NewScorer creates a scorer with the full heuristic metric set.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{
		metrics: metric.All(),
		workers: metric.DefaultParallelism,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score normalizes a raw metadata payload, runs all metrics concurrently,
// and aggregates the weighted NetScore. A failed metric contributes zero;
// only a malformed payload yields an error.
func (s *Scorer) Score(ctx context.Context, raw map[string]any) (*Board, []metric.Result, error) {
	a, err := artifact.Normalize(raw)
	if err != nil {
		return nil, nil, err
	}

	results := metric.Run(ctx, s.metrics, a, s.workers)
	metric.SortByName(results)

	board := &Board{
		Scores:    make(map[string]float64, len(results)),
		SizeTiers: metric.SizeMetric{}.TierScores(a.RepoSizeBytes),
	}

	var net float64
	for _, r := range results {
		board.Scores[r.Name] = r.Score
		net += r.Score * weights[r.Name]
	}
	board.NetScore = math.Round(net*1000) / 1000
	board.Scores[NetScoreKey] = board.NetScore

	return board, results, nil
}
