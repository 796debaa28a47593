package llm

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mchmarny/modelrep/pkg/artifact"
	"github.com/mchmarny/modelrep/pkg/metric"
)

// Sub-score weights per analysis kind.
var (
	rampUpWeights = map[string]float64{
		"installation_quality":       0.30,
		"documentation_completeness": 0.25,
		"example_quality":            0.25,
		"overall_readability":        0.20,
	}

	codeQualityWeights = map[string]float64{
		"testing_framework":     0.30,
		"ci_cd_mentions":        0.25,
		"linting_tools":         0.25,
		"documentation_quality": 0.10,
		"code_organization":     0.10,
	}

	datasetQualityWeights = map[string]float64{
		"documentation_completeness": 0.30,
		"usage_examples":             0.25,
		"metadata_quality":           0.25,
		"data_description":           0.20,
	}
)

// RampUpMetric is the analysis-enhanced ramp-up scorer. Any service failure
// or empty analysis silently falls back to the heuristic implementation.
type RampUpMetric struct {
	client    Analyzer
	heuristic metric.RampUpMetric
}

// NewRampUpMetric wires the enhanced ramp-up metric to a shared client.
func NewRampUpMetric(client Analyzer) *RampUpMetric {
	return &RampUpMetric{client: client}
}

func (m *RampUpMetric) Name() string {
	return m.heuristic.Name()
}

func (m *RampUpMetric) Score(ctx context.Context, a *artifact.Metadata) (float64, error) {
	if a != nil && strings.TrimSpace(a.Readme) != "" {
		if s, ok := analyze(ctx, m.client, a.Readme, AnalysisReadmeQuality, rampUpWeights); ok {
			return s, nil
		}
	}
	return m.heuristic.Score(ctx, a)
}

// CodeQualityMetric is the analysis-enhanced code quality scorer.
type CodeQualityMetric struct {
	client    Analyzer
	heuristic metric.CodeQualityMetric
}

func NewCodeQualityMetric(client Analyzer) *CodeQualityMetric {
	return &CodeQualityMetric{client: client}
}

func (m *CodeQualityMetric) Name() string {
	return m.heuristic.Name()
}

func (m *CodeQualityMetric) Score(ctx context.Context, a *artifact.Metadata) (float64, error) {
	if a != nil && strings.TrimSpace(a.Readme) != "" {
		if s, ok := analyze(ctx, m.client, a.Readme, AnalysisCodeQuality, codeQualityWeights); ok {
			return s, nil
		}
	}
	return m.heuristic.Score(ctx, a)
}

// DatasetQualityMetric is the analysis-enhanced dataset quality scorer.
type DatasetQualityMetric struct {
	client    Analyzer
	heuristic metric.DatasetQualityMetric
}

func NewDatasetQualityMetric(client Analyzer) *DatasetQualityMetric {
	return &DatasetQualityMetric{client: client}
}

func (m *DatasetQualityMetric) Name() string {
	return m.heuristic.Name()
}

func (m *DatasetQualityMetric) Score(ctx context.Context, a *artifact.Metadata) (float64, error) {
	if a != nil {
		if text := datasetText(a); text != "" {
			if s, ok := analyze(ctx, m.client, text, AnalysisDatasetQuality, datasetQualityWeights); ok {
				return s, nil
			}
		}
	}
	return m.heuristic.Score(ctx, a)
}

// datasetText packs the dataset-relevant fields into one analyzable blob.
func datasetText(a *artifact.Metadata) string {
	if strings.TrimSpace(a.Readme) == "" {
		return ""
	}
	info := map[string]any{
		"description": a.Readme,
		"tags":        a.Tags,
		"author":      a.Author,
		"downloads":   a.Downloads,
		"license":     a.License,
	}
	b, err := json.Marshal(info)
	if err != nil {
		return a.Readme
	}
	return string(b)
}

// analyze runs one analysis and combines the sub-scores. The second return
// is false whenever the fallback should fire.
func analyze(ctx context.Context, client Analyzer, text string, kind AnalysisKind, weights map[string]float64) (float64, bool) {
	if client == nil {
		return 0, false
	}
	scores, err := client.Analyze(ctx, text, kind)
	if err != nil || scores == nil {
		return 0, false
	}
	return combine(scores, weights)
}

// combine computes a weighted average over the sub-scores present in the
// analysis, ignoring out-of-range or missing values. Returns false when no
// expected sub-score validated.
func combine(scores map[string]float64, weights map[string]float64) (float64, bool) {
	var total, totalWeight float64
	for key, weight := range weights {
		s, ok := scores[key]
		if !ok || s < 0 || s > 1 {
			continue
		}
		total += s * weight
		totalWeight += weight
	}
	if totalWeight == 0 {
		return 0, false
	}
	return total / totalWeight, true
}
