package llm

import (
	"context"
	"testing"

	"github.com/mchmarny/modelrep/pkg/artifact"
	"github.com/mchmarny/modelrep/pkg/metric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalyzer struct {
	scores map[string]float64
	kind   AnalysisKind
	calls  int
}

func (s *stubAnalyzer) Analyze(_ context.Context, _ string, kind AnalysisKind) (map[string]float64, error) {
	s.calls++
	s.kind = kind
	return s.scores, nil
}

func TestRampUpMetric_UsesAnalysis(t *testing.T) {
	stub := &stubAnalyzer{scores: map[string]float64{
		"installation_quality":       0.8,
		"documentation_completeness": 0.6,
		"example_quality":            0.4,
		"overall_readability":        0.2,
	}}

	m := NewRampUpMetric(stub)
	assert.Equal(t, "ramp_up_time", m.Name())

	s, err := m.Score(context.Background(), &artifact.Metadata{Readme: "some readme"})
	require.NoError(t, err)

	// .8*.30 + .6*.25 + .4*.25 + .2*.20
	assert.InDelta(t, 0.53, s, 1e-9)
	assert.Equal(t, AnalysisReadmeQuality, stub.kind)
}

func TestRampUpMetric_FallsBackOnNilAnalysis(t *testing.T) {
	stub := &stubAnalyzer{scores: nil}
	m := NewRampUpMetric(stub)

	a := &artifact.Metadata{Readme: "short readme with install notes"}

	enhanced, err := m.Score(context.Background(), a)
	require.NoError(t, err)

	heuristic, err := metric.RampUpMetric{}.Score(context.Background(), a)
	require.NoError(t, err)

	assert.Equal(t, heuristic, enhanced)
	assert.Equal(t, 1, stub.calls)
}

func TestRampUpMetric_EmptyReadmeSkipsAnalysis(t *testing.T) {
	stub := &stubAnalyzer{scores: map[string]float64{"installation_quality": 1.0}}
	m := NewRampUpMetric(stub)

	s, err := m.Score(context.Background(), &artifact.Metadata{Readme: "  "})
	require.NoError(t, err)
	assert.Equal(t, 0.0, s)
	assert.Zero(t, stub.calls)
}

func TestCodeQualityMetric_UsesAnalysis(t *testing.T) {
	stub := &stubAnalyzer{scores: map[string]float64{
		"testing_framework":     1.0,
		"ci_cd_mentions":        1.0,
		"linting_tools":         1.0,
		"documentation_quality": 1.0,
		"code_organization":     1.0,
	}}

	m := NewCodeQualityMetric(stub)
	assert.Equal(t, "code_quality", m.Name())

	s, err := m.Score(context.Background(), &artifact.Metadata{Readme: "readme"})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s, 1e-9)
	assert.Equal(t, AnalysisCodeQuality, stub.kind)
}

func TestDatasetQualityMetric_UsesAnalysis(t *testing.T) {
	stub := &stubAnalyzer{scores: map[string]float64{
		"documentation_completeness": 0.5,
		"usage_examples":             0.5,
		"metadata_quality":           0.5,
		"data_description":           0.5,
	}}

	m := NewDatasetQualityMetric(stub)
	assert.Equal(t, "dataset_quality", m.Name())

	s, err := m.Score(context.Background(), &artifact.Metadata{
		Readme: "dataset card",
		Tags:   []string{"imagenet"},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, s, 1e-9)
	assert.Equal(t, AnalysisDatasetQuality, stub.kind)
}

func TestEnhancedMetrics_NilClientFallsBack(t *testing.T) {
	a := &artifact.Metadata{Readme: "Trained on the imagenet dataset. Run pytest."}
	ctx := context.Background()

	enhanced, err := NewCodeQualityMetric(nil).Score(ctx, a)
	require.NoError(t, err)
	heuristic, err := metric.CodeQualityMetric{}.Score(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, heuristic, enhanced)

	enhancedDS, err := NewDatasetQualityMetric(nil).Score(ctx, a)
	require.NoError(t, err)
	heuristicDS, err := metric.DatasetQualityMetric{}.Score(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, heuristicDS, enhancedDS)
}

func TestCombine(t *testing.T) {
	weights := map[string]float64{"a": 0.6, "b": 0.4}

	// Out-of-range and missing sub-scores are ignored; the average is
	// re-normalized over what validated.
	s, ok := combine(map[string]float64{"a": 0.5, "b": 1.5}, weights)
	require.True(t, ok)
	assert.InDelta(t, 0.5, s, 1e-9)

	s, ok = combine(map[string]float64{"a": 1.0, "b": 0.5}, weights)
	require.True(t, ok)
	assert.InDelta(t, 0.8, s, 1e-9)

	_, ok = combine(map[string]float64{"unrelated": 0.9}, weights)
	assert.False(t, ok)

	_, ok = combine(nil, weights)
	assert.False(t, ok)
}

func TestDatasetText(t *testing.T) {
	a := &artifact.Metadata{
		Readme:    "card content",
		Tags:      []string{"nlp"},
		Author:    "someone",
		Downloads: 42,
		License:   "MIT",
	}

	text := datasetText(a)
	assert.Contains(t, text, "card content")
	assert.Contains(t, text, "nlp")
	assert.Contains(t, text, "MIT")

	assert.Empty(t, datasetText(&artifact.Metadata{Readme: " "}))
}
