package metric

import (
	"context"
	"strings"

	"github.com/mchmarny/modelrep/pkg/artifact"
)

// Evidence weights for dataset quality. Fully evidenced artifacts sum to 1.0.
const (
	datasetKeywordWeight = 0.30
	knownDatasetWeight   = 0.35
	datasetLinkWeight    = 0.20
	datasetTagWeight     = 0.15

	// A link without any dataset keyword is weak evidence.
	bareLinkCredit = 0.10
)

var datasetTagTokens = []string{"dataset", "corpus", "benchmark"}

// DatasetQualityMetric grades dataset documentation evidence found in the
// readme and tags.
type DatasetQualityMetric struct{}

func (m DatasetQualityMetric) Name() string {
	return "dataset_quality"
}

func (m DatasetQualityMetric) Score(_ context.Context, a *artifact.Metadata) (float64, error) {
	if a == nil {
		return 0, nil
	}

	readme := strings.TrimSpace(a.Readme)
	hasKeyword := containsAny(readme, datasetKeywords)
	hasKnownName := containsAny(readme, knownDatasets)
	hasLink := strings.Contains(readme, "](") || strings.Contains(readme, "http")

	var score float64
	if hasKeyword {
		score += datasetKeywordWeight
	}
	if hasKnownName {
		score += knownDatasetWeight
	}
	switch {
	case hasLink && hasKeyword:
		score += datasetLinkWeight
	case hasLink:
		score += bareLinkCredit
	}

	tagStr := strings.ToLower(strings.Join(a.Tags, " "))
	if containsAny(tagStr, datasetTagTokens) || containsAny(tagStr, knownDatasets) {
		score += datasetTagWeight
	}

	return round(clamp(score), 2), nil
}
