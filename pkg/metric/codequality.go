package metric

import (
	"context"

	"github.com/mchmarny/modelrep/pkg/artifact"
)

// CodeQualityMetric checks the readme for four independent engineering
// hygiene signals: tests, CI, linting, and typing-or-docs. Each hit is
// worth a quarter of the score.
type CodeQualityMetric struct{}

func (m CodeQualityMetric) Name() string {
	return "code_quality"
}

func (m CodeQualityMetric) Score(_ context.Context, a *artifact.Metadata) (float64, error) {
	if a == nil {
		return 0, nil
	}

	hits := 0
	if containsAny(a.Readme, testKeywords) {
		hits++
	}
	if containsAny(a.Readme, ciKeywords) {
		hits++
	}
	if containsAny(a.Readme, lintKeywords) {
		hits++
	}
	if containsAny(a.Readme, typingKeywords) || containsAny(a.Readme, docsKeywords) {
		hits++
	}

	return float64(hits) / 4.0, nil
}
