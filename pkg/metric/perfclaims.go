package metric

import (
	"context"
	"strings"

	"github.com/mchmarny/modelrep/pkg/artifact"
)

// Claim tier contributions and caps. Strong claims contribute once,
// moderate and weak claims accumulate up to their caps.
const (
	strongClaimCredit = 0.4

	moderateClaimCredit = 0.15
	moderateClaimCap    = 0.4

	weakClaimCredit = 0.05
	weakClaimCap    = 0.2
)

// PerformanceClaimsMetric grades the strength of performance language in the
// readme. Marketing-grade claims ("state-of-the-art") count more than vague
// ones ("improved"), but no tier alone can saturate the score.
type PerformanceClaimsMetric struct{}

func (m PerformanceClaimsMetric) Name() string {
	return "performance_claims"
}

func (m PerformanceClaimsMetric) Score(_ context.Context, a *artifact.Metadata) (float64, error) {
	if a == nil || strings.TrimSpace(a.Readme) == "" {
		return 0, nil
	}

	readme := strings.ToLower(a.Readme)

	var score float64
	if containsAny(readme, strongClaimKeywords) {
		score += strongClaimCredit
	}

	var moderate float64
	for _, kw := range moderateClaimKeywords {
		if strings.Contains(readme, kw) {
			moderate += moderateClaimCredit
		}
	}
	if moderate > moderateClaimCap {
		moderate = moderateClaimCap
	}
	score += moderate

	var weak float64
	for _, kw := range weakClaimKeywords {
		if strings.Contains(readme, kw) {
			weak += weakClaimCredit
		}
	}
	if weak > weakClaimCap {
		weak = weakClaimCap
	}
	score += weak

	return round(clamp(score), 2), nil
}
