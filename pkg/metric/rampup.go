package metric

import (
	"context"
	"strings"

	"github.com/mchmarny/modelrep/pkg/artifact"
)

// Readme length buckets for ramp-up scoring.
const (
	rampUpShortLen  = 500
	rampUpMediumLen = 1500
	rampUpLongLen   = 3000

	rampUpShortScore  = 0.3
	rampUpMediumScore = 0.6
	rampUpLongScore   = 0.8
	rampUpMaxScore    = 0.9

	onboardingBonus = 0.05
)

// RampUpMetric estimates how quickly a new user can get productive,
// using readme length buckets plus an onboarding-keyword bonus.
type RampUpMetric struct{}

func (m RampUpMetric) Name() string {
	return "ramp_up_time"
}

func (m RampUpMetric) Score(_ context.Context, a *artifact.Metadata) (float64, error) {
	if a == nil || strings.TrimSpace(a.Readme) == "" {
		return 0, nil
	}

	var score float64
	switch n := len(a.Readme); {
	case n < rampUpShortLen:
		score = rampUpShortScore
	case n < rampUpMediumLen:
		score = rampUpMediumScore
	case n < rampUpLongLen:
		score = rampUpLongScore
	default:
		score = rampUpMaxScore
	}

	if containsAny(a.Readme, onboardingKeywords) {
		score += onboardingBonus
	}

	return round(clamp(score), 2), nil
}
