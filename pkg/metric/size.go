package metric

import (
	"context"
	"math"

	"github.com/mchmarny/modelrep/pkg/artifact"
)

// Hardware tiers contextualize the size score: the same artifact that fits
// comfortably on a server may be unusable on a Raspberry Pi.
const (
	TierRaspberryPi = "raspberry_pi"
	TierJetsonNano  = "jetson_nano"
	TierDesktopPC   = "desktop_pc"
	TierAWSServer   = "aws_server"
)

var tierLimits = []struct {
	name  string
	bytes int64
}{
	{TierRaspberryPi, 100 << 20}, // 100 MiB
	{TierJetsonNano, 500 << 20},  // 500 MiB
	{TierDesktopPC, 2 << 30},     // 2 GiB
	{TierAWSServer, 10 << 30},    // 10 GiB
}

// SizeMetric scores repository size against four deployment tiers.
type SizeMetric struct{}

func (m SizeMetric) Name() string {
	return "size"
}

// Score reduces the per-tier breakdown to its mean. The tier map itself is
// exposed through Details.
func (m SizeMetric) Score(_ context.Context, a *artifact.Metadata) (float64, error) {
	if a == nil {
		return 0, nil
	}
	var sum float64
	for _, s := range m.TierScores(a.RepoSizeBytes) {
		sum += s
	}
	return round(sum/float64(len(tierLimits)), 2), nil
}

func (m SizeMetric) Details(a *artifact.Metadata) map[string]any {
	var size int64
	if a != nil {
		size = a.RepoSizeBytes
	}
	out := make(map[string]any, len(tierLimits))
	for tier, s := range m.TierScores(size) {
		out[tier] = s
	}
	return out
}

// TierScores maps each hardware tier to a [0, 1] fit score.
// Within the tier limit the score decays linearly from 1.0 to 0.6 as
// utilization grows; past the limit the decay continues at a steeper slope
// down to a 0.1 floor, so a larger size never scores higher.
func (m SizeMetric) TierScores(sizeBytes int64) map[string]float64 {
	scores := make(map[string]float64, len(tierLimits))
	for _, tier := range tierLimits {
		scores[tier.name] = tierScore(sizeBytes, tier.bytes)
	}
	return scores
}

func tierScore(size, limit int64) float64 {
	if size <= 0 {
		return 0
	}
	ratio := float64(size) / float64(limit)
	if size <= limit {
		return round(1.0-ratio*0.4, 2)
	}
	// Continue from the 0.6 scored at full utilization rather than
	// restarting at 1.0; the score must not rise across the limit.
	return round(math.Max(0.1, 0.6-(ratio-1.0)*0.8), 2)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func clamp(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
