package metric

import (
	"context"

	"github.com/mchmarny/modelrep/pkg/artifact"
)

// AvailabilityMetric scores whether both code and dataset are published.
// Having one of the two earns half credit, keeping the score monotonic in
// available evidence.
type AvailabilityMetric struct{}

func (m AvailabilityMetric) Name() string {
	return "availability"
}

func (m AvailabilityMetric) Score(_ context.Context, a *artifact.Metadata) (float64, error) {
	if a == nil {
		return 0, nil
	}
	switch {
	case a.HasCode && a.HasDataset:
		return 1.0, nil
	case a.HasCode || a.HasDataset:
		return 0.5, nil
	default:
		return 0, nil
	}
}
