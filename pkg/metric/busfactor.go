package metric

import (
	"context"

	"github.com/mchmarny/modelrep/pkg/artifact"
)

// BusFactorMetric scores maintainer presence: any maintainer at all is 1.0.
// A nil maintainer list is a caller error; the normalization boundary always
// produces at least an empty slice for known sources.
type BusFactorMetric struct{}

func (m BusFactorMetric) Name() string {
	return "bus_factor"
}

func (m BusFactorMetric) Score(_ context.Context, a *artifact.Metadata) (float64, error) {
	if a == nil || a.Maintainers == nil {
		return 0, InputErrorf("maintainers not provided")
	}
	if len(a.Maintainers) >= 1 {
		return 1.0, nil
	}
	return 0, nil
}
