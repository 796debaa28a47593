package metric

import (
	"context"
	"fmt"

	"github.com/mchmarny/modelrep/pkg/artifact"
)

// Metric scores one quality dimension of an artifact.
// Score returns a value in [0, 1]; the runner additionally clamps, so an
// implementation may lean on that for float rounding slop.
type Metric interface {
	Name() string
	Score(ctx context.Context, a *artifact.Metadata) (float64, error)
}

// Detailer is implemented by metrics that carry extra structure beyond the
// scalar score (e.g. the size metric's per-tier breakdown).
type Detailer interface {
	Details(a *artifact.Metadata) map[string]any
}

// Kind classifies metric failures so callers can assert on the error kind
// rather than its message.
type Kind int

const (
	// KindInput marks a malformed or missing required field. Caller error.
	KindInput Kind = iota + 1
	// KindExec marks a failure inside a metric's own scoring logic.
	KindExec
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindExec:
		return "execution"
	default:
		return "unknown"
	}
}

// Error is the typed error surfaced at the runner boundary.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InputErrorf creates a KindInput error.
func InputErrorf(format string, args ...any) *Error {
	return &Error{Kind: KindInput, Err: fmt.Errorf(format, args...)}
}

func execErrorf(format string, args ...any) *Error {
	return &Error{Kind: KindExec, Err: fmt.Errorf(format, args...)}
}

// All returns the full heuristic metric set in net-score order.
func All() []Metric {
	return []Metric{
		SizeMetric{},
		LicenseMetric{},
		RampUpMetric{},
		BusFactorMetric{},
		AvailabilityMetric{},
		DatasetQualityMetric{},
		CodeQualityMetric{},
		PerformanceClaimsMetric{},
	}
}
