package metric

import (
	"sort"
	"time"
)

// PassThreshold is the score at which a metric is considered passing.
const PassThreshold = 0.5

// Result captures one metric invocation. Created once by the runner,
// never mutated after.
type Result struct {
	Name    string         `json:"name" yaml:"name"`
	Score   float64        `json:"score" yaml:"score"`
	Passed  bool           `json:"passed" yaml:"passed"`
	Details map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
	Error   string         `json:"error,omitempty" yaml:"error,omitempty"`
	Elapsed time.Duration  `json:"-" yaml:"-"`
}

// LatencySeconds reports elapsed time in seconds, rounded to 4 decimals.
func (r Result) LatencySeconds() float64 {
	return round(r.Elapsed.Seconds(), 4)
}

// SortByName orders results deterministically. The runner collects results
// as tasks complete, so batch order is not stable without this.
func SortByName(results []Result) {
	sort.Slice(results, func(i, j int) bool {
		return results[i].Name < results[j].Name
	})
}
