package metric

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// WriteNDJSON serializes results as one JSON object per line, suitable for
// machine consumption. Details are flattened into the top-level record.
func WriteNDJSON(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	for _, r := range results {
		line := map[string]any{
			"name":      r.Name,
			"score":     r.Score,
			"passed":    r.Passed,
			"latency_s": r.LatencySeconds(),
		}
		if r.Error != "" {
			line["error"] = r.Error
		} else {
			line["error"] = nil
		}
		for k, v := range r.Details {
			line[k] = v
		}
		if err := enc.Encode(line); err != nil {
			return errors.Wrapf(err, "failed to encode result: %s", r.Name)
		}
	}
	return nil
}
