package metric

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSortByName(t *testing.T) {
	results := []Result{{Name: "size"}, {Name: "availability"}, {Name: "license"}}
	SortByName(results)

	assert.Equal(t, "availability", results[0].Name)
	assert.Equal(t, "license", results[1].Name)
	assert.Equal(t, "size", results[2].Name)
}

func TestLatencySeconds(t *testing.T) {
	r := Result{Elapsed: 123456789 * time.Nanosecond}
	assert.Equal(t, 0.1235, r.LatencySeconds())

	r = Result{}
	assert.Equal(t, 0.0, r.LatencySeconds())
}
