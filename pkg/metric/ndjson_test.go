package metric

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteNDJSON(t *testing.T) {
	results := []Result{
		{
			Name:    "license",
			Score:   1.0,
			Passed:  true,
			Elapsed: 1500 * time.Microsecond,
		},
		{
			Name:   "size",
			Score:  0.94,
			Passed: true,
			Details: map[string]any{
				"raspberry_pi": 0.8,
				"aws_server":   1.0,
			},
		},
		{
			Name:  "bus_factor",
			Error: "maintainers not provided",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteNDJSON(&buf, results))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "license", first["name"])
	assert.Equal(t, 1.0, first["score"])
	assert.Equal(t, true, first["passed"])
	assert.Equal(t, 0.0015, first["latency_s"])
	assert.Nil(t, first["error"])

	// Details are flattened into the line, not nested.
	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, 0.8, second["raspberry_pi"])
	assert.Equal(t, 1.0, second["aws_server"])
	assert.NotContains(t, second, "details")

	var third map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &third))
	assert.Equal(t, "maintainers not provided", third["error"])
	assert.Equal(t, false, third["passed"])
}

func TestWriteNDJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteNDJSON(&buf, nil))
	assert.Zero(t, buf.Len())
}

func TestWriteNDJSON_OneObjectPerLine(t *testing.T) {
	results := []Result{{Name: "a"}, {Name: "b"}, {Name: "c"}}

	var buf bytes.Buffer
	require.NoError(t, WriteNDJSON(&buf, results))

	sc := bufio.NewScanner(&buf)
	count := 0
	for sc.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &line))
		count++
	}
	assert.Equal(t, 3, count)
}
