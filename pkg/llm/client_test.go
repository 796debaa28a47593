package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalysisServer(t *testing.T, hits *int32, content string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.NotEmpty(t, payload["messages"])

		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": content}},
			},
		})
	}))
}

func newTestClient(url string) *Client {
	return NewClient("test-key",
		WithAPIURL(url),
		WithMinInterval(time.Millisecond),
	)
}

func TestClientAnalyze(t *testing.T) {
	var hits int32
	srv := newAnalysisServer(t, &hits, `{"installation_quality": 0.9, "overall_readability": 0.7}`, http.StatusOK)
	defer srv.Close()

	c := newTestClient(srv.URL)
	scores, err := c.Analyze(context.Background(), "readme text", AnalysisReadmeQuality)
	require.NoError(t, err)
	require.NotNil(t, scores)

	assert.Equal(t, 0.9, scores["installation_quality"])
	assert.Equal(t, 0.7, scores["overall_readability"])
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestClientAnalyze_Cached(t *testing.T) {
	var hits int32
	srv := newAnalysisServer(t, &hits, `{"testing_framework": 0.5}`, http.StatusOK)
	defer srv.Close()

	c := newTestClient(srv.URL)
	ctx := context.Background()

	first, err := c.Analyze(ctx, "same text", AnalysisCodeQuality)
	require.NoError(t, err)
	second, err := c.Analyze(ctx, "same text", AnalysisCodeQuality)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "second call must hit the cache")

	// Different kind over the same text is a different cache entry.
	_, err = c.Analyze(ctx, "same text", AnalysisReadmeQuality)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestClientAnalyze_WrappedJSON(t *testing.T) {
	var hits int32
	srv := newAnalysisServer(t, &hits,
		"Here is the analysis:\n```json\n{\"metadata_quality\": 0.4}\n```\nHope that helps.",
		http.StatusOK)
	defer srv.Close()

	scores, err := newTestClient(srv.URL).Analyze(context.Background(), "text", AnalysisDatasetQuality)
	require.NoError(t, err)
	require.NotNil(t, scores)
	assert.Equal(t, 0.4, scores["metadata_quality"])
}

func TestClientAnalyze_ServerError(t *testing.T) {
	var hits int32
	srv := newAnalysisServer(t, &hits, `{"x": 0.1}`, http.StatusInternalServerError)
	defer srv.Close()

	scores, err := newTestClient(srv.URL).Analyze(context.Background(), "text", AnalysisReadmeQuality)
	require.NoError(t, err)
	assert.Nil(t, scores)
}

func TestClientAnalyze_Unparseable(t *testing.T) {
	var hits int32
	srv := newAnalysisServer(t, &hits, "no json here at all", http.StatusOK)
	defer srv.Close()

	scores, err := newTestClient(srv.URL).Analyze(context.Background(), "text", AnalysisReadmeQuality)
	require.NoError(t, err)
	assert.Nil(t, scores)
}

func TestClientAnalyze_NoKey(t *testing.T) {
	var hits int32
	srv := newAnalysisServer(t, &hits, `{"x": 0.1}`, http.StatusOK)
	defer srv.Close()

	c := NewClient("", WithAPIURL(srv.URL), WithMinInterval(time.Millisecond))
	scores, err := c.Analyze(context.Background(), "text", AnalysisReadmeQuality)
	require.NoError(t, err)
	assert.Nil(t, scores)
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits), "keyless client must not call out")
}

func TestParseScores(t *testing.T) {
	scores := parseScores(`{"a": 0.5, "b": "not a number", "c": 1}`)
	require.NotNil(t, scores)
	assert.Equal(t, 0.5, scores["a"])
	assert.Equal(t, 1.0, scores["c"])
	assert.NotContains(t, scores, "b")

	assert.Nil(t, parseScores(`{"only": "strings"}`))
	assert.Nil(t, parseScores(""))
}
