// Package llm provides the external text-analysis client and the
// analysis-enhanced metric variants that fall back to their heuristic
// counterparts whenever the service is unavailable.
package llm

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// AnalysisKind selects the analysis prompt and the cache namespace.
type AnalysisKind string

const (
	AnalysisReadmeQuality  AnalysisKind = "readme_quality"
	AnalysisCodeQuality    AnalysisKind = "code_quality"
	AnalysisDatasetQuality AnalysisKind = "dataset_quality"
)

const (
	defaultAPIURL      = "https://genai.rcac.purdue.edu/api/v1/chat/completions"
	defaultModel       = "llama3.2:latest"
	defaultTimeout     = 30 * time.Second
	defaultMinInterval = time.Second

	maxTokens   = 1000
	temperature = 0.1

	systemPrompt = "You are an expert AI model evaluator. " +
		"Analyze the provided content and return structured JSON responses."
)

// jsonObjectRegEx pulls a JSON object out of a response that wraps it in
// prose or markdown fences.
var jsonObjectRegEx = regexp.MustCompile(`(?s)\{.*\}`)

// Analyzer is the analysis-service contract consumed by enhanced metrics.
// Implementations never surface normal failures (missing auth, network,
// malformed response) as errors; they return a nil map instead, which the
// caller treats as "use fallback".
type Analyzer interface {
	Analyze(ctx context.Context, text string, kind AnalysisKind) (map[string]float64, error)
}

// Client talks to a chat-completions style analysis service. Responses are
// cached for process lifetime keyed by content hash and analysis kind, and
// outbound calls are serialized through a minimum-interval rate limiter.
type Client struct {
	apiURL string
	model  string
	apiKey string
	hc     *http.Client

	limiter *rate.Limiter

	mu    sync.Mutex
	cache map[string]map[string]float64
}

// Option configures the Client.
type Option func(*Client)

// WithAPIURL overrides the analysis service endpoint.
func WithAPIURL(url string) Option {
	return func(c *Client) {
		c.apiURL = url
	}
}

// WithModel overrides the analysis model name.
func WithModel(model string) Option {
	return func(c *Client) {
		c.model = model
	}
}

// WithHTTPClient overrides the HTTP client (tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

// WithMinInterval overrides the minimum delay between external calls.
func WithMinInterval(d time.Duration) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// NewClient creates an analysis client. An empty apiKey is valid and makes
// every Analyze call return nil, pushing callers onto their fallbacks.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiURL:  defaultAPIURL,
		model:   defaultModel,
		apiKey:  apiKey,
		hc:      &http.Client{Timeout: defaultTimeout},
		limiter: rate.NewLimiter(rate.Every(defaultMinInterval), 1),
		cache:   make(map[string]map[string]float64),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Analyze returns named sub-scores in [0, 1] for the given text, or nil when
// the service cannot produce them. The returned error is reserved for
// context cancellation; all service failures map to a nil result.
func (c *Client) Analyze(ctx context.Context, text string, kind AnalysisKind) (map[string]float64, error) {
	if c.apiKey == "" {
		slog.Debug("analysis service key not set, skipping analysis", "kind", kind)
		return nil, nil
	}

	key := cacheKey(text, kind)
	if cached := c.fromCache(key); cached != nil {
		return cached, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	scores := c.call(ctx, text, kind)
	if scores != nil {
		c.store(key, scores)
	}
	return scores, nil
}

func (c *Client) call(ctx context.Context, text string, kind AnalysisKind) map[string]float64 {
	payload := map[string]any{
		"model":       c.model,
		"max_tokens":  maxTokens,
		"temperature": temperature,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": fmt.Sprintf("%s\n\nContent to analyze:\n%s", promptFor(kind), text)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		slog.Warn("analysis request marshal failed", "error", err)
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		slog.Warn("analysis request create failed", "error", err)
		return nil
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		slog.Warn("analysis request failed", "kind", kind, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("analysis request rejected", "kind", kind, "status", resp.StatusCode)
		return nil
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		slog.Warn("analysis response decode failed", "kind", kind, "error", err)
		return nil
	}
	if len(completion.Choices) == 0 {
		slog.Warn("analysis response had no content", "kind", kind)
		return nil
	}

	return parseScores(completion.Choices[0].Message.Content)
}

// parseScores extracts numeric sub-scores from the model output, tolerating
// responses that wrap the JSON object in extra text.
func parseScores(content string) map[string]float64 {
	var obj map[string]any
	if err := json.Unmarshal([]byte(content), &obj); err != nil {
		match := jsonObjectRegEx.FindString(content)
		if match == "" || json.Unmarshal([]byte(match), &obj) != nil {
			slog.Warn("failed to parse analysis response as JSON")
			return nil
		}
	}

	scores := make(map[string]float64)
	for k, v := range obj {
		if f, ok := v.(float64); ok {
			scores[k] = f
		}
	}
	if len(scores) == 0 {
		return nil
	}
	return scores
}

func (c *Client) fromCache(key string) map[string]float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache[key]
}

func (c *Client) store(key string, scores map[string]float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[key] = scores
}

func cacheKey(text string, kind AnalysisKind) string {
	h := sha256.Sum256([]byte(text))
	return string(kind) + "_" + hex.EncodeToString(h[:])
}

func promptFor(kind AnalysisKind) string {
	switch kind {
	case AnalysisReadmeQuality:
		return `Analyze this README content and provide a JSON response with the following structure:
{
  "installation_quality": 0.0-1.0,
  "documentation_completeness": 0.0-1.0,
  "example_quality": 0.0-1.0,
  "overall_readability": 0.0-1.0
}
Score based on installation instruction clarity, documentation structure,
quality of examples, and overall readability.`
	case AnalysisCodeQuality:
		return `Analyze this README content for code quality indicators and provide a JSON response:
{
  "testing_framework": 0.0-1.0,
  "ci_cd_mentions": 0.0-1.0,
  "linting_tools": 0.0-1.0,
  "documentation_quality": 0.0-1.0,
  "code_organization": 0.0-1.0
}
Look for testing frameworks, CI/CD pipelines, linting tools, documentation
standards, and project organization.`
	case AnalysisDatasetQuality:
		return `Analyze this dataset information and provide a JSON response:
{
  "documentation_completeness": 0.0-1.0,
  "usage_examples": 0.0-1.0,
  "metadata_quality": 0.0-1.0,
  "data_description": 0.0-1.0
}
Evaluate documentation completeness, usage examples, metadata richness, and
the description of data structure and content.`
	default:
		return "Analyze this content and provide a JSON response of named scores in 0.0-1.0."
	}
}
