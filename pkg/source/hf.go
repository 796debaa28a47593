package source

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mchmarny/modelrep/pkg/net"
	"github.com/pkg/errors"
)

const (
	hfAPIBaseURL = "https://huggingface.co/api"
	hfRawBaseURL = "https://huggingface.co"
)

// FetchModel retrieves Hugging Face model metadata shaped for scoring.
// Model size resolves through the usual field chain (usedStorage, then
// safetensors, then siblings); readme falls back from card data to the raw
// README.md file.
func FetchModel(ctx context.Context, hc *http.Client, modelID string) (map[string]any, error) {
	if modelID == "" {
		return nil, errors.New("modelID is required")
	}

	var raw map[string]any
	url := fmt.Sprintf("%s/models/%s", hfAPIBaseURL, modelID)
	if err := net.GetJSON(ctx, hc, url, &raw); err != nil {
		if errors.Is(err, net.ErrURLNotFound) {
			return nil, fmt.Errorf("%w: model %s", ErrNotFound, modelID)
		}
		return nil, fmt.Errorf("%w: %v", ErrTransient, err)
	}

	raw["readme"] = resolveReadme(ctx, hc, modelID, raw)

	if _, ok := raw["modelSize"]; !ok {
		// Leave resolution of usedStorage/safetensors/siblings to the
		// normalizer; only log what we got.
		slog.Debug("model payload has no modelSize field", "model", modelID)
	}

	slog.Debug("fetched model metadata", "model", modelID, "downloads", raw["downloads"])
	return raw, nil
}

// resolveReadme prefers the card data content and falls back to downloading
// the raw README.md. Missing readme content is not an error.
func resolveReadme(ctx context.Context, hc *http.Client, modelID string, raw map[string]any) string {
	if card, ok := raw["cardData"].(map[string]any); ok {
		if content, ok := card["content"].(string); ok && strings.TrimSpace(content) != "" {
			return content
		}
	}

	url := fmt.Sprintf("%s/%s/raw/main/README.md", hfRawBaseURL, modelID)
	text, err := net.GetText(ctx, hc, url)
	if err != nil {
		slog.Debug("no readme for model", "model", modelID, "error", err)
		return ""
	}
	return text
}
