package net

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httputil"

	"github.com/pkg/errors"
)

// ErrURLNotFound distinguishes a 404 from other HTTP failures.
var ErrURLNotFound = errors.New("URL not found")

func getResp(ctx context.Context, hc *http.Client, url string) (*http.Response, error) {
	if hc == nil {
		hc = GetHTTPClient()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "error creating HTTP GET request: %s", url)
	}
	req.Header.Set("User-Agent", clientUserAgent)
	req.Header.Set("Accept", githubAPIAccepts)

	resp, err := hc.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "error executing HTTP GET request: %s", url)
	}

	if slog.Default().Enabled(ctx, slog.LevelDebug) {
		debugResponse(resp)
	}

	return resp, nil
}

// GetJSON retrieves the URL content and decodes it into target.
func GetJSON[T any](ctx context.Context, hc *http.Client, url string, target *T) error {
	resp, err := getResp(ctx, hc, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrURLNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("error getting content (status: %s): %s", resp.Status, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors.Wrapf(err, "error decoding content from: %s", url)
	}
	return nil
}

// GetText retrieves the URL content as plain text.
func GetText(ctx context.Context, hc *http.Client, url string) (string, error) {
	resp, err := getResp(ctx, hc, url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrURLNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("error getting content (status: %s): %s", resp.Status, url)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrapf(err, "error reading content from: %s", url)
	}
	return string(b), nil
}

func debugResponse(resp *http.Response) {
	if resp == nil {
		return
	}
	if dump, err := httputil.DumpResponse(resp, false); err == nil {
		slog.Debug("http response", "dump", string(dump))
	}
}
