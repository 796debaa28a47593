// Package auth resolves and stores API credentials: GitHub tokens via the
// device authorization flow or environment, and the analysis-service key.
package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/mchmarny/modelrep/pkg/net"
	"github.com/pkg/errors"
	"github.com/zalando/go-keyring"
)

const (
	deviceCodeURL = "https://github.com/login/device/code"
	accessCodeURL = "https://github.com/login/oauth/access_token"
	grantType     = "urn:ietf:params:oauth:grant-type:device_code"

	keyringService   = "modelrep"
	keyringGitHubKey = "github-token"
	keyringGenAIKey  = "genai-api-key"

	// GitHubTokenEnvVar overrides the stored GitHub token when set.
	GitHubTokenEnvVar = "GITHUB_ACCESS_TOKEN"
	// GenAIKeyEnvVar overrides the stored analysis-service key when set.
	GenAIKeyEnvVar = "GEN_AI_STUDIO_API_KEY"
)

// DeviceCode is the GitHub device authorization grant.
type DeviceCode struct {
	DeviceCode      string `json:"device_code,omitempty"`
	UserCode        string `json:"user_code,omitempty"`
	VerificationURL string `json:"verification_uri,omitempty"`
	ExpiresInSec    int    `json:"expires_in,omitempty"`
	// Minimum seconds between access token polls; polling faster trips
	// GitHub's slow_down response.
	Interval int `json:"interval,omitempty"`
}

// AccessTokenResponse is GitHub's token exchange payload.
type AccessTokenResponse struct {
	AccessToken string `json:"access_token,omitempty"`
	TokenType   string `json:"token_type,omitempty"`
	Scope       string `json:"scope,omitempty"`
	Error       string `json:"error,omitempty"`
}

// GetDeviceCode starts the device authorization flow.
func GetDeviceCode(ctx context.Context, clientID string) (*DeviceCode, error) {
	if clientID == "" {
		return nil, errors.New("clientID is required")
	}

	var dc DeviceCode
	if err := postForm(ctx, deviceCodeURL, url.Values{"client_id": {clientID}}, &dc); err != nil {
		return nil, errors.Wrap(err, "failed to get device code")
	}
	if dc.DeviceCode == "" {
		return nil, errors.New("empty device code response")
	}
	return &dc, nil
}

// WaitForToken polls the token endpoint until the user completes the
// verification, the code expires, or ctx is canceled.
func WaitForToken(ctx context.Context, clientID string, dc *DeviceCode) (string, error) {
	if clientID == "" {
		return "", errors.New("clientID is required")
	}
	if dc == nil {
		return "", errors.New("device code is required")
	}

	interval := time.Duration(dc.Interval) * time.Second
	if interval <= 0 {
		interval = 5 * time.Second
	}
	deadline := time.Now().Add(time.Duration(dc.ExpiresInSec) * time.Second)

	vals := url.Values{
		"client_id":   {clientID},
		"device_code": {dc.DeviceCode},
		"grant_type":  {grantType},
	}

	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(interval):
		}

		var atr AccessTokenResponse
		if err := postForm(ctx, accessCodeURL, vals, &atr); err != nil {
			slog.Debug("token poll failed", "error", err)
			continue
		}
		if atr.AccessToken != "" {
			return atr.AccessToken, nil
		}
		if atr.Error == "slow_down" {
			interval += 5 * time.Second
		}
	}

	return "", errors.New("device code expired before authorization completed")
}

func postForm[T any](ctx context.Context, endpoint string, vals url.Values, target *T) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		strings.NewReader(vals.Encode()))
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := net.GetHTTPClient().Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("unexpected status: %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(target)
}

// GetGitHubToken returns the GitHub token from the environment, then the
// system keyring. Empty means unauthenticated access.
func GetGitHubToken() string {
	if t := os.Getenv(GitHubTokenEnvVar); t != "" {
		return t
	}
	t, err := keyring.Get(keyringService, keyringGitHubKey)
	if err != nil {
		slog.Debug("no GitHub token in keyring", "error", err)
		return ""
	}
	return t
}

// SaveGitHubToken stores the token in the system keyring.
func SaveGitHubToken(token string) error {
	if token == "" {
		return errors.New("token is required")
	}
	return errors.Wrap(keyring.Set(keyringService, keyringGitHubKey, token),
		"failed to save GitHub token")
}

// DeleteGitHubToken removes the token from the system keyring.
func DeleteGitHubToken() error {
	return errors.Wrap(keyring.Delete(keyringService, keyringGitHubKey),
		"failed to delete GitHub token")
}

// GetGenAIKey returns the analysis-service key from the environment, then
// the system keyring. Empty disables enhanced metrics.
func GetGenAIKey() string {
	if k := os.Getenv(GenAIKeyEnvVar); k != "" {
		return k
	}
	k, err := keyring.Get(keyringService, keyringGenAIKey)
	if err != nil {
		slog.Debug("no analysis key in keyring", "error", err)
		return ""
	}
	return k
}

// SaveGenAIKey stores the analysis-service key in the system keyring.
func SaveGenAIKey(key string) error {
	if key == "" {
		return errors.New("key is required")
	}
	return errors.Wrap(keyring.Set(keyringService, keyringGenAIKey, key),
		"failed to save analysis key")
}
