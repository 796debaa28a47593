// Package source fetches raw artifact metadata from GitHub and Hugging Face
// and shapes it into the payloads the scoring pipeline normalizes.
package source

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/google/go-github/v83/github"
	"github.com/pkg/errors"
)

const rateLimitThreshold = 10

// FetchRepo retrieves GitHub repository metadata shaped for scoring.
// The returned map carries the GitHub conventions the normalizer expects:
// full_name present, size in KB, license as a nested spdx_id object.
func FetchRepo(ctx context.Context, hc *http.Client, owner, repo string) (map[string]any, error) {
	if owner == "" || repo == "" {
		return nil, errors.New("owner and repo are required")
	}

	client := github.NewClient(hc)

	r, resp, err := client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, classify(resp, errors.Wrapf(err, "failed to get repo %s/%s", owner, repo))
	}
	checkRateLimit(resp)

	readme := fetchReadme(ctx, client, owner, repo)

	slog.Debug("fetched repo metadata",
		"repo", r.GetFullName(),
		"stars", r.GetStargazersCount(),
		"rate_remaining", resp.Rate.Remaining,
	)

	raw := map[string]any{
		"full_name":         r.GetFullName(),
		"size":              r.GetSize(), // KB
		"owner":             map[string]any{"login": r.GetOwner().GetLogin()},
		"stargazers_count":  r.GetStargazersCount(),
		"forks_count":       r.GetForksCount(),
		"open_issues_count": r.GetOpenIssuesCount(),
		"updated_at":        r.GetUpdatedAt().Format(time.RFC3339),
		"readme":            readme,
		"tags":              r.Topics,
	}
	if r.License != nil {
		raw["license"] = map[string]any{"spdx_id": r.License.GetSPDXID()}
	}

	return raw, nil
}

// fetchReadme returns the decoded readme content, or empty on any failure.
// A missing readme is not an error; metrics tolerate its absence.
func fetchReadme(ctx context.Context, client *github.Client, owner, repo string) string {
	content, resp, err := client.Repositories.GetReadme(ctx, owner, repo, nil)
	if err != nil {
		slog.Debug("no readme for repo", "owner", owner, "repo", repo, "error", err)
		return ""
	}
	checkRateLimit(resp)

	text, err := content.GetContent()
	if err != nil {
		slog.Debug("failed to decode readme", "owner", owner, "repo", repo, "error", err)
		return ""
	}
	return text
}

// classify maps a GitHub API failure onto the package error taxonomy.
func classify(resp *github.Response, err error) error {
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return fmt.Errorf("%w: %v", ErrTransient, err)
}

// checkRateLimit waits out an imminent rate-limit reset instead of burning
// the remaining budget. Jitter avoids thundering-herd retries.
func checkRateLimit(resp *github.Response) {
	if resp == nil || resp.Rate.Remaining > rateLimitThreshold {
		return
	}

	wait := time.Until(resp.Rate.Reset.Time)
	if wait <= 0 {
		return
	}

	jitter := time.Duration(rand.IntN(2000)) * time.Millisecond
	total := wait + jitter

	slog.Info("rate limit approaching, waiting",
		"remaining", resp.Rate.Remaining,
		"reset_at", resp.Rate.Reset.Format(time.RFC3339),
		"wait", total.String(),
	)

	time.Sleep(total)
}
