// Package net holds the shared HTTP plumbing for the metadata fetchers.
package net

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

const (
	maxIdleConns     = 10
	requestTimeout   = 15 * time.Second
	idleConnTimeout  = 60 * time.Second
	clientUserAgent  = "modelrep"
	githubAPIAccepts = "application/vnd.github+json"
)

var transport = &http.Transport{
	MaxIdleConns:      maxIdleConns,
	IdleConnTimeout:   idleConnTimeout,
	DisableKeepAlives: false,
}

// GetHTTPClient returns an unauthenticated client with sane timeouts.
func GetHTTPClient() *http.Client {
	return &http.Client{
		Transport: transport,
		Timeout:   requestTimeout,
	}
}

// GetOAuthClient returns a client that injects the given token. An empty
// token yields the plain unauthenticated client, which works for public
// artifacts at a lower rate limit.
func GetOAuthClient(ctx context.Context, token string) *http.Client {
	if token == "" {
		return GetHTTPClient()
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{
			TokenType:   "token",
			AccessToken: token,
		},
	)
	return oauth2.NewClient(ctx, ts)
}
