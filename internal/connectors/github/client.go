package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/ghtrend/internal/core/domain"
	"github.com/custodia-labs/ghtrend/internal/core/ports/driven"
	"github.com/custodia-labs/ghtrend/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.RepositorySearcher = (*Client)(nil)

// Client wraps the go-github client for repository search.
type Client struct {
	gh          *gh.Client
	rateLimiter *RateLimiter
}

// NewClient creates a search client against the API at baseURL.
// A nil httpClient uses http.DefaultClient. No request timeout is applied:
// a page request runs until it completes or its context is cancelled.
func NewClient(httpClient *http.Client, baseURL string, requestsPerSecond float64) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}

	client := gh.NewClient(httpClient)
	client.BaseURL = u

	return &Client{
		gh:          client,
		rateLimiter: NewRateLimiter(requestsPerSecond),
	}, nil
}

// Search fetches one page of repositories matching the query.
func (c *Client) Search(ctx context.Context, query domain.SearchQuery) ([]domain.Repository, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, &NetworkError{Op: "rate limit wait", Err: err}
	}

	opts := &gh.SearchOptions{
		Sort:  string(query.Sort),
		Order: string(query.Order),
		ListOptions: gh.ListOptions{
			PerPage: query.PageSize,
			Page:    query.Page,
		},
	}

	logger.Debug("GET search/repositories q=%q page=%d per_page=%d", query.Qualifier(), query.Page, query.PageSize)

	result, resp, err := c.gh.Search.Repositories(ctx, query.Qualifier(), opts)
	c.recordQuota(resp)
	if err != nil {
		return nil, c.wrapError(err, "search repositories")
	}
	if result == nil {
		return []domain.Repository{}, nil
	}

	if result.GetIncompleteResults() {
		logger.Warn("Search for page %d returned incomplete results", query.Page)
	}

	return toRepositories(result.Repositories)
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// recordQuota passes the rate headers go-github parsed to the limiter.
func (c *Client) recordQuota(resp *gh.Response) {
	if resp == nil {
		return
	}
	c.rateLimiter.Record(resp.Rate)
}

// wrapError converts go-github errors to our error types.
func (c *Client) wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt:   rateLimitErr.Rate.Reset.Time,
			Remaining: rateLimitErr.Rate.Remaining,
			Limit:     rateLimitErr.Rate.Limit,
		}
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		resetAt := time.Now()
		if abuseErr.RetryAfter != nil {
			resetAt = resetAt.Add(*abuseErr.RetryAfter)
		}
		return &RateLimitError{
			ResetAt:   resetAt,
			Remaining: 0,
			Limit:     c.rateLimiter.Quota().Limit,
		}
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) {
		apiErr := &APIError{Message: ghErr.Message}
		if ghErr.Response != nil {
			apiErr.StatusCode = ghErr.Response.StatusCode
			if ghErr.Response.Request != nil {
				apiErr.URL = ghErr.Response.Request.URL.String()
			}
		}
		return apiErr
	}

	if isDecodeError(err) {
		return &ParseError{Op: operation, Err: err}
	}

	return &NetworkError{Op: operation, Err: err}
}

// isDecodeError reports whether err came from decoding the response body.
func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) ||
		errors.As(err, &typeErr) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}
