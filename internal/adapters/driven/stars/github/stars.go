package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/meta-pytorch/orgsite/internal/core/ports/driven"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// ProactiveRate is the proactive throttle rate in requests per
	// second. Conservative enough for unauthenticated quota.
	ProactiveRate = 1.0
)

// Ensure Provider implements the interface.
var _ driven.StarProvider = (*Provider)(nil)

// Provider fetches star counts via the GitHub API.
type Provider struct {
	gh      *gh.Client
	limiter *rate.Limiter
}

// Option configures a Provider.
type Option func(*Provider)

// WithBaseURL points the provider at a different API endpoint.
// Used for testing against a local server.
func WithBaseURL(base string) Option {
	return func(p *Provider) {
		if u, err := url.Parse(base); err == nil {
			p.gh.BaseURL = u
		}
	}
}

// WithRate overrides the proactive throttle rate.
func WithRate(perSecond float64) Option {
	return func(p *Provider) {
		p.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// NewProvider creates a star provider. The token is optional; when
// empty, requests are unauthenticated.
func NewProvider(ctx context.Context, token string, opts ...Option) *Provider {
	var hc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(ctx, ts)
	} else {
		hc = &http.Client{}
	}
	hc.Timeout = DefaultTimeout

	p := &Provider{
		gh:      gh.NewClient(hc),
		limiter: rate.NewLimiter(rate.Limit(ProactiveRate), 1),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Stars returns the stargazer count for a repository.
func (p *Provider) Stars(ctx context.Context, owner, repo string) (int, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	r, _, err := p.gh.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return 0, fmt.Errorf("get repo %s/%s: %w", owner, repo, err)
	}
	return r.GetStargazersCount(), nil
}
