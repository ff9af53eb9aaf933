package driven

import "context"

// StarProvider fetches repository popularity metrics.
// Backed by the GitHub API.
type StarProvider interface {
	// Stars returns the stargazer count for a repository.
	Stars(ctx context.Context, owner, repo string) (int, error)
}
