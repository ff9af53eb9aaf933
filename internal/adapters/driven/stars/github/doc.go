// Package github fetches repository stargazer counts from the GitHub
// API. It implements the driven.StarProvider interface.
//
// Requests are throttled proactively so an unauthenticated run against
// a large organization stays inside GitHub's rate limits. A token is
// optional; when configured it raises the quota from 60 to 5000
// requests per hour.
package github
