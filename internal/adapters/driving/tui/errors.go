package tui

import "errors"

// ErrNoSearchService indicates the app was constructed without a search
// service.
var ErrNoSearchService = errors.New("tui: search service is required")
