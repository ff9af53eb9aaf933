package httpjson

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/meta-pytorch/orgsite/internal/core/domain"
	"github.com/meta-pytorch/orgsite/internal/core/ports/driven"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 15 * time.Second

// maxArtifactSize caps how much of a corpus artifact is read (16 MiB).
const maxArtifactSize = 16 << 20

// Ensure the sources implement their interfaces.
var (
	_ driven.CorpusSource = (*CorpusSource)(nil)
	_ driven.CardSource   = (*CardSource)(nil)
)

// CorpusSource loads search-index.json from a URL or file path.
type CorpusSource struct {
	location string
	client   *http.Client
}

// NewCorpusSource creates a corpus source for the given location.
// Locations starting with http:// or https:// are fetched over HTTP;
// anything else is treated as a local file path.
func NewCorpusSource(location string, client *http.Client) *CorpusSource {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &CorpusSource{location: location, client: client}
}

// Load fetches and decodes the corpus.
func (s *CorpusSource) Load(ctx context.Context) ([]domain.Project, error) {
	data, err := fetch(ctx, s.client, s.location)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	var projects []domain.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}
	return projects, nil
}

// CardSource loads projects.json from a URL or file path.
type CardSource struct {
	location string
	client   *http.Client
}

// NewCardSource creates a card source for the given location.
func NewCardSource(location string, client *http.Client) *CardSource {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &CardSource{location: location, client: client}
}

// Load fetches and decodes the card list.
func (s *CardSource) Load(ctx context.Context) ([]domain.Card, error) {
	data, err := fetch(ctx, s.client, s.location)
	if err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}

	var cards []domain.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("parse cards: %w", err)
	}
	return cards, nil
}

// fetch reads the artifact bytes from a URL or the local filesystem.
func fetch(ctx context.Context, client *http.Client, location string) ([]byte, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
		if err != nil {
			return nil, err
		}

		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch %s: unexpected status %d", location, resp.StatusCode)
		}
		return io.ReadAll(io.LimitReader(resp.Body, maxArtifactSize))
	}

	return os.ReadFile(location)
}
