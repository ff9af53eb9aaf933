package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/time/rate"

	"github.com/meta-pytorch/orgsite/internal/core/domain"
	"github.com/meta-pytorch/orgsite/internal/core/ports/driven"
	"github.com/meta-pytorch/orgsite/internal/logger"
)

const (
	userAgent      = "orgsite-generator/1.0"
	requestTimeout = 15 * time.Second

	// SearchIndexFile is the corpus artifact consumed by the search loader.
	SearchIndexFile = "search-index.json"
	// ProjectsFile is the flat card data artifact.
	ProjectsFile = "projects.json"
)

// Options configures a generation run.
type Options struct {
	// ProjectsPath is the projects.yaml manifest.
	ProjectsPath string
	// OutputDir receives search-index.json and projects.json.
	OutputDir string
	// Org is the GitHub organization used to derive repository URLs.
	Org string
	// SiteBase is the docs host used when a project has no explicit docs
	// URL, e.g. "https://meta-pytorch.org".
	SiteBase string
	// Offline skips all crawling; only manifest data is emitted.
	Offline bool
	// RequestsPerSecond throttles crawl traffic. Zero means 10.
	RequestsPerSecond float64
	// Cache, when non-nil, avoids refetching pages seen on a previous run.
	Cache driven.PageCache
	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
	// Progress suppresses the progress bar when false.
	Progress bool
}

// Generator produces the site's JSON artifacts from projects.yaml.
type Generator struct {
	opts    Options
	client  *http.Client
	limiter *rate.Limiter
}

// New creates a Generator.
func New(opts Options) *Generator {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	rps := opts.RequestsPerSecond
	if rps <= 0 {
		rps = 10
	}
	return &Generator{
		opts:    opts,
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// Run loads the manifest, crawls docs sites unless offline, and writes the
// two JSON artifacts to the output directory.
func (g *Generator) Run(ctx context.Context) error {
	specs, err := LoadProjects(g.opts.ProjectsPath)
	if err != nil {
		return err
	}

	logger.Section("Generate")
	logger.Info("generating artifacts for %d projects (offline=%v)", len(specs), g.opts.Offline)

	corpus := make([]domain.Project, 0, len(specs))
	cards := make([]domain.Card, 0, len(specs))

	for _, spec := range specs {
		docsURL := spec.DocsURL(g.opts.SiteBase)

		cards = append(cards, domain.Card{
			ID:          spec.ID,
			Title:       spec.Title,
			Repo:        spec.Repo,
			Category:    spec.Category,
			Description: spec.Description,
			Docs:        docsURL,
			GitHub:      spec.GitHubURL(g.opts.Org),
		})

		pages := g.collectPages(ctx, spec, docsURL)
		logger.Debug("[%s] %d search pages", spec.ID, len(pages))

		corpus = append(corpus, domain.Project{
			ID:          spec.ID,
			Title:       spec.Title,
			Category:    spec.Category,
			Description: spec.Description,
			Keywords:    spec.Keywords,
			URL:         docsURL,
			Pages:       pages,
		})
	}

	if err := writeJSON(filepath.Join(g.opts.OutputDir, SearchIndexFile), corpus); err != nil {
		return err
	}
	return writeJSON(filepath.Join(g.opts.OutputDir, ProjectsFile), cards)
}

// collectPages merges manual manifest pages with crawled sitemap pages.
// Manual entries take priority; duplicates collapse by URL ignoring a
// trailing slash.
func (g *Generator) collectPages(ctx context.Context, spec ProjectSpec, docsURL string) []domain.Page {
	pages := make([]domain.Page, 0, len(spec.Pages))
	seen := make(map[string]struct{})

	for _, pg := range spec.Pages {
		key := strings.TrimRight(pg.URL, "/")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		pages = append(pages, domain.Page{Title: pg.Title, URL: pg.URL, Content: pg.Content})
	}

	if g.opts.Offline || !crawlable(docsURL) {
		return pages
	}

	urls := g.sitemapURLs(ctx, docsURL)
	if len(urls) == 0 {
		logger.Debug("[%s] no sitemap found, skipping crawl", spec.ID)
		return pages
	}
	logger.Debug("[%s] found %d pages in sitemap", spec.ID, len(urls))

	bar := g.progressBar(len(urls), spec.ID)
	for _, pageURL := range urls {
		if bar != nil {
			_ = bar.Add(1)
		}
		key := strings.TrimRight(pageURL, "/")
		if _, dup := seen[key]; dup {
			continue
		}
		if skipURL(pageURL) {
			continue
		}

		meta, ok := g.pageMeta(ctx, pageURL)
		if !ok || meta.Title == "" {
			continue
		}

		seen[key] = struct{}{}
		pages = append(pages, domain.Page{
			Title:   ensureProjectTitle(meta.Title, spec.Title),
			URL:     pageURL,
			Content: meta.Description,
		})
	}
	if bar != nil {
		_ = bar.Finish()
	}

	return pages
}

// pageMeta returns the title and description for a page, consulting the
// cache before fetching.
func (g *Generator) pageMeta(ctx context.Context, url string) (pageMeta, bool) {
	if g.opts.Cache != nil {
		if cached, err := g.opts.Cache.Get(ctx, url); err == nil && cached != nil {
			return pageMeta{Title: cached.Title, Description: cached.Description}, true
		}
	}

	body, ok := g.fetch(ctx, url)
	if !ok {
		return pageMeta{}, false
	}
	meta, err := extractMeta(body)
	if err != nil {
		return pageMeta{}, false
	}

	if g.opts.Cache != nil && meta.Title != "" {
		err := g.opts.Cache.Put(ctx, driven.PageMeta{
			URL:         url,
			Title:       meta.Title,
			Description: meta.Description,
			FetchedAt:   time.Now(),
		})
		if err != nil {
			logger.Warn("page cache write for %s failed: %v", url, err)
		}
	}
	return meta, true
}

// fetch retrieves a URL, honouring the rate limiter. Any failure degrades
// to a miss; a single unreachable page never aborts generation.
func (g *Generator) fetch(ctx context.Context, url string) (string, bool) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		logger.Debug("fetch %s: %v", url, err)
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false
	}
	return string(body), true
}

func (g *Generator) progressBar(total int, description string) *progressbar.ProgressBar {
	if !g.opts.Progress {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetItsString("pages"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
	)
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
