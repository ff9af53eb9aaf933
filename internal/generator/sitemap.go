package generator

import (
	"context"
	"encoding/xml"
	"strings"
)

// Sitemaps live at different paths depending on how the docs site is built,
// so each candidate is tried in order until one parses.
var sitemapPaths = []string{
	"/sitemap.xml",
	"/stable/sitemap.xml",
	"/main/sitemap.xml",
	"/latest/sitemap.xml",
	"/en/stable/sitemap.xml",
	"/en/latest/sitemap.xml",
	"/sitemap_index.xml",
}

// sitemapDoc decodes both <urlset> and <sitemapindex> documents; element
// names match by local name so the sitemap namespace needs no handling.
type sitemapDoc struct {
	Sitemaps []sitemapLoc `xml:"sitemap"`
	URLs     []sitemapLoc `xml:"url"`
}

type sitemapLoc struct {
	Loc string `xml:"loc"`
}

// sitemapURLs discovers page URLs for a docs site by probing the candidate
// sitemap paths. Sitemap indexes are followed one level deep. Returns nil
// when no sitemap is found; the site is then simply not crawled.
func (g *Generator) sitemapURLs(ctx context.Context, docsURL string) []string {
	base := strings.TrimRight(docsURL, "/")

	for _, path := range sitemapPaths {
		body, ok := g.fetch(ctx, base+path)
		if !ok || strings.TrimSpace(body) == "" {
			continue
		}

		doc, err := parseSitemap(body)
		if err != nil {
			continue
		}

		var urls []string
		for _, sm := range doc.Sitemaps {
			if sm.Loc == "" {
				continue
			}
			subBody, ok := g.fetch(ctx, sm.Loc)
			if !ok {
				continue
			}
			sub, err := parseSitemap(subBody)
			if err != nil {
				continue
			}
			for _, u := range sub.URLs {
				if u.Loc != "" {
					urls = append(urls, u.Loc)
				}
			}
		}

		for _, u := range doc.URLs {
			if u.Loc != "" {
				urls = append(urls, u.Loc)
			}
		}

		if len(urls) > 0 {
			return urls
		}
	}
	return nil
}

func parseSitemap(body string) (sitemapDoc, error) {
	var doc sitemapDoc
	err := xml.Unmarshal([]byte(body), &doc)
	return doc, err
}

// crawlable reports whether a docs URL points at a site worth crawling.
// Repository hosts have no Sphinx sitemaps.
func crawlable(url string) bool {
	for _, host := range []string{"github.com", "huggingface.co", "gitlab.com"} {
		if strings.Contains(url, host) {
			return false
		}
	}
	return true
}

// Build artifacts that appear in Sphinx sitemaps but are not real content.
var skipPatterns = []string{
	"/_sources/",
	"/_source/",
	"/_static/",
	"/_modules/",
	"/_downloads/",
	"/_images/",
	"/genindex",
	"/py-modindex",
	"/search.html",
	"/404.html",
	"/sg_execution_times",
	"/objects.inv",
}

func skipURL(url string) bool {
	for _, pat := range skipPatterns {
		if strings.Contains(url, pat) {
			return true
		}
	}
	return false
}
