package generator

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	versionRe    = regexp.MustCompile(`\s+v?\d[\d.]*\s*`)
	docsSuffixRe = regexp.MustCompile(`(?i)\s*(documentation|docs)\s*$`)
)

// pageMeta is the title and description extracted from a fetched page.
type pageMeta struct {
	Title       string
	Description string
}

// extractMeta pulls <title> and <meta name="description"> out of an HTML
// document and cleans Sphinx title decoration.
func extractMeta(html string) (pageMeta, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return pageMeta{}, err
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	desc, _ := doc.Find(`meta[name="description"]`).First().Attr("content")

	return pageMeta{
		Title:       cleanSphinxTitle(title),
		Description: strings.TrimSpace(desc),
	}, nil
}

// cleanSphinxTitle rewrites titles like "Install — TorchComms 0.1
// documentation" to "Install - TorchComms", keeping the project name but
// dropping version and "documentation" suffixes. Titles without the Sphinx
// em-dash separator pass through unchanged.
func cleanSphinxTitle(title string) string {
	page, suffix, found := strings.Cut(title, " — ")
	if !found {
		return title
	}
	page = strings.TrimSpace(page)

	suffix = versionRe.ReplaceAllString(suffix, " ")
	suffix = docsSuffixRe.ReplaceAllString(suffix, "")
	suffix = strings.TrimSpace(suffix)

	if suffix == "" || strings.EqualFold(suffix, page) {
		return page
	}
	return page + " - " + suffix
}

// ensureProjectTitle appends the project name when the page title does not
// already mention it, so project-name queries match sub-pages.
func ensureProjectTitle(title, project string) string {
	if strings.Contains(strings.ToLower(title), strings.ToLower(project)) {
		return title
	}
	return title + " - " + project
}
