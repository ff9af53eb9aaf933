package generator

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// PageSpec is a manually listed documentation page in projects.yaml.
type PageSpec struct {
	Title   string `yaml:"title"`
	URL     string `yaml:"url"`
	Content string `yaml:"content"`
}

// ProjectSpec is one entry from projects.yaml.
type ProjectSpec struct {
	ID          string     `yaml:"id"`
	Title       string     `yaml:"title"`
	Repo        string     `yaml:"repo"`
	Docs        string     `yaml:"docs"`
	Category    string     `yaml:"category"`
	Description string     `yaml:"description"`
	Keywords    string     `yaml:"keywords"`
	Pages       []PageSpec `yaml:"pages"`
}

// DocsURL returns the docs site URL, defaulting to the org site path for
// the repo when projects.yaml leaves docs unset.
func (p ProjectSpec) DocsURL(siteBase string) string {
	if p.Docs != "" {
		return p.Docs
	}
	return fmt.Sprintf("%s/%s/", strings.TrimRight(siteBase, "/"), p.Repo)
}

// GitHubURL returns the repository URL for the org.
func (p ProjectSpec) GitHubURL(org string) string {
	return fmt.Sprintf("https://github.com/%s/%s", org, p.Repo)
}

// LoadProjects reads and validates the projects.yaml manifest.
func LoadProjects(path string) ([]ProjectSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading projects manifest: %w", err)
	}

	var specs []ProjectSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("parsing projects manifest: %w", err)
	}

	for i, s := range specs {
		if s.ID == "" {
			return nil, fmt.Errorf("project %d: missing id", i)
		}
		if s.Title == "" {
			return nil, fmt.Errorf("project %q: missing title", s.ID)
		}
		if s.Repo == "" {
			return nil, fmt.Errorf("project %q: missing repo", s.ID)
		}
	}
	return specs, nil
}
