// Package config loads application settings from a TOML file.
package config

import (
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the config file looked for when --config is not given.
const DefaultPath = "orgsite.toml"

// Config holds all application settings.
type Config struct {
	Corpus    CorpusConfig    `toml:"corpus"`
	Search    SearchConfig    `toml:"search"`
	GitHub    GitHubConfig    `toml:"github"`
	Generator GeneratorConfig `toml:"generator"`
}

// CorpusConfig locates the search corpus artifacts.
type CorpusConfig struct {
	// IndexURL is the search index artifact, an http(s) URL or local path.
	IndexURL string `toml:"index_url"`
	// CardsURL is the project cards artifact, an http(s) URL or local path.
	CardsURL string `toml:"cards_url"`
}

// SearchConfig tunes the interactive search behaviour.
type SearchConfig struct {
	// Limit is the maximum number of results returned per query.
	Limit int `toml:"limit"`
	// DebounceMillis is how long the TUI waits after a keystroke before
	// issuing a query.
	DebounceMillis int `toml:"debounce_millis"`
}

// GitHubConfig configures star count lookups.
type GitHubConfig struct {
	Org   string `toml:"org"`
	Token string `toml:"token"`
}

// GeneratorConfig configures the corpus generator.
type GeneratorConfig struct {
	// ProjectsFile is the YAML file listing projects to crawl.
	ProjectsFile string `toml:"projects_file"`
	// OutputDir is where the JSON artifacts are written.
	OutputDir string `toml:"output_dir"`
	// CachePath is the sqlite page cache location.
	CachePath string `toml:"cache_path"`
	// RequestsPerSecond throttles crawling.
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Corpus: CorpusConfig{
			IndexURL: "https://meta-pytorch.org/search-index.json",
			CardsURL: "https://meta-pytorch.org/projects.json",
		},
		Search: SearchConfig{
			Limit:          10,
			DebounceMillis: 150,
		},
		GitHub: GitHubConfig{
			Org: "meta-pytorch",
		},
		Generator: GeneratorConfig{
			ProjectsFile:      "projects.yaml",
			OutputDir:         ".",
			CachePath:         ".orgsite-cache.db",
			RequestsPerSecond: 10,
		},
	}
}

// Load reads the TOML file at path, applying defaults for anything the file
// leaves unset. A missing file is not an error: defaults are returned and the
// GITHUB_TOKEN environment variable is still consulted.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	normalise(&cfg)
	applyEnv(&cfg)
	return cfg, nil
}

// Debounce returns the TUI debounce interval as a duration.
func (c Config) Debounce() time.Duration {
	return time.Duration(c.Search.DebounceMillis) * time.Millisecond
}

// normalise clamps values the file could set to something unusable back to
// their defaults.
func normalise(cfg *Config) {
	def := Default()
	if cfg.Search.Limit <= 0 {
		cfg.Search.Limit = def.Search.Limit
	}
	if cfg.Search.DebounceMillis <= 0 {
		cfg.Search.DebounceMillis = def.Search.DebounceMillis
	}
	if cfg.Generator.RequestsPerSecond <= 0 {
		cfg.Generator.RequestsPerSecond = def.Generator.RequestsPerSecond
	}
}

// applyEnv lets the environment override secrets that should not live in a
// checked-in config file.
func applyEnv(cfg *Config) {
	if tok := os.Getenv("GITHUB_TOKEN"); tok != "" {
		cfg.GitHub.Token = tok
	}
}
