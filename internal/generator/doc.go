// Package generator builds the search corpus and project card artifacts
// from a projects.yaml manifest, optionally crawling each project's
// documentation sitemap for sub-pages.
package generator
