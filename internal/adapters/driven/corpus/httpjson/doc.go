// Package httpjson loads the site's static JSON artifacts
// (search-index.json and projects.json) from an HTTP(S) URL or a local
// file path. It implements the driven.CorpusSource and
// driven.CardSource interfaces.
package httpjson
