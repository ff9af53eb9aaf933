package domain

import (
	"fmt"
	"strings"
)

// Document is the flattened, searchable unit the index operates over.
// One document is emitted per project and one per sub-page. Documents
// are constructed once per corpus load and are immutable thereafter.
type Document struct {
	// ID is the unique document key. For project documents this is the
	// project ID; for page documents it is "{projectID}-page-{i}".
	ID string `json:"id"`

	// Title is the indexed title field.
	Title string `json:"title"`

	// Body is the indexed body text. It carries the parent project's
	// keywords so keyword matches hit page documents too.
	Body string `json:"body"`

	// Category is the parent project's category.
	Category string `json:"category"`

	// URL is where the document lives.
	URL string `json:"url"`

	// ProjectID links back to the parent project.
	ProjectID string `json:"projectId"`
}

// PageDocumentID derives the synthetic document key for the page at
// position i (0-based) within the given project. Keys are unique as
// long as project IDs are unique and page order is stable.
func PageDocumentID(projectID string, i int) string {
	return fmt.Sprintf("%s-page-%d", projectID, i)
}

// Flatten converts a corpus of projects into the uniform document list
// the index is built over. Emission order follows corpus order then
// page order; scoring does not depend on it, but it fixes the
// iteration-order tie-break for equal scores.
func Flatten(projects []Project) []Document {
	docs := make([]Document, 0, len(projects))

	for _, p := range projects {
		docs = append(docs, Document{
			ID:        p.ID,
			Title:     p.Title,
			Body:      joinText(p.Description, p.Keywords),
			Category:  p.Category,
			URL:       p.URL,
			ProjectID: p.ID,
		})

		for i, pg := range p.Pages {
			docs = append(docs, Document{
				ID:        PageDocumentID(p.ID, i),
				Title:     pg.Title,
				Body:      joinText(pg.Content, p.Keywords),
				Category:  p.Category,
				URL:       pg.URL,
				ProjectID: p.ID,
			})
		}
	}

	return docs
}

// joinText concatenates text fragments with single spaces, skipping
// empty fragments so missing optional fields degrade cleanly.
func joinText(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}
