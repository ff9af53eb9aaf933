package domain

// Project represents one project in the site corpus.
// It is the canonical representation of a corpus entry as published
// in search-index.json.
type Project struct {
	// ID is the unique identifier for the project.
	ID string `json:"id"`

	// Title is the human-readable project name.
	Title string `json:"title"`

	// Category groups related projects (e.g. "Training", "Inference").
	Category string `json:"category"`

	// Description is a short summary shown on the project card.
	Description string `json:"description"`

	// Keywords is free text used to boost search relevance.
	// Optional; absent keywords decode to the empty string.
	Keywords string `json:"keywords,omitempty"`

	// URL is the project's documentation landing page.
	URL string `json:"url"`

	// Pages are the project's documentation pages discovered by the
	// generator or declared manually.
	Pages []Page `json:"pages,omitempty"`
}

// Page represents a single documentation page within a project.
// Pages have no independent identity; their document ID is derived
// from the parent project and their position.
type Page struct {
	// Title is the page title.
	Title string `json:"title"`

	// URL is the page location.
	URL string `json:"url"`

	// Content is a text snippet, typically the page's meta description.
	Content string `json:"content"`
}
