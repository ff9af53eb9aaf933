package domain

// Card is the flat project entry consumed by the cards listing.
// It mirrors projects.json and carries repository popularity once the
// star provider has been consulted.
type Card struct {
	// ID is the project identifier.
	ID string `json:"id"`

	// Title is the project name.
	Title string `json:"title"`

	// Repo is the repository name within the GitHub organization.
	Repo string `json:"repo"`

	// Category groups related projects.
	Category string `json:"category"`

	// Description is the card blurb.
	Description string `json:"description"`

	// Docs is the documentation URL.
	Docs string `json:"docs"`

	// GitHub is the repository URL.
	GitHub string `json:"github"`

	// Stars is the stargazer count. Zero when the count could not be
	// fetched; a failed fetch never fails the listing.
	Stars int `json:"-"`
}
