// Package domain defines the core business entities for orgsite.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Project: A project entry in the site corpus, with optional sub-pages
//   - Page: A documentation page belonging to a project
//   - Document: The flattened, searchable unit the index operates over
//   - Card: A project card with repository popularity metadata
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
