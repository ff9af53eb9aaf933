// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - CorpusSource: Fetches the corpus artifact (search-index.json)
//   - SearchIndex: In-memory full-text index over flattened documents
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - StarProvider: Repository star counts. Without it, cards show zero stars.
//   - PageCache: Crawl metadata cache. Without it, the generator refetches
//     every page.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or generator package
package driven
