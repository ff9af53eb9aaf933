// Package driving defines the interfaces through which external actors
// drive the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI and TUI adapters call these interfaces; core services
// implement them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driving
