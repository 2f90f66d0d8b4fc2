// Package driving defines the interfaces through which the outside
// world drives the core: the CLI commands and the TUI views call these.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement them; driving adapters consume them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driving
