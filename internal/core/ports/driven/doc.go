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
//   - Converter: Transforms raw HTML pages into Markdown pages
//   - Fetcher: Obtains rustdoc HTML from docs.rs
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - PageCache: Persists converted pages. Without it, every fetch
//     converts from scratch.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or converter package
package driven
