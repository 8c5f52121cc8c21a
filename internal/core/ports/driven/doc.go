// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - FileWatcher: Delivers raw file-creation events for the watched directories
//   - FileReader: Reads local file content
//   - BlockConverter: Turns Markdown text into ordered content blocks
//   - PagePublisher: Creates pages in the remote document store
//   - FileDisposer: Archives or deletes a local file after a successful sync
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
