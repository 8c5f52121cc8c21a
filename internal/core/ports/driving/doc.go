// Package driving defines the interfaces through which the outside
// world drives the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI depends on these interfaces, and core services implement them.
//
// # Interfaces
//
//   - WatchDispatcher: Runs the watch loop that feeds the sync pipeline
//   - SyncPipeline: Processes one detected file end to end
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or service package
package driving
