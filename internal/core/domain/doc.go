// Package domain defines the core business entities for NotionSync.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - WatchTarget: A configured directory to watch
//   - FileEvent: A raw file-creation notification
//   - DetectedFile: A Markdown file picked up for synchronisation
//   - Block: One typed unit of converted page content
//   - PageRequest / PageRef: The remote page to create and its result
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
