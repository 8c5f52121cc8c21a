// Package file provides file-based configuration adapters.
// These adapters read the operator-maintained files kept in the
// notionsync config directory.
//
// Adapters:
//   - LoadTargets: JSON-based watch target list (sync_targets.json)
//   - LoadSettings: TOML-based daemon settings (settings.toml)
package file
