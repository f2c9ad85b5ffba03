// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Renderer: Turns a ReportDocument and Layout into an artifact
//   - RendererRegistry: Selects the renderer for an output format
//   - ArtifactStore: Writes rendered artifacts, all or nothing
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - TableSource: Lookup tables from the data directory. Without it
//     every lookup resolves to built-in defaults.
//   - ConfigStore: Persistent settings. Without it built-in defaults apply.
//   - SettingsOverrides: Environment overrides applied after the config file.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
