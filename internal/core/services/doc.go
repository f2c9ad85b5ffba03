// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO. Lookup defaults and section
// builders live here; calendar arithmetic lives in core/astro.
package services
