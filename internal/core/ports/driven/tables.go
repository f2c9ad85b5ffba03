package driven

import "github.com/custodia-labs/aurora-cli/internal/core/domain"

// TableSource supplies the lookup tables read from the data directory.
//
// Loading is best-effort: implementations never return an error.
// A file that is missing, unreadable or fails its schema leaves the
// corresponding table empty, and lookups fall through to defaults.
type TableSource interface {
	// Tables returns the loaded tables. Maps are never nil.
	Tables() domain.Tables
}
