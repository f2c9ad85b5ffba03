package memory

import (
	"maps"
	"sync"

	"github.com/custodia-labs/aurora-cli/internal/core/domain"
	"github.com/custodia-labs/aurora-cli/internal/core/ports/driven"
)

// Ensure TableStore and TableCache implement the interface.
var (
	_ driven.TableSource = (*TableStore)(nil)
	_ driven.TableSource = (*TableCache)(nil)
)

// TableStore serves fixed lookup tables.
type TableStore struct {
	tables domain.Tables
}

// NewTableStore creates a table store holding copies of the given maps.
// Nil maps are replaced with empty ones.
func NewTableStore(mansions map[int]domain.LunarMansionRecord, goddesses map[int]domain.GoddessRecord) *TableStore {
	tables := domain.EmptyTables()
	maps.Copy(tables.Mansions, mansions)
	maps.Copy(tables.Goddesses, goddesses)
	return &TableStore{tables: tables}
}

// Tables returns the stored tables.
func (s *TableStore) Tables() domain.Tables {
	return s.tables
}

// TableCache loads tables from another source at most once.
// Later calls return the first result, so concurrent readers
// share one immutable snapshot.
type TableCache struct {
	source driven.TableSource
	once   sync.Once
	tables domain.Tables
}

// NewTableCache wraps source. A nil source yields empty tables.
func NewTableCache(source driven.TableSource) *TableCache {
	return &TableCache{source: source}
}

// Tables returns the cached tables, loading them on first use.
func (c *TableCache) Tables() domain.Tables {
	c.once.Do(func() {
		c.tables = domain.EmptyTables()
		if c.source == nil {
			return
		}
		loaded := c.source.Tables()
		maps.Copy(c.tables.Mansions, loaded.Mansions)
		maps.Copy(c.tables.Goddesses, loaded.Goddesses)
	})
	return c.tables
}
