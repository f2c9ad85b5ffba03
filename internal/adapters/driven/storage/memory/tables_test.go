package memory

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/aurora-cli/internal/core/domain"
)

type countingSource struct {
	calls  atomic.Int32
	tables domain.Tables
}

func (s *countingSource) Tables() domain.Tables {
	s.calls.Add(1)
	return s.tables
}

func TestNewTableStore_NilMaps(t *testing.T) {
	store := NewTableStore(nil, nil)

	tables := store.Tables()
	assert.NotNil(t, tables.Mansions)
	assert.NotNil(t, tables.Goddesses)
	assert.Empty(t, tables.Mansions)
}

func TestNewTableStore_CopiesInput(t *testing.T) {
	mansions := map[int]domain.LunarMansionRecord{1: {Number: 1, Name: "Al-Sharatain"}}
	store := NewTableStore(mansions, nil)

	mansions[2] = domain.LunarMansionRecord{Number: 2, Name: "Al-Butain"}

	assert.Len(t, store.Tables().Mansions, 1)
}

func TestTableCache_LoadsOnce(t *testing.T) {
	src := &countingSource{tables: domain.Tables{
		Goddesses: map[int]domain.GoddessRecord{10: {Name: "Hecate"}},
	}}
	cache := NewTableCache(src)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = cache.Tables()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), src.calls.Load())
	assert.Equal(t, "Hecate", cache.Tables().Goddesses[10].Name)
	assert.NotNil(t, cache.Tables().Mansions)
}

func TestTableCache_NilSource(t *testing.T) {
	cache := NewTableCache(nil)

	tables := cache.Tables()
	assert.Empty(t, tables.Mansions)
	assert.Empty(t, tables.Goddesses)
}
