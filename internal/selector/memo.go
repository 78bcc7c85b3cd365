package selector

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
)

const defaultMemoSize = 256

type memoKey struct {
	query    string
	revision uint64
	a, b     string
}

// Memo caches selector results keyed on state revision and arguments.
// Revisions are only unique within one store, so use one Memo per store.
// Returned values are shared between callers and must not be modified.
type Memo struct {
	cache *lru.Cache[memoKey, any]
}

// NewMemo creates a Memo holding at most size results. A size <= 0 uses the
// default.
func NewMemo(size int) (*Memo, error) {
	if size <= 0 {
		size = defaultMemoSize
	}
	cache, err := lru.New[memoKey, any](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create selector cache: %w", err)
	}
	return &Memo{cache: cache}, nil
}

func memoize[T any](m *Memo, key memoKey, compute func() T) T {
	if v, ok := m.cache.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	v := compute()
	m.cache.Add(key, v)
	return v
}

// StaffByLocation is the memoized form of the package-level function.
func (m *Memo) StaffByLocation(state entity.AppState, locationID string) []entity.StaffRecord {
	key := memoKey{query: "staffByLocation", revision: state.Revision, a: locationID}
	return memoize(m, key, func() []entity.StaffRecord { return StaffByLocation(state, locationID) })
}

// RostersByDate is the memoized form of the package-level function.
func (m *Memo) RostersByDate(state entity.AppState, dateISO, locationID string) []entity.Roster {
	key := memoKey{query: "rostersByDate", revision: state.Revision, a: dateISO, b: locationID}
	return memoize(m, key, func() []entity.Roster { return RostersByDate(state, dateISO, locationID) })
}

// UsageCounts is the memoized form of the package-level function.
func (m *Memo) UsageCounts(state entity.AppState, locationID string) Usage {
	key := memoKey{query: "usage", revision: state.Revision, a: locationID}
	return memoize(m, key, func() Usage { return UsageCounts(state, locationID) })
}

// Len reports how many results are cached.
func (m *Memo) Len() int {
	return m.cache.Len()
}
