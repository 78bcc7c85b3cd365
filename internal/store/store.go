// Package store holds the application state and applies actions to it.
//
// State changes only through Dispatch, which runs the pure Reduce step under
// a mutex, so at most one action is applied at a time and readers never see
// a partial update. Listeners registered with Subscribe are called after
// each state-changing dispatch, outside the lock.
package store

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/diegoclair/shift-roster/internal/ident"
)

// Event describes a committed state change.
type Event struct {
	Action   string    `json:"action"`
	Revision uint64    `json:"revision"`
	At       time.Time `json:"at"`
}

// Listener receives committed events.
type Listener func(Event)

// Store is an isolated state container. The zero value is not usable; call New.
type Store struct {
	mu        sync.Mutex
	state     entity.AppState
	gen       ident.Generator
	now       func() time.Time
	logger    *slog.Logger
	listeners map[int]Listener
	nextID    int
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the identifier generator.
func WithIDGenerator(gen ident.Generator) Option {
	return func(s *Store) { s.gen = gen }
}

// WithLogger sets the logger used for dispatch tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithClock replaces time.Now for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithInitialState starts the store from the given state.
func WithInitialState(state entity.AppState) Option {
	return func(s *Store) { s.state = state.Clone() }
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		gen:       ident.New,
		now:       time.Now,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch applies the action. Actions that reference unknown ids leave the
// state untouched and emit no event.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	next, changed := Reduce(s.state, action, s.gen)
	if !changed {
		s.mu.Unlock()
		s.logger.Debug("dispatch had no effect", "action", action.Name())
		return
	}
	next.Revision = s.state.Revision + 1
	s.state = next

	ev := Event{Action: action.Name(), Revision: next.Revision, At: s.now()}
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	s.logDispatch(action, ev)
	for _, l := range listeners {
		l(ev)
	}
}

// GetState returns a deep copy of the current state.
func (s *Store) GetState() entity.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers a listener and returns a function that removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) logDispatch(action Action, ev Event) {
	attrs := []any{"action", ev.Action, "revision", ev.Revision}
	switch a := action.(type) {
	case AddRoster:
		attrs = append(attrs, "title", a.Roster.Title, "date", a.Roster.DateISO,
			"location_id", a.Roster.LocationID, "shift_count", len(a.Roster.Shifts))
	case UpdateRoster:
		attrs = append(attrs, "roster_id", a.Roster.ID, "title", a.Roster.Title,
			"date", a.Roster.DateISO, "shift_count", len(a.Roster.Shifts))
	case AddLocations:
		attrs = append(attrs, "count", len(a.Locations))
	}
	s.logger.Debug("dispatch", attrs...)
}
