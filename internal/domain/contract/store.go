package contract

import (
	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/diegoclair/shift-roster/internal/store"
)

// StateStore is the in-memory application state container.
type StateStore interface {
	Dispatch(action store.Action)
	GetState() entity.AppState
	Subscribe(l store.Listener) func()
}
