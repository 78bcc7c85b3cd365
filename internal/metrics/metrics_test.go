package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/diegoclair/shift-roster/internal/store"
)

func TestMetrics_ObserveStore(t *testing.T) {
	m := New()
	st := store.New()
	unsubscribe := st.Subscribe(m.ObserveEvent)
	defer unsubscribe()

	st.Dispatch(store.AddLocations{Locations: []entity.NewLocationInput{{Name: "Golden Lion", Address: "1 King St"}}})
	st.Dispatch(store.SetActiveLocation{ID: st.GetState().Locations[0].ID}) // already active, no event
	st.Dispatch(store.SetActiveLocation{ID: ""})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.dispatches.WithLabelValues(store.ActionAddLocations)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dispatches.WithLabelValues(store.ActionSetActiveLocation)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.revision))
}

func TestMetrics_ValidationRejected(t *testing.T) {
	m := New()

	m.ValidationRejected("addShift")
	m.ValidationRejected("addShift")
	m.ValidationRejected("createStaff")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.rejections.WithLabelValues("addShift")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejections.WithLabelValues("createStaff")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveEvent(store.Event{Action: store.ActionAddStaff, Revision: 7})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `shift_roster_dispatch_total{action="addStaff"} 1`)
	assert.Contains(t, body, "shift_roster_state_revision 7")
}
