package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/diegoclair/shift-roster/internal/domain/contract"
	"github.com/go-chi/chi/v5"
)

// Options configures a Server. Slack and Metrics are optional.
type Options struct {
	RosterService contract.RosterService
	Slack         *SlackHandler
	Metrics       http.Handler
	Logger        *slog.Logger
}

// Server exposes the roster service over HTTP.
type Server struct {
	rosterService contract.RosterService
	slack         *SlackHandler
	metrics       http.Handler
	logger        *slog.Logger
	started       time.Time
}

func NewServer(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		rosterService: opts.RosterService,
		slack:         opts.Slack,
		metrics:       opts.Metrics,
		logger:        logger,
		started:       time.Now(),
	}
}

// Router builds the HTTP router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	if s.slack != nil {
		r.Post("/slack/commands", s.slack.HandleSlashCommand)
	}
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/state", s.handleGetState)
		r.Get("/calendar", s.handleCalendar)

		r.Route("/locations", func(r chi.Router) {
			r.Get("/", s.handleListLocations)
			r.Post("/", s.handleCreateLocations)
			r.Put("/active", s.handleSetActiveLocation)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetLocation)
				r.Patch("/", s.handleUpdateLocation)
				r.Delete("/", s.handleDeleteLocation)
				r.Get("/usage", s.handleLocationUsage)
			})
		})

		r.Route("/staff", func(r chi.Router) {
			r.Get("/", s.handleListStaff)
			r.Post("/", s.handleCreateStaff)
			r.Get("/{id}", s.handleGetStaff)
			r.Patch("/{id}", s.handleUpdateStaff)
			r.Delete("/{id}", s.handleDeleteStaff)
		})

		r.Route("/rosters", func(r chi.Router) {
			r.Get("/", s.handleListRosters)
			r.Post("/", s.handleCreateRoster)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetRoster)
				r.Put("/", s.handleUpdateRoster)
				r.Delete("/", s.handleDeleteRoster)
				r.Get("/stats", s.handleRosterStats)
				r.Post("/shifts", s.handleAddShift)
				r.Put("/shifts/{shiftID}", s.handleUpdateShift)
				r.Delete("/shifts/{shiftID}", s.handleRemoveShift)
			})
		})

		r.Post("/exports/timesheet", s.handleExportTimesheet)
	})

	return r
}
