package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/slack-go/slack"

	"github.com/diegoclair/shift-roster/internal/config"
	"github.com/diegoclair/shift-roster/internal/database"
	"github.com/diegoclair/shift-roster/internal/domain/contract"
	"github.com/diegoclair/shift-roster/internal/domain/service"
	"github.com/diegoclair/shift-roster/internal/metrics"
	"github.com/diegoclair/shift-roster/internal/seed"
	"github.com/diegoclair/shift-roster/internal/store"
	"github.com/diegoclair/shift-roster/internal/validation"
	"github.com/diegoclair/shift-roster/migrator/sqlite"
)

// runtime holds the wired application. Closers run in reverse order.
type runtime struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    *store.Store
	metrics  *metrics.Metrics
	services *service.Instance
	closers  []func()
}

type runtimeOptions struct {
	// openDB opens and migrates the timesheet database.
	openDB bool
	// slack wires the Slack client used by the digest.
	slack bool
}

func newRuntime(cfg *config.Config, logger *slog.Logger, opts runtimeOptions) (*runtime, error) {
	rt := &runtime{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics.New(),
		store:   store.New(store.WithLogger(logger)),
	}
	rt.closers = append(rt.closers, rt.store.Subscribe(rt.metrics.ObserveEvent))

	var dm contract.DataManager
	if opts.openDB {
		db, err := database.New(cfg.ExportDBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		rt.closers = append(rt.closers, func() { db.Close() })

		logger.Info("running migrations", "path", cfg.ExportDBPath)
		if err := sqlite.Migrate(db.DB()); err != nil {
			rt.close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		dm = database.NewInstance(db)
	}

	var slackClient contract.SlackClient
	if opts.slack && cfg.SlackBotToken != "" {
		slackClient = slack.New(cfg.SlackBotToken)
	}

	services, err := service.NewInstance(rt.store, dm, slackClient, service.Options{
		Policy:  validation.Policy{AllowEmptyRosters: cfg.AllowEmptyRosters},
		Logger:  logger,
		Metrics: rt.metrics,
		Digest: service.DigestConfig{
			Channel:  cfg.DigestChannel,
			Time:     cfg.DigestTime,
			Days:     cfg.DigestDays,
			Location: cfg.Timezone,
		},
	})
	if err != nil {
		rt.close()
		return nil, fmt.Errorf("failed to create services: %w", err)
	}
	rt.services = services

	return rt, nil
}

// loadSeed applies the seed file at path, if any.
func (rt *runtime) loadSeed(ctx context.Context, path string) (seed.Summary, error) {
	if path == "" {
		return seed.Summary{}, nil
	}

	file, err := seed.Load(path)
	if err != nil {
		return seed.Summary{}, err
	}
	sum, err := seed.Apply(ctx, rt.services.Roster, file)
	if err != nil {
		return sum, fmt.Errorf("failed to apply seed file %s: %w", path, err)
	}

	rt.logger.Info("seed file applied",
		"path", path,
		"locations", sum.Locations,
		"staff", sum.Staff,
		"rosters", sum.Rosters,
		"shifts", sum.Shifts,
	)
	return sum, nil
}

func (rt *runtime) addCloser(fn func()) {
	rt.closers = append(rt.closers, fn)
}

func (rt *runtime) close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		rt.closers[i]()
	}
	rt.closers = nil
}
