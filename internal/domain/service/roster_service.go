package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/diegoclair/shift-roster/internal/domain/contract"
	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/diegoclair/shift-roster/internal/ident"
	"github.com/diegoclair/shift-roster/internal/selector"
	"github.com/diegoclair/shift-roster/internal/validation"
)

// rosterService validates every mutation against the current state and
// only then dispatches it. mu makes validate-then-dispatch atomic so two
// requests cannot both pass a check that only one of them may pass.
type rosterService struct {
	mu      sync.Mutex
	store   contract.StateStore
	dm      contract.DataManager
	memo    *selector.Memo
	gen     ident.Generator
	now     func() time.Time
	policy  validation.Policy
	metrics contract.Metrics
	logger  *slog.Logger
	digest  contract.DigestScheduler
}

func newRosterService(st contract.StateStore, dm contract.DataManager, memo *selector.Memo, opts Options) *rosterService {
	return &rosterService{
		store:   st,
		dm:      dm,
		memo:    memo,
		gen:     opts.IDGenerator,
		now:     opts.Clock,
		policy:  opts.Policy,
		metrics: opts.Metrics,
		logger:  opts.Logger,
	}
}

func (s *rosterService) setDigest(d contract.DigestScheduler) {
	s.digest = d
}

func (s *rosterService) GetState(ctx context.Context) entity.AppState {
	return s.store.GetState()
}

// reject records a failed validation and turns it into an error.
func (s *rosterService) reject(operation string, res validation.Result) error {
	s.metrics.ValidationRejected(operation)
	s.logger.Info("validation rejected",
		slog.String("operation", operation),
		slog.Int("violations", len(res.Violations)),
	)
	return res.Err()
}

// notifyDigest tells the digest scheduler that the set of locations changed.
func (s *rosterService) notifyDigest() {
	if s.digest != nil {
		s.digest.NotifyConfigChange()
	}
}
