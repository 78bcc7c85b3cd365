package service

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/diegoclair/shift-roster/internal/domain/contract"
	"github.com/diegoclair/shift-roster/internal/ident"
	"github.com/diegoclair/shift-roster/internal/selector"
	"github.com/diegoclair/shift-roster/internal/validation"
)

// Options configures the services. Zero values fall back to sensible
// defaults.
type Options struct {
	Policy      validation.Policy
	Logger      *slog.Logger
	Metrics     contract.Metrics
	IDGenerator ident.Generator
	Clock       func() time.Time
	MemoSize    int
	Digest      DigestConfig
}

type Instance struct {
	Roster *rosterService
	Digest *digestScheduler
}

func NewInstance(st contract.StateStore, dm contract.DataManager, slackClient contract.SlackClient, opts Options) (*Instance, error) {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Metrics == nil {
		opts.Metrics = noopMetrics{}
	}
	if opts.IDGenerator == nil {
		opts.IDGenerator = ident.New
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	memo, err := selector.NewMemo(opts.MemoSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create selector memo: %w", err)
	}

	rosterService := newRosterService(st, dm, memo, opts)
	digest := newDigestScheduler(rosterService, slackClient, opts.Digest, opts.Logger, opts.Clock)
	rosterService.setDigest(digest)

	return &Instance{
		Roster: rosterService,
		Digest: digest,
	}, nil
}

type noopMetrics struct{}

func (noopMetrics) ValidationRejected(string) {}
