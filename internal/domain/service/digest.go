package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/diegoclair/shift-roster/internal/domain"
	"github.com/diegoclair/shift-roster/internal/domain/contract"
	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/diegoclair/shift-roster/internal/selector"
	slackcmd "github.com/diegoclair/shift-roster/internal/slack"
	"github.com/slack-go/slack"
)

// DigestConfig controls the daily Slack digest.
type DigestConfig struct {
	Channel  string
	Time     string // HH:MM in Location
	Days     []int  // ISO weekdays
	Location *time.Location
}

type stateReader interface {
	GetState(ctx context.Context) entity.AppState
}

type digestScheduler struct {
	reader        stateReader
	slackClient   contract.SlackClient
	cfg           DigestConfig
	logger        *slog.Logger
	now           func() time.Time
	cooldown      time.Duration
	idleWait      time.Duration
	configChanged chan struct{}
	mu            sync.Mutex
	stopChan      chan struct{}
	running       bool
}

func newDigestScheduler(reader stateReader, slackClient contract.SlackClient, cfg DigestConfig, logger *slog.Logger, now func() time.Time) *digestScheduler {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Time == "" {
		cfg.Time = domain.DefaultDigestTime
	}
	return &digestScheduler{
		reader:        reader,
		slackClient:   slackClient,
		cfg:           cfg,
		logger:        logger,
		now:           now,
		cooldown:      time.Minute,
		idleWait:      time.Hour,
		configChanged: make(chan struct{}, 1),
	}
}

// Enabled reports whether digests can be posted at all.
func (d *digestScheduler) Enabled() bool {
	return d.slackClient != nil && d.cfg.Channel != ""
}

func (d *digestScheduler) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return
	}
	if !d.Enabled() {
		d.logger.Info("digest scheduler disabled: slack token or channel not configured")
		return
	}
	d.running = true
	d.stopChan = make(chan struct{})
	d.logger.Info("digest scheduler starting",
		slog.String("channel", d.cfg.Channel),
		slog.String("time", d.cfg.Time),
		slog.String("timezone", d.cfg.Location.String()),
	)
	go d.mainLoop(d.stopChan)
}

func (d *digestScheduler) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.running {
		return
	}
	d.logger.Info("digest scheduler stopping")
	close(d.stopChan)
	d.running = false
}

func (d *digestScheduler) NotifyConfigChange() {
	// Non-blocking: a pending signal already forces a recalculation
	select {
	case d.configChanged <- struct{}{}:
	default:
	}
}

func (d *digestScheduler) mainLoop(stop <-chan struct{}) {
	for {
		nextTime := d.calculateNext(d.now())

		if nextTime.IsZero() {
			d.logger.Warn("no digest time could be scheduled, waiting", slog.Duration("wait", d.idleWait))
			if !d.wait(d.idleWait, stop) {
				return
			}
			continue
		}

		d.logger.Debug("next digest scheduled", slog.Time("at", nextTime))

		if waitDuration := nextTime.Sub(d.now()); waitDuration > 0 {
			if !d.wait(waitDuration, stop) {
				return
			}
			if nextTime.After(d.now()) {
				// woken early by a config change
				continue
			}
		}

		if err := d.SendDigest(nextTime); err != nil {
			d.logger.Error("failed to send digest", slog.Any("error", err))
		}

		// avoid sending twice for the same minute
		if !d.sleep(d.cooldown, stop) {
			return
		}
	}
}

// wait blocks until the duration elapses or the config changes. It returns
// false when the scheduler was stopped.
func (d *digestScheduler) wait(dur time.Duration, stop <-chan struct{}) bool {
	timer := time.NewTimer(dur)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-d.configChanged:
		d.logger.Debug("digest configuration changed, recalculating")
		return true
	case <-stop:
		return false
	}
}

func (d *digestScheduler) sleep(dur time.Duration, stop <-chan struct{}) bool {
	timer := time.NewTimer(dur)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-stop:
		return false
	}
}

// calculateNext returns the next digest time strictly after now, or the
// zero time when the configuration cannot produce one.
func (d *digestScheduler) calculateNext(now time.Time) time.Time {
	hour, minute, err := parseClock(d.cfg.Time)
	if err != nil {
		d.logger.Warn("invalid digest time", slog.String("time", d.cfg.Time), slog.Any("error", err))
		return time.Time{}
	}

	if len(d.cfg.Days) == 0 {
		d.logger.Warn("no digest days configured")
		return time.Time{}
	}

	activeDays := make(map[int]bool, len(d.cfg.Days))
	for _, day := range d.cfg.Days {
		activeDays[day] = true
	}

	local := now.In(d.cfg.Location)
	today := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, d.cfg.Location)

	if activeDays[isoWeekday(today)] && today.After(local) {
		return today
	}

	for i := 1; i <= 7; i++ {
		nextDay := today.AddDate(0, 0, i)
		if activeDays[isoWeekday(nextDay)] {
			return nextDay
		}
	}

	return time.Time{}
}

// SendDigest posts one message per location with the rosters of the day
// that contains at.
func (d *digestScheduler) SendDigest(at time.Time) error {
	if !d.Enabled() {
		return fmt.Errorf("digest is not configured")
	}

	state := d.reader.GetState(context.Background())
	dateISO := at.In(d.cfg.Location).Format(entity.DateLayout)

	var failed int
	for _, loc := range state.Locations {
		message := slackcmd.DayMessage(state, loc, dateISO)
		_, _, err := d.slackClient.PostMessage(
			d.cfg.Channel,
			slack.MsgOptionText(message, false),
			slack.MsgOptionAsUser(false),
		)
		if err != nil {
			failed++
			d.logger.Error("failed to post digest",
				slog.String("location", loc.Name),
				slog.Any("error", err),
			)
			continue
		}
		d.logger.Info("digest posted", slog.String("location", loc.Name), slog.String("date", dateISO))
	}

	if failed > 0 {
		return fmt.Errorf("failed to send Slack message for %d of %d locations", failed, len(state.Locations))
	}
	return nil
}

func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 { // Sunday = 0 in Go, 7 in ISO 8601
		return 7
	}
	return wd
}

func parseClock(hhmm string) (int, int, error) {
	minutes, err := selector.ParseMinutes(hhmm)
	if err != nil {
		return 0, 0, err
	}
	return minutes / 60, minutes % 60, nil
}
