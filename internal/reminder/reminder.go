// Package reminder implements the daily write reminder: a single
// HH:MM target compared against the wall clock on a fixed cadence,
// firing at most once per matching minute.
package reminder

import (
	"context"
	"fmt"
	"time"
)

// DefaultInterval is the polling cadence.
const DefaultInterval = 60 * time.Second

// ValidateTime checks an HH:MM reminder time.
func ValidateTime(hhmm string) error {
	if _, err := time.Parse("15:04", hhmm); err != nil {
		return fmt.Errorf("invalid reminder time %q (want HH:MM): %v", hhmm, err)
	}
	return nil
}

// Poller compares the stored time-of-day against the current wall
// clock every Interval and calls Notify once per transition into the
// matching minute. Several poll ticks can land inside the same minute;
// the last-fired key guards against re-notifying on each of them.
type Poller struct {
	Target   string        // "HH:MM"
	Interval time.Duration // defaults to DefaultInterval
	Now      func() time.Time
	Notify   func() error

	lastFired string // minute key of the last notification
}

// Run polls until ctx is canceled.
func (p *Poller) Run(ctx context.Context) {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	p.Tick()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p.Tick()
		}
	}
}

// Tick performs one poll comparison and reports whether a
// notification fired.
func (p *Poller) Tick() bool {
	if p.Target == "" {
		return false
	}

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	t := now()
	if t.Format("15:04") != p.Target {
		return false
	}

	minute := t.Format("2006-01-02 15:04")
	if minute == p.lastFired {
		return false
	}
	p.lastFired = minute

	if p.Notify != nil {
		_ = p.Notify()
	}
	return true
}
