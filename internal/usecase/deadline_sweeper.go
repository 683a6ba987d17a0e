package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
	"github.com/bushboy/bookingswap-sub016/internal/domain/timing"
	"github.com/bushboy/bookingswap-sub016/internal/usecase/interfaces"
)

const (
	SweepExpired       = "expired"
	SweepAutoSelection = "auto_selection"
	SweepApproaching   = "approaching_deadline"
)

// SweepFailure is one auction the sweeper could not process.
type SweepFailure struct {
	AuctionID string `json:"auction_id"`
	Reason    string `json:"reason"`
}

// SweepResult summarizes a single sweep.
type SweepResult struct {
	Name      string         `json:"name"`
	Processed int            `json:"processed"`
	Succeeded int            `json:"succeeded"`
	Skipped   int            `json:"skipped"`
	Failed    int            `json:"failed"`
	Failures  []SweepFailure `json:"failures,omitempty"`
	// Err is set when the sweep could not even list its candidates.
	Err string `json:"error,omitempty"`
}

type SweepReport struct {
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Sweeps     []SweepResult `json:"sweeps"`
}

// Sweep returns the result for the named sweep.
func (r SweepReport) Sweep(name string) (SweepResult, bool) {
	for _, s := range r.Sweeps {
		if s.Name == name {
			return s, true
		}
	}
	return SweepResult{}, false
}

// DeadlineSweeper drives the time-based transitions: ending expired auctions,
// auto-selecting winners and converting auctions whose event is too close.
// It calls the same entry points as users do, so races with manual actions
// surface as state conflicts and are counted as skipped.
type DeadlineSweeper struct {
	engine   IAuctionUseCase
	auctions interfaces.IAuctionRepository
	items    interfaces.IItemLookup
	now      func() time.Time
}

func NewDeadlineSweeper(engine IAuctionUseCase, auctions interfaces.IAuctionRepository, items interfaces.IItemLookup) *DeadlineSweeper {
	return &DeadlineSweeper{
		engine:   engine,
		auctions: auctions,
		items:    items,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Run sweeps every interval until ctx is cancelled.
func (s *DeadlineSweeper) Run(ctx context.Context, interval time.Duration) {
	log.Printf("[sweeper] started interval=%s", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.RunOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Printf("[sweeper] stopped: %v", ctx.Err())
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs the three sweeps. A failure in one sweep or on one auction
// never stops the others.
func (s *DeadlineSweeper) RunOnce(ctx context.Context) SweepReport {
	report := SweepReport{StartedAt: s.now()}
	report.Sweeps = append(report.Sweeps,
		s.sweepExpired(ctx),
		s.sweepAutoSelection(ctx),
		s.sweepApproaching(ctx),
	)
	report.FinishedAt = s.now()

	for _, r := range report.Sweeps {
		log.Printf("[sweeper] %s processed=%d succeeded=%d skipped=%d failed=%d", r.Name, r.Processed, r.Succeeded, r.Skipped, r.Failed)
	}
	return report
}

func (s *DeadlineSweeper) sweepExpired(ctx context.Context) SweepResult {
	res := SweepResult{Name: SweepExpired}
	expired, err := s.auctions.ListExpired(ctx, s.now())
	if err != nil {
		log.Printf("[sweeper] %s: listing failed err=%v", res.Name, err)
		res.Err = err.Error()
		return res
	}
	for _, a := range expired {
		res.track(a.ID, func() error {
			_, err := s.engine.EndAuction(ctx, a.ID)
			return err
		})
	}
	return res
}

func (s *DeadlineSweeper) sweepAutoSelection(ctx context.Context) SweepResult {
	res := SweepResult{Name: SweepAutoSelection}
	noWinner := false
	ended, err := s.auctions.List(ctx, entities.AuctionFilter{Status: entities.AuctionStatusEnded, HasWinner: &noWinner})
	if err != nil {
		log.Printf("[sweeper] %s: listing failed err=%v", res.Name, err)
		res.Err = err.Error()
		return res
	}
	now := s.now()
	for _, a := range ended {
		deadline, ok := a.AutoSelectDeadline()
		if !ok || now.Before(deadline) {
			continue
		}
		res.track(a.ID, func() error {
			outcome, err := s.engine.HandleAutoSelection(ctx, a.ID)
			if err != nil {
				return err
			}
			if outcome != AutoSelectionSelected {
				return errSkipped(string(outcome))
			}
			return nil
		})
	}
	return res
}

func (s *DeadlineSweeper) sweepApproaching(ctx context.Context) SweepResult {
	res := SweepResult{Name: SweepApproaching}
	active, err := s.auctions.List(ctx, entities.AuctionFilter{Status: entities.AuctionStatusActive})
	if err != nil {
		log.Printf("[sweeper] %s: listing failed err=%v", res.Name, err)
		res.Err = err.Error()
		return res
	}
	now := s.now()
	for _, a := range active {
		eventDate := s.eventDate(ctx, a)
		tooClose := timing.IsLastMinute(eventDate, now)
		noBuffer := a.Settings.EndDate.After(timing.MinimumEndDate(eventDate))
		if !tooClose && !noBuffer {
			continue
		}
		reason := ReasonDeadlineApproaching
		if !tooClose {
			reason = ReasonRescheduledInsideBuffer
		}
		res.track(a.ID, func() error {
			_, err := s.engine.ConvertToFirstMatch(ctx, a.ID, reason)
			return err
		})
	}
	return res
}

// eventDate prefers the booking's current event date and falls back to the
// snapshot taken when the auction was created.
func (s *DeadlineSweeper) eventDate(ctx context.Context, a entities.Auction) time.Time {
	if s.items == nil || a.ItemID == "" {
		return a.EventDate
	}
	item, err := s.items.GetItemByID(ctx, a.ItemID)
	if err != nil || item.ID == "" || item.EventDate.IsZero() {
		if err != nil {
			log.Printf("[sweeper] item lookup failed, using snapshot auction_id=%s item_id=%s err=%v", a.ID, a.ItemID, err)
		}
		return a.EventDate
	}
	return item.EventDate
}

type skippedError struct{ why string }

func (e skippedError) Error() string { return "skipped: " + e.why }

func errSkipped(why string) error { return skippedError{why: why} }

func (r *SweepResult) track(auctionID string, fn func() error) {
	r.Processed++
	err := runIsolated(fn)
	switch {
	case err == nil:
		r.Succeeded++
		log.Printf("[sweeper] %s ok auction_id=%s", r.Name, auctionID)
	case isSkip(err):
		r.Skipped++
		log.Printf("[sweeper] %s skipped auction_id=%s: %v", r.Name, auctionID, err)
	default:
		r.Failed++
		r.Failures = append(r.Failures, SweepFailure{AuctionID: auctionID, Reason: err.Error()})
		log.Printf("[sweeper] %s failed auction_id=%s kind=%s err=%v", r.Name, auctionID, KindOf(err), err)
	}
}

func isSkip(err error) bool {
	if _, ok := err.(skippedError); ok {
		return true
	}
	return IsBenign(err)
}

// runIsolated turns a panic in one auction's processing into an error.
func runIsolated(fn func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return fn()
}
