package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bushboy/bookingswap-sub016/internal/adapter/persistence/memory"
	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func TestDeadlineSweeper_RunOnce(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(t, ctrl)
	f.permissive()
	f.items.Put(entities.SwapItem{ID: "item-2", OwnerID: "owner", EventDate: t0.Add(40 * 24 * time.Hour)})

	sweeper := NewDeadlineSweeper(f.uc, f.auctions, f.items)
	sweeper.now = f.clock.Now

	a := mustCreate(t, f, intPtr(24))
	cmdB := createCmd(nil)
	cmdB.SwapID, cmdB.ItemID = "swap-2", "item-2"
	cmdB.Settings.EndDate = t0.Add(20 * 24 * time.Hour).Format(time.RFC3339)
	b, err := f.uc.CreateAuction(ctx, cmdB)
	if err != nil {
		t.Fatalf("create b: %v", err)
	}
	cash := mustSubmit(t, f, cashInput(a.ID, "bidder-a", 200))
	booking := mustSubmit(t, f, bookingInput(b.ID))

	t.Run("nothing due", func(t *testing.T) {
		report := sweeper.RunOnce(ctx)
		for _, s := range report.Sweeps {
			if s.Processed != 0 {
				t.Fatalf("expected idle sweep %s, got %+v", s.Name, s)
			}
		}
	})

	t.Run("ends expired auctions", func(t *testing.T) {
		f.clock.Advance(10 * 24 * time.Hour)
		report := sweeper.RunOnce(ctx)

		expired, _ := report.Sweep(SweepExpired)
		if expired.Processed != 1 || expired.Succeeded != 1 {
			t.Fatalf("unexpected expired sweep %+v", expired)
		}
		got, _ := f.auctions.GetByID(ctx, a.ID)
		if got.Status != entities.AuctionStatusEnded {
			t.Fatalf("expected auction a ended, got %s", got.Status)
		}
		auto, _ := report.Sweep(SweepAutoSelection)
		if auto.Processed != 0 {
			t.Fatalf("auto-selection must wait for the timeout, got %+v", auto)
		}
	})

	t.Run("auto-selects and converts near-deadline auctions", func(t *testing.T) {
		f.items.Put(entities.SwapItem{ID: "item-2", OwnerID: "owner", EventDate: f.clock.Now().Add(3 * 24 * time.Hour)})
		f.clock.Advance(25 * time.Hour)
		report := sweeper.RunOnce(ctx)

		auto, _ := report.Sweep(SweepAutoSelection)
		if auto.Succeeded != 1 {
			t.Fatalf("unexpected auto-selection sweep %+v", auto)
		}
		if proposalStatus(t, f, cash.ID) != entities.ProposalStatusAccepted {
			t.Fatalf("expected cash proposal on a accepted")
		}

		approaching, _ := report.Sweep(SweepApproaching)
		if approaching.Succeeded != 1 {
			t.Fatalf("unexpected approaching sweep %+v", approaching)
		}
		gotB, _ := f.auctions.GetByID(ctx, b.ID)
		if gotB.Status != entities.AuctionStatusEnded || gotB.WinningProposalID != booking.ID {
			t.Fatalf("expected b converted with booking winner, got %+v", gotB)
		}
	})

	t.Run("repeated runs are no-ops", func(t *testing.T) {
		report := sweeper.RunOnce(ctx)
		for _, s := range report.Sweeps {
			if s.Processed != 0 || s.Failed != 0 {
				t.Fatalf("expected idle sweep %s, got %+v", s.Name, s)
			}
		}
	})
}

// flakyEngine fails, conflicts or panics for selected auctions.
type flakyEngine struct {
	IAuctionUseCase
	ended []string
}

func (e *flakyEngine) EndAuction(_ context.Context, auctionID string) (entities.Auction, error) {
	switch auctionID {
	case "broken":
		return entities.Auction{}, collaboratorFailure("auction store", "update status", errors.New("throttled"))
	case "raced":
		return entities.Auction{}, conflict(auctionID, "ended", ErrInvalidStatus)
	case "panics":
		panic("boom")
	}
	e.ended = append(e.ended, auctionID)
	return entities.Auction{ID: auctionID}, nil
}

func TestDeadlineSweeper_IsolatesFailures(t *testing.T) {
	ctx := context.Background()
	now := t0
	repo := memory.NewAuctionMemoryRepository()
	for i, id := range []string{"broken", "raced", "panics", "fine"} {
		_, err := repo.Create(ctx, entities.Auction{
			ID:        id,
			Status:    entities.AuctionStatusActive,
			EventDate: now.Add(60 * 24 * time.Hour),
			Settings:  entities.AuctionSettings{EndDate: now.Add(-time.Hour)},
			CreatedAt: now.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	engine := &flakyEngine{}
	sweeper := NewDeadlineSweeper(engine, repo, nil)
	sweeper.now = func() time.Time { return now }

	report := sweeper.RunOnce(ctx)
	expired, ok := report.Sweep(SweepExpired)
	if !ok {
		t.Fatalf("missing expired sweep")
	}
	if expired.Processed != 4 || expired.Succeeded != 1 || expired.Skipped != 1 || expired.Failed != 2 {
		t.Fatalf("unexpected counts %+v", expired)
	}
	if len(engine.ended) != 1 || engine.ended[0] != "fine" {
		t.Fatalf("expected the healthy auction to be processed, got %v", engine.ended)
	}
	if len(expired.Failures) != 2 || expired.Failures[0].AuctionID != "broken" || expired.Failures[1].AuctionID != "panics" {
		t.Fatalf("unexpected failures %+v", expired.Failures)
	}
}

func TestDeadlineSweeper_Run(t *testing.T) {
	repo := memory.NewAuctionMemoryRepository()
	sweeper := NewDeadlineSweeper(&flakyEngine{}, repo, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx, 10*time.Millisecond)
		close(done)
	}()
	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("sweeper did not stop after cancellation")
	}
}

// convertEngine records convert calls made by the approaching-deadline sweep.
type convertEngine struct {
	IAuctionUseCase
	reasons map[string]string
}

func (e *convertEngine) ConvertToFirstMatch(_ context.Context, auctionID, reason string) (entities.Auction, error) {
	e.reasons[auctionID] = reason
	return entities.Auction{ID: auctionID, Status: entities.AuctionStatusEnded}, nil
}

// itemsByID serves fixed items and fails lookups listed in errs.
type itemsByID struct {
	items map[string]entities.SwapItem
	errs  map[string]error
}

func (l itemsByID) GetItemByID(_ context.Context, id string) (entities.SwapItem, error) {
	if err, ok := l.errs[id]; ok {
		return entities.SwapItem{}, err
	}
	return l.items[id], nil
}

func TestDeadlineSweeper_ApproachingTriggers(t *testing.T) {
	ctx := context.Background()
	now := t0
	day := 24 * time.Hour

	seed := func(t *testing.T, repo *memory.AuctionMemoryRepository, id, itemID string, snapshot, endDate time.Time) {
		t.Helper()
		_, err := repo.Create(ctx, entities.Auction{
			ID:        id,
			SwapID:    "swap-" + id,
			ItemID:    itemID,
			Status:    entities.AuctionStatusActive,
			EventDate: snapshot,
			Settings:  entities.AuctionSettings{EndDate: endDate},
			CreatedAt: now,
		})
		if err != nil {
			t.Fatalf("seed %s: %v", id, err)
		}
	}

	t.Run("event moved earlier leaves no buffer before the end date", func(t *testing.T) {
		repo := memory.NewAuctionMemoryRepository()
		seed(t, repo, "moved", "item-moved", now.Add(60*day), now.Add(20*day))
		seed(t, repo, "steady", "item-steady", now.Add(60*day), now.Add(20*day))
		items := itemsByID{items: map[string]entities.SwapItem{
			"item-moved":  {ID: "item-moved", EventDate: now.Add(25 * day)},
			"item-steady": {ID: "item-steady", EventDate: now.Add(60 * day)},
		}}

		engine := &convertEngine{reasons: map[string]string{}}
		sweeper := NewDeadlineSweeper(engine, repo, items)
		sweeper.now = func() time.Time { return now }

		report := sweeper.RunOnce(ctx)
		approaching, _ := report.Sweep(SweepApproaching)
		if approaching.Processed != 1 || approaching.Succeeded != 1 {
			t.Fatalf("unexpected approaching sweep %+v", approaching)
		}
		if got := engine.reasons["moved"]; got != ReasonRescheduledInsideBuffer {
			t.Fatalf("expected reason %q, got %q", ReasonRescheduledInsideBuffer, got)
		}
		if _, ok := engine.reasons["steady"]; ok {
			t.Fatalf("auction with a full buffer must not be converted")
		}
	})

	t.Run("lookup failure falls back to the stored event date", func(t *testing.T) {
		repo := memory.NewAuctionMemoryRepository()
		seed(t, repo, "near", "item-near", now.Add(3*day), now.Add(day))
		seed(t, repo, "far", "item-far", now.Add(60*day), now.Add(20*day))
		lookupErr := errors.New("bookings table unavailable")
		items := itemsByID{errs: map[string]error{"item-near": lookupErr, "item-far": lookupErr}}

		engine := &convertEngine{reasons: map[string]string{}}
		sweeper := NewDeadlineSweeper(engine, repo, items)
		sweeper.now = func() time.Time { return now }

		report := sweeper.RunOnce(ctx)
		approaching, _ := report.Sweep(SweepApproaching)
		if approaching.Processed != 1 || approaching.Succeeded != 1 || approaching.Failed != 0 {
			t.Fatalf("unexpected approaching sweep %+v", approaching)
		}
		if got := engine.reasons["near"]; got != ReasonDeadlineApproaching {
			t.Fatalf("expected reason %q, got %q", ReasonDeadlineApproaching, got)
		}
		if _, ok := engine.reasons["far"]; ok {
			t.Fatalf("stored event date is far away, auction must not be converted")
		}
	})
}
