package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/errs"
	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/model"
	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/repository"
	"github.com/AlexeyVin20/LibraryAPI-sub000/pkg/kafka"
)

// Notifier hands events off for out-of-band delivery. Best effort: a failure
// never reaches the accrual path.
type Notifier interface {
	Notify(event kafka.EventNotification)
}

type FineConfig struct {
	DailyRateCents int64
	Interval       time.Duration
	QueueTTL       time.Duration
}

type FineService struct {
	log      *zap.Logger
	repo     repository.Repository
	notifier Notifier
	cfg      FineConfig

	// mu serializes accrual passes; an overlapping tick is skipped, not queued.
	mu          sync.Mutex
	lastCleanup time.Time
}

func NewFineService(repo repository.Repository, notifier Notifier, cfg FineConfig, log *zap.Logger) *FineService {
	return &FineService{
		log:      log,
		repo:     repo,
		notifier: notifier,
		cfg:      cfg,
	}
}

// Run drives the scheduled accrual scan until the context is cancelled.
func (s *FineService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	s.runOnce(ctx, time.Now())
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.runOnce(ctx, now)
		}
	}
}

func (s *FineService) runOnce(ctx context.Context, now time.Time) {
	if !s.mu.TryLock() {
		s.log.Warn("accrual pass still running, skipping tick")
		return
	}
	defer s.mu.Unlock()

	billed, err := s.accrue(ctx, now)
	if err != nil {
		s.log.Error("accrual pass", zap.Error(err))
	} else if billed > 0 {
		s.log.Info("accrual pass finished", zap.Int("billed", billed))
	}

	if now.UTC().Truncate(24*time.Hour).After(s.lastCleanup) {
		s.lastCleanup = now.UTC().Truncate(24 * time.Hour)
		expired, err := s.repo.ExpireQueuedBefore(ctx, now.Add(-s.cfg.QueueTTL))
		if err != nil {
			s.log.Error("queued cleanup", zap.Error(err))
		} else if expired > 0 {
			s.log.Info("queued reservations expired", zap.Int64("count", expired))
		}
	}
}

// Accrue runs one scan over overdue reservations. A failure on one reservation
// is logged and the batch continues.
func (s *FineService) Accrue(ctx context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accrue(ctx, now)
}

func (s *FineService) accrue(ctx context.Context, now time.Time) (int, error) {
	candidates, err := s.repo.ListOverdueCandidates(ctx, now)
	if err != nil {
		return 0, err
	}

	billed := 0
	for _, rsv := range candidates {
		ok, err := s.accrueOne(ctx, rsv, now)
		if err != nil {
			s.log.Error("accrue reservation",
				zap.String("reservationUid", rsv.ReservationUID), zap.Error(err))
			continue
		}
		if ok {
			billed++
		}
	}
	return billed, nil
}

// overdueDays floors the elapsed overdue time to whole days.
func overdueDays(now, due time.Time) int {
	d := now.UTC().Sub(due.UTC())
	if d <= 0 {
		return 0
	}
	return int(d.Hours() / 24)
}

// accrueOne performs the per-reservation billing step: compute the cumulative
// overdue days, bill only the delta since the last ledger entry, append the
// entry and bump the balance atomically, flipping the reservation to OVERDUE
// on first detection. Idempotent per calendar day: the (reservation, day, type)
// unique key makes a rerun a silent no-op.
func (s *FineService) accrueOne(ctx context.Context, rsv model.Reservation, now time.Time) (bool, error) {
	totalDays := overdueDays(now, rsv.TillDate)
	if totalDays <= 0 {
		return false, nil
	}

	alreadyBilled, err := s.repo.HasFineFor(ctx, rsv.ReservationUID, now, model.FineTypeOverdue)
	if err != nil {
		return false, err
	}
	if alreadyBilled {
		return false, nil
	}

	prevDays := 0
	if last, err := s.repo.LastOverdueFine(ctx, rsv.ReservationUID); err != nil {
		return false, err
	} else if last != nil {
		prevDays = last.OverdueDays
	}

	newDays := totalDays - prevDays
	if newDays <= 0 {
		return false, nil
	}

	amount := int64(newDays) * s.cfg.DailyRateCents
	uid := rsv.ReservationUID
	rec := model.FineRecord{
		UserName:       rsv.UserName,
		ReservationUID: &uid,
		AmountCents:    amount,
		Reason:         fmt.Sprintf("overdue by %d days", totalDays),
		OverdueDays:    totalDays,
		FineType:       model.FineTypeOverdue,
		CalculatedFor:  now.UTC(),
	}
	flip := rsv.Status != model.StatusOverdue
	note := fmt.Sprintf("overdue since %s", rsv.TillDate.Format(time.DateOnly))

	saved, err := s.repo.RecordFine(ctx, rec, flip, note)
	if errors.Is(err, errs.ErrAlreadyBilled) {
		// a concurrent run won the day, nothing to charge
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if s.notifier != nil {
		s.notifier.Notify(kafka.EventNotification{
			Kind:           kafka.EventKindFineAdded,
			UserName:       rsv.UserName,
			ReservationUID: rsv.ReservationUID,
			TitleID:        rsv.TitleID,
			AmountCents:    saved.AmountCents,
			OverdueDays:    saved.OverdueDays,
			Reason:         saved.Reason,
			OccurredAt:     now.UTC(),
		})
		if flip {
			s.notifier.Notify(kafka.EventNotification{
				Kind:           kafka.EventKindOverdue,
				UserName:       rsv.UserName,
				ReservationUID: rsv.ReservationUID,
				TitleID:        rsv.TitleID,
				OverdueDays:    saved.OverdueDays,
				OccurredAt:     now.UTC(),
			})
		}
	}
	return true, nil
}

func (s *FineService) ListFines(ctx context.Context, userName string) ([]model.FineRecord, error) {
	return s.repo.ListFinesByUser(ctx, userName)
}

func (s *FineService) PayFine(ctx context.Context, fineID int64) (model.FineRecord, error) {
	return s.repo.PayFine(ctx, fineID)
}

// ReconcileBalance recomputes the cached borrower balance from the unpaid
// ledger sum.
func (s *FineService) ReconcileBalance(ctx context.Context, userName string) (int64, error) {
	return s.repo.ReconcileBalance(ctx, userName)
}

func (s *FineService) GetUser(ctx context.Context, userName string) (model.User, error) {
	return s.repo.GetUser(ctx, userName)
}
