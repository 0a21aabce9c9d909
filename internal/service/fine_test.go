package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/errs"
	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/model"
	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/service"
	"github.com/AlexeyVin20/LibraryAPI-sub000/pkg/kafka"
)

type captureNotifier struct {
	events []kafka.EventNotification
}

func (n *captureNotifier) Notify(event kafka.EventNotification) {
	n.events = append(n.events, event)
}

func (n *captureNotifier) byKind(kind kafka.EventKind) []kafka.EventNotification {
	var out []kafka.EventNotification
	for _, e := range n.events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

const dailyRate = int64(1000)

func newFineService(repo *fakeRepo, notifier service.Notifier) *service.FineService {
	return service.NewFineService(repo, notifier, service.FineConfig{
		DailyRateCents: dailyRate,
		Interval:       time.Hour,
		QueueTTL:       7 * 24 * time.Hour,
	}, zap.NewNop())
}

func TestAccrue_FirstDetection(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	notifier := &captureNotifier{}
	svc := newFineService(repo, notifier)

	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	title := repo.addTitle("Dune", "SF-101")
	rsv := repo.addReservation("alice", title.ID, model.StatusIssued, now.AddDate(0, 0, -5).Add(-time.Hour))

	billed, err := svc.Accrue(context.Background(), now)
	require.NoError(t, err)
	require.Equal(t, 1, billed)

	fines, err := repo.ListFinesByUser(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, fines, 1)
	require.Equal(t, 5*dailyRate, fines[0].AmountCents)
	require.Equal(t, 5, fines[0].OverdueDays)
	require.Equal(t, model.FineTypeOverdue, fines[0].FineType)

	fresh, err := repo.GetReservation(context.Background(), rsv.ReservationUID)
	require.NoError(t, err)
	require.Equal(t, model.StatusOverdue, fresh.Status)

	user, err := repo.GetUser(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, 5*dailyRate, user.FineAmountCents)

	require.Len(t, notifier.byKind(kafka.EventKindFineAdded), 1)
	require.Len(t, notifier.byKind(kafka.EventKindOverdue), 1)
}

func TestAccrue_SameDayRerunIsNoop(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	svc := newFineService(repo, nil)

	now := time.Date(2026, 8, 29, 6, 0, 0, 0, time.UTC)
	title := repo.addTitle("Dune", "SF-101")
	repo.addReservation("bob", title.ID, model.StatusIssued, now.AddDate(0, 0, -3).Add(-time.Hour))

	billed, err := svc.Accrue(context.Background(), now)
	require.NoError(t, err)
	require.Equal(t, 1, billed)

	// later tick on the same calendar day
	billed, err = svc.Accrue(context.Background(), now.Add(8*time.Hour))
	require.NoError(t, err)
	require.Equal(t, 0, billed)

	fines, err := repo.ListFinesByUser(context.Background(), "bob")
	require.NoError(t, err)
	require.Len(t, fines, 1)
}

func TestAccrue_IncrementalBilling(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	notifier := &captureNotifier{}
	svc := newFineService(repo, notifier)

	day1 := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	title := repo.addTitle("Dune", "SF-101")
	rsv := repo.addReservation("carol", title.ID, model.StatusIssued, day1.AddDate(0, 0, -5).Add(-time.Hour))

	billed, err := svc.Accrue(context.Background(), day1)
	require.NoError(t, err)
	require.Equal(t, 1, billed)

	// next day: six days total, only the one new day billed
	day2 := day1.AddDate(0, 0, 1)
	billed, err = svc.Accrue(context.Background(), day2)
	require.NoError(t, err)
	require.Equal(t, 1, billed)

	fines, err := repo.ListFinesByUser(context.Background(), "carol")
	require.NoError(t, err)
	require.Len(t, fines, 2)
	require.Equal(t, 5*dailyRate, fines[0].AmountCents)
	require.Equal(t, dailyRate, fines[1].AmountCents)
	require.Equal(t, 6, fines[1].OverdueDays)

	user, err := repo.GetUser(context.Background(), "carol")
	require.NoError(t, err)
	require.Equal(t, 6*dailyRate, user.FineAmountCents)

	// the reservation flipped on first detection only
	require.Len(t, notifier.byKind(kafka.EventKindOverdue), 1)
	require.Len(t, notifier.byKind(kafka.EventKindFineAdded), 2)

	fresh, err := repo.GetReservation(context.Background(), rsv.ReservationUID)
	require.NoError(t, err)
	require.Equal(t, model.StatusOverdue, fresh.Status)
}

func TestAccrue_NotYetDue(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	svc := newFineService(repo, nil)

	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	title := repo.addTitle("Dune", "SF-101")
	repo.addReservation("dave", title.ID, model.StatusIssued, now.AddDate(0, 0, 7))

	billed, err := svc.Accrue(context.Background(), now)
	require.NoError(t, err)
	require.Equal(t, 0, billed)

	fines, err := repo.ListFinesByUser(context.Background(), "dave")
	require.NoError(t, err)
	require.Empty(t, fines)
}

func TestAccrue_SkipsClosedReservations(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	svc := newFineService(repo, nil)

	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	title := repo.addTitle("Dune", "SF-101")
	repo.addReservation("erin", title.ID, model.StatusReturned, now.AddDate(0, 0, -10))
	repo.addReservation("erin", title.ID, model.StatusCancelledByUser, now.AddDate(0, 0, -10))

	billed, err := svc.Accrue(context.Background(), now)
	require.NoError(t, err)
	require.Equal(t, 0, billed)
}

func TestPayFine_ReducesBalance(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	svc := newFineService(repo, nil)

	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	title := repo.addTitle("Dune", "SF-101")
	repo.addReservation("frank", title.ID, model.StatusIssued, now.AddDate(0, 0, -2).Add(-time.Hour))

	_, err := svc.Accrue(context.Background(), now)
	require.NoError(t, err)

	fines, err := svc.ListFines(context.Background(), "frank")
	require.NoError(t, err)
	require.Len(t, fines, 1)

	paid, err := svc.PayFine(context.Background(), fines[0].ID)
	require.NoError(t, err)
	require.True(t, paid.IsPaid)
	require.NotNil(t, paid.PaidAt)

	user, err := svc.GetUser(context.Background(), "frank")
	require.NoError(t, err)
	require.Equal(t, int64(0), user.FineAmountCents)

	// paying twice is rejected
	_, err = svc.PayFine(context.Background(), fines[0].ID)
	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestReconcileBalance(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	svc := newFineService(repo, nil)

	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	title := repo.addTitle("Dune", "SF-101")
	repo.addReservation("grace", title.ID, model.StatusIssued, now.AddDate(0, 0, -4).Add(-time.Hour))

	_, err := svc.Accrue(context.Background(), now)
	require.NoError(t, err)

	// corrupt the cached balance, reconcile must restore the ledger sum
	repo.mu.Lock()
	u := repo.users["grace"]
	u.FineAmountCents = 999999
	repo.users["grace"] = u
	repo.mu.Unlock()

	sum, err := svc.ReconcileBalance(context.Background(), "grace")
	require.NoError(t, err)
	require.Equal(t, 4*dailyRate, sum)

	user, err := svc.GetUser(context.Background(), "grace")
	require.NoError(t, err)
	require.Equal(t, 4*dailyRate, user.FineAmountCents)
}
