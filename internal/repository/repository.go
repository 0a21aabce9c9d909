package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/model"
)

type CopyRepository interface {
	CreateTitle(ctx context.Context, req model.CreateTitleRequest) (model.Title, error)
	GetTitle(ctx context.Context, titleID int) (model.Title, error)
	GetCopy(ctx context.Context, copyID int) (model.Copy, error)
	ListCopiesByTitle(ctx context.Context, titleID int, onlyAvailable bool) ([]model.Copy, error)
	TransitionCopy(ctx context.Context, copyID int, expect *model.CopyStatus, to model.CopyStatus) (model.Copy, error)
	CreateCopies(ctx context.Context, titleID int, codes []string, condition model.Condition) ([]model.Copy, error)
	DeleteCopy(ctx context.Context, copyID int) error
	RecalculateAvailable(ctx context.Context, titleID int) (int, error)
	GetAllocatedCopy(ctx context.Context, reservationUID string) (model.Copy, error)
}

type ReservationRepository interface {
	CreateReservation(ctx context.Context, req model.CreateReservationRequest, queued bool) (model.Reservation, error)
	GetReservation(ctx context.Context, reservationUID string) (model.Reservation, error)
	GetReservationsByUser(ctx context.Context, userName string) ([]model.Reservation, error)
	UpdateReservationStatus(ctx context.Context, reservationUID string, from []model.ReservationStatus, to model.ReservationStatus) (model.Reservation, error)
	AssignCopy(ctx context.Context, reservationUID string, copyID int) (model.Reservation, error)
	ReturnReservation(ctx context.Context, reservationUID string, returnedAt time.Time) (model.Reservation, error)
	ExpireQueuedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type FineRepository interface {
	ListOverdueCandidates(ctx context.Context, now time.Time) ([]model.Reservation, error)
	LastOverdueFine(ctx context.Context, reservationUID string) (*model.FineRecord, error)
	HasFineFor(ctx context.Context, reservationUID string, day time.Time, fineType model.FineType) (bool, error)
	RecordFine(ctx context.Context, rec model.FineRecord, flipToOverdue bool, overdueNote string) (model.FineRecord, error)
	ListFinesByUser(ctx context.Context, userName string) ([]model.FineRecord, error)
	PayFine(ctx context.Context, fineID int64) (model.FineRecord, error)
	ReconcileBalance(ctx context.Context, userName string) (int64, error)
	GetUser(ctx context.Context, userName string) (model.User, error)
}

type StatsRepository interface {
	TitleStats(ctx context.Context, titleID int) (model.TitleStats, error)
	CopySummary(ctx context.Context) (model.CopySummary, error)
}

type Repository interface {
	CopyRepository
	ReservationRepository
	FineRepository
	StatsRepository
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	titlesTableName       = `titles`
	copiesTableName       = `copies`
	reservationsTableName = `reservations`
	finesTableName        = `fines`
	usersTableName        = `users`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// recalcAvailable overwrites the title counter with a full recount of its active
// available copies. The single legitimate writer of titles.available_copies.
func recalcAvailable(ctx context.Context, tx sqlx.ExtContext, titleID int) (int, error) {
	q := `
update titles
    set available_copies = (
        select count(*) from copies
        where title_id = $1 and status = 'AVAILABLE' and is_active
    )
where id = $1
returning available_copies`
	var count int
	if err := sqlx.GetContext(ctx, tx, &count, q, titleID); err != nil {
		return 0, err
	}
	return count, nil
}
