package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/errs"
	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/model"
)

const fineColumns = `id, user_name, reservation_uid, amount_cents, reason, overdue_days, fine_type, calculated_for, is_paid, paid_at, created_at`

func (r *repository) ListOverdueCandidates(ctx context.Context, now time.Time) ([]model.Reservation, error) {
	q, args, err := qb.Select(reservationColumns).
		From(reservationsTableName).
		Where(sq.Eq{"status": []model.ReservationStatus{model.StatusApproved, model.StatusIssued, model.StatusOverdue}}).
		Where(sq.Lt{"till_date": now.UTC().Format(time.DateOnly)}).
		OrderBy("till_date").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Reservation
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) LastOverdueFine(ctx context.Context, reservationUID string) (*model.FineRecord, error) {
	q, args, err := qb.Select(fineColumns).
		From(finesTableName).
		Where(sq.Eq{"reservation_uid": reservationUID, "fine_type": model.FineTypeOverdue}).
		OrderBy("calculated_for desc").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}
	var rec model.FineRecord
	if err := r.db.GetContext(ctx, &rec, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *repository) HasFineFor(ctx context.Context, reservationUID string, day time.Time, fineType model.FineType) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `
select exists(
    select 1 from fines
    where reservation_uid = $1 and calculated_for = $2 and fine_type = $3
)`, reservationUID, day.UTC().Format(time.DateOnly), fineType)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// RecordFine appends one ledger entry and applies its delta to the borrower's
// running balance in a single transaction, optionally flipping the reservation
// to OVERDUE with an annotation. The unique (reservation, day, type) index maps
// to errs.ErrAlreadyBilled, which rolls the whole step back untouched.
func (r *repository) RecordFine(ctx context.Context, rec model.FineRecord, flipToOverdue bool, overdueNote string) (model.FineRecord, error) {
	var saved model.FineRecord
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		q, args, err := qb.Insert(finesTableName).
			Columns("user_name", "reservation_uid", "amount_cents", "reason", "overdue_days", "fine_type", "calculated_for").
			Values(rec.UserName, rec.ReservationUID, rec.AmountCents, rec.Reason, rec.OverdueDays, rec.FineType, rec.CalculatedFor.UTC().Format(time.DateOnly)).
			Suffix("returning " + fineColumns).
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &saved, q, args...); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return errs.ErrAlreadyBilled
			}
			r.log.Error("RecordFine", zap.String("q", q), zap.Any("args", args))
			return err
		}

		_, err = tx.ExecContext(ctx, `
insert into users (user_name, fine_amount_cents) values ($1, $2)
on conflict (user_name) do update
    set fine_amount_cents = users.fine_amount_cents + excluded.fine_amount_cents`,
			rec.UserName, rec.AmountCents)
		if err != nil {
			return err
		}

		if flipToOverdue && rec.ReservationUID != nil {
			_, err = tx.ExecContext(ctx, `
update reservations
    set status = 'OVERDUE', notes = trim(notes || ' ' || $2)
where reservation_uid = $1 and status != 'OVERDUE'`,
				*rec.ReservationUID, overdueNote)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return model.FineRecord{}, err
	}
	return saved, nil
}

func (r *repository) ListFinesByUser(ctx context.Context, userName string) ([]model.FineRecord, error) {
	q, args, err := qb.Select(fineColumns).
		From(finesTableName).
		Where(sq.Eq{"user_name": userName}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.FineRecord
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) PayFine(ctx context.Context, fineID int64) (model.FineRecord, error) {
	var rec model.FineRecord
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &rec, `
update fines set is_paid = true, paid_at = now()
where id = $1 and not is_paid
returning `+fineColumns, fineID)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				return err
			}
			var exists bool
			if err := tx.GetContext(ctx, &exists,
				`select exists(select 1 from fines where id = $1)`, fineID); err != nil {
				return err
			}
			if exists {
				return errs.ErrInvalidState
			}
			return errs.ErrNotFound
		}

		_, err = tx.ExecContext(ctx, `
update users set fine_amount_cents = greatest(fine_amount_cents - $2, 0)
where user_name = $1`, rec.UserName, rec.AmountCents)
		return err
	})
	if err != nil {
		return model.FineRecord{}, err
	}
	return rec, nil
}

// ReconcileBalance recomputes the cached running total from the ledger sum of
// unpaid entries, treating the ledger as the source of truth.
func (r *repository) ReconcileBalance(ctx context.Context, userName string) (int64, error) {
	var balance int64
	err := r.db.GetContext(ctx, &balance, `
insert into users (user_name, fine_amount_cents)
values ($1, coalesce((select sum(amount_cents) from fines where user_name = $1 and not is_paid), 0))
on conflict (user_name) do update
    set fine_amount_cents = excluded.fine_amount_cents
returning fine_amount_cents`, userName)
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (r *repository) GetUser(ctx context.Context, userName string) (model.User, error) {
	var u model.User
	err := r.db.GetContext(ctx, &u,
		`select id, user_name, fine_amount_cents from users where user_name = $1`, userName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return u, nil
}
