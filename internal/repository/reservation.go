package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/errs"
	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/model"
)

const reservationColumns = `id, reservation_uid, user_name, title_id, copy_id, start_date, till_date, actual_return_date, status, notes`

func (r *repository) CreateReservation(ctx context.Context, req model.CreateReservationRequest, queued bool) (model.Reservation, error) {
	notes := req.Notes
	if queued {
		notes = model.QueuedMarker + " " + notes
	}
	q, args, err := qb.Insert(reservationsTableName).
		Columns("reservation_uid", "user_name", "title_id", "status", "start_date", "till_date", "notes").
		Values(uuid.New(), req.UserName, req.TitleID, model.StatusProcessing, time.Now().UTC(), req.TillDate.Format(time.DateOnly), notes).
		Suffix("returning " + reservationColumns).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var res model.Reservation
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		r.log.Error("CreateReservation", zap.String("q", q), zap.Any("args", args))
		return model.Reservation{}, err
	}
	return res, nil
}

func (r *repository) GetReservation(ctx context.Context, reservationUID string) (model.Reservation, error) {
	q, args, err := qb.Select(reservationColumns).
		From(reservationsTableName).
		Where(sq.Eq{"reservation_uid": reservationUID}).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var res model.Reservation
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reservation{}, errs.ErrNotFound
		}
		return model.Reservation{}, err
	}
	return res, nil
}

func (r *repository) GetReservationsByUser(ctx context.Context, userName string) ([]model.Reservation, error) {
	q, args, err := qb.Select(reservationColumns).
		From(reservationsTableName).
		Where(sq.Eq{"user_name": userName}).
		OrderBy("start_date desc").
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

// UpdateReservationStatus performs a guarded status transition. A guard miss on
// an existing reservation surfaces errs.ErrInvalidState.
func (r *repository) UpdateReservationStatus(ctx context.Context, reservationUID string, from []model.ReservationStatus, to model.ReservationStatus) (model.Reservation, error) {
	upd := qb.Update(reservationsTableName).
		Set("status", to).
		Where(sq.Eq{"reservation_uid": reservationUID})
	if len(from) > 0 {
		upd = upd.Where(sq.Eq{"status": from})
	}
	q, args, err := upd.Suffix("returning " + reservationColumns).ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var res model.Reservation
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return model.Reservation{}, err
		}
		var exists bool
		if err := r.db.GetContext(ctx, &exists,
			`select exists(select 1 from reservations where reservation_uid = $1)`, reservationUID); err != nil {
			return model.Reservation{}, err
		}
		if exists {
			return model.Reservation{}, errs.ErrInvalidState
		}
		return model.Reservation{}, errs.ErrNotFound
	}
	return res, nil
}

// AssignCopy links an allocated copy to an approved reservation and issues both
// sides in one transaction: copy AVAILABLE->ISSUED (compare-and-set), the
// reservation APPROVED->ISSUED, then the title recount.
func (r *repository) AssignCopy(ctx context.Context, reservationUID string, copyID int) (model.Reservation, error) {
	var res model.Reservation
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var titleID int
		err := tx.GetContext(ctx, &titleID, `
update copies set status = 'ISSUED', modified_at = now()
where id = $1 and status = 'AVAILABLE' and is_active
returning title_id`, copyID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrConflict
			}
			return err
		}

		err = tx.GetContext(ctx, &res, `
update reservations set copy_id = $2, status = 'ISSUED'
where reservation_uid = $1 and status = 'APPROVED'
returning `+reservationColumns, reservationUID, copyID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrInvalidState
			}
			return err
		}

		_, err = recalcAvailable(ctx, tx, titleID)
		return err
	})
	if err != nil {
		return model.Reservation{}, err
	}
	return res, nil
}

// ReturnReservation closes out a loan: stamps the actual return date, releases
// the assigned copy if any and recounts the title. The fine ledger is untouched.
func (r *repository) ReturnReservation(ctx context.Context, reservationUID string, returnedAt time.Time) (model.Reservation, error) {
	var res model.Reservation
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &res, `
update reservations set status = 'RETURNED', actual_return_date = $2
where reservation_uid = $1 and status in ('ISSUED', 'OVERDUE')
returning `+reservationColumns, reservationUID, returnedAt)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				return err
			}
			var exists bool
			if err := tx.GetContext(ctx, &exists,
				`select exists(select 1 from reservations where reservation_uid = $1)`, reservationUID); err != nil {
				return err
			}
			if exists {
				return errs.ErrInvalidState
			}
			return errs.ErrNotFound
		}

		if res.CopyID == nil {
			return nil
		}
		var titleID int
		err = tx.GetContext(ctx, &titleID, `
update copies set status = 'AVAILABLE', modified_at = now(), last_checked = now()
where id = $1
returning title_id`, *res.CopyID)
		if err != nil {
			return err
		}
		_, err = recalcAvailable(ctx, tx, titleID)
		return err
	})
	if err != nil {
		return model.Reservation{}, err
	}
	return res, nil
}

// ExpireQueuedBefore is the daily cleanup hook: queued PROCESSING requests older
// than the cutoff move to EXPIRED. No copy side effects, queued requests hold none.
func (r *repository) ExpireQueuedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
update reservations set status = 'EXPIRED'
where status = 'PROCESSING' and notes like $1 and start_date < $2`,
		model.QueuedMarker+"%", cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
