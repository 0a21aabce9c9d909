package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/errs"
	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/model"
)

const copyColumns = `id, title_id, code, status, condition, shelf_id, position, is_active, last_checked, created_at, modified_at`

func (r *repository) CreateTitle(ctx context.Context, req model.CreateTitleRequest) (model.Title, error) {
	q, args, err := qb.Insert(titlesTableName).
		Columns("name", "catalog_number").
		Values(req.Name, req.CatalogNumber).
		Suffix("returning id, name, catalog_number, available_copies, created_at").
		ToSql()
	if err != nil {
		return model.Title{}, err
	}
	var title model.Title
	if err := r.db.GetContext(ctx, &title, q, args...); err != nil {
		r.log.Error("CreateTitle", zap.String("q", q), zap.Any("args", args))
		return model.Title{}, err
	}
	return title, nil
}

func (r *repository) GetTitle(ctx context.Context, titleID int) (model.Title, error) {
	q, args, err := qb.Select("id", "name", "catalog_number", "available_copies", "created_at").
		From(titlesTableName).
		Where(sq.Eq{"id": titleID}).
		ToSql()
	if err != nil {
		return model.Title{}, err
	}
	var title model.Title
	if err := r.db.GetContext(ctx, &title, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Title{}, errs.ErrNotFound
		}
		return model.Title{}, err
	}
	return title, nil
}

func (r *repository) GetCopy(ctx context.Context, copyID int) (model.Copy, error) {
	var c model.Copy
	err := r.db.GetContext(ctx, &c,
		`select `+copyColumns+` from copies where id = $1`, copyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Copy{}, errs.ErrNotFound
		}
		return model.Copy{}, err
	}
	return c, nil
}

func (r *repository) ListCopiesByTitle(ctx context.Context, titleID int, onlyAvailable bool) ([]model.Copy, error) {
	q := qb.Select(copyColumns).
		From(copiesTableName).
		Where(sq.Eq{"title_id": titleID})
	if onlyAvailable {
		q = q.Where(sq.Eq{"status": model.CopyStatusAvailable, "is_active": true})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	var copies []model.Copy
	if err := r.db.SelectContext(ctx, &copies, query, args...); err != nil {
		return nil, err
	}
	return copies, nil
}

// TransitionCopy updates the copy status inside one transaction with the parent
// title recount. When expect is non-nil the update is guarded on the current
// status; a guard miss on an existing copy surfaces errs.ErrConflict.
func (r *repository) TransitionCopy(ctx context.Context, copyID int, expect *model.CopyStatus, to model.CopyStatus) (model.Copy, error) {
	var updated model.Copy
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		q := `
update copies
    set status = $2,
        modified_at = now(),
        last_checked = case when $2 = 'AVAILABLE' then now() else last_checked end
where id = $1`
		args := []any{copyID, string(to)}
		if expect != nil {
			q += ` and status = $3`
			args = append(args, string(*expect))
		}
		q += ` returning ` + copyColumns

		if err := tx.GetContext(ctx, &updated, q, args...); err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				return err
			}
			var exists bool
			if err := tx.GetContext(ctx, &exists,
				`select exists(select 1 from copies where id = $1)`, copyID); err != nil {
				return err
			}
			if exists {
				return errs.ErrConflict
			}
			return errs.ErrNotFound
		}

		_, err := recalcAvailable(ctx, tx, updated.TitleID)
		return err
	})
	if err != nil {
		return model.Copy{}, err
	}
	return updated, nil
}

func (r *repository) CreateCopies(ctx context.Context, titleID int, codes []string, condition model.Condition) ([]model.Copy, error) {
	var created []model.Copy
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		ins := qb.Insert(copiesTableName).Columns("title_id", "code", "condition")
		for _, code := range codes {
			ins = ins.Values(titleID, code, condition)
		}
		q, args, err := ins.Suffix("returning " + copyColumns).ToSql()
		if err != nil {
			return err
		}
		rows, err := tx.QueryxContext(ctx, q, args...)
		if err != nil {
			r.log.Error("CreateCopies", zap.String("q", q), zap.Any("args", args))
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var c model.Copy
			if err := rows.StructScan(&c); err != nil {
				return err
			}
			created = append(created, c)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		_, err = recalcAvailable(ctx, tx, titleID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *repository) DeleteCopy(ctx context.Context, copyID int) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		var titleID int
		err := tx.GetContext(ctx, &titleID,
			`delete from copies where id = $1 returning title_id`, copyID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		_, err = recalcAvailable(ctx, tx, titleID)
		return err
	})
}

func (r *repository) RecalculateAvailable(ctx context.Context, titleID int) (int, error) {
	var count int
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		count, err = recalcAvailable(ctx, tx, titleID)
		if errors.Is(err, sql.ErrNoRows) {
			return errs.ErrNotFound
		}
		return err
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) GetAllocatedCopy(ctx context.Context, reservationUID string) (model.Copy, error) {
	q := `
select c.id, c.title_id, c.code, c.status, c.condition, c.shelf_id, c.position,
       c.is_active, c.last_checked, c.created_at, c.modified_at
from copies c
join reservations rsv on rsv.copy_id = c.id
where rsv.reservation_uid = $1`
	var c model.Copy
	if err := r.db.GetContext(ctx, &c, q, reservationUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Copy{}, errs.ErrNotFound
		}
		return model.Copy{}, err
	}
	return c, nil
}
