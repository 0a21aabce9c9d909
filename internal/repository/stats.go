package repository

import (
	"context"

	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/model"
)

type statusCount struct {
	Status model.CopyStatus `db:"status"`
	Count  int              `db:"count"`
}

func (r *repository) TitleStats(ctx context.Context, titleID int) (model.TitleStats, error) {
	title, err := r.GetTitle(ctx, titleID)
	if err != nil {
		return model.TitleStats{}, err
	}

	var counts []statusCount
	err = r.db.SelectContext(ctx, &counts, `
select status, count(*) as count from copies
where title_id = $1 and is_active
group by status`, titleID)
	if err != nil {
		return model.TitleStats{}, err
	}

	var active int
	err = r.db.GetContext(ctx, &active, `
select count(*) from reservations
where title_id = $1 and status in ('APPROVED', 'ISSUED', 'OVERDUE')`, titleID)
	if err != nil {
		return model.TitleStats{}, err
	}

	stats := model.TitleStats{
		TitleID:            titleID,
		AvailableCopies:    title.AvailableCopies,
		CopiesByStatus:     make(map[model.CopyStatus]int, len(counts)),
		ActiveReservations: active,
	}
	for _, c := range counts {
		stats.CopiesByStatus[c.Status] = c.Count
	}
	return stats, nil
}

func (r *repository) CopySummary(ctx context.Context) (model.CopySummary, error) {
	var counts []statusCount
	err := r.db.SelectContext(ctx, &counts, `
select status, count(*) as count from copies
where is_active
group by status`)
	if err != nil {
		return model.CopySummary{}, err
	}

	summary := model.CopySummary{ByStatus: make(map[model.CopyStatus]int, len(counts))}
	for _, c := range counts {
		summary.ByStatus[c.Status] = c.Count
		summary.Total += c.Count
	}
	return summary, nil
}
