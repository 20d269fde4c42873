package readstore

import (
	"context"

	"bookit/internal/infra"
	"bookit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SlotReadStore struct {
	db *pgxpool.Pool
}

func NewSlotReadStore(db *pgxpool.Pool) *SlotReadStore {
	return &SlotReadStore{db: db}
}

// FindByExperienceID returns availability grouped by date; time_label is a
// 12-hour string, so the catalog query layer re-sorts labels chronologically.
// The snapshot carries no reservation guarantee.
func (r *SlotReadStore) FindByExperienceID(ctx context.Context, experienceID uuid.UUID) ([]*queries.SlotView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, experience_id, to_char(date, 'YYYY-MM-DD'), time_label, capacity
		FROM slots
		WHERE experience_id = $1
		ORDER BY date, time_label`,
		experienceID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	defer rows.Close()

	var result []*queries.SlotView
	for rows.Next() {
		var v queries.SlotView
		if err := rows.Scan(&v.ID, &v.ExperienceID, &v.Date, &v.TimeLabel, &v.Capacity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read slots", err)
	}

	return result, nil
}
