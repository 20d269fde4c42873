package readstore

import (
	"context"
	"errors"

	"bookit/internal/infra"
	"bookit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ExperienceReadStore struct {
	db *pgxpool.Pool
}

func NewExperienceReadStore(db *pgxpool.Pool) *ExperienceReadStore {
	return &ExperienceReadStore{db: db}
}

const experienceColumns = `id, name, location, description, price_units, image_url, created_at, updated_at`

func (r *ExperienceReadStore) FindAll(ctx context.Context, nameFilter string) ([]*queries.ExperienceView, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences ORDER BY name`
	args := []any{}
	if nameFilter != "" {
		query = `SELECT ` + experienceColumns + ` FROM experiences WHERE name ILIKE '%' || $1 || '%' ORDER BY name`
		args = append(args, nameFilter)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list experiences", err)
	}
	defer rows.Close()

	var result []*queries.ExperienceView
	for rows.Next() {
		view, err := scanExperience(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan experience", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read experiences", err)
	}

	return result, nil
}

func (r *ExperienceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ExperienceView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+experienceColumns+` FROM experiences WHERE id = $1`, id)

	view, err := scanExperience(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("experience not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find experience by ID", err)
	}

	return view, nil
}

func scanExperience(row pgx.Row) (*queries.ExperienceView, error) {
	var v queries.ExperienceView
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Location,
		&v.Description,
		&v.PriceUnits,
		&v.ImageURL,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
