package writerepo

import (
	"context"
	"errors"

	"bookit/internal/infra"
	"bookit/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ExperienceRepository serves the write side's snapshot reads.
type ExperienceRepository struct {
	db *pgxpool.Pool
}

func NewExperienceRepository(db *pgxpool.Pool) *ExperienceRepository {
	return &ExperienceRepository{db: db}
}

func (r *ExperienceRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.ExperienceSnapshot, error) {
	var snap commands.ExperienceSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, name, price_units FROM experiences WHERE id = $1`, id,
	).Scan(&snap.ID, &snap.Name, &snap.PriceUnits)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("experience not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find experience by ID", err)
	}

	return &snap, nil
}
