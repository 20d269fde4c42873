package writerepo

import (
	"context"
	"errors"

	"bookit/internal/domain/slot"
	"bookit/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SlotRepository struct {
	db *pgxpool.Pool
}

func NewSlotRepository(db *pgxpool.Pool) *SlotRepository {
	return &SlotRepository{db: db}
}

// ReserveOne decrements capacity by one iff it is positive, as a single
// conditional update. The store serializes racing callers on the row, so
// capacity never underflows; the CHECK constraint backstops it.
func (r *SlotRepository) ReserveOne(ctx context.Context, experienceID uuid.UUID, key slot.Key) (int, error) {
	var remaining int
	err := r.db.QueryRow(ctx, `
		UPDATE slots
		SET capacity = capacity - 1
		WHERE experience_id = $1 AND date = $2 AND time_label = $3 AND capacity > 0
		RETURNING capacity`,
		experienceID, key.Date(), key.TimeLabel(),
	).Scan(&remaining)
	if err == nil {
		return remaining, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, infra.WrapRepoErr("failed to reserve slot", err)
	}

	// No row matched: either the slot does not exist or it is sold out.
	var (
		slotID   uuid.UUID
		capacity int
	)
	err = r.db.QueryRow(ctx, `
		SELECT id, capacity FROM slots
		WHERE experience_id = $1 AND date = $2 AND time_label = $3`,
		experienceID, key.Date(), key.TimeLabel(),
	).Scan(&slotID, &capacity)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
	}
	if err != nil {
		return 0, infra.WrapRepoErr("failed to check slot capacity", err)
	}

	s, err := slot.New(slotID, experienceID, key, capacity)
	if err != nil {
		return 0, infra.WrapRepoErr("invalid slot row", err)
	}
	if s.IsSoldOut() {
		return 0, infra.WrapRepoErr("slot sold out", nil, infra.KindConflict)
	}
	return 0, infra.WrapRepoErr("slot contended", nil, infra.KindConflict)
}
