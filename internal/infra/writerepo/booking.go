package writerepo

import (
	"context"

	"bookit/internal/domain/booking"
	"bookit/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingLedger struct {
	db *pgxpool.Pool
}

func NewBookingLedger(db *pgxpool.Pool) *BookingLedger {
	return &BookingLedger{db: db}
}

// Record is create-if-absent keyed by reference id. A retry after an
// ambiguous network response lands on the conflict branch and changes nothing,
// but the conflict row must belong to this booking: a reference id held by a
// different booking surfaces as a conflict instead of a silent success.
func (r *BookingLedger) Record(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO bookings (
			id, reference_id, experience_id, date, time_label,
			customer_name, customer_email, quantity, amount_units, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (reference_id) DO NOTHING`,
		b.ID(),
		b.ReferenceID(),
		b.ExperienceID(),
		b.SlotKey().Date(),
		b.SlotKey().TimeLabel(),
		b.Customer().Name(),
		b.Customer().Email(),
		b.Quantity(),
		b.AmountUnits(),
		b.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record booking", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var existingID uuid.UUID
	err = r.db.QueryRow(ctx,
		`SELECT id FROM bookings WHERE reference_id = $1`,
		b.ReferenceID(),
	).Scan(&existingID)
	if err != nil {
		return infra.WrapRepoErr("failed to verify booking record", err)
	}
	if existingID != b.ID() {
		return infra.WrapRepoErr("reference id taken by another booking", nil, infra.KindConflict)
	}

	return nil
}
