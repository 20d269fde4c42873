package commands

import (
	"context"

	"bookit/internal/domain/booking"
	"bookit/internal/domain/slot"

	"github.com/google/uuid"
)

// Write-side snapshot prevents dependency on read-side query types
type ExperienceSnapshot struct {
	ID         uuid.UUID
	Name       string
	PriceUnits int64
}

type ExperienceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ExperienceSnapshot, error)
}

// SlotRepository is the sole mutator of slot capacity.
type SlotRepository interface {
	// ReserveOne atomically decrements capacity by one iff capacity > 0 and
	// returns the remaining capacity. It must be a single conditional update
	// against the store, never a read followed by a write. A missing slot
	// surfaces as infra.KindNotFound, an exhausted one as infra.KindConflict.
	ReserveOne(ctx context.Context, experienceID uuid.UUID, key slot.Key) (int, error)
}

// BookingLedger persists bookings keyed by reference id. Record is
// create-if-absent: retrying the same booking is a no-op, while a reference
// id already held by a different booking surfaces as infra.KindConflict.
type BookingLedger interface {
	Record(ctx context.Context, b *booking.Booking) error
}

type PromoEvaluator interface {
	// Evaluate returns the discount for code at the given subtotal, or
	// promo.ErrCodeNotFound for an unknown code.
	Evaluate(code string, subtotalUnits int64) (int64, error)
}
