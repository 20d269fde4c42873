package booking

import (
	"errors"
	"time"

	"bookit/internal/domain/slot"

	"github.com/google/uuid"
)

var (
	ErrInvalidReferenceID = errors.New("invalid booking reference id")
	ErrInvalidQuantity    = errors.New("booking quantity must be at least 1")
	ErrNegativeAmount     = errors.New("booking amount cannot be negative")
)

// Booking is the write-once record of a confirmed reservation. The reference
// id is generated before the capacity decrement and doubles as the
// deduplication key for the ledger write.
type Booking struct {
	id           uuid.UUID
	referenceID  string
	experienceID uuid.UUID
	slotKey      slot.Key
	customer     Customer
	quantity     int
	amountUnits  int64
	createdAt    time.Time
}

func NewBooking(
	referenceID string,
	experienceID uuid.UUID,
	slotKey slot.Key,
	customer Customer,
	quantity int,
	amountUnits int64,
	createdAt time.Time,
) (*Booking, error) {
	if referenceID == "" {
		return nil, ErrInvalidReferenceID
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if amountUnits < 0 {
		return nil, ErrNegativeAmount
	}

	return &Booking{
		id:           uuid.New(),
		referenceID:  referenceID,
		experienceID: experienceID,
		slotKey:      slotKey,
		customer:     customer,
		quantity:     quantity,
		amountUnits:  amountUnits,
		createdAt:    createdAt,
	}, nil
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) ReferenceID() string     { return b.referenceID }
func (b *Booking) ExperienceID() uuid.UUID { return b.experienceID }
func (b *Booking) SlotKey() slot.Key       { return b.slotKey }
func (b *Booking) Customer() Customer      { return b.customer }
func (b *Booking) Quantity() int           { return b.quantity }
func (b *Booking) AmountUnits() int64      { return b.amountUnits }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
