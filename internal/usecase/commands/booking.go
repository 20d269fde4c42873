package commands

import (
	"context"
	"log/slog"
	"time"

	"bookit/internal/domain/booking"
	"bookit/internal/domain/experience"
	"bookit/internal/domain/pricing"
	"bookit/internal/domain/promo"
	"bookit/internal/domain/slot"
	"bookit/internal/infra"
	"bookit/internal/pkg/clock"
	"bookit/internal/pkg/config"
	"bookit/internal/pkg/errs"
	"bookit/internal/pkg/refid"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

var (
	ErrValidation          = errs.New("booking validation failed")
	ErrExperienceNotFound  = errs.New("experience not found")
	ErrPromoNotFound       = errs.New("promo code not found")
	ErrSlotNotFound        = errs.New("slot not found")
	ErrSlotSoldOut         = errs.New("slot sold out")
	ErrReservationFailed   = errs.New("reservation failed")
	ErrBookingRecordFailed = errs.New("booking record failed")
)

// Outcome is the terminal state of one submission attempt. Exactly one is
// reported per attempt; the orchestrator never resubmits on its own.
type Outcome string

const (
	OutcomeConfirmed Outcome = "confirmed"
	OutcomeRejected  Outcome = "rejected"
	OutcomeFailed    Outcome = "failed"
)

// OutcomeFor classifies a CreateBooking error. Rejected means no store call
// was made (or the input was refused before reserving); Failed means the
// attempt reached the store.
func OutcomeFor(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeConfirmed
	case errs.IsAny(err, ErrValidation, ErrExperienceNotFound, ErrPromoNotFound):
		return OutcomeRejected
	default:
		return OutcomeFailed
	}
}

type CreateBookingInput struct {
	ExperienceID  uuid.UUID
	Date          string
	TimeLabel     string
	Quantity      int
	Name          string
	Email         string
	PromoCode     string
	AgreedToTerms bool
}

type BookingConfirmation struct {
	ReferenceID       string
	ExperienceID      uuid.UUID
	ExperienceName    string
	Date              string
	TimeLabel         string
	Quantity          int
	Quote             pricing.Quote
	RemainingCapacity int
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*BookingConfirmation, error)
}

type bookingUseCaseImpl struct {
	experiences ExperienceRepository
	slots       SlotRepository
	ledger      BookingLedger
	promos      PromoEvaluator
	clock       clock.Clock
	pricingCfg  config.PricingConfig
	bookingCfg  config.BookingConfig
}

func NewBookingUseCase(
	experiences ExperienceRepository,
	slots SlotRepository,
	ledger BookingLedger,
	promos PromoEvaluator,
	clk clock.Clock,
	pricingCfg config.PricingConfig,
	bookingCfg config.BookingConfig,
) BookingCommands {
	return &bookingUseCaseImpl{
		experiences: experiences,
		slots:       slots,
		ledger:      ledger,
		promos:      promos,
		clock:       clk,
		pricingCfg:  pricingCfg,
		bookingCfg:  bookingCfg,
	}
}

// CreateBooking drives a single booking attempt:
// validate -> price -> reserve -> record.
//
// The reference id is generated before the capacity decrement and used as the
// ledger's deduplication key, so a retried record write after an ambiguous
// response cannot create a duplicate booking.
func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, input CreateBookingInput) (*BookingConfirmation, error) {
	key, customer, err := u.validate(input)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	exp, err := u.loadExperience(ctx, input.ExperienceID)
	if err != nil {
		return nil, err
	}

	quote, err := u.price(exp, input.Quantity, input.PromoCode)
	if err != nil {
		return nil, err
	}

	referenceID := refid.New()

	remaining, err := u.slots.ReserveOne(ctx, exp.ID(), key)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, ErrSlotNotFound)
		case infra.IsKind(err, infra.KindConflict):
			return nil, errs.Mark(err, ErrSlotSoldOut)
		default:
			// Nothing was decremented; the whole attempt is safe to retry.
			return nil, errs.Mark(err, ErrReservationFailed)
		}
	}

	entity, err := booking.NewBooking(
		referenceID,
		exp.ID(),
		key,
		customer,
		input.Quantity,
		quote.TotalUnits,
		u.clock.Now(),
	)
	if err != nil {
		// Capacity is already decremented; this can only be an internal bug,
		// so it still goes through the record-failure path for the orphan log.
		u.logOrphanedReservation(referenceID, exp.ID(), key, err)
		return nil, errs.Mark(err, ErrBookingRecordFailed)
	}

	if err := u.record(ctx, entity); err != nil {
		u.logOrphanedReservation(referenceID, exp.ID(), key, err)
		return nil, errs.Mark(err, ErrBookingRecordFailed)
	}

	return &BookingConfirmation{
		ReferenceID:       referenceID,
		ExperienceID:      exp.ID(),
		ExperienceName:    exp.Name(),
		Date:              key.Date(),
		TimeLabel:         key.TimeLabel(),
		Quantity:          input.Quantity,
		Quote:             quote,
		RemainingCapacity: remaining,
	}, nil
}

// validate refuses malformed input before any store call.
func (u *bookingUseCaseImpl) validate(input CreateBookingInput) (slot.Key, booking.Customer, error) {
	if err := booking.ValidateTerms(input.AgreedToTerms); err != nil {
		return slot.Key{}, booking.Customer{}, err
	}
	customer, err := booking.NewCustomer(input.Name, input.Email)
	if err != nil {
		return slot.Key{}, booking.Customer{}, err
	}
	key, err := slot.NewKey(input.Date, input.TimeLabel)
	if err != nil {
		return slot.Key{}, booking.Customer{}, err
	}
	if input.Quantity < 1 {
		return slot.Key{}, booking.Customer{}, booking.ErrInvalidQuantity
	}
	return key, customer, nil
}

// loadExperience rehydrates the domain entity from the write-side snapshot,
// so catalog invariants hold even if the stored row predates them.
func (u *bookingUseCaseImpl) loadExperience(ctx context.Context, id uuid.UUID) (*experience.Experience, error) {
	snap, err := u.experiences.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrExperienceNotFound)
		}
		return nil, errs.Mark(err, ErrReservationFailed)
	}

	exp, err := experience.NewExperience(snap.ID, snap.Name, "", "", snap.PriceUnits, "")
	if err != nil {
		return nil, errs.Mark(err, ErrReservationFailed)
	}
	return exp, nil
}

func (u *bookingUseCaseImpl) price(exp *experience.Experience, quantity int, promoCode string) (pricing.Quote, error) {
	var discount int64
	if promoCode != "" {
		subtotal := exp.PriceUnits() * int64(quantity)
		d, err := u.promos.Evaluate(promoCode, subtotal)
		if err != nil {
			if errs.Is(err, promo.ErrCodeNotFound) {
				return pricing.Quote{}, errs.Mark(err, ErrPromoNotFound)
			}
			return pricing.Quote{}, errs.Mark(err, ErrValidation)
		}
		discount = d
	}

	quote, err := pricing.Calculate(exp.PriceUnits(), quantity, u.pricingCfg.TaxRateBP, discount)
	if err != nil {
		return pricing.Quote{}, errs.Mark(err, ErrValidation)
	}
	return quote, nil
}

// record retries the ledger write with bounded backoff. Record is idempotent
// on reference id, so retrying after an ambiguous response is safe. A conflict
// means the reference id belongs to a different booking and no retry can
// change that.
func (u *bookingUseCaseImpl) record(ctx context.Context, entity *booking.Booking) error {
	maxAttempts := u.bookingCfg.RecordMaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	base := u.bookingCfg.RecordBackoffBase
	if base <= 0 {
		base = 100 * time.Millisecond
	}

	backoff := retry.WithMaxRetries(uint64(maxAttempts-1), retry.NewExponential(base))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := u.ledger.Record(ctx, entity); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return err
			}
			return retry.RetryableError(err)
		}
		return nil
	})
}

// The decrement committed but no booking row exists; reconciliation is manual
// and keys off the reference id.
func (u *bookingUseCaseImpl) logOrphanedReservation(referenceID string, experienceID uuid.UUID, key slot.Key, err error) {
	slog.Error("orphaned reservation: capacity decremented without booking record",
		"reference_id", referenceID,
		"experience_id", experienceID,
		"slot", key.String(),
		"error", err,
	)
}
