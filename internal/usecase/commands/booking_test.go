//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"bookit/internal/domain/booking"
	"bookit/internal/domain/promo"
	"bookit/internal/domain/slot"
	"bookit/internal/infra"
	"bookit/internal/pkg/clock"
	"bookit/internal/pkg/config"
	"bookit/internal/pkg/errs"
	"bookit/internal/pkg/refid"
	"bookit/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExperienceRepo struct {
	mu    sync.Mutex
	snap  *commands.ExperienceSnapshot
	calls int
}

func (f *fakeExperienceRepo) FindByID(_ context.Context, id uuid.UUID) (*commands.ExperienceSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.snap == nil || f.snap.ID != id {
		return nil, infra.WrapRepoErr("experience not found", nil, infra.KindNotFound)
	}
	snap := *f.snap
	return &snap, nil
}

// fakeSlotRepo implements the atomic conditional-decrement contract: check and
// decrement happen under one lock, mirroring the store's conditional update.
type fakeSlotRepo struct {
	mu       sync.Mutex
	capacity map[string]int
	calls    int
	failWith error
}

func slotMapKey(experienceID uuid.UUID, key slot.Key) string {
	return experienceID.String() + "/" + key.String()
}

func (f *fakeSlotRepo) ReserveOne(_ context.Context, experienceID uuid.UUID, key slot.Key) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failWith != nil {
		return 0, f.failWith
	}
	remaining, ok := f.capacity[slotMapKey(experienceID, key)]
	if !ok {
		return 0, infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	if remaining == 0 {
		return 0, infra.WrapRepoErr("slot sold out", nil, infra.KindConflict)
	}
	f.capacity[slotMapKey(experienceID, key)] = remaining - 1
	return remaining - 1, nil
}

func (f *fakeSlotRepo) remainingFor(experienceID uuid.UUID, key slot.Key) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.capacity[slotMapKey(experienceID, key)]
}

// fakeLedger is create-if-absent on reference id, like the real ledger.
type fakeLedger struct {
	mu          sync.Mutex
	records     map[string]*booking.Booking
	failNextN   int
	failWith    error
	recordCalls int
}

func (f *fakeLedger) Record(_ context.Context, b *booking.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recordCalls++
	if f.failWith != nil {
		return f.failWith
	}
	if f.failNextN > 0 {
		f.failNextN--
		return infra.WrapRepoErr("store unreachable", nil)
	}
	if f.records == nil {
		f.records = make(map[string]*booking.Booking)
	}
	if existing, exists := f.records[b.ReferenceID()]; exists {
		if existing.ID() != b.ID() {
			return infra.WrapRepoErr("reference id taken by another booking", nil, infra.KindConflict)
		}
		return nil
	}
	f.records[b.ReferenceID()] = b
	return nil
}

func (f *fakeLedger) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}

type fixture struct {
	experiences *fakeExperienceRepo
	slots       *fakeSlotRepo
	ledger      *fakeLedger
	uc          commands.BookingCommands

	experienceID uuid.UUID
	key          slot.Key
}

func newFixture(t *testing.T, capacity int) *fixture {
	t.Helper()

	experienceID := uuid.New()
	key, err := slot.NewKey("2026-09-12", "07:00 AM")
	require.NoError(t, err)

	experiences := &fakeExperienceRepo{
		snap: &commands.ExperienceSnapshot{ID: experienceID, Name: "Sunrise Kayak Tour", PriceUnits: 500},
	}
	slots := &fakeSlotRepo{capacity: map[string]int{slotMapKey(experienceID, key): capacity}}
	ledger := &fakeLedger{}

	cfg := config.NewTestConfig()
	uc := commands.NewBookingUseCase(
		experiences,
		slots,
		ledger,
		promo.NewStaticEvaluator(),
		clock.NewMockClock(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)),
		cfg.Pricing,
		cfg.Booking,
	)

	return &fixture{
		experiences:  experiences,
		slots:        slots,
		ledger:       ledger,
		uc:           uc,
		experienceID: experienceID,
		key:          key,
	}
}

func (f *fixture) input() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ExperienceID:  f.experienceID,
		Date:          "2026-09-12",
		TimeLabel:     "07:00 AM",
		Quantity:      2,
		Name:          "Asha Rao",
		Email:         "asha@example.com",
		AgreedToTerms: true,
	}
}

func TestCreateBooking(t *testing.T) {
	t.Run("confirmed booking decrements capacity and records once", func(t *testing.T) {
		f := newFixture(t, 1)

		result, err := f.uc.CreateBooking(context.Background(), f.input())
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, commands.OutcomeConfirmed, commands.OutcomeFor(err))
		assert.True(t, refid.IsValid(result.ReferenceID))
		assert.Equal(t, "Sunrise Kayak Tour", result.ExperienceName)
		assert.Equal(t, int64(1000), result.Quote.SubtotalUnits)
		assert.Equal(t, int64(60), result.Quote.TaxUnits)
		assert.Equal(t, int64(1060), result.Quote.TotalUnits)
		assert.Equal(t, 0, result.RemainingCapacity)
		assert.Equal(t, 0, f.slots.remainingFor(f.experienceID, f.key))
		assert.Equal(t, 1, f.ledger.count())

		recorded := f.ledger.records[result.ReferenceID]
		require.NotNil(t, recorded)
		assert.Equal(t, int64(1060), recorded.AmountUnits())
		assert.Equal(t, 2, recorded.Quantity())
	})

	t.Run("promo code reduces the amount charged", func(t *testing.T) {
		f := newFixture(t, 3)
		input := f.input()
		input.PromoCode = "save10"

		result, err := f.uc.CreateBooking(context.Background(), input)
		require.NoError(t, err)

		// subtotal 1000, 10% off = 100, taxes 60
		assert.Equal(t, int64(100), result.Quote.DiscountUnits)
		assert.Equal(t, int64(960), result.Quote.TotalUnits)
	})

	t.Run("second attempt on a full slot fails without a ledger write", func(t *testing.T) {
		f := newFixture(t, 1)

		_, err := f.uc.CreateBooking(context.Background(), f.input())
		require.NoError(t, err)

		_, err = f.uc.CreateBooking(context.Background(), f.input())
		require.True(t, errs.Is(err, commands.ErrSlotSoldOut))
		assert.Equal(t, commands.OutcomeFailed, commands.OutcomeFor(err))
		assert.Equal(t, 0, f.slots.remainingFor(f.experienceID, f.key))
		assert.Equal(t, 1, f.ledger.count())
	})

	t.Run("validation failures make no store calls", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*commands.CreateBookingInput)
			errIs  error
		}{
			{name: "empty name", mutate: func(in *commands.CreateBookingInput) { in.Name = "" }, errIs: booking.ErrEmptyCustomerName},
			{name: "bad email", mutate: func(in *commands.CreateBookingInput) { in.Email = "not-an-email" }, errIs: booking.ErrInvalidEmail},
			{name: "terms not accepted", mutate: func(in *commands.CreateBookingInput) { in.AgreedToTerms = false }, errIs: booking.ErrTermsNotAccepted},
			{name: "zero quantity", mutate: func(in *commands.CreateBookingInput) { in.Quantity = 0 }, errIs: booking.ErrInvalidQuantity},
			{name: "missing date", mutate: func(in *commands.CreateBookingInput) { in.Date = "" }, errIs: slot.ErrEmptyDate},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t, 1)
				input := f.input()
				tc.mutate(&input)

				_, err := f.uc.CreateBooking(context.Background(), input)
				require.True(t, errs.Is(err, commands.ErrValidation))
				require.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, commands.OutcomeRejected, commands.OutcomeFor(err))
				assert.Equal(t, 0, f.experiences.calls)
				assert.Equal(t, 0, f.slots.calls)
				assert.Equal(t, 0, f.ledger.recordCalls)
			})
		}
	})

	t.Run("unknown promo code is rejected before reserving", func(t *testing.T) {
		f := newFixture(t, 1)
		input := f.input()
		input.PromoCode = "BOGUS"

		_, err := f.uc.CreateBooking(context.Background(), input)
		require.True(t, errs.Is(err, commands.ErrPromoNotFound))
		assert.Equal(t, commands.OutcomeRejected, commands.OutcomeFor(err))
		assert.Equal(t, 0, f.slots.calls)
		assert.Equal(t, 1, f.slots.remainingFor(f.experienceID, f.key))
	})

	t.Run("unknown experience", func(t *testing.T) {
		f := newFixture(t, 1)
		input := f.input()
		input.ExperienceID = uuid.New()

		_, err := f.uc.CreateBooking(context.Background(), input)
		require.True(t, errs.Is(err, commands.ErrExperienceNotFound))
		assert.Equal(t, 0, f.slots.calls)
	})

	t.Run("unknown slot", func(t *testing.T) {
		f := newFixture(t, 1)
		input := f.input()
		input.TimeLabel = "11:00 PM"

		_, err := f.uc.CreateBooking(context.Background(), input)
		require.True(t, errs.Is(err, commands.ErrSlotNotFound))
		assert.Equal(t, 0, f.ledger.recordCalls)
	})

	t.Run("store failure during reservation is a retryable failure with no side effects", func(t *testing.T) {
		f := newFixture(t, 1)
		f.slots.failWith = errs.New("store unreachable")

		_, err := f.uc.CreateBooking(context.Background(), f.input())
		require.True(t, errs.Is(err, commands.ErrReservationFailed))
		assert.Equal(t, commands.OutcomeFailed, commands.OutcomeFor(err))
		assert.Equal(t, 0, f.ledger.recordCalls)

		f.slots.failWith = nil
		_, err = f.uc.CreateBooking(context.Background(), f.input())
		require.NoError(t, err)
	})

	t.Run("record is retried after a transient ledger failure", func(t *testing.T) {
		f := newFixture(t, 1)
		f.ledger.failNextN = 1

		result, err := f.uc.CreateBooking(context.Background(), f.input())
		require.NoError(t, err)

		assert.Equal(t, 2, f.ledger.recordCalls)
		assert.Equal(t, 1, f.ledger.count())
		require.NotNil(t, f.ledger.records[result.ReferenceID])
	})

	t.Run("exhausted record retries leave the decrement for reconciliation", func(t *testing.T) {
		f := newFixture(t, 1)
		f.ledger.failNextN = 100

		_, err := f.uc.CreateBooking(context.Background(), f.input())
		require.True(t, errs.Is(err, commands.ErrBookingRecordFailed))
		assert.Equal(t, commands.OutcomeFailed, commands.OutcomeFor(err))
		assert.Equal(t, config.NewTestConfig().Booking.RecordMaxAttempts, f.ledger.recordCalls)
		assert.Equal(t, 0, f.ledger.count())
		// the reservation itself stays committed
		assert.Equal(t, 0, f.slots.remainingFor(f.experienceID, f.key))
	})

	t.Run("reference id collision is not retried", func(t *testing.T) {
		f := newFixture(t, 1)
		f.ledger.failWith = infra.WrapRepoErr("reference id taken by another booking", nil, infra.KindConflict)

		_, err := f.uc.CreateBooking(context.Background(), f.input())
		require.True(t, errs.Is(err, commands.ErrBookingRecordFailed))
		assert.Equal(t, commands.OutcomeFailed, commands.OutcomeFor(err))
		// a conflict is permanent, so exactly one attempt is made
		assert.Equal(t, 1, f.ledger.recordCalls)
		assert.Equal(t, 0, f.ledger.count())
	})
}

func TestCreateBookingConcurrent(t *testing.T) {
	const (
		capacity = 5
		attempts = 100
	)

	f := newFixture(t, capacity)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		confirmed int
		soldOut   int
		other     int
		refIDs    = make(map[string]struct{})
	)

	wg.Add(attempts)
	for range attempts {
		go func() {
			defer wg.Done()

			result, err := f.uc.CreateBooking(context.Background(), f.input())

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				confirmed++
				refIDs[result.ReferenceID] = struct{}{}
			case errs.Is(err, commands.ErrSlotSoldOut):
				soldOut++
			default:
				other++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, capacity, confirmed)
	assert.Equal(t, attempts-capacity, soldOut)
	assert.Equal(t, 0, other)
	assert.Equal(t, capacity, len(refIDs), "every confirmation carries a distinct reference id")
	assert.Equal(t, 0, f.slots.remainingFor(f.experienceID, f.key), "capacity never goes negative")
	assert.Equal(t, capacity, f.ledger.count())
}
