//go:build unit

package builder

import (
	"time"

	"bookit/internal/domain/pricing"
	reqdto "bookit/internal/handler/dto/request"
	"bookit/internal/usecase/commands"
	"bookit/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ReferenceID    string
	ExperienceID   uuid.UUID
	ExperienceName string
	Date           string
	TimeLabel      string
	Quantity       int
	Name           string
	Email          string
	PromoCode      string
	Quote          pricing.Quote
	CreatedAt      time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ReferenceID:    "BKG-7K2M9Q",
		ExperienceID:   uuid.New(),
		ExperienceName: "Sunrise Kayak Tour",
		Date:           "2026-09-12",
		TimeLabel:      "07:00 AM",
		Quantity:       2,
		Name:           "Asha Rao",
		Email:          "asha@example.com",
		Quote: pricing.Quote{
			SubtotalUnits: 1998,
			TaxUnits:      120,
			DiscountUnits: 0,
			TotalUnits:    2118,
		},
		CreatedAt: time.Now(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ExperienceID:  b.ExperienceID,
		Date:          b.Date,
		Time:          b.TimeLabel,
		Quantity:      b.Quantity,
		Name:          b.Name,
		Email:         b.Email,
		PromoCode:     b.PromoCode,
		AgreedToTerms: true,
	}
}

func (b *BookingBuilder) BuildConfirmation() *commands.BookingConfirmation {
	return &commands.BookingConfirmation{
		ReferenceID:       b.ReferenceID,
		ExperienceID:      b.ExperienceID,
		ExperienceName:    b.ExperienceName,
		Date:              b.Date,
		TimeLabel:         b.TimeLabel,
		Quantity:          b.Quantity,
		Quote:             b.Quote,
		RemainingCapacity: 3,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:             uuid.New(),
		ReferenceID:    b.ReferenceID,
		ExperienceID:   b.ExperienceID,
		ExperienceName: b.ExperienceName,
		Date:           b.Date,
		TimeLabel:      b.TimeLabel,
		CustomerName:   b.Name,
		CustomerEmail:  b.Email,
		Quantity:       b.Quantity,
		AmountUnits:    b.Quote.TotalUnits,
		CreatedAt:      b.CreatedAt,
	}
}
