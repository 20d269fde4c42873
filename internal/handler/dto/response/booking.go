package response

import (
	"time"

	"bookit/internal/usecase/commands"
	"bookit/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingConfirmationResponse struct {
	Status         string    `json:"status"`
	ReferenceID    string    `json:"referenceId"`
	ExperienceID   uuid.UUID `json:"experienceId"`
	ExperienceName string    `json:"experienceName"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Quantity       int       `json:"quantity"`
	Subtotal       int64     `json:"subtotal"`
	Taxes          int64     `json:"taxes"`
	Discount       int64     `json:"discount"`
	Total          int64     `json:"total"`
}

type BookingResponse struct {
	ReferenceID    string    `json:"referenceId"`
	ExperienceID   uuid.UUID `json:"experienceId"`
	ExperienceName string    `json:"experienceName"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	CustomerName   string    `json:"customerName"`
	CustomerEmail  string    `json:"customerEmail"`
	Quantity       int       `json:"quantity"`
	AmountPaid     int64     `json:"amountPaid"`
	CreatedAt      time.Time `json:"createdAt"`
}

func FromBookingConfirmation(c *commands.BookingConfirmation) *BookingConfirmationResponse {
	return &BookingConfirmationResponse{
		Status:         string(commands.OutcomeConfirmed),
		ReferenceID:    c.ReferenceID,
		ExperienceID:   c.ExperienceID,
		ExperienceName: c.ExperienceName,
		Date:           c.Date,
		Time:           c.TimeLabel,
		Quantity:       c.Quantity,
		Subtotal:       c.Quote.SubtotalUnits,
		Taxes:          c.Quote.TaxUnits,
		Discount:       c.Quote.DiscountUnits,
		Total:          c.Quote.TotalUnits,
	}
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ReferenceID:    rm.ReferenceID,
		ExperienceID:   rm.ExperienceID,
		ExperienceName: rm.ExperienceName,
		Date:           rm.Date,
		Time:           rm.TimeLabel,
		CustomerName:   rm.CustomerName,
		CustomerEmail:  rm.CustomerEmail,
		Quantity:       rm.Quantity,
		AmountPaid:     rm.AmountUnits,
		CreatedAt:      rm.CreatedAt,
	}
}
