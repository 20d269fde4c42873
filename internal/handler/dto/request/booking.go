package request

import (
	"strings"

	"bookit/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ExperienceID  uuid.UUID `json:"experience_id" binding:"required"`
	Date          string    `json:"date" binding:"required"`
	Time          string    `json:"time" binding:"required"`
	Quantity      int       `json:"quantity" binding:"required,min=1"`
	Name          string    `json:"name" binding:"required"`
	Email         string    `json:"email" binding:"required,email"`
	PromoCode     string    `json:"promo_code,omitempty"`
	AgreedToTerms bool      `json:"agreed_to_terms"`
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ExperienceID:  r.ExperienceID,
		Date:          strings.TrimSpace(r.Date),
		TimeLabel:     strings.TrimSpace(r.Time),
		Quantity:      r.Quantity,
		Name:          r.Name,
		Email:         r.Email,
		PromoCode:     strings.TrimSpace(r.PromoCode),
		AgreedToTerms: r.AgreedToTerms,
	}
}
