package response

import (
	"bookit/internal/usecase/queries"

	"github.com/google/uuid"
)

type ExperienceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
}

type SlotResponse struct {
	ID       uuid.UUID `json:"id"`
	Date     string    `json:"date"`
	Time     string    `json:"time"`
	Capacity int       `json:"capacity"`
}

func FromExperienceView(rm *queries.ExperienceView) *ExperienceResponse {
	return &ExperienceResponse{
		ID:          rm.ID,
		Name:        rm.Name,
		Location:    rm.Location,
		Description: rm.Description,
		Price:       rm.PriceUnits,
		ImageURL:    rm.ImageURL,
	}
}

func FromSlotView(rm *queries.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:       rm.ID,
		Date:     rm.Date,
		Time:     rm.TimeLabel,
		Capacity: rm.Capacity,
	}
}
