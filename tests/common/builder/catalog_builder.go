//go:build unit

package builder

import (
	"time"

	"bookit/internal/usecase/queries"

	"github.com/google/uuid"
)

type ExperienceBuilder struct {
	ID          uuid.UUID
	Name        string
	Location    string
	Description string
	PriceUnits  int64
	ImageURL    *string
}

func NewExperienceBuilder() *ExperienceBuilder {
	imageURL := "https://images.example.com/kayak.jpg"
	return &ExperienceBuilder{
		ID:          uuid.New(),
		Name:        "Sunrise Kayak Tour",
		Location:    "Udupi, Karnataka",
		Description: "Paddle through the backwaters at dawn with a local guide.",
		PriceUnits:  999,
		ImageURL:    &imageURL,
	}
}

func (e *ExperienceBuilder) WithName(name string) *ExperienceBuilder {
	e.Name = name
	return e
}

func (e *ExperienceBuilder) BuildView() *queries.ExperienceView {
	now := time.Now()
	return &queries.ExperienceView{
		ID:          e.ID,
		Name:        e.Name,
		Location:    e.Location,
		Description: e.Description,
		PriceUnits:  e.PriceUnits,
		ImageURL:    e.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (e *ExperienceBuilder) BuildSlotView(date, timeLabel string, capacity int) *queries.SlotView {
	return &queries.SlotView{
		ID:           uuid.New(),
		ExperienceID: e.ID,
		Date:         date,
		TimeLabel:    timeLabel,
		Capacity:     capacity,
	}
}
