package queries

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ExperienceView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	PriceUnits  int64     `json:"price_units"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SlotView struct {
	ID           uuid.UUID `json:"id"`
	ExperienceID uuid.UUID `json:"experience_id"`
	Date         string    `json:"date"`
	TimeLabel    string    `json:"time"`
	Capacity     int       `json:"capacity"`
}

type BookingView struct {
	ID             uuid.UUID `json:"id"`
	ReferenceID    string    `json:"reference_id"`
	ExperienceID   uuid.UUID `json:"experience_id"`
	ExperienceName string    `json:"experience_name"`
	Date           string    `json:"date"`
	TimeLabel      string    `json:"time"`
	CustomerName   string    `json:"customer_name"`
	CustomerEmail  string    `json:"customer_email"`
	Quantity       int       `json:"quantity"`
	AmountUnits    int64     `json:"amount_units"`
	CreatedAt      time.Time `json:"created_at"`
}

type CatalogQueries interface {
	ListExperiences(ctx context.Context, nameFilter string) ([]*ExperienceView, error)
	GetExperience(ctx context.Context, id uuid.UUID) (*ExperienceView, error)
	// ListSlots returns availability ordered by date ascending, then time
	// ascending; the snapshot may be stale by the time a reservation runs.
	ListSlots(ctx context.Context, experienceID uuid.UUID) ([]*SlotView, error)
}

type ExperienceViewRepo interface {
	FindAll(ctx context.Context, nameFilter string) ([]*ExperienceView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ExperienceView, error)
}

type SlotViewRepo interface {
	FindByExperienceID(ctx context.Context, experienceID uuid.UUID) ([]*SlotView, error)
}

type catalogQueriesImpl struct {
	experiences ExperienceViewRepo
	slots       SlotViewRepo
}

func NewCatalogQueries(experiences ExperienceViewRepo, slots SlotViewRepo) CatalogQueries {
	return &catalogQueriesImpl{experiences: experiences, slots: slots}
}

func (q *catalogQueriesImpl) ListExperiences(ctx context.Context, nameFilter string) ([]*ExperienceView, error) {
	return q.experiences.FindAll(ctx, nameFilter)
}

func (q *catalogQueriesImpl) GetExperience(ctx context.Context, id uuid.UUID) (*ExperienceView, error) {
	return q.experiences.FindByID(ctx, id)
}

func (q *catalogQueriesImpl) ListSlots(ctx context.Context, experienceID uuid.UUID) ([]*SlotView, error) {
	views, err := q.slots.FindByExperienceID(ctx, experienceID)
	if err != nil {
		return nil, err
	}
	sortChronologically(views)
	return views, nil
}

// timeLabelLayout matches the customer-facing 12-hour slot label.
const timeLabelLayout = "03:04 PM"

// sortChronologically orders by date then clock time. The stored label is a
// 12-hour string, so a text sort would put "05:00 PM" before "07:00 AM".
func sortChronologically(views []*SlotView) {
	sort.SliceStable(views, func(i, j int) bool {
		a, b := views[i], views[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		at, aErr := time.Parse(timeLabelLayout, a.TimeLabel)
		bt, bErr := time.Parse(timeLabelLayout, b.TimeLabel)
		if aErr == nil && bErr == nil && !at.Equal(bt) {
			return at.Before(bt)
		}
		return a.TimeLabel < b.TimeLabel
	})
}
