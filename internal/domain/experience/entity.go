package experience

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("experience name cannot be empty")
	ErrNameTooLong   = errors.New("experience name is too long (max 255 characters)")
	ErrNegativePrice = errors.New("experience price cannot be negative")
)

const MaxNameLength = 255

// Experience is a bookable activity from the catalog. The catalog is owned by
// administration; the booking flow only ever reads it.
type Experience struct {
	id          uuid.UUID
	name        string
	location    string
	description string
	priceUnits  int64
	imageURL    string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewExperience(id uuid.UUID, name, location, description string, priceUnits int64, imageURL string) (*Experience, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if priceUnits < 0 {
		return nil, ErrNegativePrice
	}

	return &Experience{
		id:          id,
		name:        name,
		location:    strings.TrimSpace(location),
		description: description,
		priceUnits:  priceUnits,
		imageURL:    imageURL,
	}, nil
}

func (e *Experience) ID() uuid.UUID       { return e.id }
func (e *Experience) Name() string        { return e.name }
func (e *Experience) Location() string    { return e.location }
func (e *Experience) Description() string { return e.description }
func (e *Experience) PriceUnits() int64   { return e.priceUnits }
func (e *Experience) ImageURL() string    { return e.imageURL }
func (e *Experience) CreatedAt() time.Time { return e.createdAt }
func (e *Experience) UpdatedAt() time.Time { return e.updatedAt }
