package slot

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyDate      = errors.New("slot date cannot be empty")
	ErrInvalidDate    = errors.New("slot date must be YYYY-MM-DD")
	ErrEmptyTimeLabel = errors.New("slot time label cannot be empty")
)

// Key identifies a slot within an experience: a calendar date plus the local
// time label shown to the customer ("07:00 AM"). Matches the composite key the
// store indexes on.
type Key struct {
	date      string
	timeLabel string
}

func NewKey(date, timeLabel string) (Key, error) {
	date = strings.TrimSpace(date)
	timeLabel = strings.TrimSpace(timeLabel)
	if date == "" {
		return Key{}, ErrEmptyDate
	}
	if len(date) != 10 || date[4] != '-' || date[7] != '-' {
		return Key{}, ErrInvalidDate
	}
	if timeLabel == "" {
		return Key{}, ErrEmptyTimeLabel
	}
	return Key{date: date, timeLabel: timeLabel}, nil
}

func (k Key) Date() string      { return k.date }
func (k Key) TimeLabel() string { return k.timeLabel }

func (k Key) String() string {
	return k.date + "_" + k.timeLabel
}

// Slot is one bookable unit of an experience. Capacity only moves down, one
// reservation at a time, through the slot repository's conditional decrement.
type Slot struct {
	id           uuid.UUID
	experienceID uuid.UUID
	key          Key
	capacity     int
}

func New(id, experienceID uuid.UUID, key Key, capacity int) (*Slot, error) {
	if capacity < 0 {
		return nil, errors.New("slot capacity cannot be negative")
	}
	return &Slot{
		id:           id,
		experienceID: experienceID,
		key:          key,
		capacity:     capacity,
	}, nil
}

func (s *Slot) ID() uuid.UUID           { return s.id }
func (s *Slot) ExperienceID() uuid.UUID { return s.experienceID }
func (s *Slot) Key() Key                { return s.key }
func (s *Slot) Capacity() int           { return s.capacity }

func (s *Slot) IsSoldOut() bool {
	return s.capacity == 0
}
