package queries

import "context"

type BookingQueries interface {
	GetByReferenceID(ctx context.Context, referenceID string) (*BookingView, error)
}

type BookingViewRepo interface {
	FindByReferenceID(ctx context.Context, referenceID string) (*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByReferenceID(ctx context.Context, referenceID string) (*BookingView, error) {
	return q.repo.FindByReferenceID(ctx, referenceID)
}
