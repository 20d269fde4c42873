package readstore

import (
	"context"
	"errors"

	"bookit/internal/infra"
	"bookit/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByReferenceID(ctx context.Context, referenceID string) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT b.id, b.reference_id, b.experience_id, e.name,
		       to_char(b.date, 'YYYY-MM-DD'), b.time_label,
		       b.customer_name, b.customer_email, b.quantity, b.amount_units, b.created_at
		FROM bookings b
		JOIN experiences e ON e.id = b.experience_id
		WHERE b.reference_id = $1`,
		referenceID,
	)

	var v queries.BookingView
	err := row.Scan(
		&v.ID,
		&v.ReferenceID,
		&v.ExperienceID,
		&v.ExperienceName,
		&v.Date,
		&v.TimeLabel,
		&v.CustomerName,
		&v.CustomerEmail,
		&v.Quantity,
		&v.AmountUnits,
		&v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by reference ID", err)
	}

	return &v, nil
}
