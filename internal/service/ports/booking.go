package ports

import (
	"context"

	"github.com/stpnv0/ClassBooker/internal/domain"
)

type BookingGateway interface {
	SubmitIntent(ctx context.Context, intent domain.BookingIntent) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) (*domain.Booking, error)
}
