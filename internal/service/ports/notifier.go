package ports

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking)
	NotifyBookingUpdated(ctx context.Context, b *domain.Booking)
	NotifyBookingDeleted(ctx context.Context, b *domain.Booking)
}
