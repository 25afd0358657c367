package ports

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type HotelRepo interface {
	// GetPrimary returns the lowest-id hotel row. Single-hotel deployments
	// keep exactly one; the lowest id keeps the choice stable if more appear.
	GetPrimary(ctx context.Context) (*domain.Hotel, error)
}
