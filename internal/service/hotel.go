package service

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
)

type HotelService struct {
	repo ports.HotelRepo
}

func NewHotelService(repo ports.HotelRepo) *HotelService {
	return &HotelService{repo: repo}
}

// Info returns the primary hotel's contact record.
func (s *HotelService) Info(ctx context.Context) (*domain.Hotel, error) {
	return s.repo.GetPrimary(ctx)
}
