package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/travelothai/travelothai-api/internal/domain"
	"github.com/travelothai/travelothai-api/internal/repository"
)

var ErrHotelNotFound = repository.ErrHotelNotFound

type HotelRepository interface {
	List(ctx context.Context) ([]domain.Hotel, error)
	GetByID(ctx context.Context, id uint) (domain.Hotel, error)
	Create(ctx context.Context, hotel domain.Hotel) (domain.Hotel, error)
	Update(ctx context.Context, hotel domain.Hotel) (domain.Hotel, error)
	Delete(ctx context.Context, id uint) error
}

type HotelService struct {
	repo         HotelRepository
	provinceRepo ProvinceRepository
}

func NewHotelService(repo HotelRepository, provinceRepo ProvinceRepository) *HotelService {
	return &HotelService{
		repo:         repo,
		provinceRepo: provinceRepo,
	}
}

func (s *HotelService) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	hotels, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return hotels, nil
}

func (s *HotelService) GetHotel(ctx context.Context, id uint) (domain.Hotel, error) {
	hotel, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrHotelNotFound) {
			return domain.Hotel{}, ErrHotelNotFound
		}

		return domain.Hotel{}, fmt.Errorf("s.repo.GetByID -> %w", err)
	}

	return hotel, nil
}

func (s *HotelService) CreateHotel(ctx context.Context, hotel domain.Hotel) (domain.Hotel, error) {
	if _, err := s.provinceRepo.GetProvince(ctx, hotel.ProvinceID); err != nil {
		if errors.Is(err, ErrProvinceNotFound) {
			return domain.Hotel{}, ErrProvinceNotFound
		}

		return domain.Hotel{}, fmt.Errorf("s.provinceRepo.GetProvince -> %w", err)
	}

	created, err := s.repo.Create(ctx, hotel)
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *HotelService) UpdateHotel(ctx context.Context, hotel domain.Hotel) (domain.Hotel, error) {
	if _, err := s.provinceRepo.GetProvince(ctx, hotel.ProvinceID); err != nil {
		if errors.Is(err, ErrProvinceNotFound) {
			return domain.Hotel{}, ErrProvinceNotFound
		}

		return domain.Hotel{}, fmt.Errorf("s.provinceRepo.GetProvince -> %w", err)
	}

	updated, err := s.repo.Update(ctx, hotel)
	if err != nil {
		if errors.Is(err, ErrHotelNotFound) {
			return domain.Hotel{}, ErrHotelNotFound
		}

		return domain.Hotel{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *HotelService) DeleteHotel(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrHotelNotFound) {
			return ErrHotelNotFound
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
