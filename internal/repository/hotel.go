package repository

import (
	"context"
	"fmt"

	"github.com/travelothai/travelothai-api/internal/domain"
	"github.com/travelothai/travelothai-api/internal/repository/dao"
)

var ErrHotelNotFound = dao.ErrHotelNotFound

type HotelDAO interface {
	List(ctx context.Context) ([]dao.Hotel, error)
	FindByID(ctx context.Context, id uint) (dao.Hotel, error)
	Insert(ctx context.Context, hotel dao.Hotel) (dao.Hotel, error)
	Update(ctx context.Context, hotel dao.Hotel) (dao.Hotel, error)
	Delete(ctx context.Context, id uint) error
}

type HotelRepository struct {
	dao HotelDAO
}

func NewHotelRepository(dao HotelDAO) *HotelRepository {
	return &HotelRepository{
		dao: dao,
	}
}

func (r *HotelRepository) List(ctx context.Context) ([]domain.Hotel, error) {
	hotels, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	result := make([]domain.Hotel, len(hotels))
	for i, hotel := range hotels {
		result[i] = r.daoToDomain(hotel)
	}

	return result, nil
}

func (r *HotelRepository) GetByID(ctx context.Context, id uint) (domain.Hotel, error) {
	hotel, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(hotel), nil
}

func (r *HotelRepository) Create(ctx context.Context, hotel domain.Hotel) (domain.Hotel, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(hotel))
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *HotelRepository) Update(ctx context.Context, hotel domain.Hotel) (domain.Hotel, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(hotel))
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *HotelRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *HotelRepository) domainToDao(h domain.Hotel) dao.Hotel {
	return dao.Hotel{
		ID:         h.ID,
		Name:       h.Name,
		ProvinceID: h.ProvinceID,
		Price:      h.Price,
		CreatedAt:  h.CreatedAt,
		UpdatedAt:  h.UpdatedAt,
	}
}

func (r *HotelRepository) daoToDomain(h dao.Hotel) domain.Hotel {
	return domain.Hotel{
		ID:         h.ID,
		Name:       h.Name,
		ProvinceID: h.ProvinceID,
		Price:      h.Price,
		CreatedAt:  h.CreatedAt,
		UpdatedAt:  h.UpdatedAt,
	}
}
