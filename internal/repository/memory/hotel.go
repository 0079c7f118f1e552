package memory

import (
	"context"
	"sync"
	"time"

	"github.com/travelothai/travelothai-api/internal/domain"
	"github.com/travelothai/travelothai-api/internal/repository"
)

type HotelRepository struct {
	mu sync.Mutex

	hotels map[uint]domain.Hotel
	nextID uint
}

func NewHotelRepository() *HotelRepository {
	return &HotelRepository{
		hotels: make(map[uint]domain.Hotel),
		nextID: 1,
	}
}

func (r *HotelRepository) List(ctx context.Context) ([]domain.Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.Hotel, 0, len(r.hotels))
	for _, hotel := range r.hotels {
		result = append(result, hotel)
	}

	return result, nil
}

func (r *HotelRepository) GetByID(ctx context.Context, id uint) (domain.Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	hotel, ok := r.hotels[id]
	if !ok {
		return domain.Hotel{}, repository.ErrHotelNotFound
	}

	return hotel, nil
}

func (r *HotelRepository) Create(ctx context.Context, hotel domain.Hotel) (domain.Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	hotel.ID = r.nextID
	r.nextID++
	hotel.CreatedAt = time.Now()
	hotel.UpdatedAt = hotel.CreatedAt
	r.hotels[hotel.ID] = hotel

	return hotel, nil
}

func (r *HotelRepository) Update(ctx context.Context, hotel domain.Hotel) (domain.Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.hotels[hotel.ID]
	if !ok {
		return domain.Hotel{}, repository.ErrHotelNotFound
	}

	existing.Name = hotel.Name
	existing.ProvinceID = hotel.ProvinceID
	existing.Price = hotel.Price
	existing.UpdatedAt = time.Now()
	r.hotels[existing.ID] = existing

	return existing, nil
}

func (r *HotelRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.hotels[id]; !ok {
		return repository.ErrHotelNotFound
	}
	delete(r.hotels, id)

	return nil
}
