// Package memory holds mutex-guarded in-memory repository variants. They
// satisfy the same service-facing interfaces as the postgres-backed ones and
// are used when the API runs in mock mode, and by unit tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/travelothai/travelothai-api/internal/domain"
	"github.com/travelothai/travelothai-api/internal/repository"
)

type ProvinceRepository struct {
	mu sync.Mutex

	categories     map[uint]domain.ProvinceCategory
	provinces      map[uint]domain.Province
	nextCategoryID uint
	nextProvinceID uint
}

func NewProvinceRepository() *ProvinceRepository {
	return &ProvinceRepository{
		categories:     make(map[uint]domain.ProvinceCategory),
		provinces:      make(map[uint]domain.Province),
		nextCategoryID: 1,
		nextProvinceID: 1,
	}
}

func (r *ProvinceRepository) ListCategories(ctx context.Context) ([]domain.ProvinceCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.ProvinceCategory, 0, len(r.categories))
	for _, category := range r.categories {
		result = append(result, category)
	}

	return result, nil
}

func (r *ProvinceRepository) GetCategory(ctx context.Context, id uint) (domain.ProvinceCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category, ok := r.categories[id]
	if !ok {
		return domain.ProvinceCategory{}, repository.ErrProvinceCategoryNotFound
	}

	return category, nil
}

func (r *ProvinceRepository) CreateCategory(ctx context.Context, category domain.ProvinceCategory) (domain.ProvinceCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category.ID = r.nextCategoryID
	r.nextCategoryID++
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt
	r.categories[category.ID] = category

	return category, nil
}

func (r *ProvinceRepository) UpdateCategory(ctx context.Context, category domain.ProvinceCategory) (domain.ProvinceCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.categories[category.ID]
	if !ok {
		return domain.ProvinceCategory{}, repository.ErrProvinceCategoryNotFound
	}

	existing.Name = category.Name
	existing.UpdatedAt = time.Now()
	r.categories[existing.ID] = existing

	return existing, nil
}

func (r *ProvinceRepository) DeleteCategory(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[id]; !ok {
		return repository.ErrProvinceCategoryNotFound
	}
	delete(r.categories, id)

	return nil
}

func (r *ProvinceRepository) ListProvinces(ctx context.Context) ([]domain.Province, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.Province, 0, len(r.provinces))
	for _, province := range r.provinces {
		result = append(result, province)
	}

	return result, nil
}

func (r *ProvinceRepository) GetProvince(ctx context.Context, id uint) (domain.Province, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	province, ok := r.provinces[id]
	if !ok {
		return domain.Province{}, repository.ErrProvinceNotFound
	}

	return province, nil
}

func (r *ProvinceRepository) CreateProvince(ctx context.Context, province domain.Province) (domain.Province, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	province.ID = r.nextProvinceID
	r.nextProvinceID++
	province.CreatedAt = time.Now()
	province.UpdatedAt = province.CreatedAt
	r.provinces[province.ID] = province

	return province, nil
}

func (r *ProvinceRepository) UpdateProvince(ctx context.Context, province domain.Province) (domain.Province, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.provinces[province.ID]
	if !ok {
		return domain.Province{}, repository.ErrProvinceNotFound
	}

	existing.Name = province.Name
	existing.CategoryID = province.CategoryID
	existing.UpdatedAt = time.Now()
	r.provinces[existing.ID] = existing

	return existing, nil
}

func (r *ProvinceRepository) DeleteProvince(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.provinces[id]; !ok {
		return repository.ErrProvinceNotFound
	}
	delete(r.provinces, id)

	return nil
}
