package repository

import (
	"context"
	"fmt"

	"github.com/travelothai/travelothai-api/internal/domain"
	"github.com/travelothai/travelothai-api/internal/repository/dao"
)

var (
	ErrProvinceCategoryNotFound = dao.ErrProvinceCategoryNotFound
	ErrProvinceNotFound         = dao.ErrProvinceNotFound
)

type ProvinceDAO interface {
	ListCategories(ctx context.Context) ([]dao.ProvinceCategory, error)
	FindCategoryByID(ctx context.Context, id uint) (dao.ProvinceCategory, error)
	InsertCategory(ctx context.Context, category dao.ProvinceCategory) (dao.ProvinceCategory, error)
	UpdateCategory(ctx context.Context, category dao.ProvinceCategory) (dao.ProvinceCategory, error)
	DeleteCategory(ctx context.Context, id uint) error
	List(ctx context.Context) ([]dao.Province, error)
	FindByID(ctx context.Context, id uint) (dao.Province, error)
	Insert(ctx context.Context, province dao.Province) (dao.Province, error)
	Update(ctx context.Context, province dao.Province) (dao.Province, error)
	Delete(ctx context.Context, id uint) error
}

type ProvinceRepository struct {
	dao ProvinceDAO
}

func NewProvinceRepository(dao ProvinceDAO) *ProvinceRepository {
	return &ProvinceRepository{
		dao: dao,
	}
}

func (r *ProvinceRepository) ListCategories(ctx context.Context) ([]domain.ProvinceCategory, error) {
	categories, err := r.dao.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListCategories -> %w", err)
	}

	result := make([]domain.ProvinceCategory, len(categories))
	for i, category := range categories {
		result[i] = r.categoryDaoToDomain(category)
	}

	return result, nil
}

func (r *ProvinceRepository) GetCategory(ctx context.Context, id uint) (domain.ProvinceCategory, error) {
	category, err := r.dao.FindCategoryByID(ctx, id)
	if err != nil {
		return domain.ProvinceCategory{}, fmt.Errorf("r.dao.FindCategoryByID -> %w", err)
	}

	return r.categoryDaoToDomain(category), nil
}

func (r *ProvinceRepository) CreateCategory(ctx context.Context, category domain.ProvinceCategory) (domain.ProvinceCategory, error) {
	created, err := r.dao.InsertCategory(ctx, r.categoryDomainToDao(category))
	if err != nil {
		return domain.ProvinceCategory{}, fmt.Errorf("r.dao.InsertCategory -> %w", err)
	}

	return r.categoryDaoToDomain(created), nil
}

func (r *ProvinceRepository) UpdateCategory(ctx context.Context, category domain.ProvinceCategory) (domain.ProvinceCategory, error) {
	updated, err := r.dao.UpdateCategory(ctx, r.categoryDomainToDao(category))
	if err != nil {
		return domain.ProvinceCategory{}, fmt.Errorf("r.dao.UpdateCategory -> %w", err)
	}

	return r.categoryDaoToDomain(updated), nil
}

func (r *ProvinceRepository) DeleteCategory(ctx context.Context, id uint) error {
	if err := r.dao.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteCategory -> %w", err)
	}

	return nil
}

func (r *ProvinceRepository) ListProvinces(ctx context.Context) ([]domain.Province, error) {
	provinces, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	result := make([]domain.Province, len(provinces))
	for i, province := range provinces {
		result[i] = r.daoToDomain(province)
	}

	return result, nil
}

func (r *ProvinceRepository) GetProvince(ctx context.Context, id uint) (domain.Province, error) {
	province, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Province{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(province), nil
}

func (r *ProvinceRepository) CreateProvince(ctx context.Context, province domain.Province) (domain.Province, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(province))
	if err != nil {
		return domain.Province{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ProvinceRepository) UpdateProvince(ctx context.Context, province domain.Province) (domain.Province, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(province))
	if err != nil {
		return domain.Province{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ProvinceRepository) DeleteProvince(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ProvinceRepository) categoryDomainToDao(c domain.ProvinceCategory) dao.ProvinceCategory {
	return dao.ProvinceCategory{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r *ProvinceRepository) categoryDaoToDomain(c dao.ProvinceCategory) domain.ProvinceCategory {
	return domain.ProvinceCategory{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r *ProvinceRepository) domainToDao(p domain.Province) dao.Province {
	return dao.Province{
		ID:         p.ID,
		Name:       p.Name,
		CategoryID: p.CategoryID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func (r *ProvinceRepository) daoToDomain(p dao.Province) domain.Province {
	return domain.Province{
		ID:         p.ID,
		Name:       p.Name,
		CategoryID: p.CategoryID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
