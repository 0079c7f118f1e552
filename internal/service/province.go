package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/travelothai/travelothai-api/internal/domain"
	"github.com/travelothai/travelothai-api/internal/repository"
)

var (
	ErrProvinceCategoryNotFound = repository.ErrProvinceCategoryNotFound
	ErrProvinceNotFound         = repository.ErrProvinceNotFound
)

type ProvinceRepository interface {
	ListCategories(ctx context.Context) ([]domain.ProvinceCategory, error)
	GetCategory(ctx context.Context, id uint) (domain.ProvinceCategory, error)
	CreateCategory(ctx context.Context, category domain.ProvinceCategory) (domain.ProvinceCategory, error)
	UpdateCategory(ctx context.Context, category domain.ProvinceCategory) (domain.ProvinceCategory, error)
	DeleteCategory(ctx context.Context, id uint) error
	ListProvinces(ctx context.Context) ([]domain.Province, error)
	GetProvince(ctx context.Context, id uint) (domain.Province, error)
	CreateProvince(ctx context.Context, province domain.Province) (domain.Province, error)
	UpdateProvince(ctx context.Context, province domain.Province) (domain.Province, error)
	DeleteProvince(ctx context.Context, id uint) error
}

type ProvinceService struct {
	repo ProvinceRepository
}

func NewProvinceService(repo ProvinceRepository) *ProvinceService {
	return &ProvinceService{
		repo: repo,
	}
}

func (s *ProvinceService) ListCategories(ctx context.Context) ([]domain.ProvinceCategory, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListCategories -> %w", err)
	}

	return categories, nil
}

func (s *ProvinceService) GetCategory(ctx context.Context, id uint) (domain.ProvinceCategory, error) {
	category, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, ErrProvinceCategoryNotFound) {
			return domain.ProvinceCategory{}, ErrProvinceCategoryNotFound
		}

		return domain.ProvinceCategory{}, fmt.Errorf("s.repo.GetCategory -> %w", err)
	}

	return category, nil
}

func (s *ProvinceService) CreateCategory(ctx context.Context, category domain.ProvinceCategory) (domain.ProvinceCategory, error) {
	created, err := s.repo.CreateCategory(ctx, category)
	if err != nil {
		return domain.ProvinceCategory{}, fmt.Errorf("s.repo.CreateCategory -> %w", err)
	}

	return created, nil
}

func (s *ProvinceService) UpdateCategory(ctx context.Context, category domain.ProvinceCategory) (domain.ProvinceCategory, error) {
	updated, err := s.repo.UpdateCategory(ctx, category)
	if err != nil {
		if errors.Is(err, ErrProvinceCategoryNotFound) {
			return domain.ProvinceCategory{}, ErrProvinceCategoryNotFound
		}

		return domain.ProvinceCategory{}, fmt.Errorf("s.repo.UpdateCategory -> %w", err)
	}

	return updated, nil
}

func (s *ProvinceService) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, ErrProvinceCategoryNotFound) {
			return ErrProvinceCategoryNotFound
		}

		return fmt.Errorf("s.repo.DeleteCategory -> %w", err)
	}

	return nil
}

func (s *ProvinceService) ListProvinces(ctx context.Context) ([]domain.Province, error) {
	provinces, err := s.repo.ListProvinces(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListProvinces -> %w", err)
	}

	return provinces, nil
}

func (s *ProvinceService) GetProvince(ctx context.Context, id uint) (domain.Province, error) {
	province, err := s.repo.GetProvince(ctx, id)
	if err != nil {
		if errors.Is(err, ErrProvinceNotFound) {
			return domain.Province{}, ErrProvinceNotFound
		}

		return domain.Province{}, fmt.Errorf("s.repo.GetProvince -> %w", err)
	}

	return province, nil
}

func (s *ProvinceService) CreateProvince(ctx context.Context, province domain.Province) (domain.Province, error) {
	if _, err := s.GetCategory(ctx, province.CategoryID); err != nil {
		if errors.Is(err, ErrProvinceCategoryNotFound) {
			return domain.Province{}, ErrProvinceCategoryNotFound
		}

		return domain.Province{}, fmt.Errorf("s.GetCategory -> %w", err)
	}

	created, err := s.repo.CreateProvince(ctx, province)
	if err != nil {
		return domain.Province{}, fmt.Errorf("s.repo.CreateProvince -> %w", err)
	}

	return created, nil
}

func (s *ProvinceService) UpdateProvince(ctx context.Context, province domain.Province) (domain.Province, error) {
	if _, err := s.GetCategory(ctx, province.CategoryID); err != nil {
		if errors.Is(err, ErrProvinceCategoryNotFound) {
			return domain.Province{}, ErrProvinceCategoryNotFound
		}

		return domain.Province{}, fmt.Errorf("s.GetCategory -> %w", err)
	}

	updated, err := s.repo.UpdateProvince(ctx, province)
	if err != nil {
		if errors.Is(err, ErrProvinceNotFound) {
			return domain.Province{}, ErrProvinceNotFound
		}

		return domain.Province{}, fmt.Errorf("s.repo.UpdateProvince -> %w", err)
	}

	return updated, nil
}

func (s *ProvinceService) DeleteProvince(ctx context.Context, id uint) error {
	if err := s.repo.DeleteProvince(ctx, id); err != nil {
		if errors.Is(err, ErrProvinceNotFound) {
			return ErrProvinceNotFound
		}

		return fmt.Errorf("s.repo.DeleteProvince -> %w", err)
	}

	return nil
}
