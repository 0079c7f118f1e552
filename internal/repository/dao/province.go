package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrProvinceCategoryNotFound = errors.New("province category not found")
	ErrProvinceNotFound         = errors.New("province not found")
)

type ProvinceCategory struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Province struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"index;not null"`
	CategoryID uint   `gorm:"not null"`

	Category ProvinceCategory `gorm:"foreignKey:CategoryID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ProvinceDAO struct {
	db *gorm.DB
}

func NewProvinceDAO(db *gorm.DB) *ProvinceDAO {
	return &ProvinceDAO{
		db: db,
	}
}

func (d *ProvinceDAO) ListCategories(ctx context.Context) ([]ProvinceCategory, error) {
	var categories []ProvinceCategory

	result := d.db.WithContext(ctx).Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}

func (d *ProvinceDAO) FindCategoryByID(ctx context.Context, id uint) (ProvinceCategory, error) {
	var category ProvinceCategory

	result := d.db.WithContext(ctx).First(&category, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ProvinceCategory{}, ErrProvinceCategoryNotFound
		}

		return ProvinceCategory{}, result.Error
	}

	return category, nil
}

func (d *ProvinceDAO) InsertCategory(ctx context.Context, category ProvinceCategory) (ProvinceCategory, error) {
	result := d.db.WithContext(ctx).Create(&category)
	if result.Error != nil {
		return ProvinceCategory{}, result.Error
	}

	return category, nil
}

func (d *ProvinceDAO) UpdateCategory(ctx context.Context, category ProvinceCategory) (ProvinceCategory, error) {
	result := d.db.WithContext(ctx).Model(&ProvinceCategory{}).
		Where("id = ?", category.ID).
		Updates(map[string]interface{}{"name": category.Name})
	if result.Error != nil {
		return ProvinceCategory{}, result.Error
	}
	if result.RowsAffected == 0 {
		return ProvinceCategory{}, ErrProvinceCategoryNotFound
	}

	return d.FindCategoryByID(ctx, category.ID)
}

func (d *ProvinceDAO) DeleteCategory(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&ProvinceCategory{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProvinceCategoryNotFound
	}

	return nil
}

func (d *ProvinceDAO) List(ctx context.Context) ([]Province, error) {
	var provinces []Province

	result := d.db.WithContext(ctx).Find(&provinces)
	if result.Error != nil {
		return nil, result.Error
	}

	return provinces, nil
}

func (d *ProvinceDAO) FindByID(ctx context.Context, id uint) (Province, error) {
	var province Province

	result := d.db.WithContext(ctx).First(&province, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Province{}, ErrProvinceNotFound
		}

		return Province{}, result.Error
	}

	return province, nil
}

func (d *ProvinceDAO) Insert(ctx context.Context, province Province) (Province, error) {
	result := d.db.WithContext(ctx).Create(&province)
	if result.Error != nil {
		return Province{}, result.Error
	}

	return province, nil
}

func (d *ProvinceDAO) Update(ctx context.Context, province Province) (Province, error) {
	result := d.db.WithContext(ctx).Model(&Province{}).
		Where("id = ?", province.ID).
		Updates(map[string]interface{}{
			"name":        province.Name,
			"category_id": province.CategoryID,
		})
	if result.Error != nil {
		return Province{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Province{}, ErrProvinceNotFound
	}

	return d.FindByID(ctx, province.ID)
}

func (d *ProvinceDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Province{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProvinceNotFound
	}

	return nil
}
