package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrHotelNotFound = errors.New("hotel not found")

type Hotel struct {
	ID         uint    `gorm:"primaryKey"`
	Name       string  `gorm:"index;not null"`
	ProvinceID uint    `gorm:"not null"`
	Price      float64 `gorm:"not null"`

	Province Province `gorm:"foreignKey:ProvinceID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type HotelDAO struct {
	db *gorm.DB
}

func NewHotelDAO(db *gorm.DB) *HotelDAO {
	return &HotelDAO{
		db: db,
	}
}

func (d *HotelDAO) List(ctx context.Context) ([]Hotel, error) {
	var hotels []Hotel

	result := d.db.WithContext(ctx).Find(&hotels)
	if result.Error != nil {
		return nil, result.Error
	}

	return hotels, nil
}

func (d *HotelDAO) FindByID(ctx context.Context, id uint) (Hotel, error) {
	var hotel Hotel

	result := d.db.WithContext(ctx).First(&hotel, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Hotel{}, ErrHotelNotFound
		}

		return Hotel{}, result.Error
	}

	return hotel, nil
}

func (d *HotelDAO) Insert(ctx context.Context, hotel Hotel) (Hotel, error) {
	result := d.db.WithContext(ctx).Create(&hotel)
	if result.Error != nil {
		return Hotel{}, result.Error
	}

	return hotel, nil
}

func (d *HotelDAO) Update(ctx context.Context, hotel Hotel) (Hotel, error) {
	result := d.db.WithContext(ctx).Model(&Hotel{}).
		Where("id = ?", hotel.ID).
		Updates(map[string]interface{}{
			"name":        hotel.Name,
			"province_id": hotel.ProvinceID,
			"price":       hotel.Price,
		})
	if result.Error != nil {
		return Hotel{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Hotel{}, ErrHotelNotFound
	}

	return d.FindByID(ctx, hotel.ID)
}

func (d *HotelDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Hotel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHotelNotFound
	}

	return nil
}
