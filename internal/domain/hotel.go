package domain

import "time"

type Hotel struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	ProvinceID uint      `json:"province_id"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
