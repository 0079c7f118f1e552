package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateHotelRequest struct {
	Name       string  `json:"name"`
	ProvinceID uint    `json:"province_id"`
	Price      float64 `json:"price"`
}

func (req *CreateHotelRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.ProvinceID, validation.Required),
		validation.Field(&req.Price, validation.Required, validation.Min(0.0).Exclusive()),
	)
}

type UpdateHotelRequest struct {
	Name       string  `json:"name"`
	ProvinceID uint    `json:"province_id"`
	Price      float64 `json:"price"`
}

func (req *UpdateHotelRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.ProvinceID, validation.Required),
		validation.Field(&req.Price, validation.Required, validation.Min(0.0).Exclusive()),
	)
}
