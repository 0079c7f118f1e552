package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateProvinceCategoryRequest struct {
	Name string `json:"name"`
}

func (req *CreateProvinceCategoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}

type UpdateProvinceCategoryRequest struct {
	Name string `json:"name"`
}

func (req *UpdateProvinceCategoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}

type CreateProvinceRequest struct {
	Name       string `json:"name"`
	CategoryID uint   `json:"category_id"`
}

func (req *CreateProvinceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.CategoryID, validation.Required),
	)
}

type UpdateProvinceRequest struct {
	Name       string `json:"name"`
	CategoryID uint   `json:"category_id"`
}

func (req *UpdateProvinceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.CategoryID, validation.Required),
	)
}
