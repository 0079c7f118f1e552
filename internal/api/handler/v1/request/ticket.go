package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type TicketTypeRequest struct {
	Name string `json:"name"`
}

func (req *TicketTypeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}

type TicketUsageRuleRequest struct {
	TicketTypeID uint    `json:"ticket_type_id"`
	CategoryID   uint    `json:"category_id"`
	Allowance    bool    `json:"allowance"`
	TaxReduction float64 `json:"tax_reduction"`
}

func (req *TicketUsageRuleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TicketTypeID, validation.Required),
		validation.Field(&req.CategoryID, validation.Required),
		validation.Field(&req.TaxReduction, validation.Min(0.0), validation.Max(1.0)),
	)
}

type TicketRequest struct {
	UserID       *uint     `json:"user_id"`
	TicketTypeID uint      `json:"ticket_type_id"`
	CampaignID   *uint     `json:"campaign_id"`
	Amount       int       `json:"amount"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func (req *TicketRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TicketTypeID, validation.Required),
		validation.Field(&req.Amount, validation.Required, validation.Min(1)),
		validation.Field(&req.ExpiresAt, validation.Required),
	)
}

type TicketCampaignRequest struct {
	Name      string    `json:"name"`
	Limit     *int      `json:"limit"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

func (req *TicketCampaignRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Limit, validation.Min(1)),
		validation.Field(&req.StartDate, validation.Required),
		validation.Field(&req.EndDate, validation.Required, validation.Min(req.StartDate)),
	)
}

type TicketCampaignTicketTypeRequest struct {
	CampaignID     uint      `json:"campaign_id"`
	TicketTypeID   uint      `json:"ticket_type_id"`
	Amount         int       `json:"amount"`
	ExpirationDate time.Time `json:"expiration_date"`
}

func (req *TicketCampaignTicketTypeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CampaignID, validation.Required),
		validation.Field(&req.TicketTypeID, validation.Required),
		validation.Field(&req.Amount, validation.Required, validation.Min(1)),
		validation.Field(&req.ExpirationDate, validation.Required),
	)
}
