package domain

import "time"

type TicketType struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TicketUsageRule struct {
	ID           uint      `json:"id"`
	TicketTypeID uint      `json:"ticket_type_id"`
	CategoryID   uint      `json:"category_id"`
	Allowance    bool      `json:"allowance"`
	TaxReduction float64   `json:"tax_reduction"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Ticket is a bundle of `Amount` uses. `Used` only grows and never passes
// `Amount`. A nil UserID means the ticket is unassigned.
type Ticket struct {
	ID           uint      `json:"id"`
	UserID       *uint     `json:"user_id"`
	TicketTypeID uint      `json:"ticket_type_id"`
	CampaignID   *uint     `json:"campaign_id"`
	Amount       int       `json:"amount"`
	Used         int       `json:"used"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TicketCampaign holds a bounded registration counter. Registered never
// exceeds Limit; a nil Limit means unbounded.
type TicketCampaign struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Limit      *int      `json:"limit"`
	Registered int       `json:"registered"`
	IsActive   bool      `json:"is_active"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TicketCampaignTicketType binds a ticket type to a campaign. Every
// successful registration mints one ticket per binding, copying Amount and
// ExpirationDate onto the new ticket.
type TicketCampaignTicketType struct {
	ID             uint      `json:"id"`
	CampaignID     uint      `json:"campaign_id"`
	TicketTypeID   uint      `json:"ticket_type_id"`
	Amount         int       `json:"amount"`
	ExpirationDate time.Time `json:"expiration_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
