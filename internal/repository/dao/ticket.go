package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrTicketTypeNotFound         = errors.New("ticket type not found")
	ErrTicketUsageRuleNotFound    = errors.New("ticket usage rule not found")
	ErrTicketNotFound             = errors.New("ticket not found")
	ErrCampaignNotFound           = errors.New("campaign not found")
	ErrCampaignTicketTypeNotFound = errors.New("ticket campaign ticket type not found")
	ErrCampaignLimitExceeded      = errors.New("campaign registration limit exceeded")
)

type TicketType struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TicketUsageRule struct {
	ID           uint    `gorm:"primaryKey"`
	TicketTypeID uint    `gorm:"not null"`
	CategoryID   uint    `gorm:"not null"`
	Allowance    bool    `gorm:"default:false"`
	TaxReduction float64 `gorm:"default:0"`

	TicketType TicketType       `gorm:"foreignKey:TicketTypeID"`
	Category   ProvinceCategory `gorm:"foreignKey:CategoryID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Ticket struct {
	ID           uint  `gorm:"primaryKey"`
	UserID       *uint `gorm:"index"`
	TicketTypeID uint  `gorm:"not null"`
	CampaignID   *uint `gorm:"index"`
	Amount       int   `gorm:"not null"`
	Used         int   `gorm:"not null;default:0"`
	ExpiresAt    time.Time

	TicketType TicketType      `gorm:"foreignKey:TicketTypeID"`
	Campaign   *TicketCampaign `gorm:"foreignKey:CampaignID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type TicketCampaign struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"uniqueIndex;not null"`
	Limit      *int
	Registered int  `gorm:"not null;default:0"`
	IsActive   bool `gorm:"default:true"`
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type TicketCampaignTicketType struct {
	ID             uint `gorm:"primaryKey"`
	CampaignID     uint `gorm:"index;not null"`
	TicketTypeID   uint `gorm:"not null"`
	Amount         int  `gorm:"not null"`
	ExpirationDate time.Time

	Campaign   TicketCampaign `gorm:"foreignKey:CampaignID"`
	TicketType TicketType     `gorm:"foreignKey:TicketTypeID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type TicketDAO struct {
	db *gorm.DB
}

func NewTicketDAO(db *gorm.DB) *TicketDAO {
	return &TicketDAO{
		db: db,
	}
}

// TicketType methods.

func (d *TicketDAO) ListTypes(ctx context.Context) ([]TicketType, error) {
	var types []TicketType

	result := d.db.WithContext(ctx).Find(&types)
	if result.Error != nil {
		return nil, result.Error
	}

	return types, nil
}

func (d *TicketDAO) FindTypeByID(ctx context.Context, id uint) (TicketType, error) {
	var ticketType TicketType

	result := d.db.WithContext(ctx).First(&ticketType, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return TicketType{}, ErrTicketTypeNotFound
		}

		return TicketType{}, result.Error
	}

	return ticketType, nil
}

func (d *TicketDAO) TypeNameExists(ctx context.Context, name string) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&TicketType{}).Where("name = ?", name).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *TicketDAO) InsertType(ctx context.Context, ticketType TicketType) (TicketType, error) {
	result := d.db.WithContext(ctx).Create(&ticketType)
	if result.Error != nil {
		return TicketType{}, result.Error
	}

	return ticketType, nil
}

func (d *TicketDAO) UpdateType(ctx context.Context, ticketType TicketType) (TicketType, error) {
	result := d.db.WithContext(ctx).Model(&TicketType{}).
		Where("id = ?", ticketType.ID).
		Updates(map[string]interface{}{"name": ticketType.Name})
	if result.Error != nil {
		return TicketType{}, result.Error
	}
	if result.RowsAffected == 0 {
		return TicketType{}, ErrTicketTypeNotFound
	}

	return d.FindTypeByID(ctx, ticketType.ID)
}

func (d *TicketDAO) DeleteType(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&TicketType{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTicketTypeNotFound
	}

	return nil
}

// TicketUsageRule methods.

func (d *TicketDAO) ListUsageRules(ctx context.Context) ([]TicketUsageRule, error) {
	var rules []TicketUsageRule

	result := d.db.WithContext(ctx).Find(&rules)
	if result.Error != nil {
		return nil, result.Error
	}

	return rules, nil
}

func (d *TicketDAO) FindUsageRuleByID(ctx context.Context, id uint) (TicketUsageRule, error) {
	var rule TicketUsageRule

	result := d.db.WithContext(ctx).First(&rule, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return TicketUsageRule{}, ErrTicketUsageRuleNotFound
		}

		return TicketUsageRule{}, result.Error
	}

	return rule, nil
}

// FindTaxReductionByTypeID returns the tax reduction of the first usage rule
// bound to the ticket type, or 0 when the type has no rule.
func (d *TicketDAO) FindTaxReductionByTypeID(ctx context.Context, typeID uint) (float64, error) {
	var rule TicketUsageRule

	result := d.db.WithContext(ctx).Where("ticket_type_id = ?", typeID).First(&rule)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, nil
		}

		return 0, result.Error
	}

	return rule.TaxReduction, nil
}

func (d *TicketDAO) InsertUsageRule(ctx context.Context, rule TicketUsageRule) (TicketUsageRule, error) {
	result := d.db.WithContext(ctx).Create(&rule)
	if result.Error != nil {
		return TicketUsageRule{}, result.Error
	}

	return rule, nil
}

func (d *TicketDAO) UpdateUsageRule(ctx context.Context, rule TicketUsageRule) (TicketUsageRule, error) {
	result := d.db.WithContext(ctx).Model(&TicketUsageRule{}).
		Where("id = ?", rule.ID).
		Updates(map[string]interface{}{
			"ticket_type_id": rule.TicketTypeID,
			"category_id":    rule.CategoryID,
			"allowance":      rule.Allowance,
			"tax_reduction":  rule.TaxReduction,
		})
	if result.Error != nil {
		return TicketUsageRule{}, result.Error
	}
	if result.RowsAffected == 0 {
		return TicketUsageRule{}, ErrTicketUsageRuleNotFound
	}

	return d.FindUsageRuleByID(ctx, rule.ID)
}

func (d *TicketDAO) DeleteUsageRule(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&TicketUsageRule{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTicketUsageRuleNotFound
	}

	return nil
}

// Ticket methods.

func (d *TicketDAO) ListTickets(ctx context.Context) ([]Ticket, error) {
	var tickets []Ticket

	result := d.db.WithContext(ctx).Find(&tickets)
	if result.Error != nil {
		return nil, result.Error
	}

	return tickets, nil
}

func (d *TicketDAO) FindTicketByID(ctx context.Context, id uint) (Ticket, error) {
	var ticket Ticket

	result := d.db.WithContext(ctx).First(&ticket, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Ticket{}, ErrTicketNotFound
		}

		return Ticket{}, result.Error
	}

	return ticket, nil
}

func (d *TicketDAO) InsertTicket(ctx context.Context, ticket Ticket) (Ticket, error) {
	result := d.db.WithContext(ctx).Create(&ticket)
	if result.Error != nil {
		return Ticket{}, result.Error
	}

	return ticket, nil
}

// UpdateTicket rewrites the ticket's editable fields. The used counter is
// deliberately left out: it only moves through the booking flow.
func (d *TicketDAO) UpdateTicket(ctx context.Context, ticket Ticket) (Ticket, error) {
	result := d.db.WithContext(ctx).Model(&Ticket{}).
		Where("id = ?", ticket.ID).
		Updates(map[string]interface{}{
			"user_id":        ticket.UserID,
			"ticket_type_id": ticket.TicketTypeID,
			"campaign_id":    ticket.CampaignID,
			"amount":         ticket.Amount,
			"expires_at":     ticket.ExpiresAt,
		})
	if result.Error != nil {
		return Ticket{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Ticket{}, ErrTicketNotFound
	}

	return d.FindTicketByID(ctx, ticket.ID)
}

// ClearTicketUser unassigns the ticket from its user. Clearing an already
// unassigned ticket is a no-op, not an error.
func (d *TicketDAO) ClearTicketUser(ctx context.Context, id uint) (Ticket, error) {
	ticket, err := d.FindTicketByID(ctx, id)
	if err != nil {
		return Ticket{}, err
	}

	result := d.db.WithContext(ctx).Model(&Ticket{}).
		Where("id = ?", id).
		Update("user_id", gorm.Expr("NULL"))
	if result.Error != nil {
		return Ticket{}, result.Error
	}

	ticket.UserID = nil

	return ticket, nil
}

func (d *TicketDAO) DeleteTicket(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Ticket{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTicketNotFound
	}

	return nil
}

// TicketCampaign methods.

func (d *TicketDAO) ListCampaigns(ctx context.Context) ([]TicketCampaign, error) {
	var campaigns []TicketCampaign

	result := d.db.WithContext(ctx).Find(&campaigns)
	if result.Error != nil {
		return nil, result.Error
	}

	return campaigns, nil
}

func (d *TicketDAO) FindCampaignByID(ctx context.Context, id uint) (TicketCampaign, error) {
	var campaign TicketCampaign

	result := d.db.WithContext(ctx).First(&campaign, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return TicketCampaign{}, ErrCampaignNotFound
		}

		return TicketCampaign{}, result.Error
	}

	return campaign, nil
}

func (d *TicketDAO) CampaignNameExists(ctx context.Context, name string) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&TicketCampaign{}).Where("name = ?", name).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *TicketDAO) InsertCampaign(ctx context.Context, campaign TicketCampaign) (TicketCampaign, error) {
	result := d.db.WithContext(ctx).Create(&campaign)
	if result.Error != nil {
		return TicketCampaign{}, result.Error
	}

	return campaign, nil
}

func (d *TicketDAO) UpdateCampaign(ctx context.Context, campaign TicketCampaign) (TicketCampaign, error) {
	result := d.db.WithContext(ctx).Model(&TicketCampaign{}).
		Where("id = ?", campaign.ID).
		Updates(map[string]interface{}{
			"name":       campaign.Name,
			"limit":      campaign.Limit,
			"start_date": campaign.StartDate,
			"end_date":   campaign.EndDate,
		})
	if result.Error != nil {
		return TicketCampaign{}, result.Error
	}
	if result.RowsAffected == 0 {
		return TicketCampaign{}, ErrCampaignNotFound
	}

	return d.FindCampaignByID(ctx, campaign.ID)
}

func (d *TicketDAO) DeleteCampaign(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&TicketCampaign{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCampaignNotFound
	}

	return nil
}

// RegisterCampaign increments the campaign's registered counter and mints one
// ticket per ticket-type binding, all inside one transaction. The campaign
// row is locked FOR UPDATE so concurrent registrations serialize on the
// capacity check and the counter can never pass the limit.
func (d *TicketDAO) RegisterCampaign(ctx context.Context, campaignID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var campaign TicketCampaign

		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&campaign, campaignID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCampaignNotFound
			}

			return err
		}

		if campaign.Limit != nil && campaign.Registered >= *campaign.Limit {
			return ErrCampaignLimitExceeded
		}

		err = tx.Model(&campaign).Update("registered", campaign.Registered+1).Error
		if err != nil {
			return err
		}

		var bindings []TicketCampaignTicketType
		err = tx.Where("campaign_id = ?", campaignID).Find(&bindings).Error
		if err != nil {
			return err
		}

		// A campaign without bindings still registers; it just issues nothing.
		for _, binding := range bindings {
			ticket := Ticket{
				TicketTypeID: binding.TicketTypeID,
				CampaignID:   &campaign.ID,
				Amount:       binding.Amount,
				Used:         0,
				ExpiresAt:    binding.ExpirationDate,
			}
			if err = tx.Create(&ticket).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// ToggleCampaignActive flips the campaign's is_active flag.
func (d *TicketDAO) ToggleCampaignActive(ctx context.Context, campaignID uint) (TicketCampaign, error) {
	campaign, err := d.FindCampaignByID(ctx, campaignID)
	if err != nil {
		return TicketCampaign{}, err
	}

	result := d.db.WithContext(ctx).Model(&campaign).Update("is_active", !campaign.IsActive)
	if result.Error != nil {
		return TicketCampaign{}, result.Error
	}

	campaign.IsActive = !campaign.IsActive

	return campaign, nil
}

// TicketCampaignTicketType methods.

func (d *TicketDAO) ListCampaignTicketTypes(ctx context.Context) ([]TicketCampaignTicketType, error) {
	var bindings []TicketCampaignTicketType

	result := d.db.WithContext(ctx).Find(&bindings)
	if result.Error != nil {
		return nil, result.Error
	}

	return bindings, nil
}

func (d *TicketDAO) FindCampaignTicketTypeByID(ctx context.Context, id uint) (TicketCampaignTicketType, error) {
	var binding TicketCampaignTicketType

	result := d.db.WithContext(ctx).First(&binding, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return TicketCampaignTicketType{}, ErrCampaignTicketTypeNotFound
		}

		return TicketCampaignTicketType{}, result.Error
	}

	return binding, nil
}

func (d *TicketDAO) InsertCampaignTicketType(ctx context.Context, binding TicketCampaignTicketType) (TicketCampaignTicketType, error) {
	result := d.db.WithContext(ctx).Create(&binding)
	if result.Error != nil {
		return TicketCampaignTicketType{}, result.Error
	}

	return binding, nil
}

func (d *TicketDAO) UpdateCampaignTicketType(ctx context.Context, binding TicketCampaignTicketType) (TicketCampaignTicketType, error) {
	result := d.db.WithContext(ctx).Model(&TicketCampaignTicketType{}).
		Where("id = ?", binding.ID).
		Updates(map[string]interface{}{
			"campaign_id":     binding.CampaignID,
			"ticket_type_id":  binding.TicketTypeID,
			"amount":          binding.Amount,
			"expiration_date": binding.ExpirationDate,
		})
	if result.Error != nil {
		return TicketCampaignTicketType{}, result.Error
	}
	if result.RowsAffected == 0 {
		return TicketCampaignTicketType{}, ErrCampaignTicketTypeNotFound
	}

	return d.FindCampaignTicketTypeByID(ctx, binding.ID)
}

func (d *TicketDAO) DeleteCampaignTicketType(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&TicketCampaignTicketType{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCampaignTicketTypeNotFound
	}

	return nil
}
