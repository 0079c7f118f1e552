package memory

import (
	"context"
	"sync"
	"time"

	"github.com/travelothai/travelothai-api/internal/domain"
	"github.com/travelothai/travelothai-api/internal/repository"
)

type TicketRepository struct {
	mu sync.Mutex

	types     map[uint]domain.TicketType
	rules     map[uint]domain.TicketUsageRule
	tickets   map[uint]domain.Ticket
	campaigns map[uint]domain.TicketCampaign
	bindings  map[uint]domain.TicketCampaignTicketType

	nextTypeID     uint
	nextRuleID     uint
	nextTicketID   uint
	nextCampaignID uint
	nextBindingID  uint
}

func NewTicketRepository() *TicketRepository {
	return &TicketRepository{
		types:          make(map[uint]domain.TicketType),
		rules:          make(map[uint]domain.TicketUsageRule),
		tickets:        make(map[uint]domain.Ticket),
		campaigns:      make(map[uint]domain.TicketCampaign),
		bindings:       make(map[uint]domain.TicketCampaignTicketType),
		nextTypeID:     1,
		nextRuleID:     1,
		nextTicketID:   1,
		nextCampaignID: 1,
		nextBindingID:  1,
	}
}

// Ticket types.

func (r *TicketRepository) ListTypes(ctx context.Context) ([]domain.TicketType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.TicketType, 0, len(r.types))
	for _, ticketType := range r.types {
		result = append(result, ticketType)
	}

	return result, nil
}

func (r *TicketRepository) GetType(ctx context.Context, id uint) (domain.TicketType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ticketType, ok := r.types[id]
	if !ok {
		return domain.TicketType{}, repository.ErrTicketTypeNotFound
	}

	return ticketType, nil
}

func (r *TicketRepository) TypeNameExists(ctx context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ticketType := range r.types {
		if ticketType.Name == name {
			return true, nil
		}
	}

	return false, nil
}

func (r *TicketRepository) CreateType(ctx context.Context, ticketType domain.TicketType) (domain.TicketType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ticketType.ID = r.nextTypeID
	r.nextTypeID++
	ticketType.CreatedAt = time.Now()
	ticketType.UpdatedAt = ticketType.CreatedAt
	r.types[ticketType.ID] = ticketType

	return ticketType, nil
}

func (r *TicketRepository) UpdateType(ctx context.Context, ticketType domain.TicketType) (domain.TicketType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.types[ticketType.ID]
	if !ok {
		return domain.TicketType{}, repository.ErrTicketTypeNotFound
	}

	existing.Name = ticketType.Name
	existing.UpdatedAt = time.Now()
	r.types[existing.ID] = existing

	return existing, nil
}

func (r *TicketRepository) DeleteType(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.types[id]; !ok {
		return repository.ErrTicketTypeNotFound
	}
	delete(r.types, id)

	return nil
}

// Usage rules.

func (r *TicketRepository) ListUsageRules(ctx context.Context) ([]domain.TicketUsageRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.TicketUsageRule, 0, len(r.rules))
	for _, rule := range r.rules {
		result = append(result, rule)
	}

	return result, nil
}

func (r *TicketRepository) GetUsageRule(ctx context.Context, id uint) (domain.TicketUsageRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rule, ok := r.rules[id]
	if !ok {
		return domain.TicketUsageRule{}, repository.ErrTicketUsageRuleNotFound
	}

	return rule, nil
}

func (r *TicketRepository) GetTaxReductionByTypeID(ctx context.Context, typeID uint) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// First matching rule wins, same as the SQL variant.
	var (
		found  bool
		lowest uint
		tax    float64
	)
	for id, rule := range r.rules {
		if rule.TicketTypeID != typeID {
			continue
		}
		if !found || id < lowest {
			found = true
			lowest = id
			tax = rule.TaxReduction
		}
	}

	return tax, nil
}

func (r *TicketRepository) CreateUsageRule(ctx context.Context, rule domain.TicketUsageRule) (domain.TicketUsageRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rule.ID = r.nextRuleID
	r.nextRuleID++
	rule.CreatedAt = time.Now()
	rule.UpdatedAt = rule.CreatedAt
	r.rules[rule.ID] = rule

	return rule, nil
}

func (r *TicketRepository) UpdateUsageRule(ctx context.Context, rule domain.TicketUsageRule) (domain.TicketUsageRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rules[rule.ID]
	if !ok {
		return domain.TicketUsageRule{}, repository.ErrTicketUsageRuleNotFound
	}

	existing.TicketTypeID = rule.TicketTypeID
	existing.CategoryID = rule.CategoryID
	existing.Allowance = rule.Allowance
	existing.TaxReduction = rule.TaxReduction
	existing.UpdatedAt = time.Now()
	r.rules[existing.ID] = existing

	return existing, nil
}

func (r *TicketRepository) DeleteUsageRule(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rules[id]; !ok {
		return repository.ErrTicketUsageRuleNotFound
	}
	delete(r.rules, id)

	return nil
}

// Tickets.

func (r *TicketRepository) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.Ticket, 0, len(r.tickets))
	for _, ticket := range r.tickets {
		result = append(result, ticket)
	}

	return result, nil
}

func (r *TicketRepository) GetTicket(ctx context.Context, id uint) (domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ticket, ok := r.tickets[id]
	if !ok {
		return domain.Ticket{}, repository.ErrTicketNotFound
	}

	return ticket, nil
}

func (r *TicketRepository) CreateTicket(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.insertTicketLocked(ticket), nil
}

func (r *TicketRepository) UpdateTicket(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.tickets[ticket.ID]
	if !ok {
		return domain.Ticket{}, repository.ErrTicketNotFound
	}

	existing.UserID = ticket.UserID
	existing.TicketTypeID = ticket.TicketTypeID
	existing.CampaignID = ticket.CampaignID
	existing.Amount = ticket.Amount
	existing.ExpiresAt = ticket.ExpiresAt
	existing.UpdatedAt = time.Now()
	r.tickets[existing.ID] = existing

	return existing, nil
}

func (r *TicketRepository) CollectTicket(ctx context.Context, id uint) (domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ticket, ok := r.tickets[id]
	if !ok {
		return domain.Ticket{}, repository.ErrTicketNotFound
	}

	ticket.UserID = nil
	ticket.UpdatedAt = time.Now()
	r.tickets[ticket.ID] = ticket

	return ticket, nil
}

func (r *TicketRepository) DeleteTicket(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tickets[id]; !ok {
		return repository.ErrTicketNotFound
	}
	delete(r.tickets, id)

	return nil
}

// ConsumeTicketUse burns one use off a ticket. The booking repository calls
// it so that the used counter and the booking move together.
func (r *TicketRepository) ConsumeTicketUse(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ticket, ok := r.tickets[id]
	if !ok {
		return repository.ErrTicketNotFound
	}
	if ticket.Used >= ticket.Amount {
		return repository.ErrTicketFullyUsed
	}

	ticket.Used++
	ticket.UpdatedAt = time.Now()
	r.tickets[ticket.ID] = ticket

	return nil
}

// Campaigns.

func (r *TicketRepository) ListCampaigns(ctx context.Context) ([]domain.TicketCampaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.TicketCampaign, 0, len(r.campaigns))
	for _, campaign := range r.campaigns {
		result = append(result, campaign)
	}

	return result, nil
}

func (r *TicketRepository) GetCampaign(ctx context.Context, id uint) (domain.TicketCampaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	campaign, ok := r.campaigns[id]
	if !ok {
		return domain.TicketCampaign{}, repository.ErrCampaignNotFound
	}

	return campaign, nil
}

func (r *TicketRepository) CampaignNameExists(ctx context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, campaign := range r.campaigns {
		if campaign.Name == name {
			return true, nil
		}
	}

	return false, nil
}

func (r *TicketRepository) CreateCampaign(ctx context.Context, campaign domain.TicketCampaign) (domain.TicketCampaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	campaign.ID = r.nextCampaignID
	r.nextCampaignID++
	campaign.CreatedAt = time.Now()
	campaign.UpdatedAt = campaign.CreatedAt
	r.campaigns[campaign.ID] = campaign

	return campaign, nil
}

func (r *TicketRepository) UpdateCampaign(ctx context.Context, campaign domain.TicketCampaign) (domain.TicketCampaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.campaigns[campaign.ID]
	if !ok {
		return domain.TicketCampaign{}, repository.ErrCampaignNotFound
	}

	existing.Name = campaign.Name
	existing.Limit = campaign.Limit
	existing.StartDate = campaign.StartDate
	existing.EndDate = campaign.EndDate
	existing.UpdatedAt = time.Now()
	r.campaigns[existing.ID] = existing

	return existing, nil
}

func (r *TicketRepository) DeleteCampaign(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.campaigns[id]; !ok {
		return repository.ErrCampaignNotFound
	}
	delete(r.campaigns, id)

	return nil
}

// RegisterCampaign runs the whole slot-check / increment / issuance sequence
// under one lock, mirroring the row lock the postgres variant takes.
func (r *TicketRepository) RegisterCampaign(ctx context.Context, campaignID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	campaign, ok := r.campaigns[campaignID]
	if !ok {
		return repository.ErrCampaignNotFound
	}
	if campaign.Limit != nil && campaign.Registered >= *campaign.Limit {
		return repository.ErrCampaignLimitExceeded
	}

	campaign.Registered++
	campaign.UpdatedAt = time.Now()
	r.campaigns[campaign.ID] = campaign

	for _, binding := range r.bindings {
		if binding.CampaignID != campaignID {
			continue
		}
		r.insertTicketLocked(domain.Ticket{
			TicketTypeID: binding.TicketTypeID,
			CampaignID:   &campaign.ID,
			Amount:       binding.Amount,
			ExpiresAt:    binding.ExpirationDate,
		})
	}

	return nil
}

func (r *TicketRepository) ToggleCampaignActive(ctx context.Context, campaignID uint) (domain.TicketCampaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	campaign, ok := r.campaigns[campaignID]
	if !ok {
		return domain.TicketCampaign{}, repository.ErrCampaignNotFound
	}

	campaign.IsActive = !campaign.IsActive
	campaign.UpdatedAt = time.Now()
	r.campaigns[campaign.ID] = campaign

	return campaign, nil
}

// Campaign ticket-type bindings.

func (r *TicketRepository) ListCampaignTicketTypes(ctx context.Context) ([]domain.TicketCampaignTicketType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.TicketCampaignTicketType, 0, len(r.bindings))
	for _, binding := range r.bindings {
		result = append(result, binding)
	}

	return result, nil
}

func (r *TicketRepository) GetCampaignTicketType(ctx context.Context, id uint) (domain.TicketCampaignTicketType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	binding, ok := r.bindings[id]
	if !ok {
		return domain.TicketCampaignTicketType{}, repository.ErrCampaignTicketTypeNotFound
	}

	return binding, nil
}

func (r *TicketRepository) CreateCampaignTicketType(ctx context.Context, binding domain.TicketCampaignTicketType) (domain.TicketCampaignTicketType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	binding.ID = r.nextBindingID
	r.nextBindingID++
	binding.CreatedAt = time.Now()
	binding.UpdatedAt = binding.CreatedAt
	r.bindings[binding.ID] = binding

	return binding, nil
}

func (r *TicketRepository) UpdateCampaignTicketType(ctx context.Context, binding domain.TicketCampaignTicketType) (domain.TicketCampaignTicketType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.bindings[binding.ID]
	if !ok {
		return domain.TicketCampaignTicketType{}, repository.ErrCampaignTicketTypeNotFound
	}

	existing.CampaignID = binding.CampaignID
	existing.TicketTypeID = binding.TicketTypeID
	existing.Amount = binding.Amount
	existing.ExpirationDate = binding.ExpirationDate
	existing.UpdatedAt = time.Now()
	r.bindings[existing.ID] = existing

	return existing, nil
}

func (r *TicketRepository) DeleteCampaignTicketType(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bindings[id]; !ok {
		return repository.ErrCampaignTicketTypeNotFound
	}
	delete(r.bindings, id)

	return nil
}

// insertTicketLocked assumes r.mu is held.
func (r *TicketRepository) insertTicketLocked(ticket domain.Ticket) domain.Ticket {
	ticket.ID = r.nextTicketID
	r.nextTicketID++
	ticket.CreatedAt = time.Now()
	ticket.UpdatedAt = ticket.CreatedAt
	r.tickets[ticket.ID] = ticket

	return ticket
}
