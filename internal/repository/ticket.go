package repository

import (
	"context"
	"fmt"

	"github.com/travelothai/travelothai-api/internal/domain"
	"github.com/travelothai/travelothai-api/internal/repository/dao"
)

var (
	ErrTicketTypeNotFound         = dao.ErrTicketTypeNotFound
	ErrTicketUsageRuleNotFound    = dao.ErrTicketUsageRuleNotFound
	ErrTicketNotFound             = dao.ErrTicketNotFound
	ErrCampaignNotFound           = dao.ErrCampaignNotFound
	ErrCampaignTicketTypeNotFound = dao.ErrCampaignTicketTypeNotFound
	ErrCampaignLimitExceeded      = dao.ErrCampaignLimitExceeded
)

type TicketDAO interface {
	ListTypes(ctx context.Context) ([]dao.TicketType, error)
	FindTypeByID(ctx context.Context, id uint) (dao.TicketType, error)
	TypeNameExists(ctx context.Context, name string) (bool, error)
	InsertType(ctx context.Context, ticketType dao.TicketType) (dao.TicketType, error)
	UpdateType(ctx context.Context, ticketType dao.TicketType) (dao.TicketType, error)
	DeleteType(ctx context.Context, id uint) error
	ListUsageRules(ctx context.Context) ([]dao.TicketUsageRule, error)
	FindUsageRuleByID(ctx context.Context, id uint) (dao.TicketUsageRule, error)
	FindTaxReductionByTypeID(ctx context.Context, typeID uint) (float64, error)
	InsertUsageRule(ctx context.Context, rule dao.TicketUsageRule) (dao.TicketUsageRule, error)
	UpdateUsageRule(ctx context.Context, rule dao.TicketUsageRule) (dao.TicketUsageRule, error)
	DeleteUsageRule(ctx context.Context, id uint) error
	ListTickets(ctx context.Context) ([]dao.Ticket, error)
	FindTicketByID(ctx context.Context, id uint) (dao.Ticket, error)
	InsertTicket(ctx context.Context, ticket dao.Ticket) (dao.Ticket, error)
	UpdateTicket(ctx context.Context, ticket dao.Ticket) (dao.Ticket, error)
	ClearTicketUser(ctx context.Context, id uint) (dao.Ticket, error)
	DeleteTicket(ctx context.Context, id uint) error
	ListCampaigns(ctx context.Context) ([]dao.TicketCampaign, error)
	FindCampaignByID(ctx context.Context, id uint) (dao.TicketCampaign, error)
	CampaignNameExists(ctx context.Context, name string) (bool, error)
	InsertCampaign(ctx context.Context, campaign dao.TicketCampaign) (dao.TicketCampaign, error)
	UpdateCampaign(ctx context.Context, campaign dao.TicketCampaign) (dao.TicketCampaign, error)
	DeleteCampaign(ctx context.Context, id uint) error
	RegisterCampaign(ctx context.Context, campaignID uint) error
	ToggleCampaignActive(ctx context.Context, campaignID uint) (dao.TicketCampaign, error)
	ListCampaignTicketTypes(ctx context.Context) ([]dao.TicketCampaignTicketType, error)
	FindCampaignTicketTypeByID(ctx context.Context, id uint) (dao.TicketCampaignTicketType, error)
	InsertCampaignTicketType(ctx context.Context, binding dao.TicketCampaignTicketType) (dao.TicketCampaignTicketType, error)
	UpdateCampaignTicketType(ctx context.Context, binding dao.TicketCampaignTicketType) (dao.TicketCampaignTicketType, error)
	DeleteCampaignTicketType(ctx context.Context, id uint) error
}

type TicketRepository struct {
	dao TicketDAO
}

func NewTicketRepository(dao TicketDAO) *TicketRepository {
	return &TicketRepository{
		dao: dao,
	}
}

// Ticket types.

func (r *TicketRepository) ListTypes(ctx context.Context) ([]domain.TicketType, error) {
	types, err := r.dao.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListTypes -> %w", err)
	}

	result := make([]domain.TicketType, len(types))
	for i, ticketType := range types {
		result[i] = r.typeDaoToDomain(ticketType)
	}

	return result, nil
}

func (r *TicketRepository) GetType(ctx context.Context, id uint) (domain.TicketType, error) {
	ticketType, err := r.dao.FindTypeByID(ctx, id)
	if err != nil {
		return domain.TicketType{}, fmt.Errorf("r.dao.FindTypeByID -> %w", err)
	}

	return r.typeDaoToDomain(ticketType), nil
}

func (r *TicketRepository) TypeNameExists(ctx context.Context, name string) (bool, error) {
	exists, err := r.dao.TypeNameExists(ctx, name)
	if err != nil {
		return false, fmt.Errorf("r.dao.TypeNameExists -> %w", err)
	}

	return exists, nil
}

func (r *TicketRepository) CreateType(ctx context.Context, ticketType domain.TicketType) (domain.TicketType, error) {
	created, err := r.dao.InsertType(ctx, r.typeDomainToDao(ticketType))
	if err != nil {
		return domain.TicketType{}, fmt.Errorf("r.dao.InsertType -> %w", err)
	}

	return r.typeDaoToDomain(created), nil
}

func (r *TicketRepository) UpdateType(ctx context.Context, ticketType domain.TicketType) (domain.TicketType, error) {
	updated, err := r.dao.UpdateType(ctx, r.typeDomainToDao(ticketType))
	if err != nil {
		return domain.TicketType{}, fmt.Errorf("r.dao.UpdateType -> %w", err)
	}

	return r.typeDaoToDomain(updated), nil
}

func (r *TicketRepository) DeleteType(ctx context.Context, id uint) error {
	if err := r.dao.DeleteType(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteType -> %w", err)
	}

	return nil
}

// Usage rules.

func (r *TicketRepository) ListUsageRules(ctx context.Context) ([]domain.TicketUsageRule, error) {
	rules, err := r.dao.ListUsageRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListUsageRules -> %w", err)
	}

	result := make([]domain.TicketUsageRule, len(rules))
	for i, rule := range rules {
		result[i] = r.ruleDaoToDomain(rule)
	}

	return result, nil
}

func (r *TicketRepository) GetUsageRule(ctx context.Context, id uint) (domain.TicketUsageRule, error) {
	rule, err := r.dao.FindUsageRuleByID(ctx, id)
	if err != nil {
		return domain.TicketUsageRule{}, fmt.Errorf("r.dao.FindUsageRuleByID -> %w", err)
	}

	return r.ruleDaoToDomain(rule), nil
}

func (r *TicketRepository) GetTaxReductionByTypeID(ctx context.Context, typeID uint) (float64, error) {
	taxReduction, err := r.dao.FindTaxReductionByTypeID(ctx, typeID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.FindTaxReductionByTypeID -> %w", err)
	}

	return taxReduction, nil
}

func (r *TicketRepository) CreateUsageRule(ctx context.Context, rule domain.TicketUsageRule) (domain.TicketUsageRule, error) {
	created, err := r.dao.InsertUsageRule(ctx, r.ruleDomainToDao(rule))
	if err != nil {
		return domain.TicketUsageRule{}, fmt.Errorf("r.dao.InsertUsageRule -> %w", err)
	}

	return r.ruleDaoToDomain(created), nil
}

func (r *TicketRepository) UpdateUsageRule(ctx context.Context, rule domain.TicketUsageRule) (domain.TicketUsageRule, error) {
	updated, err := r.dao.UpdateUsageRule(ctx, r.ruleDomainToDao(rule))
	if err != nil {
		return domain.TicketUsageRule{}, fmt.Errorf("r.dao.UpdateUsageRule -> %w", err)
	}

	return r.ruleDaoToDomain(updated), nil
}

func (r *TicketRepository) DeleteUsageRule(ctx context.Context, id uint) error {
	if err := r.dao.DeleteUsageRule(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteUsageRule -> %w", err)
	}

	return nil
}

// Tickets.

func (r *TicketRepository) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := r.dao.ListTickets(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListTickets -> %w", err)
	}

	result := make([]domain.Ticket, len(tickets))
	for i, ticket := range tickets {
		result[i] = r.ticketDaoToDomain(ticket)
	}

	return result, nil
}

func (r *TicketRepository) GetTicket(ctx context.Context, id uint) (domain.Ticket, error) {
	ticket, err := r.dao.FindTicketByID(ctx, id)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("r.dao.FindTicketByID -> %w", err)
	}

	return r.ticketDaoToDomain(ticket), nil
}

func (r *TicketRepository) CreateTicket(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	created, err := r.dao.InsertTicket(ctx, r.ticketDomainToDao(ticket))
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("r.dao.InsertTicket -> %w", err)
	}

	return r.ticketDaoToDomain(created), nil
}

func (r *TicketRepository) UpdateTicket(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	updated, err := r.dao.UpdateTicket(ctx, r.ticketDomainToDao(ticket))
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("r.dao.UpdateTicket -> %w", err)
	}

	return r.ticketDaoToDomain(updated), nil
}

func (r *TicketRepository) CollectTicket(ctx context.Context, id uint) (domain.Ticket, error) {
	collected, err := r.dao.ClearTicketUser(ctx, id)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("r.dao.ClearTicketUser -> %w", err)
	}

	return r.ticketDaoToDomain(collected), nil
}

func (r *TicketRepository) DeleteTicket(ctx context.Context, id uint) error {
	if err := r.dao.DeleteTicket(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteTicket -> %w", err)
	}

	return nil
}

// Campaigns.

func (r *TicketRepository) ListCampaigns(ctx context.Context) ([]domain.TicketCampaign, error) {
	campaigns, err := r.dao.ListCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListCampaigns -> %w", err)
	}

	result := make([]domain.TicketCampaign, len(campaigns))
	for i, campaign := range campaigns {
		result[i] = r.campaignDaoToDomain(campaign)
	}

	return result, nil
}

func (r *TicketRepository) GetCampaign(ctx context.Context, id uint) (domain.TicketCampaign, error) {
	campaign, err := r.dao.FindCampaignByID(ctx, id)
	if err != nil {
		return domain.TicketCampaign{}, fmt.Errorf("r.dao.FindCampaignByID -> %w", err)
	}

	return r.campaignDaoToDomain(campaign), nil
}

func (r *TicketRepository) CampaignNameExists(ctx context.Context, name string) (bool, error) {
	exists, err := r.dao.CampaignNameExists(ctx, name)
	if err != nil {
		return false, fmt.Errorf("r.dao.CampaignNameExists -> %w", err)
	}

	return exists, nil
}

func (r *TicketRepository) CreateCampaign(ctx context.Context, campaign domain.TicketCampaign) (domain.TicketCampaign, error) {
	created, err := r.dao.InsertCampaign(ctx, r.campaignDomainToDao(campaign))
	if err != nil {
		return domain.TicketCampaign{}, fmt.Errorf("r.dao.InsertCampaign -> %w", err)
	}

	return r.campaignDaoToDomain(created), nil
}

func (r *TicketRepository) UpdateCampaign(ctx context.Context, campaign domain.TicketCampaign) (domain.TicketCampaign, error) {
	updated, err := r.dao.UpdateCampaign(ctx, r.campaignDomainToDao(campaign))
	if err != nil {
		return domain.TicketCampaign{}, fmt.Errorf("r.dao.UpdateCampaign -> %w", err)
	}

	return r.campaignDaoToDomain(updated), nil
}

func (r *TicketRepository) DeleteCampaign(ctx context.Context, id uint) error {
	if err := r.dao.DeleteCampaign(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteCampaign -> %w", err)
	}

	return nil
}

func (r *TicketRepository) RegisterCampaign(ctx context.Context, campaignID uint) error {
	if err := r.dao.RegisterCampaign(ctx, campaignID); err != nil {
		return fmt.Errorf("r.dao.RegisterCampaign -> %w", err)
	}

	return nil
}

func (r *TicketRepository) ToggleCampaignActive(ctx context.Context, campaignID uint) (domain.TicketCampaign, error) {
	toggled, err := r.dao.ToggleCampaignActive(ctx, campaignID)
	if err != nil {
		return domain.TicketCampaign{}, fmt.Errorf("r.dao.ToggleCampaignActive -> %w", err)
	}

	return r.campaignDaoToDomain(toggled), nil
}

// Campaign ticket-type bindings.

func (r *TicketRepository) ListCampaignTicketTypes(ctx context.Context) ([]domain.TicketCampaignTicketType, error) {
	bindings, err := r.dao.ListCampaignTicketTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListCampaignTicketTypes -> %w", err)
	}

	result := make([]domain.TicketCampaignTicketType, len(bindings))
	for i, binding := range bindings {
		result[i] = r.bindingDaoToDomain(binding)
	}

	return result, nil
}

func (r *TicketRepository) GetCampaignTicketType(ctx context.Context, id uint) (domain.TicketCampaignTicketType, error) {
	binding, err := r.dao.FindCampaignTicketTypeByID(ctx, id)
	if err != nil {
		return domain.TicketCampaignTicketType{}, fmt.Errorf("r.dao.FindCampaignTicketTypeByID -> %w", err)
	}

	return r.bindingDaoToDomain(binding), nil
}

func (r *TicketRepository) CreateCampaignTicketType(ctx context.Context, binding domain.TicketCampaignTicketType) (domain.TicketCampaignTicketType, error) {
	created, err := r.dao.InsertCampaignTicketType(ctx, r.bindingDomainToDao(binding))
	if err != nil {
		return domain.TicketCampaignTicketType{}, fmt.Errorf("r.dao.InsertCampaignTicketType -> %w", err)
	}

	return r.bindingDaoToDomain(created), nil
}

func (r *TicketRepository) UpdateCampaignTicketType(ctx context.Context, binding domain.TicketCampaignTicketType) (domain.TicketCampaignTicketType, error) {
	updated, err := r.dao.UpdateCampaignTicketType(ctx, r.bindingDomainToDao(binding))
	if err != nil {
		return domain.TicketCampaignTicketType{}, fmt.Errorf("r.dao.UpdateCampaignTicketType -> %w", err)
	}

	return r.bindingDaoToDomain(updated), nil
}

func (r *TicketRepository) DeleteCampaignTicketType(ctx context.Context, id uint) error {
	if err := r.dao.DeleteCampaignTicketType(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteCampaignTicketType -> %w", err)
	}

	return nil
}

// Mapping helpers.

func (r *TicketRepository) typeDomainToDao(t domain.TicketType) dao.TicketType {
	return dao.TicketType{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (r *TicketRepository) typeDaoToDomain(t dao.TicketType) domain.TicketType {
	return domain.TicketType{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (r *TicketRepository) ruleDomainToDao(rule domain.TicketUsageRule) dao.TicketUsageRule {
	return dao.TicketUsageRule{
		ID:           rule.ID,
		TicketTypeID: rule.TicketTypeID,
		CategoryID:   rule.CategoryID,
		Allowance:    rule.Allowance,
		TaxReduction: rule.TaxReduction,
		CreatedAt:    rule.CreatedAt,
		UpdatedAt:    rule.UpdatedAt,
	}
}

func (r *TicketRepository) ruleDaoToDomain(rule dao.TicketUsageRule) domain.TicketUsageRule {
	return domain.TicketUsageRule{
		ID:           rule.ID,
		TicketTypeID: rule.TicketTypeID,
		CategoryID:   rule.CategoryID,
		Allowance:    rule.Allowance,
		TaxReduction: rule.TaxReduction,
		CreatedAt:    rule.CreatedAt,
		UpdatedAt:    rule.UpdatedAt,
	}
}

func (r *TicketRepository) ticketDomainToDao(t domain.Ticket) dao.Ticket {
	return dao.Ticket{
		ID:           t.ID,
		UserID:       t.UserID,
		TicketTypeID: t.TicketTypeID,
		CampaignID:   t.CampaignID,
		Amount:       t.Amount,
		Used:         t.Used,
		ExpiresAt:    t.ExpiresAt,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (r *TicketRepository) ticketDaoToDomain(t dao.Ticket) domain.Ticket {
	return domain.Ticket{
		ID:           t.ID,
		UserID:       t.UserID,
		TicketTypeID: t.TicketTypeID,
		CampaignID:   t.CampaignID,
		Amount:       t.Amount,
		Used:         t.Used,
		ExpiresAt:    t.ExpiresAt,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (r *TicketRepository) campaignDomainToDao(c domain.TicketCampaign) dao.TicketCampaign {
	return dao.TicketCampaign{
		ID:         c.ID,
		Name:       c.Name,
		Limit:      c.Limit,
		Registered: c.Registered,
		IsActive:   c.IsActive,
		StartDate:  c.StartDate,
		EndDate:    c.EndDate,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (r *TicketRepository) campaignDaoToDomain(c dao.TicketCampaign) domain.TicketCampaign {
	return domain.TicketCampaign{
		ID:         c.ID,
		Name:       c.Name,
		Limit:      c.Limit,
		Registered: c.Registered,
		IsActive:   c.IsActive,
		StartDate:  c.StartDate,
		EndDate:    c.EndDate,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (r *TicketRepository) bindingDomainToDao(b domain.TicketCampaignTicketType) dao.TicketCampaignTicketType {
	return dao.TicketCampaignTicketType{
		ID:             b.ID,
		CampaignID:     b.CampaignID,
		TicketTypeID:   b.TicketTypeID,
		Amount:         b.Amount,
		ExpirationDate: b.ExpirationDate,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (r *TicketRepository) bindingDaoToDomain(b dao.TicketCampaignTicketType) domain.TicketCampaignTicketType {
	return domain.TicketCampaignTicketType{
		ID:             b.ID,
		CampaignID:     b.CampaignID,
		TicketTypeID:   b.TicketTypeID,
		Amount:         b.Amount,
		ExpirationDate: b.ExpirationDate,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
