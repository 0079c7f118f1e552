package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/travelothai/travelothai-api/internal/domain"
	"github.com/travelothai/travelothai-api/internal/repository"
)

var (
	ErrTicketTypeNotFound         = repository.ErrTicketTypeNotFound
	ErrTicketUsageRuleNotFound    = repository.ErrTicketUsageRuleNotFound
	ErrTicketNotFound             = repository.ErrTicketNotFound
	ErrCampaignNotFound           = repository.ErrCampaignNotFound
	ErrCampaignTicketTypeNotFound = repository.ErrCampaignTicketTypeNotFound
	ErrCampaignLimitExceeded      = repository.ErrCampaignLimitExceeded
	ErrTicketTypeNameTaken        = errors.New("ticket type name already exists")
	ErrCampaignNameTaken          = errors.New("ticket campaign name already exists")
)

type TicketRepository interface {
	ListTypes(ctx context.Context) ([]domain.TicketType, error)
	GetType(ctx context.Context, id uint) (domain.TicketType, error)
	TypeNameExists(ctx context.Context, name string) (bool, error)
	CreateType(ctx context.Context, ticketType domain.TicketType) (domain.TicketType, error)
	UpdateType(ctx context.Context, ticketType domain.TicketType) (domain.TicketType, error)
	DeleteType(ctx context.Context, id uint) error
	ListUsageRules(ctx context.Context) ([]domain.TicketUsageRule, error)
	GetUsageRule(ctx context.Context, id uint) (domain.TicketUsageRule, error)
	GetTaxReductionByTypeID(ctx context.Context, typeID uint) (float64, error)
	CreateUsageRule(ctx context.Context, rule domain.TicketUsageRule) (domain.TicketUsageRule, error)
	UpdateUsageRule(ctx context.Context, rule domain.TicketUsageRule) (domain.TicketUsageRule, error)
	DeleteUsageRule(ctx context.Context, id uint) error
	ListTickets(ctx context.Context) ([]domain.Ticket, error)
	GetTicket(ctx context.Context, id uint) (domain.Ticket, error)
	CreateTicket(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error)
	UpdateTicket(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error)
	CollectTicket(ctx context.Context, id uint) (domain.Ticket, error)
	DeleteTicket(ctx context.Context, id uint) error
	ListCampaigns(ctx context.Context) ([]domain.TicketCampaign, error)
	GetCampaign(ctx context.Context, id uint) (domain.TicketCampaign, error)
	CampaignNameExists(ctx context.Context, name string) (bool, error)
	CreateCampaign(ctx context.Context, campaign domain.TicketCampaign) (domain.TicketCampaign, error)
	UpdateCampaign(ctx context.Context, campaign domain.TicketCampaign) (domain.TicketCampaign, error)
	DeleteCampaign(ctx context.Context, id uint) error
	RegisterCampaign(ctx context.Context, campaignID uint) error
	ToggleCampaignActive(ctx context.Context, campaignID uint) (domain.TicketCampaign, error)
	ListCampaignTicketTypes(ctx context.Context) ([]domain.TicketCampaignTicketType, error)
	GetCampaignTicketType(ctx context.Context, id uint) (domain.TicketCampaignTicketType, error)
	CreateCampaignTicketType(ctx context.Context, binding domain.TicketCampaignTicketType) (domain.TicketCampaignTicketType, error)
	UpdateCampaignTicketType(ctx context.Context, binding domain.TicketCampaignTicketType) (domain.TicketCampaignTicketType, error)
	DeleteCampaignTicketType(ctx context.Context, id uint) error
}

type TicketService struct {
	repo         TicketRepository
	provinceRepo ProvinceRepository
}

func NewTicketService(repo TicketRepository, provinceRepo ProvinceRepository) *TicketService {
	return &TicketService{
		repo:         repo,
		provinceRepo: provinceRepo,
	}
}

// Ticket types.

func (s *TicketService) ListTicketTypes(ctx context.Context) ([]domain.TicketType, error) {
	types, err := s.repo.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListTypes -> %w", err)
	}

	return types, nil
}

func (s *TicketService) GetTicketType(ctx context.Context, id uint) (domain.TicketType, error) {
	ticketType, err := s.repo.GetType(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTicketTypeNotFound) {
			return domain.TicketType{}, ErrTicketTypeNotFound
		}

		return domain.TicketType{}, fmt.Errorf("s.repo.GetType -> %w", err)
	}

	return ticketType, nil
}

func (s *TicketService) CreateTicketType(ctx context.Context, ticketType domain.TicketType) (domain.TicketType, error) {
	taken, err := s.repo.TypeNameExists(ctx, ticketType.Name)
	if err != nil {
		return domain.TicketType{}, fmt.Errorf("s.repo.TypeNameExists -> %w", err)
	}
	if taken {
		return domain.TicketType{}, ErrTicketTypeNameTaken
	}

	created, err := s.repo.CreateType(ctx, ticketType)
	if err != nil {
		return domain.TicketType{}, fmt.Errorf("s.repo.CreateType -> %w", err)
	}

	return created, nil
}

func (s *TicketService) UpdateTicketType(ctx context.Context, ticketType domain.TicketType) (domain.TicketType, error) {
	// The uniqueness check matches every row, the one being updated included,
	// so re-submitting the current name is rejected as well.
	taken, err := s.repo.TypeNameExists(ctx, ticketType.Name)
	if err != nil {
		return domain.TicketType{}, fmt.Errorf("s.repo.TypeNameExists -> %w", err)
	}
	if taken {
		return domain.TicketType{}, ErrTicketTypeNameTaken
	}

	updated, err := s.repo.UpdateType(ctx, ticketType)
	if err != nil {
		if errors.Is(err, ErrTicketTypeNotFound) {
			return domain.TicketType{}, ErrTicketTypeNotFound
		}

		return domain.TicketType{}, fmt.Errorf("s.repo.UpdateType -> %w", err)
	}

	return updated, nil
}

func (s *TicketService) DeleteTicketType(ctx context.Context, id uint) error {
	if err := s.repo.DeleteType(ctx, id); err != nil {
		if errors.Is(err, ErrTicketTypeNotFound) {
			return ErrTicketTypeNotFound
		}

		return fmt.Errorf("s.repo.DeleteType -> %w", err)
	}

	return nil
}

// Usage rules.

func (s *TicketService) ListUsageRules(ctx context.Context) ([]domain.TicketUsageRule, error) {
	rules, err := s.repo.ListUsageRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListUsageRules -> %w", err)
	}

	return rules, nil
}

func (s *TicketService) GetUsageRule(ctx context.Context, id uint) (domain.TicketUsageRule, error) {
	rule, err := s.repo.GetUsageRule(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTicketUsageRuleNotFound) {
			return domain.TicketUsageRule{}, ErrTicketUsageRuleNotFound
		}

		return domain.TicketUsageRule{}, fmt.Errorf("s.repo.GetUsageRule -> %w", err)
	}

	return rule, nil
}

func (s *TicketService) CreateUsageRule(ctx context.Context, rule domain.TicketUsageRule) (domain.TicketUsageRule, error) {
	if err := s.checkUsageRuleTargets(ctx, rule); err != nil {
		return domain.TicketUsageRule{}, err
	}

	created, err := s.repo.CreateUsageRule(ctx, rule)
	if err != nil {
		return domain.TicketUsageRule{}, fmt.Errorf("s.repo.CreateUsageRule -> %w", err)
	}

	return created, nil
}

func (s *TicketService) UpdateUsageRule(ctx context.Context, rule domain.TicketUsageRule) (domain.TicketUsageRule, error) {
	if err := s.checkUsageRuleTargets(ctx, rule); err != nil {
		return domain.TicketUsageRule{}, err
	}

	updated, err := s.repo.UpdateUsageRule(ctx, rule)
	if err != nil {
		if errors.Is(err, ErrTicketUsageRuleNotFound) {
			return domain.TicketUsageRule{}, ErrTicketUsageRuleNotFound
		}

		return domain.TicketUsageRule{}, fmt.Errorf("s.repo.UpdateUsageRule -> %w", err)
	}

	return updated, nil
}

func (s *TicketService) DeleteUsageRule(ctx context.Context, id uint) error {
	if err := s.repo.DeleteUsageRule(ctx, id); err != nil {
		if errors.Is(err, ErrTicketUsageRuleNotFound) {
			return ErrTicketUsageRuleNotFound
		}

		return fmt.Errorf("s.repo.DeleteUsageRule -> %w", err)
	}

	return nil
}

func (s *TicketService) checkUsageRuleTargets(ctx context.Context, rule domain.TicketUsageRule) error {
	if _, err := s.repo.GetType(ctx, rule.TicketTypeID); err != nil {
		if errors.Is(err, ErrTicketTypeNotFound) {
			return ErrTicketTypeNotFound
		}

		return fmt.Errorf("s.repo.GetType -> %w", err)
	}

	if _, err := s.provinceRepo.GetCategory(ctx, rule.CategoryID); err != nil {
		if errors.Is(err, ErrProvinceCategoryNotFound) {
			return ErrProvinceCategoryNotFound
		}

		return fmt.Errorf("s.provinceRepo.GetCategory -> %w", err)
	}

	return nil
}

// Tickets.

func (s *TicketService) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := s.repo.ListTickets(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListTickets -> %w", err)
	}

	return tickets, nil
}

func (s *TicketService) GetTicket(ctx context.Context, id uint) (domain.Ticket, error) {
	ticket, err := s.repo.GetTicket(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTicketNotFound) {
			return domain.Ticket{}, ErrTicketNotFound
		}

		return domain.Ticket{}, fmt.Errorf("s.repo.GetTicket -> %w", err)
	}

	return ticket, nil
}

func (s *TicketService) CreateTicket(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	if _, err := s.repo.GetType(ctx, ticket.TicketTypeID); err != nil {
		if errors.Is(err, ErrTicketTypeNotFound) {
			return domain.Ticket{}, ErrTicketTypeNotFound
		}

		return domain.Ticket{}, fmt.Errorf("s.repo.GetType -> %w", err)
	}

	created, err := s.repo.CreateTicket(ctx, ticket)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.repo.CreateTicket -> %w", err)
	}

	return created, nil
}

func (s *TicketService) UpdateTicket(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	if _, err := s.repo.GetType(ctx, ticket.TicketTypeID); err != nil {
		if errors.Is(err, ErrTicketTypeNotFound) {
			return domain.Ticket{}, ErrTicketTypeNotFound
		}

		return domain.Ticket{}, fmt.Errorf("s.repo.GetType -> %w", err)
	}

	updated, err := s.repo.UpdateTicket(ctx, ticket)
	if err != nil {
		if errors.Is(err, ErrTicketNotFound) {
			return domain.Ticket{}, ErrTicketNotFound
		}

		return domain.Ticket{}, fmt.Errorf("s.repo.UpdateTicket -> %w", err)
	}

	return updated, nil
}

// CollectTicket releases a ticket back to the unassigned pool by clearing
// its traveler. Collecting an already-unassigned ticket is a no-op.
func (s *TicketService) CollectTicket(ctx context.Context, id uint) (domain.Ticket, error) {
	collected, err := s.repo.CollectTicket(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTicketNotFound) {
			return domain.Ticket{}, ErrTicketNotFound
		}

		return domain.Ticket{}, fmt.Errorf("s.repo.CollectTicket -> %w", err)
	}

	return collected, nil
}

func (s *TicketService) DeleteTicket(ctx context.Context, id uint) error {
	if err := s.repo.DeleteTicket(ctx, id); err != nil {
		if errors.Is(err, ErrTicketNotFound) {
			return ErrTicketNotFound
		}

		return fmt.Errorf("s.repo.DeleteTicket -> %w", err)
	}

	return nil
}

// Campaigns.

func (s *TicketService) ListCampaigns(ctx context.Context) ([]domain.TicketCampaign, error) {
	campaigns, err := s.repo.ListCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListCampaigns -> %w", err)
	}

	return campaigns, nil
}

func (s *TicketService) GetCampaign(ctx context.Context, id uint) (domain.TicketCampaign, error) {
	campaign, err := s.repo.GetCampaign(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCampaignNotFound) {
			return domain.TicketCampaign{}, ErrCampaignNotFound
		}

		return domain.TicketCampaign{}, fmt.Errorf("s.repo.GetCampaign -> %w", err)
	}

	return campaign, nil
}

func (s *TicketService) CreateCampaign(ctx context.Context, campaign domain.TicketCampaign) (domain.TicketCampaign, error) {
	taken, err := s.repo.CampaignNameExists(ctx, campaign.Name)
	if err != nil {
		return domain.TicketCampaign{}, fmt.Errorf("s.repo.CampaignNameExists -> %w", err)
	}
	if taken {
		return domain.TicketCampaign{}, ErrCampaignNameTaken
	}

	created, err := s.repo.CreateCampaign(ctx, campaign)
	if err != nil {
		return domain.TicketCampaign{}, fmt.Errorf("s.repo.CreateCampaign -> %w", err)
	}

	return created, nil
}

func (s *TicketService) UpdateCampaign(ctx context.Context, campaign domain.TicketCampaign) (domain.TicketCampaign, error) {
	// Same self-matching uniqueness check as ticket types.
	taken, err := s.repo.CampaignNameExists(ctx, campaign.Name)
	if err != nil {
		return domain.TicketCampaign{}, fmt.Errorf("s.repo.CampaignNameExists -> %w", err)
	}
	if taken {
		return domain.TicketCampaign{}, ErrCampaignNameTaken
	}

	updated, err := s.repo.UpdateCampaign(ctx, campaign)
	if err != nil {
		if errors.Is(err, ErrCampaignNotFound) {
			return domain.TicketCampaign{}, ErrCampaignNotFound
		}

		return domain.TicketCampaign{}, fmt.Errorf("s.repo.UpdateCampaign -> %w", err)
	}

	return updated, nil
}

func (s *TicketService) DeleteCampaign(ctx context.Context, id uint) error {
	if err := s.repo.DeleteCampaign(ctx, id); err != nil {
		if errors.Is(err, ErrCampaignNotFound) {
			return ErrCampaignNotFound
		}

		return fmt.Errorf("s.repo.DeleteCampaign -> %w", err)
	}

	return nil
}

// RegisterCampaign consumes one registration slot and issues one unassigned
// ticket per ticket type bound to the campaign. The slot check, the counter
// increment and the ticket issuance commit or roll back as one unit.
func (s *TicketService) RegisterCampaign(ctx context.Context, campaignID uint) error {
	if err := s.repo.RegisterCampaign(ctx, campaignID); err != nil {
		if errors.Is(err, ErrCampaignNotFound) {
			return ErrCampaignNotFound
		}
		if errors.Is(err, ErrCampaignLimitExceeded) {
			return ErrCampaignLimitExceeded
		}

		return fmt.Errorf("s.repo.RegisterCampaign -> %w", err)
	}

	return nil
}

func (s *TicketService) ToggleCampaignActive(ctx context.Context, campaignID uint) (domain.TicketCampaign, error) {
	toggled, err := s.repo.ToggleCampaignActive(ctx, campaignID)
	if err != nil {
		if errors.Is(err, ErrCampaignNotFound) {
			return domain.TicketCampaign{}, ErrCampaignNotFound
		}

		return domain.TicketCampaign{}, fmt.Errorf("s.repo.ToggleCampaignActive -> %w", err)
	}

	return toggled, nil
}

// Campaign ticket-type bindings.

func (s *TicketService) ListCampaignTicketTypes(ctx context.Context) ([]domain.TicketCampaignTicketType, error) {
	bindings, err := s.repo.ListCampaignTicketTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListCampaignTicketTypes -> %w", err)
	}

	return bindings, nil
}

func (s *TicketService) GetCampaignTicketType(ctx context.Context, id uint) (domain.TicketCampaignTicketType, error) {
	binding, err := s.repo.GetCampaignTicketType(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCampaignTicketTypeNotFound) {
			return domain.TicketCampaignTicketType{}, ErrCampaignTicketTypeNotFound
		}

		return domain.TicketCampaignTicketType{}, fmt.Errorf("s.repo.GetCampaignTicketType -> %w", err)
	}

	return binding, nil
}

func (s *TicketService) CreateCampaignTicketType(ctx context.Context, binding domain.TicketCampaignTicketType) (domain.TicketCampaignTicketType, error) {
	if err := s.checkBindingTargets(ctx, binding); err != nil {
		return domain.TicketCampaignTicketType{}, err
	}

	created, err := s.repo.CreateCampaignTicketType(ctx, binding)
	if err != nil {
		return domain.TicketCampaignTicketType{}, fmt.Errorf("s.repo.CreateCampaignTicketType -> %w", err)
	}

	return created, nil
}

func (s *TicketService) UpdateCampaignTicketType(ctx context.Context, binding domain.TicketCampaignTicketType) (domain.TicketCampaignTicketType, error) {
	if err := s.checkBindingTargets(ctx, binding); err != nil {
		return domain.TicketCampaignTicketType{}, err
	}

	updated, err := s.repo.UpdateCampaignTicketType(ctx, binding)
	if err != nil {
		if errors.Is(err, ErrCampaignTicketTypeNotFound) {
			return domain.TicketCampaignTicketType{}, ErrCampaignTicketTypeNotFound
		}

		return domain.TicketCampaignTicketType{}, fmt.Errorf("s.repo.UpdateCampaignTicketType -> %w", err)
	}

	return updated, nil
}

func (s *TicketService) DeleteCampaignTicketType(ctx context.Context, id uint) error {
	if err := s.repo.DeleteCampaignTicketType(ctx, id); err != nil {
		if errors.Is(err, ErrCampaignTicketTypeNotFound) {
			return ErrCampaignTicketTypeNotFound
		}

		return fmt.Errorf("s.repo.DeleteCampaignTicketType -> %w", err)
	}

	return nil
}

func (s *TicketService) checkBindingTargets(ctx context.Context, binding domain.TicketCampaignTicketType) error {
	if _, err := s.repo.GetCampaign(ctx, binding.CampaignID); err != nil {
		if errors.Is(err, ErrCampaignNotFound) {
			return ErrCampaignNotFound
		}

		return fmt.Errorf("s.repo.GetCampaign -> %w", err)
	}

	if _, err := s.repo.GetType(ctx, binding.TicketTypeID); err != nil {
		if errors.Is(err, ErrTicketTypeNotFound) {
			return ErrTicketTypeNotFound
		}

		return fmt.Errorf("s.repo.GetType -> %w", err)
	}

	return nil
}
