package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelothai/travelothai-api/internal/domain"
	"github.com/travelothai/travelothai-api/internal/repository/memory"
	"github.com/travelothai/travelothai-api/internal/service"
)

func newTicketService(t *testing.T) (*service.TicketService, *memory.TicketRepository) {
	t.Helper()

	repo := memory.NewTicketRepository()

	return service.NewTicketService(repo, memory.NewProvinceRepository()), repo
}

func createCampaign(t *testing.T, svc *service.TicketService, name string, limit *int) domain.TicketCampaign {
	t.Helper()

	campaign, err := svc.CreateCampaign(context.Background(), domain.TicketCampaign{
		Name:      name,
		Limit:     limit,
		IsActive:  true,
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(0, 1, 0),
	})
	require.NoError(t, err)

	return campaign
}

func intPtr(v int) *int {
	return &v
}

func TestRegisterCampaignNeverOverrunsLimit(t *testing.T) {
	svc, _ := newTicketService(t)
	ctx := context.Background()

	ticketType, err := svc.CreateTicketType(ctx, domain.TicketType{Name: "Hotel Voucher"})
	require.NoError(t, err)

	campaign := createCampaign(t, svc, "Flash Sale", intPtr(1))

	_, err = svc.CreateCampaignTicketType(ctx, domain.TicketCampaignTicketType{
		CampaignID:     campaign.ID,
		TicketTypeID:   ticketType.ID,
		Amount:         2,
		ExpirationDate: time.Now().AddDate(0, 3, 0),
	})
	require.NoError(t, err)

	const attempts = 10
	results := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- svc.RegisterCampaign(ctx, campaign.ID)
		}()
	}
	wg.Wait()
	close(results)

	var successes, limitHits int
	for err := range results {
		if err == nil {
			successes++
			continue
		}
		require.ErrorIs(t, err, service.ErrCampaignLimitExceeded)
		limitHits++
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, limitHits)

	after, err := svc.GetCampaign(ctx, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, after.Registered)

	tickets, err := svc.ListTickets(ctx)
	require.NoError(t, err)
	assert.Len(t, tickets, 1)
}

func TestRegisterCampaignIssuesOneTicketPerBinding(t *testing.T) {
	svc, _ := newTicketService(t)
	ctx := context.Background()

	voucher, err := svc.CreateTicketType(ctx, domain.TicketType{Name: "Voucher"})
	require.NoError(t, err)
	coupon, err := svc.CreateTicketType(ctx, domain.TicketType{Name: "Coupon"})
	require.NoError(t, err)

	campaign := createCampaign(t, svc, "Songkran", nil)

	voucherExpiry := time.Now().AddDate(0, 2, 0).Truncate(time.Second)
	couponExpiry := time.Now().AddDate(0, 6, 0).Truncate(time.Second)

	_, err = svc.CreateCampaignTicketType(ctx, domain.TicketCampaignTicketType{
		CampaignID:     campaign.ID,
		TicketTypeID:   voucher.ID,
		Amount:         3,
		ExpirationDate: voucherExpiry,
	})
	require.NoError(t, err)
	_, err = svc.CreateCampaignTicketType(ctx, domain.TicketCampaignTicketType{
		CampaignID:     campaign.ID,
		TicketTypeID:   coupon.ID,
		Amount:         5,
		ExpirationDate: couponExpiry,
	})
	require.NoError(t, err)

	require.NoError(t, svc.RegisterCampaign(ctx, campaign.ID))

	tickets, err := svc.ListTickets(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 2)

	byType := make(map[uint]domain.Ticket, len(tickets))
	for _, ticket := range tickets {
		byType[ticket.TicketTypeID] = ticket

		assert.Nil(t, ticket.UserID, "issued tickets start unassigned")
		require.NotNil(t, ticket.CampaignID)
		assert.Equal(t, campaign.ID, *ticket.CampaignID)
		assert.Equal(t, 0, ticket.Used)
	}
	assert.Equal(t, 3, byType[voucher.ID].Amount)
	assert.Equal(t, voucherExpiry, byType[voucher.ID].ExpiresAt)
	assert.Equal(t, 5, byType[coupon.ID].Amount)
	assert.Equal(t, couponExpiry, byType[coupon.ID].ExpiresAt)
}

func TestRegisterCampaignWithoutBindings(t *testing.T) {
	svc, _ := newTicketService(t)
	ctx := context.Background()

	campaign := createCampaign(t, svc, "Empty", intPtr(5))

	require.NoError(t, svc.RegisterCampaign(ctx, campaign.ID))

	after, err := svc.GetCampaign(ctx, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, after.Registered)

	tickets, err := svc.ListTickets(ctx)
	require.NoError(t, err)
	assert.Empty(t, tickets)
}

func TestRegisterCampaignUnknownCampaign(t *testing.T) {
	svc, _ := newTicketService(t)

	err := svc.RegisterCampaign(context.Background(), 42)
	assert.ErrorIs(t, err, service.ErrCampaignNotFound)

	tickets, err := svc.ListTickets(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tickets)
}

func TestToggleCampaignActive(t *testing.T) {
	svc, _ := newTicketService(t)
	ctx := context.Background()

	campaign := createCampaign(t, svc, "Toggle Me", nil)
	require.True(t, campaign.IsActive)

	toggled, err := svc.ToggleCampaignActive(ctx, campaign.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	toggled, err = svc.ToggleCampaignActive(ctx, campaign.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)

	_, err = svc.ToggleCampaignActive(ctx, 99)
	assert.ErrorIs(t, err, service.ErrCampaignNotFound)
}

func TestCollectTicketIsIdempotent(t *testing.T) {
	svc, _ := newTicketService(t)
	ctx := context.Background()

	ticketType, err := svc.CreateTicketType(ctx, domain.TicketType{Name: "Voucher"})
	require.NoError(t, err)

	userID := uint(7)
	ticket, err := svc.CreateTicket(ctx, domain.Ticket{
		UserID:       &userID,
		TicketTypeID: ticketType.ID,
		Amount:       1,
		ExpiresAt:    time.Now().AddDate(0, 1, 0),
	})
	require.NoError(t, err)
	require.NotNil(t, ticket.UserID)

	collected, err := svc.CollectTicket(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Nil(t, collected.UserID)

	collected, err = svc.CollectTicket(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Nil(t, collected.UserID)
}

func TestUpdateTicketKeepsUsedCounter(t *testing.T) {
	svc, repo := newTicketService(t)
	ctx := context.Background()

	ticketType, err := svc.CreateTicketType(ctx, domain.TicketType{Name: "Voucher"})
	require.NoError(t, err)

	ticket, err := svc.CreateTicket(ctx, domain.Ticket{
		TicketTypeID: ticketType.ID,
		Amount:       3,
		ExpiresAt:    time.Now().AddDate(0, 1, 0),
	})
	require.NoError(t, err)
	require.NoError(t, repo.ConsumeTicketUse(ticket.ID))

	ticket.Amount = 5
	ticket.Used = 0
	updated, err := svc.UpdateTicket(ctx, ticket)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Amount)
	assert.Equal(t, 1, updated.Used, "used only moves through the booking flow")
}

func TestTicketTypeNameUniqueness(t *testing.T) {
	svc, _ := newTicketService(t)
	ctx := context.Background()

	created, err := svc.CreateTicketType(ctx, domain.TicketType{Name: "Voucher"})
	require.NoError(t, err)

	_, err = svc.CreateTicketType(ctx, domain.TicketType{Name: "Voucher"})
	assert.ErrorIs(t, err, service.ErrTicketTypeNameTaken)

	// The check matches the row being updated too, so re-submitting the
	// current name is rejected.
	_, err = svc.UpdateTicketType(ctx, domain.TicketType{ID: created.ID, Name: "Voucher"})
	assert.ErrorIs(t, err, service.ErrTicketTypeNameTaken)

	updated, err := svc.UpdateTicketType(ctx, domain.TicketType{ID: created.ID, Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestCampaignNameUniqueness(t *testing.T) {
	svc, _ := newTicketService(t)
	ctx := context.Background()

	createCampaign(t, svc, "Songkran", nil)

	_, err := svc.CreateCampaign(ctx, domain.TicketCampaign{
		Name:      "Songkran",
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(0, 1, 0),
	})
	assert.ErrorIs(t, err, service.ErrCampaignNameTaken)
}

func TestUsageRuleTargetChecks(t *testing.T) {
	repo := memory.NewTicketRepository()
	provinceRepo := memory.NewProvinceRepository()
	svc := service.NewTicketService(repo, provinceRepo)
	ctx := context.Background()

	ticketType, err := svc.CreateTicketType(ctx, domain.TicketType{Name: "Voucher"})
	require.NoError(t, err)

	_, err = svc.CreateUsageRule(ctx, domain.TicketUsageRule{
		TicketTypeID: ticketType.ID,
		CategoryID:   1,
		Allowance:    true,
		TaxReduction: 0.1,
	})
	assert.ErrorIs(t, err, service.ErrProvinceCategoryNotFound)

	category, err := provinceRepo.CreateCategory(ctx, domain.ProvinceCategory{Name: "Beach"})
	require.NoError(t, err)

	_, err = svc.CreateUsageRule(ctx, domain.TicketUsageRule{
		TicketTypeID: 99,
		CategoryID:   category.ID,
		Allowance:    true,
		TaxReduction: 0.1,
	})
	assert.ErrorIs(t, err, service.ErrTicketTypeNotFound)

	rule, err := svc.CreateUsageRule(ctx, domain.TicketUsageRule{
		TicketTypeID: ticketType.ID,
		CategoryID:   category.ID,
		Allowance:    true,
		TaxReduction: 0.1,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.1, rule.TaxReduction)
}
