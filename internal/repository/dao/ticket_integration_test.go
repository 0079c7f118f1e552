package dao_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/travelothai/travelothai-api/internal/repository/dao"
)

// startPostgres spins up a throwaway postgres container and returns a gorm
// handle with the schema migrated. Skips when no docker daemon is reachable.
func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("skipping, docker unavailable: %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		t.Skipf("skipping, docker unavailable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=travelothai",
			"POSTGRES_PASSWORD=travelothai",
			"POSTGRES_DB=travelothai_test",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pool.Purge(resource)
	})
	_ = resource.Expire(180)

	dsn := fmt.Sprintf(
		"host=localhost port=%s user=travelothai password=travelothai dbname=travelothai_test sslmode=disable",
		resource.GetPort("5432/tcp"),
	)

	var db *gorm.DB
	pool.MaxWait = 60 * time.Second
	err = pool.Retry(func() error {
		var openErr error
		db, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if openErr != nil {
			return openErr
		}

		sqlDB, pingErr := db.DB()
		if pingErr != nil {
			return pingErr
		}

		return sqlDB.Ping()
	})
	require.NoError(t, err)

	require.NoError(t, dao.InitTables(db))

	return db
}

func TestRegisterCampaignSerializesOnTheRowLock(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := startPostgres(t)
	ticketDAO := dao.NewTicketDAO(db)
	ctx := context.Background()

	ticketType, err := ticketDAO.InsertType(ctx, dao.TicketType{Name: "Hotel Voucher"})
	require.NoError(t, err)

	limit := 1
	campaign, err := ticketDAO.InsertCampaign(ctx, dao.TicketCampaign{
		Name:      "Flash Sale",
		Limit:     &limit,
		IsActive:  true,
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(0, 1, 0),
	})
	require.NoError(t, err)

	_, err = ticketDAO.InsertCampaignTicketType(ctx, dao.TicketCampaignTicketType{
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
			results <- ticketDAO.RegisterCampaign(ctx, campaign.ID)
		}()
	}
	wg.Wait()
	close(results)

	var successes int
	for err := range results {
		if err == nil {
			successes++
			continue
		}
		require.ErrorIs(t, err, dao.ErrCampaignLimitExceeded)
	}
	assert.Equal(t, 1, successes)

	after, err := ticketDAO.FindCampaignByID(ctx, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, after.Registered)

	tickets, err := ticketDAO.ListTickets(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Nil(t, tickets[0].UserID)
	assert.Equal(t, 2, tickets[0].Amount)
}

func TestUpdateTicketLeavesUsedUntouched(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := startPostgres(t)
	ticketDAO := dao.NewTicketDAO(db)
	ctx := context.Background()

	ticketType, err := ticketDAO.InsertType(ctx, dao.TicketType{Name: "Voucher"})
	require.NoError(t, err)

	ticket, err := ticketDAO.InsertTicket(ctx, dao.Ticket{
		TicketTypeID: ticketType.ID,
		Amount:       3,
		Used:         1,
		ExpiresAt:    time.Now().AddDate(0, 1, 0),
	})
	require.NoError(t, err)

	ticket.Amount = 5
	ticket.Used = 0
	updated, err := ticketDAO.UpdateTicket(ctx, ticket)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Amount)
	assert.Equal(t, 1, updated.Used, "used only moves through the booking flow")
}

func TestRegisterCampaignUnknownID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := startPostgres(t)
	ticketDAO := dao.NewTicketDAO(db)

	err := ticketDAO.RegisterCampaign(context.Background(), 12345)
	assert.ErrorIs(t, err, dao.ErrCampaignNotFound)
}
