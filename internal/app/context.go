package app

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"donation_tracker/internal/adapter/persistence/localstore"
	"donation_tracker/internal/adapter/persistence/repository"
	"donation_tracker/internal/infrastructure/database"
	"donation_tracker/internal/infrastructure/notify"
	"donation_tracker/internal/infrastructure/payments"
	"donation_tracker/internal/usecase"
	"donation_tracker/internal/usecase/interfaces"
)

const (
	defaultGoalAmount     = 1_000_000
	defaultFeedIntervalMS = 3000
	defaultLocalStorePath = "donation-tracker-local.json"
)

// Context is the process-wide access point through which every surface
// obtains the donation and stats services and the live feed. The storage
// backend is chosen exactly once here; nothing downstream branches on it
// again.
type Context struct {
	Donations usecase.IDonationUseCase
	Stats     usecase.IStatsUseCase
	Feed      *usecase.FeedUseCase
	Receipts  interfaces.IReceiptSender

	WebhookSecret string
	DemoMode      bool
}

// Build wires the whole service from the environment and runs the startup
// lifecycle: seed the aggregate if absent, then start the live feed.
//
// When DynamoDB is unconfigured (or DEMO_MODE is set, or the store rejects
// the seeding call) the tracker degrades to the local fallback store instead
// of failing startup.
func Build(ctx context.Context) (*Context, error) {
	goal := getenvFloat("GOAL_AMOUNT", defaultGoalAmount)
	interval := time.Duration(getenvInt("FEED_POLL_INTERVAL_MS", defaultFeedIntervalMS)) * time.Millisecond

	demoMode := envBool("DEMO_MODE") || !database.Configured()

	var (
		donationRepo interfaces.IDonationRepository
		statsRepo    interfaces.IStatsRepository
	)

	if !demoMode {
		ddb := database.ConnectDynamoDB()
		donationRepo = repository.NewDonationDynamoRepository(ddb)
		statsRepo = repository.NewStatsDynamoRepository(ddb)

		if _, err := statsRepo.InitIfAbsent(ctx, goal); err != nil {
			log.Printf("[app] record store unavailable; degrading to local fallback err=%v", err)
			demoMode = true
		}
	}

	if demoMode {
		path := getenvDefault("LOCAL_STORE_PATH", defaultLocalStorePath)
		store := localstore.New(path)
		donationRepo = store
		statsRepo = store
		log.Printf("[app] demo mode: local fallback store path=%s", path)
	}

	statsUC := usecase.NewStatsUseCase(statsRepo, goal)
	if err := statsUC.InitializeIfAbsent(ctx); err != nil {
		return nil, err
	}

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("[app] Mercado Pago gateway not configured: %v", err)
	} else {
		gateway = mpGateway
	}

	receipts := notify.NewLogReceiptSender()
	donationUC := usecase.NewDonationUseCase(donationRepo, statsUC, gateway, receipts)

	feed := usecase.NewFeedUseCase(donationRepo, statsRepo, interval)
	feed.Start(ctx)

	return &Context{
		Donations:     donationUC,
		Stats:         statsUC,
		Feed:          feed,
		Receipts:      receipts,
		WebhookSecret: os.Getenv("PAYMENT_WEBHOOK_SECRET"),
		DemoMode:      demoMode,
	}, nil
}

// Close tears down the live feed. Safe to call once at shutdown.
func (c *Context) Close() {
	if c.Feed != nil {
		c.Feed.Close()
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[app] invalid %s=%q; using default %.2f", key, v, def)
		return def
	}
	return f
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[app] invalid %s=%q; using default %d", key, v, def)
		return def
	}
	return n
}

func envBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
