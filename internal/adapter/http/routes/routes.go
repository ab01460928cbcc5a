package routes

import (
	"context"
	"log"
	"strconv"

	_ "donation_tracker/docs" // This will be auto-generated
	"donation_tracker/internal/adapter/http/handlers"
	"donation_tracker/internal/app"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	appCtx, err := app.Build(context.Background())
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
	defer appCtx.Close()

	getRoutes(appCtx)

	err = router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(appCtx *app.Context) {
	donationHandler := handlers.NewDonationHandler(appCtx.Donations, appCtx.Stats, appCtx.Receipts)
	statsHandler := handlers.NewStatsHandler(appCtx.Stats)
	webhookHandler := handlers.NewPaymentWebhookHandler(appCtx.Donations, appCtx.WebhookSecret)
	liveHandler := handlers.NewLiveHandler(appCtx.Feed)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDonationRoutes(v1, donationHandler, webhookHandler)
	addStatsRoutes(v1, statsHandler, liveHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
