package routes

import (
	"donation_tracker/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDonations = "/donations"
	PathWebhooks  = "/webhooks"
	PathReceipts  = "/receipts"
)

func addDonationRoutes(rg *gin.RouterGroup, donationHandler *handlers.DonationHandler, webhookHandler *handlers.PaymentWebhookHandler) {
	donations := rg.Group(PathDonations)
	{
		donations.GET("", donationHandler.ListDonations)
		donations.POST("", donationHandler.CreateDonation)
		donations.PUT("/:id", donationHandler.UpdateDonation)
		donations.DELETE("/:id", donationHandler.DeleteDonation)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/payment", webhookHandler.HandleEvent)
	}

	receipts := rg.Group(PathReceipts)
	{
		receipts.POST("", donationHandler.SendReceipt)
	}
}
