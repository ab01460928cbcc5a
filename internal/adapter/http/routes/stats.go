package routes

import (
	"donation_tracker/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathStats = "/stats"
	PathLive  = "/live"
)

func addStatsRoutes(rg *gin.RouterGroup, statsHandler *handlers.StatsHandler, liveHandler *handlers.LiveHandler) {
	stats := rg.Group(PathStats)
	{
		stats.GET("", statsHandler.GetStats)
		stats.POST("/reset", statsHandler.ResetStats)
		stats.PUT("/pledged-override", statsHandler.SetPledgedOverride)
	}

	live := rg.Group(PathLive)
	{
		live.GET("/stats", liveHandler.StreamStats)
		live.GET("/donations", liveHandler.StreamDonations)
	}
}
