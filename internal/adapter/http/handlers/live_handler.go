package handlers

import (
	"io"
	"strconv"

	response "donation_tracker/internal/adapter/http/dto/response"
	"donation_tracker/internal/domain/entities"
	"donation_tracker/internal/usecase"

	"github.com/gin-gonic/gin"
)

// LiveHandler exposes the real-time feed over server-sent events so the
// thermometer and the recent-donations ticker update without polling.

type LiveHandler struct {
	feed usecase.IFeedUseCase
}

func NewLiveHandler(feed usecase.IFeedUseCase) *LiveHandler {
	return &LiveHandler{feed: feed}
}

// StreamStats pushes the aggregate: current snapshot first, then every
// change, until the client disconnects.
//
// @Summary Live fundraiser totals (SSE)
// @Produce text/event-stream
// @Router  /live/stats [get]
func (h *LiveHandler) StreamStats(c *gin.Context) {
	// Buffered so the subscription callback never blocks the feed; a slow
	// client skips intermediate snapshots, the latest one always lands.
	ch := make(chan entities.FundraiserStats, 16)
	unsubscribe := h.feed.SubscribeStats(func(s entities.FundraiserStats) {
		select {
		case ch <- s:
		default:
		}
	})
	defer unsubscribe()

	c.Stream(func(w io.Writer) bool {
		select {
		case s := <-ch:
			c.SSEvent("stats", response.FromStats(s))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// StreamDonations pushes the newest records, capped by the limit query
// parameter.
//
// @Summary Live recent donations (SSE)
// @Produce text/event-stream
// @Param   limit query int false "max records per push (default 10)"
// @Router  /live/donations [get]
func (h *LiveHandler) StreamDonations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	ch := make(chan []entities.Donation, 16)
	unsubscribe := h.feed.SubscribeRecentDonations(func(list []entities.Donation) {
		select {
		case ch <- list:
		default:
		}
	}, limit)
	defer unsubscribe()

	c.Stream(func(w io.Writer) bool {
		select {
		case list := <-ch:
			c.SSEvent("donations", response.FromDonations(list))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
