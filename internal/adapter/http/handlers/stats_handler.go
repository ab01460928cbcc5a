package handlers

import (
	"errors"
	"net/http"

	request "donation_tracker/internal/adapter/http/dto/request"
	response "donation_tracker/internal/adapter/http/dto/response"
	"donation_tracker/internal/usecase"
	"donation_tracker/pkg"

	"github.com/gin-gonic/gin"
)

// StatsHandler handles HTTP requests for the fundraiser aggregate: the public
// progress readout and the two administrative mutations (reset, pledged
// override).

type StatsHandler struct {
	usecase usecase.IStatsUseCase
}

func NewStatsHandler(uc usecase.IStatsUseCase) *StatsHandler {
	return &StatsHandler{usecase: uc}
}

// GetStats returns the current aggregate.
//
// @Summary Current fundraiser totals
// @Success 200 {object} response.StatsEnvelope
// @Router  /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		appErr := mapStatsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.StatsEnvelope{Stats: response.FromStats(stats), Success: true})
}

// ResetStats zeroes every counter, preserving the goal. Destructive; the
// confirmation dialog is a UI concern.
//
// @Summary Reset fundraiser totals
// @Success 200 {object} response.StatsEnvelope
// @Router  /stats/reset [post]
func (h *StatsHandler) ResetStats(c *gin.Context) {
	stats, err := h.usecase.ResetAll(c.Request.Context())
	if err != nil {
		appErr := mapStatsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.StatsEnvelope{Stats: response.FromStats(stats), Success: true})
}

// SetPledgedOverride sets the admin display figure.
//
// @Summary Set the pledged-amount display override
// @Param   payload body request.PledgedOverrideRequest true "amount"
// @Success 200 {object} response.StatsEnvelope
// @Router  /stats/pledged-override [put]
func (h *StatsHandler) SetPledgedOverride(c *gin.Context) {
	var payload request.PledgedOverrideRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Amount == nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	stats, err := h.usecase.SetPledgedAmountOverride(c.Request.Context(), *payload.Amount)
	if err != nil {
		appErr := mapStatsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.StatsEnvelope{Stats: response.FromStats(stats), Success: true})
}

func mapStatsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOverrideAmount), errors.Is(err, usecase.ErrInvalidContribution):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStatsNotInitialized):
		return pkg.NewDomainErrorSimple("STATS_NOT_INITIALIZED", "Stats aggregate not initialized", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
