package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "donation_tracker/internal/adapter/http/dto/request"
	response "donation_tracker/internal/adapter/http/dto/response"
	"donation_tracker/internal/domain/entities"
	"donation_tracker/internal/usecase"
	"donation_tracker/internal/usecase/interfaces"
	"donation_tracker/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDonationPayload = pkg.NewDomainErrorSimple("INVALID_DONATION_INPUT", "Invalid donation payload", http.StatusBadRequest)
)

// DonationHandler handles HTTP requests for donation records: the donor
// submission form, the admin dashboard mutations, and receipt dispatch.

type DonationHandler struct {
	usecase  usecase.IDonationUseCase
	stats    usecase.IStatsUseCase
	receipts interfaces.IReceiptSender
}

func NewDonationHandler(uc usecase.IDonationUseCase, stats usecase.IStatsUseCase, receipts interfaces.IReceiptSender) *DonationHandler {
	return &DonationHandler{usecase: uc, stats: stats, receipts: receipts}
}

// ListDonations returns all records (optionally filtered by kind) together
// with the current aggregate, which is what the dashboard renders.
//
// @Summary List donations and stats
// @Param   kind query string false "filter by kind (donation|pledge)"
// @Success 200 {object} response.DonationListResponse
// @Router  /donations [get]
func (h *DonationHandler) ListDonations(c *gin.Context) {
	var (
		donations []entities.Donation
		err       error
	)

	if kind := c.Query("kind"); kind != "" {
		donations, err = h.usecase.ListByRole(c.Request.Context(), kind)
	} else {
		donations, err = h.usecase.ListAll(c.Request.Context())
	}
	if err != nil {
		appErr := mapDonationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := response.DonationListResponse{
		Donations: response.FromDonations(donations),
		Success:   true,
	}

	stats, err := h.stats.Get(c.Request.Context())
	switch {
	case err == nil:
		sr := response.FromStats(stats)
		out.Stats = &sr
	case errors.Is(err, usecase.ErrStatsNotInitialized):
		// Aggregate not seeded yet; the listing is still useful.
	default:
		appErr := mapDonationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, out)
}

// CreateDonation accepts a new donation/pledge submission.
//
// @Summary Submit a donation or pledge
// @Param   payload body request.DonationCreateRequest true "donation"
// @Success 201 {object} response.DonationEnvelope
// @Router  /donations [post]
func (h *DonationHandler) CreateDonation(c *gin.Context) {
	var payload request.DonationCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDonationPayload.HTTPStatus, errInvalidDonationPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), payload.ToInput(c.GetHeader("Idempotency-Key")))
	if err != nil {
		appErr := mapDonationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.DonationEnvelope{
		Donation: response.FromDonation(created),
		Success:  true,
		Message:  "Donation recorded successfully",
	})
}

// UpdateDonation patches status and/or verification status of one record.
//
// @Summary Update donation status or verification
// @Param   id path string true "donation id"
// @Param   payload body request.DonationUpdateRequest true "fields"
// @Success 200 {object} response.DonationEnvelope
// @Router  /donations/{id} [put]
func (h *DonationHandler) UpdateDonation(c *gin.Context) {
	id := c.Param("id")

	var payload request.DonationUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDonationPayload.HTTPStatus, errInvalidDonationPayload.ToHTTPError())
		return
	}
	if payload.Empty() {
		appErr := mapDonationError(usecase.ErrUpdateFieldsMissing)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// A malformed verification value must surface before any write lands.
	if payload.VerificationStatus != nil && !entities.VerificationStatus(*payload.VerificationStatus).Valid() {
		appErr := mapDonationError(usecase.ErrInvalidVerification)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var (
		updated entities.Donation
		err     error
	)
	// The status transition is the only update domain rules can reject, so it
	// runs first; a rejected transition leaves the record fully untouched.
	if payload.Status != nil {
		updated, err = h.usecase.UpdateStatus(c.Request.Context(), id, entities.DonationStatus(*payload.Status))
		if err != nil {
			appErr := mapDonationError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}
	if payload.VerificationStatus != nil {
		updated, err = h.usecase.UpdateVerification(c.Request.Context(), id, entities.VerificationStatus(*payload.VerificationStatus))
		if err != nil {
			appErr := mapDonationError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	c.JSON(http.StatusOK, response.DonationEnvelope{
		Donation: response.FromDonation(updated),
		Success:  true,
		Message:  "Donation updated successfully",
	})
}

// DeleteDonation destroys a record. The aggregate receives a compensating
// decrement for counted records; there is no undo.
//
// @Summary Delete a donation
// @Param   id path string true "donation id"
// @Success 200 {object} response.SuccessResponse
// @Router  /donations/{id} [delete]
func (h *DonationHandler) DeleteDonation(c *gin.Context) {
	id := c.Param("id")

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapDonationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{
		Success: true,
		Message: "Donation deleted successfully",
	})
}

// SendReceipt dispatches a receipt for an existing record through the
// configured sink. Dispatch is fire-and-forget: the endpoint acknowledges
// acceptance, not delivery.
//
// @Summary Send a donor receipt
// @Param   payload body request.ReceiptRequest true "target donation"
// @Success 202 {object} response.SuccessResponse
// @Router  /receipts [post]
func (h *DonationHandler) SendReceipt(c *gin.Context) {
	var payload request.ReceiptRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDonationPayload.HTTPStatus, errInvalidDonationPayload.ToHTTPError())
		return
	}

	d, err := h.usecase.GetByID(c.Request.Context(), payload.DonationID)
	if err != nil {
		appErr := mapDonationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if h.receipts != nil {
		go func() {
			// Detached from the request context: dispatch outlives the 202.
			if err := h.receipts.SendReceipt(context.Background(), d); err != nil {
				log.Printf("[receipt][handler] dispatch failed donation_id=%s err=%v", d.ID, err)
			}
		}()
	}

	c.JSON(http.StatusAccepted, response.SuccessResponse{
		Success: true,
		Message: "Receipt dispatch accepted",
	})
}

func mapDonationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDonationID),
		errors.Is(err, usecase.ErrInvalidDonationAmount),
		errors.Is(err, usecase.ErrMissingDonorName),
		errors.Is(err, usecase.ErrMissingDonorEmail),
		errors.Is(err, usecase.ErrInvalidDonationKind),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidDonationStatus),
		errors.Is(err, usecase.ErrInvalidVerification),
		errors.Is(err, usecase.ErrInvalidDonationRole),
		errors.Is(err, usecase.ErrInvalidRecentLimit):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUpdateFieldsMissing):
		return pkg.NewDomainErrorSimple("UPDATE_FIELDS_MISSING", "Status or verificationStatus is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDonationNotFound):
		return pkg.NewDomainErrorSimple("DONATION_NOT_FOUND", "Donation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Status transition not allowed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
