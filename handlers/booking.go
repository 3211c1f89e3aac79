package handlers

import (
	"errors"
	"net/http"

	bookingRepo "studiobook/database/repository/booking"
	"studiobook/models"
	"studiobook/services/booking"
	"studiobook/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking wizard and booking lookups.
type BookingHandler struct {
	Wizard   booking.BookingWizardService
	Oracle   *booking.StorageAvailabilityOracle
	Bookings bookingRepo.BookingRepository
}

// draftAction is the single mutation body accepted by UpdateDraft. The action
// field selects which of the optional blocks is read.
type draftAction struct {
	Action    string                `json:"action" binding:"required"`
	ServiceID string                `json:"serviceId,omitempty"`
	Slot      models.SlotKey        `json:"slot,omitempty"`
	Contact   *models.ClientContact `json:"contact,omitempty"`
}

// StartDraft creates a new booking draft for a studio.
func (h *BookingHandler) StartDraft(c *gin.Context) {
	var input struct {
		StudioID string `json:"studioId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	draft, err := h.Wizard.StartDraft(c.Request.Context(), input.StudioID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to start booking draft", err.Error())
		return
	}
	c.JSON(http.StatusCreated, draft)
}

// GetDraft returns the current wizard state.
func (h *BookingHandler) GetDraft(c *gin.Context) {
	draft, err := h.Wizard.GetDraft(c.Request.Context(), c.Param("draftID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking draft not found or expired", err.Error())
		return
	}
	c.JSON(http.StatusOK, draft)
}

// UpdateDraft applies one wizard mutation: service choice, a slot grid
// interaction, the contact block, or stage navigation.
func (h *BookingHandler) UpdateDraft(c *gin.Context) {
	draftID := c.Param("draftID")

	var input draftAction
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ctx := c.Request.Context()
	var (
		draft *models.BookingDraft
		err   error
	)
	switch input.Action {
	case "choose_service":
		draft, err = h.Wizard.ChooseService(ctx, draftID, input.ServiceID)
	case booking.SlotActionBeginOrCommit, booking.SlotActionExtend, booking.SlotActionCancelSelection:
		draft, err = h.Wizard.ApplySlotAction(ctx, draftID, input.Action, input.Slot)
	case "set_contact":
		if input.Contact == nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "contact block is required")
			return
		}
		draft, err = h.Wizard.SetContact(ctx, draftID, *input.Contact)
	case "advance":
		draft, err = h.Wizard.Advance(ctx, draftID)
	case "back":
		draft, err = h.Wizard.Back(ctx, draftID)
	default:
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "unknown action "+input.Action)
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, booking.ErrDraftNotFound):
			utils.JSONError(c, http.StatusNotFound, "booking draft not found or expired", err.Error())
		case errors.Is(err, booking.ErrSlotNotAvailable):
			utils.JSONError(c, http.StatusConflict, "slot not available", err.Error())
		case errors.Is(err, booking.ErrStageNotReady):
			utils.JSONError(c, http.StatusConflict, "stage requirements not met", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to update booking draft", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, draft)
}

// CancelDraft discards the draft session.
func (h *BookingHandler) CancelDraft(c *gin.Context) {
	if err := h.Wizard.CancelDraft(c.Request.Context(), c.Param("draftID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel booking draft", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// SubmitDraft finalizes the draft into a pending booking and returns the
// payment session the client hands to the provider.
func (h *BookingHandler) SubmitDraft(c *gin.Context) {
	bkg, session, err := h.Wizard.Submit(c.Request.Context(), c.Param("draftID"))
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrDraftNotFound):
			utils.JSONError(c, http.StatusNotFound, "booking draft not found or expired", err.Error())
		case errors.Is(err, booking.ErrSubmitInFlight):
			utils.JSONError(c, http.StatusConflict, "submission already in progress", err.Error())
		case errors.Is(err, booking.ErrSlotNotAvailable):
			utils.JSONError(c, http.StatusConflict, "selected slots no longer available", err.Error())
		case errors.Is(err, booking.ErrInvalidSubmission):
			utils.JSONError(c, http.StatusBadRequest, "draft is not ready for submission", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to submit booking", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"booking": bkg,
		"payment": session,
	})
}

// GetBooking fetches a persisted booking by ID.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bkg, err := h.Bookings.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, bkg)
}

// GetAvailability returns the 7x24 availability grid for a studio week.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	week := c.Query("week")
	if week == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "week query parameter is required (YYYY-MM-DD)")
		return
	}

	grid, err := h.Oracle.WeekGrid(c.Request.Context(), c.Param("id"), week)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"studioId":  c.Param("id"),
		"weekStart": week,
		"days":      grid,
	})
}
