package handlers

import (
	"net/http"

	bookingRepo "studiobook/database/repository/booking"
	studioRepo "studiobook/database/repository/studio"
	"studiobook/models"
	"studiobook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalendarHandler serves confirmed bookings as downloadable .ics files.
type CalendarHandler struct {
	Bookings bookingRepo.BookingRepository
	Studios  studioRepo.StudioRepository
}

// GetBookingCalendar renders the booking as an iCalendar event. Only
// confirmed bookings are exportable.
func (h *CalendarHandler) GetBookingCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	bkg, err := h.Bookings.GetByID(ctx, c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		return
	}
	if bkg.Status != models.BookingStatusConfirmed {
		utils.JSONError(c, http.StatusConflict, "booking is not confirmed", "only confirmed bookings can be exported")
		return
	}

	studio, err := h.Studios.GetByID(ctx, bkg.StudioID)
	if err != nil {
		// The event still renders without a studio name or location.
		utils.GetLogger().Warn("failed to load studio for calendar export",
			zap.String("studioId", bkg.StudioID),
			zap.Error(err))
		studio = nil
	}

	ics, err := utils.BookingICS(bkg, studio)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to render calendar event", err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="booking-`+bkg.ID+`.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics))
}
