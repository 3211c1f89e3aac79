package handlers

import (
	"net/http"

	"studiobook/models"
	"studiobook/services/studio"
	"studiobook/utils"

	"github.com/gin-gonic/gin"
)

// StudioHandler exposes studio registration, lookup and verification.
type StudioHandler struct {
	Service studio.StudioService
}

// RegisterStudio creates a new studio listing.
func (h *StudioHandler) RegisterStudio(c *gin.Context) {
	var input models.Studio
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Service.Register(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to register studio", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetStudio fetches a studio listing by ID.
func (h *StudioHandler) GetStudio(c *gin.Context) {
	s, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "studio not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, s)
}

// SubmitVerification records a studio identity document submission.
func (h *StudioHandler) SubmitVerification(c *gin.Context) {
	var input models.VerificationRecord
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	input.StudioID = c.Param("id")

	record, err := h.Service.SubmitVerification(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to submit verification", err.Error())
		return
	}
	c.JSON(http.StatusCreated, record)
}

// ListVerifications returns the verification records submitted for a studio.
func (h *StudioHandler) ListVerifications(c *gin.Context) {
	records, err := h.Service.ListVerifications(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list verification records", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}
