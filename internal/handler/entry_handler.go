package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/tombola-prize-allocation/internal/service/registration"
)

type EntryHandler struct {
	registrationService *registration.Service
}

func NewEntryHandler(registrationService *registration.Service) *EntryHandler {
	return &EntryHandler{
		registrationService: registrationService,
	}
}

type registerRequest struct {
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	ExpiryMonth      string `json:"expiry_month"`
	InsuranceCompany string `json:"insurance_company"`
	City             string `json:"city"`
	District         string `json:"district"`
	Intermediary     string `json:"intermediary"`
	Zone             string `json:"zone"`
	Consent          bool   `json:"consent"`
}

func (h *EntryHandler) HandleRegister(c *gin.Context) {
	ctx := c.Request.Context()

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	entryID, err := h.registrationService.Register(ctx, registration.Input{
		Name:             req.Name,
		Phone:            req.Phone,
		ExpiryMonth:      req.ExpiryMonth,
		InsuranceCompany: req.InsuranceCompany,
		City:             req.City,
		District:         req.District,
		Intermediary:     req.Intermediary,
		Zone:             req.Zone,
		Consent:          req.Consent,
	})
	if err != nil {
		if errors.Is(err, registration.ErrMissingRequiredField) || errors.Is(err, registration.ErrConsentRequired) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		slog.ErrorContext(ctx, "registration failed",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry_id": entryID})
}
