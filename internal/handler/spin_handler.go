package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/tombola-prize-allocation/internal/domain"
	"github.com/KasumiMercury/tombola-prize-allocation/internal/service/allocation"
)

type SpinHandler struct {
	allocationService *allocation.Service
	recorder          domain.AllocationRecorder
}

func NewSpinHandler(allocationService *allocation.Service, recorder domain.AllocationRecorder) *SpinHandler {
	return &SpinHandler{
		allocationService: allocationService,
		recorder:          recorder,
	}
}

type spinRequest struct {
	EntryID string `json:"entry_id"`
}

func (h *SpinHandler) HandleSpin(c *gin.Context) {
	ctx := c.Request.Context()

	var req spinRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.EntryID == "" {
		respondError(c, http.StatusBadRequest, "entry_id is required")
		return
	}

	result, err := h.allocationService.Allocate(ctx, req.EntryID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEntryNotFound):
			respondError(c, http.StatusBadRequest, "unknown entry")
		case errors.Is(err, domain.ErrQuotaExhausted):
			respondError(c, http.StatusTooManyRequests, "all prizes are exhausted for today")
		default:
			slog.ErrorContext(ctx, "allocation failed",
				slog.String("entry_id", req.EntryID),
				slog.String("error", err.Error()),
			)
			respondError(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	if h.recorder != nil {
		record := domain.AllocationRecord{
			EntryID:   req.EntryID,
			Prize:     result.Prize,
			Day:       result.Day,
			Already:   result.Already,
			GrantedAt: time.Now().UTC(),
		}
		if err := h.recorder.RecordAllocation(ctx, record); err != nil {
			slog.WarnContext(ctx, "failed to record allocation",
				slog.String("entry_id", req.EntryID),
				slog.String("error", err.Error()),
			)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"prize":   result.Prize,
		"already": result.Already,
	})
}
