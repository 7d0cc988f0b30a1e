package handler

import (
	"encoding/csv"
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/tombola-prize-allocation/internal/domain"
)

// AdminHandler serves the operator endpoints: weight and cap
// management, the registration roster, and the CSV export.
type AdminHandler struct {
	prizeConfig domain.PrizeConfigRepository
	ledger      domain.AllocationLedger
	catalog     domain.Catalog
	dayProvider *domain.DayProvider
}

func NewAdminHandler(
	prizeConfig domain.PrizeConfigRepository,
	ledger domain.AllocationLedger,
	catalog domain.Catalog,
	dayProvider *domain.DayProvider,
) *AdminHandler {
	return &AdminHandler{
		prizeConfig: prizeConfig,
		ledger:      ledger,
		catalog:     catalog,
		dayProvider: dayProvider,
	}
}

type weightView struct {
	Prize     string    `json:"prize"`
	Weight    float64   `json:"weight"`
	Percent   float64   `json:"percent"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *AdminHandler) HandleGetWeights(c *gin.Context) {
	ctx := c.Request.Context()

	weights, err := h.prizeConfig.GetWeights(ctx, h.catalog)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read weights",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	total := 0.0
	for _, prize := range h.catalog {
		total += weights[prize].Weight
	}

	payload := make([]weightView, 0, len(h.catalog))
	for _, prize := range h.catalog {
		w := weights[prize]
		percent := 0.0
		if total > 0 {
			percent = w.Weight / total * 100
		}
		payload = append(payload, weightView{
			Prize:     prize,
			Weight:    w.Weight,
			Percent:   percent,
			UpdatedAt: w.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"weights": payload, "total": total})
}

type updateWeightsRequest struct {
	Weights map[string]json.RawMessage `json:"weights"`
}

// HandleUpdateWeights sets every catalog prize from the submitted map.
// Absent, unparsable or negative values clamp to 0 so the submitted
// form always fully describes the wheel.
func (h *AdminHandler) HandleUpdateWeights(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateWeightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	for _, prize := range h.catalog {
		weight := parseWeight(req.Weights[prize])
		if err := h.prizeConfig.SetWeight(ctx, prize, weight); err != nil {
			slog.ErrorContext(ctx, "failed to update weight",
				slog.String("prize", prize),
				slog.String("error", err.Error()),
			)
			respondError(c, http.StatusInternalServerError, "failed to update weights")
			return
		}
	}

	slog.InfoContext(ctx, "prize weights updated",
		slog.Int("prizes", len(h.catalog)),
	)

	weights, err := h.prizeConfig.GetWeights(ctx, h.catalog)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	payload := make([]weightView, 0, len(h.catalog))
	for _, prize := range h.catalog {
		w := weights[prize]
		payload = append(payload, weightView{Prize: prize, Weight: w.Weight, UpdatedAt: w.UpdatedAt})
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "weights": payload})
}

type capView struct {
	Prize     string    `json:"prize"`
	Cap       *int64    `json:"cap"`
	Used      int       `json:"used"`
	Remaining *int64    `json:"remaining"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *AdminHandler) HandleGetCaps(c *gin.Context) {
	ctx := c.Request.Context()
	today := h.dayProvider.DayKey(time.Now())

	caps, err := h.prizeConfig.GetCaps(ctx, h.catalog)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read caps",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	usage, err := h.ledger.UsageForDay(ctx, today)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read daily usage",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	payload := make([]capView, 0, len(h.catalog))
	for _, prize := range h.catalog {
		prizeCap := caps[prize]
		used := usage[prize]
		view := capView{
			Prize:     prize,
			Cap:       prizeCap.Cap,
			Used:      used,
			UpdatedAt: prizeCap.UpdatedAt,
		}
		if !prizeCap.Unlimited() {
			remaining := prizeCap.Remaining(used)
			view.Remaining = &remaining
		}
		payload = append(payload, view)
	}

	c.JSON(http.StatusOK, gin.H{"today": today, "caps": payload})
}

type updateCapsRequest struct {
	Caps map[string]json.RawMessage `json:"caps"`
}

// HandleUpdateCaps sets every catalog prize from the submitted map.
// Empty or null values mean unlimited; unparsable or negative values
// clamp to 0, which also reads as unlimited.
func (h *AdminHandler) HandleUpdateCaps(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateCapsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	for _, prize := range h.catalog {
		if err := h.prizeConfig.SetCap(ctx, prize, parseCap(req.Caps[prize])); err != nil {
			slog.ErrorContext(ctx, "failed to update cap",
				slog.String("prize", prize),
				slog.String("error", err.Error()),
			)
			respondError(c, http.StatusInternalServerError, "failed to update caps")
			return
		}
	}

	slog.InfoContext(ctx, "prize caps updated",
		slog.Int("prizes", len(h.catalog)),
	)

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type dataRow struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Phone            string     `json:"phone"`
	ExpiryMonth      string     `json:"expiry_month"`
	InsuranceCompany string     `json:"insurance_company"`
	City             string     `json:"city"`
	District         string     `json:"district"`
	Intermediary     string     `json:"intermediary"`
	Zone             string     `json:"zone"`
	CreatedAt        time.Time  `json:"created_at"`
	Prize            *string    `json:"prize"`
	PrizeAt          *time.Time `json:"prize_at"`
	Day              *string    `json:"day"`
}

func (h *AdminHandler) HandleData(c *gin.Context) {
	ctx := c.Request.Context()

	records, err := h.ledger.ListEntryRecords(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list entries",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	rows := make([]dataRow, 0, len(records))
	for _, record := range records {
		row := dataRow{
			ID:               record.Entry.ID,
			Name:             record.Entry.Name,
			Phone:            record.Entry.Phone,
			ExpiryMonth:      record.Entry.ExpiryMonth,
			InsuranceCompany: record.Entry.InsuranceCompany,
			City:             record.Entry.City,
			District:         record.Entry.District,
			Intermediary:     record.Entry.Intermediary,
			Zone:             record.Entry.Zone,
			CreatedAt:        record.Entry.CreatedAt,
		}
		if record.Outcome != nil {
			row.Prize = &record.Outcome.Prize
			row.PrizeAt = &record.Outcome.CreatedAt
			row.Day = &record.Outcome.Day
		}
		rows = append(rows, row)
	}

	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

var exportHeader = []string{
	"id", "name", "phone", "expiry_month", "insurance_company",
	"city", "district", "intermediary", "zone", "created_at",
	"prize", "prize_at", "day",
}

// HandleExport streams the full roster as CSV. The UTF-8 BOM keeps
// accented prize names intact when the file is opened in Excel.
func (h *AdminHandler) HandleExport(c *gin.Context) {
	ctx := c.Request.Context()

	records, err := h.ledger.ListEntryRecords(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to export entries",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="tombola_export.csv"`)
	c.Status(http.StatusOK)

	if _, err := c.Writer.WriteString("\uFEFF"); err != nil {
		return
	}

	w := csv.NewWriter(c.Writer)
	if err := w.Write(exportHeader); err != nil {
		return
	}
	for _, record := range records {
		row := []string{
			record.Entry.ID,
			record.Entry.Name,
			record.Entry.Phone,
			record.Entry.ExpiryMonth,
			record.Entry.InsuranceCompany,
			record.Entry.City,
			record.Entry.District,
			record.Entry.Intermediary,
			record.Entry.Zone,
			record.Entry.CreatedAt.Format(time.RFC3339),
			"", "", "",
		}
		if record.Outcome != nil {
			row[10] = record.Outcome.Prize
			row[11] = record.Outcome.CreatedAt.Format(time.RFC3339)
			row[12] = record.Outcome.Day
		}
		if err := w.Write(row); err != nil {
			return
		}
	}
	w.Flush()
}

// parseWeight accepts a raw JSON value and coerces it to a usable
// weight. Numbers and numeric strings pass through; anything else,
// including negatives, clamps to 0.
func parseWeight(raw json.RawMessage) float64 {
	value, ok := parseNumber(raw)
	if !ok || value < 0 {
		return 0
	}
	return value
}

// parseCap accepts a raw JSON value and coerces it to a cap. Absent,
// null and empty-string values mean unlimited.
func parseCap(raw json.RawMessage) *int64 {
	if len(raw) == 0 || string(raw) == "null" || string(raw) == `""` {
		return nil
	}
	value, ok := parseNumber(raw)
	if !ok || value < 0 {
		zero := int64(0)
		return &zero
	}
	capValue := int64(value)
	return &capValue
}

func parseNumber(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	text := string(raw)
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		text = strings.TrimSpace(s)
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}
