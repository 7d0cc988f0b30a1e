package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/tombola-prize-allocation/internal/domain"
)

func newAdminRouter(t *testing.T, prizeConfig domain.PrizeConfigRepository, ledger domain.AllocationLedger, catalog domain.Catalog) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dayProvider, err := domain.NewDayProvider("UTC")
	if err != nil {
		t.Fatalf("NewDayProvider() error = %v", err)
	}

	h := NewAdminHandler(prizeConfig, ledger, catalog, dayProvider)

	router := gin.New()
	router.GET("/admin/weights", h.HandleGetWeights)
	router.POST("/admin/weights", h.HandleUpdateWeights)
	router.GET("/admin/caps", h.HandleGetCaps)
	router.POST("/admin/caps", h.HandleUpdateCaps)
	router.GET("/admin/data", h.HandleData)
	router.GET("/admin/export", h.HandleExport)
	return router
}

func TestHandleGetWeightsPercentages(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := domain.Catalog{"A", "B"}

	prizeConfig := domain.NewMockPrizeConfigRepository(ctrl)
	prizeConfig.EXPECT().GetWeights(gomock.Any(), catalog).Return(map[string]domain.PrizeWeight{
		"A": {Prize: "A", Weight: 3},
		"B": {Prize: "B", Weight: 1},
	}, nil)

	router := newAdminRouter(t, prizeConfig, domain.NewMockAllocationLedger(ctrl), catalog)

	rec := performJSON(router, http.MethodGet, "/admin/weights", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Weights []struct {
			Prize   string  `json:"prize"`
			Weight  float64 `json:"weight"`
			Percent float64 `json:"percent"`
		} `json:"weights"`
		Total float64 `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Total != 4 {
		t.Errorf("total = %v, want 4", resp.Total)
	}
	if len(resp.Weights) != 2 {
		t.Fatalf("weights count = %d, want 2", len(resp.Weights))
	}
	if resp.Weights[0].Percent != 75 {
		t.Errorf("percent for A = %v, want 75", resp.Weights[0].Percent)
	}
}

// Every catalog prize is written on update; absent and invalid values
// clamp to 0.
func TestHandleUpdateWeightsClamps(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := domain.Catalog{"A", "B", "C"}

	prizeConfig := domain.NewMockPrizeConfigRepository(ctrl)
	prizeConfig.EXPECT().SetWeight(gomock.Any(), "A", 2.5).Return(nil)
	prizeConfig.EXPECT().SetWeight(gomock.Any(), "B", 0.0).Return(nil)
	prizeConfig.EXPECT().SetWeight(gomock.Any(), "C", 0.0).Return(nil)
	prizeConfig.EXPECT().GetWeights(gomock.Any(), catalog).Return(map[string]domain.PrizeWeight{}, nil)

	router := newAdminRouter(t, prizeConfig, domain.NewMockAllocationLedger(ctrl), catalog)

	rec := performJSON(router, http.MethodPost, "/admin/weights",
		`{"weights":{"A":2.5,"B":-4,"C":"abc"}}`)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestHandleGetCapsRemaining(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := domain.Catalog{"A", "B"}

	three := int64(3)
	prizeConfig := domain.NewMockPrizeConfigRepository(ctrl)
	prizeConfig.EXPECT().GetCaps(gomock.Any(), catalog).Return(map[string]domain.PrizeCap{
		"A": {Prize: "A", Cap: &three},
		"B": {Prize: "B"},
	}, nil)

	ledger := domain.NewMockAllocationLedger(ctrl)
	ledger.EXPECT().UsageForDay(gomock.Any(), gomock.Any()).Return(map[string]int{"A": 1}, nil)

	router := newAdminRouter(t, prizeConfig, ledger, catalog)

	rec := performJSON(router, http.MethodGet, "/admin/caps", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Today string `json:"today"`
		Caps  []struct {
			Prize     string `json:"prize"`
			Cap       *int64 `json:"cap"`
			Used      int    `json:"used"`
			Remaining *int64 `json:"remaining"`
		} `json:"caps"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Today == "" {
		t.Error("today is empty")
	}
	if resp.Caps[0].Remaining == nil || *resp.Caps[0].Remaining != 2 {
		t.Errorf("remaining for A = %v, want 2", resp.Caps[0].Remaining)
	}
	if resp.Caps[1].Remaining != nil {
		t.Errorf("remaining for unlimited B = %v, want null", *resp.Caps[1].Remaining)
	}
}

// Empty string and null mean unlimited; invalid and negative values
// clamp to 0.
func TestHandleUpdateCapsNormalization(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := domain.Catalog{"A", "B", "C", "D"}

	prizeConfig := domain.NewMockPrizeConfigRepository(ctrl)
	prizeConfig.EXPECT().SetCap(gomock.Any(), "A", gomock.Nil()).Return(nil)
	prizeConfig.EXPECT().SetCap(gomock.Any(), "B", gomock.Nil()).Return(nil)
	prizeConfig.EXPECT().SetCap(gomock.Any(), "C", gomock.Cond(func(cap *int64) bool {
		return cap != nil && *cap == 0
	})).Return(nil)
	prizeConfig.EXPECT().SetCap(gomock.Any(), "D", gomock.Cond(func(cap *int64) bool {
		return cap != nil && *cap == 5
	})).Return(nil)

	router := newAdminRouter(t, prizeConfig, domain.NewMockAllocationLedger(ctrl), catalog)

	rec := performJSON(router, http.MethodPost, "/admin/caps",
		`{"caps":{"A":"","B":null,"C":-7,"D":5}}`)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestHandleExportCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := domain.Catalog{"A"}

	created := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	ledger := domain.NewMockAllocationLedger(ctrl)
	ledger.EXPECT().ListEntryRecords(gomock.Any()).Return([]domain.EntryRecord{
		{
			Entry: domain.Entry{ID: "e1", Name: `Ali "Jo"`, Phone: "0600", CreatedAt: created},
			Outcome: &domain.Outcome{
				EntryID: "e1", Prize: "Porte-clés", Day: "2026-08-15", CreatedAt: created,
			},
		},
		{
			Entry: domain.Entry{ID: "e2", Name: "Sara", Phone: "0601", CreatedAt: created},
		},
	}, nil)

	router := newAdminRouter(t, domain.NewMockPrizeConfigRepository(ctrl), ledger, catalog)

	rec := performJSON(router, http.MethodGet, "/admin/export", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "attachment") {
		t.Errorf("Content-Disposition = %q, want attachment", got)
	}

	body := rec.Body.String()
	if !strings.HasPrefix(body, "\uFEFF") {
		t.Error("export does not start with a UTF-8 BOM")
	}
	if !strings.Contains(body, "Porte-clés") {
		t.Error("won prize missing from export")
	}
	if !strings.Contains(body, `"Ali ""Jo"""`) {
		t.Error("quoted name not escaped")
	}

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(body, "\uFEFF")), "\n")
	if len(lines) != 3 {
		t.Errorf("line count = %d, want header + 2 rows", len(lines))
	}
}
