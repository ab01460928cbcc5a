package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"donation_tracker/internal/adapter/http/handlers/mocks"
	"donation_tracker/internal/domain/entities"
	"donation_tracker/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestStatsHandler_GetStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatsUseCase(ctrl)
		h := NewStatsHandler(uc)

		uc.EXPECT().Get(gomock.Any()).Return(entities.FundraiserStats{
			ID:             entities.StatsDocID,
			TotalRaised:    420,
			TotalDonations: 3,
			TotalPledges:   1,
			GoalAmount:     1000,
		}, nil)

		r := gin.New()
		r.GET("/v1/stats", h.GetStats)

		req := httptest.NewRequest(http.MethodGet, "/v1/stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Stats struct {
				TotalRaised float64 `json:"totalRaised"`
				GoalAmount  float64 `json:"goalAmount"`
			} `json:"stats"`
			Success bool `json:"success"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !body.Success || body.Stats.TotalRaised != 420 || body.Stats.GoalAmount != 1000 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not initialized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatsUseCase(ctrl)
		h := NewStatsHandler(uc)

		uc.EXPECT().Get(gomock.Any()).Return(entities.FundraiserStats{}, usecase.ErrStatsNotInitialized)

		r := gin.New()
		r.GET("/v1/stats", h.GetStats)

		req := httptest.NewRequest(http.MethodGet, "/v1/stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestStatsHandler_ResetStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIStatsUseCase(ctrl)
	h := NewStatsHandler(uc)

	uc.EXPECT().ResetAll(gomock.Any()).Return(entities.FundraiserStats{ID: entities.StatsDocID, GoalAmount: 1000}, nil)

	r := gin.New()
	r.POST("/v1/stats/reset", h.ResetStats)

	req := httptest.NewRequest(http.MethodPost, "/v1/stats/reset", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestStatsHandler_SetPledgedOverride(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatsUseCase(ctrl)
		h := NewStatsHandler(uc)

		r := gin.New()
		r.PUT("/v1/stats/pledged-override", h.SetPledgedOverride)

		req := httptest.NewRequest(http.MethodPut, "/v1/stats/pledged-override", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("zero is a valid override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatsUseCase(ctrl)
		h := NewStatsHandler(uc)

		uc.EXPECT().SetPledgedAmountOverride(gomock.Any(), 0.0).
			Return(entities.FundraiserStats{ID: entities.StatsDocID}, nil)

		r := gin.New()
		r.PUT("/v1/stats/pledged-override", h.SetPledgedOverride)

		req := httptest.NewRequest(http.MethodPut, "/v1/stats/pledged-override", bytes.NewBufferString(`{"amount":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("negative rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatsUseCase(ctrl)
		h := NewStatsHandler(uc)

		uc.EXPECT().SetPledgedAmountOverride(gomock.Any(), -5.0).
			Return(entities.FundraiserStats{}, usecase.ErrInvalidOverrideAmount)

		r := gin.New()
		r.PUT("/v1/stats/pledged-override", h.SetPledgedOverride)

		req := httptest.NewRequest(http.MethodPut, "/v1/stats/pledged-override", bytes.NewBufferString(`{"amount":-5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
