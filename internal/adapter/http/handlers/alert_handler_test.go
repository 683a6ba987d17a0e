package handlers

import (
	"net/http"
	"testing"

	"github.com/bushboy/bookingswap-sub016/internal/adapter/http/handlers/mocks"
	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
	"github.com/bushboy/bookingswap-sub016/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAlertHandler_ListAlerts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		alerter := mocks.NewMockIRollbackAlerter(ctrl)
		r := gin.New()
		r.GET("/v1/alerts", NewAlertHandler(alerter).ListAlerts)

		w := doRequest(r, http.MethodGet, "/v1/alerts?state=lost", "", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("filter is forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		alerter := mocks.NewMockIRollbackAlerter(ctrl)
		r := gin.New()
		r.GET("/v1/alerts", NewAlertHandler(alerter).ListAlerts)

		alerter.EXPECT().History(usecase.AlertFilter{TransactionID: "tx-1", State: entities.AlertFailed, Limit: 2}).
			Return([]entities.RollbackAlert{{ID: "al-1", TransactionID: "tx-1", DeliveryState: entities.AlertFailed}})

		w := doRequest(r, http.MethodGet, "/v1/alerts?transaction_id=tx-1&state=failed&limit=2", "", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
