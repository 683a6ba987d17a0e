package handlers

import (
	"net/http"

	request "github.com/bushboy/bookingswap-sub016/internal/adapter/http/dto/request"
	response "github.com/bushboy/bookingswap-sub016/internal/adapter/http/dto/response"
	"github.com/bushboy/bookingswap-sub016/internal/usecase"
	"github.com/bushboy/bookingswap-sub016/pkg"

	"github.com/gin-gonic/gin"
)

// AlertHandler lists the rollback alerts retained by the alerter.
type AlertHandler struct {
	alerter usecase.IRollbackAlerter
}

func NewAlertHandler(alerter usecase.IRollbackAlerter) *AlertHandler {
	return &AlertHandler{alerter: alerter}
}

// ListAlerts godoc
// @Summary  List rollback alerts, newest first
// @Tags     alerts
// @Produce  json
// @Param    transaction_id  query  string  false  "Transaction id"
// @Param    state           query  string  false  "delivered | partially_delivered | failed | undelivered"
// @Param    limit           query  int     false  "Maximum number of alerts"
// @Success  200  {object}  response.AlertListResponse
// @Router   /alerts [get]
func (h *AlertHandler) ListAlerts(c *gin.Context) {
	filter, err := request.AlertFilter(c.Query("transaction_id"), c.Query("state"), c.Query("limit"))
	if err != nil {
		abortWith(c, pkg.NewDomainError("INVALID_FILTER", err.Error(), err, http.StatusBadRequest))
		return
	}
	c.JSON(http.StatusOK, response.FromAlerts(h.alerter.History(filter)))
}
