package alerting

import (
	"context"
	"log"
	"strings"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
	"github.com/bushboy/bookingswap-sub016/internal/usecase/interfaces"
)

// LogChannel writes alerts to the process log. It never fails, so an alert
// always reaches at least one sink when it is configured.
type LogChannel struct {
	logger *log.Logger
}

var _ interfaces.IAlertChannel = (*LogChannel)(nil)

func NewLogChannel(logger *log.Logger) *LogChannel {
	if logger == nil {
		logger = log.Default()
	}
	return &LogChannel{logger: logger}
}

func (c *LogChannel) Name() string { return "log" }

func (c *LogChannel) Send(_ context.Context, a entities.RollbackAlert) error {
	c.logger.Printf("[alert][%s] rollback alert id=%s operation=%s auction_id=%s failed_step=%s completed=%d/%d err=%q rollback_errors=[%s]",
		a.Severity, a.ID, a.Operation, a.AuctionID, a.FailedStep, a.CompletedSteps, a.TotalSteps, a.Error,
		strings.Join(a.RollbackErrors, "; "))
	return nil
}
