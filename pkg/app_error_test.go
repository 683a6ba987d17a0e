package pkg

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/peterldowns/testy/check"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb: throttled")
	err := NewDomainError("SERVICE_UNAVAILABLE", "Please try again later", cause, http.StatusServiceUnavailable)

	check.True(t, errors.Is(err, cause))
	check.True(t, strings.Contains(err.Error(), "throttled"))

	body := err.ToHTTPError()
	check.Equal(t, "SERVICE_UNAVAILABLE", body.Code)
	check.Equal(t, "Please try again later", body.Message)
	check.Nil(t, body.Details)
}

func TestAppError_WithDetails(t *testing.T) {
	base := NewDomainErrorSimple("VALIDATION_FAILED", "Invalid proposal", http.StatusUnprocessableEntity)
	withDetails := base.WithDetails([]string{"cash_amount"})

	check.Nil(t, base.Details)
	check.Equal(t, []string{"cash_amount"}, withDetails.ToHTTPError().Details.([]string))
	check.Equal(t, http.StatusUnprocessableEntity, withDetails.HTTPStatus)
}
