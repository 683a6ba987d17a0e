package validation

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
)

var now = time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func rfc(t time.Time) string      { return t.Format(time.RFC3339) }
func days(n int) time.Duration    { return time.Duration(n) * 24 * time.Hour }

func codeOf(t *testing.T, err error) string {
	t.Helper()
	var vErr *Error
	assert.True(t, errors.As(err, &vErr))
	return vErr.Code
}

func TestValidateSettings_Success(t *testing.T) {
	event := now.Add(days(30))
	end := now.Add(days(10))

	got, err := ValidateSettings(SettingsInput{
		EndDate:               end.In(time.FixedZone("BRT", -3*3600)).Format(time.RFC3339),
		AllowBookingProposals: true,
		AllowCashProposals:    true,
		MinimumCashOffer:      floatPtr(150.5),
		AutoSelectAfterHours:  intPtr(24),
	}, event, now)

	assert.NoError(t, err)
	check.True(t, got.EndDate.Equal(end))
	check.Equal(t, "UTC", got.EndDate.Location().String())
	check.True(t, got.AllowBookingProposals)
	check.True(t, got.AllowCashProposals)
	check.Equal(t, "150.5", got.MinimumCashOffer.String())
	check.Equal(t, 24, *got.AutoSelectAfterHours)
}

func TestValidateSettings_EndDateExactlyAtLimit(t *testing.T) {
	event := now.Add(days(30))

	_, err := ValidateSettings(SettingsInput{EndDate: rfc(event.Add(-days(7))), AllowCashProposals: true}, event, now)

	check.NoError(t, err)
}

func TestValidateSettings_ValidRange(t *testing.T) {
	event := now.Add(days(21))
	for d := 1; d <= 14; d++ {
		_, err := ValidateSettings(SettingsInput{EndDate: rfc(now.Add(days(d))), AllowBookingProposals: true}, event, now)
		check.NoError(t, err)
	}
}

func TestValidateSettings_Failures(t *testing.T) {
	event := now.Add(days(30))
	valid := func() SettingsInput {
		return SettingsInput{EndDate: rfc(now.Add(days(5))), AllowBookingProposals: true}
	}

	cases := []struct {
		name  string
		in    func() SettingsInput
		event time.Time
		code  string
		field string
	}{
		{
			name:  "unparseable end date",
			in:    func() SettingsInput { in := valid(); in.EndDate = "next tuesday"; return in },
			event: event, code: CodeInvalidEndDate, field: "end_date",
		},
		{
			name:  "end date in past",
			in:    func() SettingsInput { in := valid(); in.EndDate = rfc(now.Add(-time.Hour)); return in },
			event: event, code: CodeEndDateInPast, field: "end_date",
		},
		{
			name:  "end date equal to now",
			in:    func() SettingsInput { in := valid(); in.EndDate = rfc(now); return in },
			event: event, code: CodeEndDateInPast, field: "end_date",
		},
		{
			name:  "last minute event",
			in:    valid,
			event: now.Add(days(6)), code: CodeEventLastMinute, field: "event_date",
		},
		{
			name:  "too close to event",
			in:    func() SettingsInput { in := valid(); in.EndDate = rfc(event.Add(-days(7)).Add(time.Second)); return in },
			event: event, code: CodeEndDateTooCloseToEvent, field: "end_date",
		},
		{
			name:  "auto select below one hour",
			in:    func() SettingsInput { in := valid(); in.AutoSelectAfterHours = intPtr(0); return in },
			event: event, code: CodeInvalidAutoSelectHours, field: "auto_select_after_hours",
		},
		{
			name:  "non positive minimum cash offer",
			in:    func() SettingsInput { in := valid(); in.MinimumCashOffer = floatPtr(0); return in },
			event: event, code: CodeInvalidMinimumCashOffer, field: "minimum_cash_offer",
		},
		{
			name:  "no proposal types",
			in:    func() SettingsInput { in := valid(); in.AllowBookingProposals = false; return in },
			event: event, code: CodeNoProposalTypesAllowed, field: "allow_booking_proposals",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateSettings(tc.in(), tc.event, now)
			assert.Error(t, err)

			var vErr *Error
			assert.True(t, errors.As(err, &vErr))
			check.Equal(t, tc.code, vErr.Code)
			check.Equal(t, tc.field, vErr.Field)
			check.NotEqual(t, "", vErr.Message)
		})
	}
}

func TestValidateSettings_TooCloseMessageIncludesMaximum(t *testing.T) {
	event := now.Add(days(30))

	_, err := ValidateSettings(SettingsInput{EndDate: rfc(event.Add(-days(2))), AllowCashProposals: true}, event, now)

	var vErr *Error
	assert.True(t, errors.As(err, &vErr))
	check.Equal(t, CodeEndDateTooCloseToEvent, vErr.Code)
	check.True(t, strings.Contains(vErr.Message, rfc(event.Add(-days(7)))))
}

func TestValidateSettings_LastMinuteWinsRegardlessOfEndDate(t *testing.T) {
	event := now.Add(days(3))
	for _, end := range []time.Time{now.Add(time.Hour), now.Add(days(2)), now.Add(days(10))} {
		_, err := ValidateSettings(SettingsInput{EndDate: rfc(end), AllowCashProposals: true}, event, now)
		check.Equal(t, CodeEventLastMinute, codeOf(t, err))
	}
}

func TestValidateSettings_ShortCircuitsOnFirstFailure(t *testing.T) {
	event := now.Add(days(30))

	// both auto-select and proposal toggles are invalid; only the first is reported
	_, err := ValidateSettings(SettingsInput{EndDate: rfc(now.Add(days(3))), AutoSelectAfterHours: intPtr(-2)}, event, now)

	check.Equal(t, CodeInvalidAutoSelectHours, codeOf(t, err))
}
