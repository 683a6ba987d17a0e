package timing

import "time"

const (
	// OneWeek is the minimum buffer between an auction's end and the event it trades.
	OneWeek = 7 * 24 * time.Hour

	preferredLeadTime = 5 * 24 * time.Hour
	fallbackLeadTime  = 3 * 24 * time.Hour
	minimumRunTime    = 2 * 24 * time.Hour

	criticalWindow = 48 * time.Hour
	elevatedWindow = 2 * OneWeek
)

// Urgency classifies how close an event is.
type Urgency string

const (
	UrgencyNormal     Urgency = "normal"
	UrgencyElevated   Urgency = "elevated"
	UrgencyLastMinute Urgency = "last_minute"
	UrgencyCritical   Urgency = "critical"
	UrgencyPast       Urgency = "past"
)

// MinimumEndDate returns the latest instant an auction on this event may end.
// The name follows the buffer it enforces: the event must be at least a week
// after the auction closes.
func MinimumEndDate(eventDate time.Time) time.Time {
	return eventDate.Add(-OneWeek)
}

// IsLastMinute reports whether the event is less than a week away.
func IsLastMinute(eventDate, now time.Time) bool {
	return eventDate.Sub(now) < OneWeek
}

// SuggestedEndDate prefers ending five days before the event, then three days,
// as long as the auction still runs for more than two days. It returns false when
// neither option leaves enough running time.
func SuggestedEndDate(eventDate, now time.Time) (time.Time, bool) {
	earliest := now.Add(minimumRunTime)
	for _, lead := range []time.Duration{preferredLeadTime, fallbackLeadTime} {
		candidate := eventDate.Add(-lead)
		if candidate.After(earliest) {
			return candidate, true
		}
	}
	return time.Time{}, false
}

// Classify buckets the remaining time until the event.
func Classify(eventDate, now time.Time) Urgency {
	remaining := eventDate.Sub(now)
	switch {
	case remaining <= 0:
		return UrgencyPast
	case remaining < criticalWindow:
		return UrgencyCritical
	case remaining < OneWeek:
		return UrgencyLastMinute
	case remaining < elevatedWindow:
		return UrgencyElevated
	default:
		return UrgencyNormal
	}
}

// Advice bundles the timing figures shown to an owner before creating an auction.
type Advice struct {
	EventDate        time.Time     `json:"event_date"`
	MinimumEndDate   time.Time     `json:"minimum_end_date"`
	SuggestedEndDate *time.Time    `json:"suggested_end_date,omitempty"`
	IsLastMinute     bool          `json:"is_last_minute"`
	Urgency          Urgency       `json:"urgency"`
	TimeUntilEvent   time.Duration `json:"time_until_event"`
}

func Advise(eventDate, now time.Time) Advice {
	advice := Advice{
		EventDate:      eventDate,
		MinimumEndDate: MinimumEndDate(eventDate),
		IsLastMinute:   IsLastMinute(eventDate, now),
		Urgency:        Classify(eventDate, now),
		TimeUntilEvent: eventDate.Sub(now),
	}
	if suggested, ok := SuggestedEndDate(eventDate, now); ok {
		advice.SuggestedEndDate = &suggested
	}
	return advice
}
