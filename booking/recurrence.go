package booking

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Frequency is how often an appointment repeats.
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

var (
	ErrMissingDate      = errors.New("recurrence reference date is required")
	ErrInvalidDate      = errors.New("recurrence reference date must be YYYY-MM-DD")
	ErrInvalidFrequency = errors.New("invalid recurrence frequency")
)

// RFC 5545 weekday tokens, indexed by time.Weekday (Sunday = 0).
var dayTokens = [7]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}

// BuildRecurrenceRule constructs the rule string sent with an
// appointment payload. Weekly and biweekly rules pin the weekday of the
// reference date; monthly rules pin its day of month. The caller must
// block submission and surface a validation error when this fails.
func BuildRecurrenceRule(freq Frequency, date string) (string, error) {
	if date == "" {
		return "", ErrMissingDate
	}
	ref, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", ErrInvalidDate
	}

	switch freq {
	case FrequencyWeekly:
		return fmt.Sprintf("FREQ=WEEKLY;INTERVAL=1;BYDAY=%s", dayTokens[ref.Weekday()]), nil
	case FrequencyBiweekly:
		return fmt.Sprintf("FREQ=WEEKLY;INTERVAL=2;BYDAY=%s", dayTokens[ref.Weekday()]), nil
	case FrequencyMonthly:
		return fmt.Sprintf("FREQ=MONTHLY;INTERVAL=1;BYMONTHDAY=%d", ref.Day()), nil
	default:
		return "", ErrInvalidFrequency
	}
}

// RuleLabel derives a display label from a stored rule. Only the FREQ
// and INTERVAL tokens matter; anything unrecognized reads as
// non-repeating.
func RuleLabel(rule string) string {
	freq, interval := parseRule(rule)

	switch freq {
	case "WEEKLY":
		if interval == 2 {
			return "Every 2 weeks"
		}
		return "Weekly"
	case "MONTHLY":
		return "Monthly"
	default:
		return "Does not repeat"
	}
}

func parseRule(rule string) (freq string, interval int) {
	interval = 1
	for _, part := range strings.Split(rule, ";") {
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		switch strings.ToUpper(strings.TrimSpace(k)) {
		case "FREQ":
			freq = strings.ToUpper(strings.TrimSpace(v))
		case "INTERVAL":
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				interval = n
			}
		}
	}
	return freq, interval
}
