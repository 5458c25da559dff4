package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRecurrenceRule(t *testing.T) {
	tests := []struct {
		name string
		freq Frequency
		date string
		want string
	}{
		{"weekly on a Monday", FrequencyWeekly, "2024-06-10", "FREQ=WEEKLY;INTERVAL=1;BYDAY=MO"},
		{"weekly on a Sunday", FrequencyWeekly, "2024-06-09", "FREQ=WEEKLY;INTERVAL=1;BYDAY=SU"},
		{"weekly on a Saturday", FrequencyWeekly, "2024-06-08", "FREQ=WEEKLY;INTERVAL=1;BYDAY=SA"},
		{"biweekly on a Monday", FrequencyBiweekly, "2024-06-10", "FREQ=WEEKLY;INTERVAL=2;BYDAY=MO"},
		{"monthly mid-month", FrequencyMonthly, "2024-06-15", "FREQ=MONTHLY;INTERVAL=1;BYMONTHDAY=15"},
		{"monthly on the 1st", FrequencyMonthly, "2024-07-01", "FREQ=MONTHLY;INTERVAL=1;BYMONTHDAY=1"},
		{"monthly on the 31st", FrequencyMonthly, "2024-01-31", "FREQ=MONTHLY;INTERVAL=1;BYMONTHDAY=31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildRecurrenceRule(tt.freq, tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildRecurrenceRule_MissingDate(t *testing.T) {
	_, err := BuildRecurrenceRule(FrequencyWeekly, "")
	assert.ErrorIs(t, err, ErrMissingDate)
}

func TestBuildRecurrenceRule_UnparseableDate(t *testing.T) {
	for _, date := range []string{"06/10/2024", "2024-13-01", "not-a-date", "2024-06-10T00:00:00Z"} {
		_, err := BuildRecurrenceRule(FrequencyWeekly, date)
		assert.ErrorIs(t, err, ErrInvalidDate, "date %q", date)
	}
}

func TestBuildRecurrenceRule_InvalidFrequency(t *testing.T) {
	_, err := BuildRecurrenceRule(Frequency("daily"), "2024-06-10")
	assert.ErrorIs(t, err, ErrInvalidFrequency)
}

func TestRuleLabel(t *testing.T) {
	tests := []struct {
		rule string
		want string
	}{
		{"FREQ=WEEKLY;INTERVAL=1;BYDAY=MO", "Weekly"},
		{"FREQ=WEEKLY;INTERVAL=2;BYDAY=FR", "Every 2 weeks"},
		{"FREQ=MONTHLY;INTERVAL=1;BYMONTHDAY=15", "Monthly"},
		{"", "Does not repeat"},
		{"FREQ=DAILY;INTERVAL=1", "Does not repeat"},
		{"garbage", "Does not repeat"},
		{"freq=weekly;interval=2;byday=mo", "Every 2 weeks"}, // tolerant of case
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RuleLabel(tt.rule), "rule %q", tt.rule)
	}
}

func TestRuleRoundTrip(t *testing.T) {
	rule, err := BuildRecurrenceRule(FrequencyBiweekly, "2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, "Every 2 weeks", RuleLabel(rule))
}
