package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToLocalEditable(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{
			name:  "utc instant with z suffix",
			input: "2024-01-02T03:04:00.000Z",
			want:  "2024-01-02T12:04",
		},
		{
			name:  "naive backend datetime treated as utc",
			input: "2024-01-02T03:04:05.123456",
			want:  "2024-01-02T12:04",
		},
		{
			name:  "seconds truncated not rounded",
			input: "2024-01-02T03:04:59Z",
			want:  "2024-01-02T12:04",
		},
		{
			name:  "date rolls over at the offset boundary",
			input: "2024-06-30T16:30:00Z",
			want:  "2024-07-01T01:30",
		},
		{
			name:    "garbage input",
			input:   "not-a-date",
			wantErr: ErrInvalidTimestamp,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrInvalidTimestamp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToLocalEditable(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToUTCISO(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{
			name:  "jst wall clock to utc",
			input: "2024-01-02T12:04",
			want:  "2024-01-02T03:04:00.000Z",
		},
		{
			name:  "jst morning crosses into previous utc day",
			input: "2024-07-01T01:30",
			want:  "2024-06-30T16:30:00.000Z",
		},
		{
			name:  "seconds in the input are truncated",
			input: "2024-01-02T12:04:30",
			want:  "2024-01-02T03:04:00.000Z",
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrMissingTimestamp,
		},
		{
			name:    "garbage input",
			input:   "yesterday-ish",
			wantErr: ErrInvalidTimestamp,
		},
		{
			name:    "month out of range",
			input:   "2024-13-01T00:00",
			wantErr: ErrInvalidTimestamp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToUTCISO(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Minute-precision UTC instants survive a full local round trip unchanged.
func TestRoundTrip(t *testing.T) {
	instants := []string{
		"2024-01-02T03:04:00.000Z",
		"2024-06-30T16:30:00.000Z",
		"2024-12-31T15:00:00.000Z",
	}

	for _, instant := range instants {
		local, err := ToLocalEditable(instant)
		require.NoError(t, err)

		back, err := ToUTCISO(local)
		require.NoError(t, err)
		assert.Equal(t, instant, back)
	}
}

func TestDayRange(t *testing.T) {
	start, end, err := DayRange("2024-05-02", "2024-05-02")
	require.NoError(t, err)
	// A JST day runs from 15:00 UTC the previous day.
	assert.Equal(t, "2024-05-01T15:00:00Z", start.Format(time.RFC3339))
	assert.Equal(t, "2024-05-02T15:00:00Z", end.Format(time.RFC3339))

	_, _, err = DayRange("", "2024-05-02")
	assert.ErrorIs(t, err, ErrMissingTimestamp)

	_, _, err = DayRange("2024-05-02", "")
	assert.ErrorIs(t, err, ErrMissingTimestamp)

	_, _, err = DayRange("02-05-2024", "2024-05-02")
	assert.ErrorIs(t, err, ErrInvalidTimestamp)

	_, _, err = DayRange("2024-05-03", "2024-05-02")
	assert.ErrorIs(t, err, ErrInvalidTimestamp)
}

// Sub-minute precision is lost by design.
func TestRoundTripTruncatesSeconds(t *testing.T) {
	local, err := ToLocalEditable("2024-01-02T03:04:45.500Z")
	require.NoError(t, err)

	back, err := ToUTCISO(local)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02T03:04:00.000Z", back)
}
