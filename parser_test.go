package bjtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ParseTimeString_FullInstant(t *testing.T) {
	svc := NewService()

	got, ok := svc.ParseTimeString("2023-11-15 14:30:00")
	require.True(t, ok)
	assert.Equal(t, "2023-11-15 14:30:00", got.Format(LayoutDateTime))
	assert.Equal(t, Beijing, got.Location())
}

func TestService_ParseTimeString_ClockTime(t *testing.T) {
	fixedNow := time.Date(2026, 1, 27, 10, 0, 42, 0, Beijing)
	svc := fixedService(fixedNow)

	tests := []struct {
		input string
		want  string
	}{
		{"14:30", "2026-01-27 14:30:00"},
		{"00:00", "2026-01-27 00:00:00"},
		{"23:59", "2026-01-27 23:59:00"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := svc.ParseTimeString(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.Format(LayoutDateTime))
			assert.Zero(t, got.Second())
		})
	}
}

func TestService_ParseTimeString_Invalid(t *testing.T) {
	svc := NewService()

	inputs := []string{
		"",
		"not-a-time",
		"25:99",
		"12:60",
		"14:30:00",
		"2023-11-15 14:30",
		"2023-13-01 10:00:00",
		"2023-11-32 10:00:00",
		"2023-11-15 25:00:00",
		"昨天",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, ok := svc.ParseTimeString(input)
			assert.False(t, ok)
			assert.True(t, got.IsZero())
		})
	}
}

func TestService_NextOccurrence(t *testing.T) {
	tests := []struct {
		name  string
		now   time.Time
		input string
		want  string
	}{
		{
			name:  "target still ahead today",
			now:   time.Date(2024, 1, 1, 10, 0, 0, 0, Beijing),
			input: "14:30",
			want:  "2024-01-01 14:30:00",
		},
		{
			name:  "target already passed today",
			now:   time.Date(2024, 1, 1, 15, 0, 0, 0, Beijing),
			input: "14:30",
			want:  "2024-01-02 14:30:00",
		},
		{
			name:  "exact clock time keeps today",
			now:   time.Date(2024, 1, 1, 14, 30, 0, 0, Beijing),
			input: "14:30",
			want:  "2024-01-01 14:30:00",
		},
		{
			// The comparison looks at the clock time only, so a full-form
			// input with a stale date rolls by a single day at most.
			name:  "full instant compared by clock time only",
			now:   time.Date(2024, 1, 1, 10, 0, 0, 0, Beijing),
			input: "2020-05-05 09:00:00",
			want:  "2020-05-06 09:00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := fixedService(tt.now)
			got, err := svc.NextOccurrence(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format(LayoutDateTime))
		})
	}
}

func TestService_NextOccurrence_InvalidFormat(t *testing.T) {
	svc := NewService()

	_, err := svc.NextOccurrence("abc")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFormat)
	assert.Contains(t, err.Error(), "abc")
}
