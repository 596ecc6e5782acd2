package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericIDUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want NumericID
	}{
		{`3`, 3},
		{`"3"`, 3},
		{`" 12 "`, 12},
		{`""`, 0},
		{`null`, 0},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			var req BookingRequest
			require.NoError(t, json.Unmarshal([]byte(`{"service_id":`+tc.in+`}`), &req))
			assert.Equal(t, tc.want, req.ServiceID)
		})
	}

	for _, bad := range []string{`"ants"`, `1.5`, `"1.5"`, `true`} {
		t.Run("rejects "+bad, func(t *testing.T) {
			var id NumericID
			err := json.Unmarshal([]byte(bad), &id)
			assert.True(t, errors.Is(err, ErrInvalidID))
		})
	}
}

func TestNewBookingEmptyServiceIDIsMissing(t *testing.T) {
	var req BookingRequest
	raw := `{"name":"Jane","email":"jane@x.com","phone":"090","address":"1 Main St",` +
		`"service_id":"","preferred_date":"2025-01-10","preferred_time":"09:00"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &req))

	_, err := NewBooking(req, time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"service_id"}, ve.Fields)
	assert.Equal(t, "missing required fields: service_id", ve.Error())
}
