package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquariuspest/booking-api/internal/api/shared"
	"github.com/aquariuspest/booking-api/internal/domain"
	"github.com/aquariuspest/booking-api/internal/store"
)

func TestBookingEndToEnd(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	token := srv.login(t)

	payload := bookingPayload()
	payload["status"] = "completed"
	rec := srv.do(t, http.MethodPost, "/api/bookings", "", payload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[BookingResponse](t, rec)
	assert.Equal(t, "Booking created successfully", created.Message)
	assert.Equal(t, domain.BookingStatusPending, created.Booking.Status)
	require.NotNil(t, created.Booking.ServiceName)
	assert.Equal(t, "Ant Control", *created.Booking.ServiceName)

	path := "/api/admin/bookings/" + itoa(created.Booking.ID)
	rec = srv.do(t, http.MethodPut, path, token, UpdateStatusRequest{Status: "confirmed"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[BookingResponse](t, rec)
	assert.Equal(t, "Booking updated successfully", updated.Message)
	assert.Equal(t, domain.BookingStatusConfirmed, updated.Booking.Status)

	rec = srv.do(t, http.MethodPut, path, token, UpdateStatusRequest{Status: "bogus"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid status", decode[shared.ErrorResponse](t, rec).Message)

	rec = srv.do(t, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.BookingStatusConfirmed, decode[domain.Booking](t, rec).Status)
}

func TestSubmitBookingValidation(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	tests := []struct {
		name    string
		mutate  func(map[string]any)
		message string
	}{
		{"missing name and phone", func(p map[string]any) { delete(p, "name"); p["phone"] = "  " }, "missing required fields: name, phone"},
		{"bad date", func(p map[string]any) { p["preferred_date"] = "10/01/2025" }, "preferred_date must be YYYY-MM-DD"},
		{"unknown service", func(p map[string]any) { p["service_id"] = 99 }, "Invalid entity data"},
		{"empty service id", func(p map[string]any) { p["service_id"] = "" }, "missing required fields: service_id"},
		{"non-numeric service id", func(p map[string]any) { p["service_id"] = "ants" }, "Invalid request format"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := bookingPayload()
			tc.mutate(p)
			rec := srv.do(t, http.MethodPost, "/api/bookings", "", p)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.message, decode[shared.ErrorResponse](t, rec).Message)
		})
	}

	bookings, err := srv.db.Bookings().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestSubmitBookingAcceptsStringServiceID(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	p := bookingPayload()
	p["service_id"] = "2"
	rec := srv.do(t, http.MethodPost, "/api/bookings", "", p)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	b := decode[BookingResponse](t, rec).Booking
	assert.Equal(t, int64(2), b.ServiceID)
	require.NotNil(t, b.ServiceName)
	assert.Equal(t, "Roach Control", *b.ServiceName)
}

func TestListBookingsAfterServiceDeleted(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	token := srv.login(t)

	for _, serviceID := range []int{1, 2} {
		p := bookingPayload()
		p["service_id"] = serviceID
		require.Equal(t, http.StatusCreated, srv.do(t, http.MethodPost, "/api/bookings", "", p).Code)
	}
	require.Equal(t, http.StatusOK, srv.do(t, http.MethodDelete, "/api/admin/services/1", token, nil).Code)

	rec := srv.do(t, http.MethodGet, "/api/admin/bookings", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]domain.Booking](t, rec)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ID)
	require.NotNil(t, list[0].ServiceName)
	assert.Equal(t, "Roach Control", *list[0].ServiceName)
	assert.Nil(t, list[1].ServiceName)
	assert.Contains(t, rec.Body.String(), `"service_name":null`)
}

func TestUpdateBookingStatusErrors(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	token := srv.login(t)

	rec := srv.do(t, http.MethodPut, "/api/admin/bookings/42", token, UpdateStatusRequest{Status: "confirmed"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Booking not found", decode[shared.ErrorResponse](t, rec).Message)

	rec = srv.do(t, http.MethodPut, "/api/admin/bookings/abc", token, UpdateStatusRequest{Status: "confirmed"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPut, "/api/admin/bookings/1", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Request body is required", decode[shared.ErrorResponse](t, rec).Message)

	srv.db.FailWith(store.NewStoreError("booking", "update status", "database operation failed",
		errors.New("pq: password authentication failed for user booking")))
	rec = srv.do(t, http.MethodPut, "/api/admin/bookings/1", token, UpdateStatusRequest{Status: "confirmed"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode[shared.ErrorResponse](t, rec)
	assert.Equal(t, "Error updating booking", body.Message)
	assert.Len(t, body.TraceID, 32)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestBulkUpdateStatus(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	token := srv.login(t)

	for i := 0; i < 2; i++ {
		require.Equal(t, http.StatusCreated, srv.do(t, http.MethodPost, "/api/bookings", "", bookingPayload()).Code)
	}

	rec := srv.do(t, http.MethodPost, "/api/admin/bookings/status", token, BulkStatusRequest{
		IDs: []int64{1, 2, 7}, Status: "cancelled",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	result := decode[BulkStatusResponse](t, rec)
	assert.Len(t, result.Updated, 2)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, int64(7), result.Failed[0].ID)

	rec = srv.do(t, http.MethodPost, "/api/admin/bookings/status", token, BulkStatusRequest{IDs: []int64{1}, Status: "nope"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/admin/bookings/status", token, BulkStatusRequest{Status: "confirmed"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ids must not be empty", decode[shared.ErrorResponse](t, rec).Message)

	rec = srv.do(t, http.MethodPost, "/api/admin/bookings/status", token, BulkStatusRequest{IDs: []int64{0}, Status: "confirmed"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
