package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bookingsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookings_submitted_total",
		Help: "Bookings accepted from the public form",
	})

	bookingStatusUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_status_updates_total",
		Help: "Booking status changes applied by admins, by new status",
	}, []string{"status"})
)
