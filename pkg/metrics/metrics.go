// Package metrics uygulamanın Prometheus sayaçları.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "undangan"

var (
	// LoginAttempts result: success, invalid, rate_limited, error
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "login_attempts_total",
		Help:      "Total number of admin login attempts by result.",
	}, []string{"result"})

	// RSVPSubmissions result: accepted, already_responded, not_found, invalid, error
	RSVPSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "rsvp",
		Name:      "submissions_total",
		Help:      "Total number of RSVP submissions by result.",
	}, []string{"result"})

	GuestsImported = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "guests",
		Name:      "imported_total",
		Help:      "Total number of guests created from spreadsheet imports.",
	})

	// Uploads result: stored, rejected, failed
	Uploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "storage",
		Name:      "uploads_total",
		Help:      "Total number of file uploads by result.",
	}, []string{"result"})
)
