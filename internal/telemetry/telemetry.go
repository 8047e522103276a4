// Package telemetry exposes the service's Prometheus metrics on a small
// side HTTP listener.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// MessagesSent counts successfully persisted chat messages.
	MessagesSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "vetlink_messages_sent_total",
		Help: "Number of chat messages persisted and published.",
	})

	// PresenceToggles counts completed online/offline toggles.
	PresenceToggles = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "vetlink_presence_toggles_total",
		Help: "Number of completed vet presence toggles.",
	})

	// OpenChatStreams tracks currently open chat streams.
	OpenChatStreams = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "vetlink_open_chat_streams",
		Help: "Number of chat streams currently open.",
	})
)

func init() {
	prometheus.MustRegister(MessagesSent, PresenceToggles, OpenChatStreams)
}

// Handler returns the /metrics handler for the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Serve blocks serving /metrics on addr. Run it in its own goroutine; the
// error is returned so main can log listener failures.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	return http.ListenAndServe(addr, mux)
}
