package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jekabolt/grbpwr-community/internal/metrics"
)

// instrument counts requests per endpoint and observes response latency.
func instrument() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			start := time.Now()
			next.ServeHTTP(ww, r)
			duration := float64(time.Since(start)) * 1e-6 // to millisecond

			// the route pattern keeps the label set bounded under path scans
			endpoint := chi.RouteContext(r.Context()).RoutePattern()
			if endpoint == "" {
				endpoint = "unmatched"
			}

			metrics.RequestsCount.WithLabelValues(
				strconv.Itoa(ww.Status()),
				r.Method,
				endpoint,
			).Inc()
			metrics.ResponseTime.Observe(duration)
		})
	}
}
