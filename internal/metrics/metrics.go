// Package metrics defines Prometheus metrics for the signup service,
// covering HTTP requests, subscription outcomes, and mail delivery.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestsCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "community_requests_total",
		Help: "Number of requests per endpoint",
	}, []string{"code", "method", "url"})
	ResponseTime = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: "community_response_time_ms",
		Help: "Response duration in milliseconds",
	})
	SubscriptionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "community_subscriptions_total",
		Help: "Number of subscription requests grouped by outcome",
	}, []string{"outcome"})
	MailSendSuccess = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "community_mail_send_success_total",
		Help: "Total number of mails delivered through the relay",
	}, []string{"host"})
	MailSendFailure = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "community_mail_send_failure_total",
		Help: "Total number of mail deliveries that failed",
	}, []string{"host"})
)

func init() {
	prometheus.MustRegister(RequestsCount)
	prometheus.MustRegister(ResponseTime)
	prometheus.MustRegister(SubscriptionsTotal)
	prometheus.MustRegister(MailSendSuccess)
	prometheus.MustRegister(MailSendFailure)
}
