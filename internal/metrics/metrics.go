package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	MatchesFound = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "barter_matches_found_total", Help: "Total match pairs returned to callers"},
	)
	ExchangesInitiated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "barter_exchanges_initiated_total", Help: "Total exchanges created"},
	)
	MessagesSent = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "barter_messages_sent_total", Help: "Total messages appended to exchanges"},
	)
)

func Register() {
	prometheus.MustRegister(MatchesFound, ExchangesInitiated, MessagesSent)
}
