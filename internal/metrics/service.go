package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		RoundsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "golf_rounds_recorded_total",
			Help: "The total number of round entries recorded.",
		}),
		MatchesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "golf_matches_recorded_total",
			Help: "The total number of head-to-head match rows written to history.",
		}),
		HandicapAdjustments: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "golf_handicap_adjustments_total",
			Help: "The total number of handicap deltas applied to players.",
		}),
		Reconciliations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "golf_reconciliations_total",
			Help: "The total number of history reconciliation runs.",
		}),
		RecordDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "golf_round_record_duration_seconds",
			Help:    "The duration of recording a single round entry.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "golf_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "golf_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "golf_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.RoundsRecorded,
		s.MatchesRecorded,
		s.HandicapAdjustments,
		s.Reconciliations,
		s.RecordDuration,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncRoundsRecorded() {
	s.RoundsRecorded.Inc()
}

func (s *Service) AddMatchesRecorded(count int) {
	s.MatchesRecorded.Add(float64(count))
}

func (s *Service) IncHandicapAdjustments() {
	s.HandicapAdjustments.Inc()
}

func (s *Service) IncReconciliations() {
	s.Reconciliations.Inc()
}

func (s *Service) ObserveRecordDuration(duration float64) {
	s.RecordDuration.Observe(duration)
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
