package http

import (
	"net/http"

	"github.com/urojiuyu1986/my-golf-app/internal/config"
	"github.com/urojiuyu1986/my-golf-app/internal/ledger"
	"github.com/urojiuyu1986/my-golf-app/internal/metrics"
	"github.com/urojiuyu1986/my-golf-app/internal/notifier"
	"github.com/urojiuyu1986/my-golf-app/internal/store"
)

func NewServer(recordStore store.RecordStore, matchLedger *ledger.Ledger, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier) *Server {
	server := &Server{
		Store:          recordStore,
		Ledger:         matchLedger,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper, so
	// adding e.g. an auth middleware later is a one-line change per route.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("POST /rounds", Chain(s.RecordRoundHandler(), paramsMiddleware))
	s.Router.Handle("GET /matches", Chain(s.ListMatchesHandler(), paramsMiddleware))
	s.Router.Handle("PUT /matches", Chain(s.ReplaceMatchesHandler(), paramsMiddleware))
	s.Router.Handle("GET /players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.Router.Handle("POST /players", Chain(s.AddPlayerHandler(), paramsMiddleware))
	s.Router.Handle("PUT /players", Chain(s.ReplacePlayersHandler(), paramsMiddleware))
	s.Router.Handle("GET /courses", Chain(s.ListCoursesHandler(), paramsMiddleware))
	s.Router.Handle("POST /courses", Chain(s.AddCourseHandler(), paramsMiddleware))
	s.Router.Handle("GET /standings", Chain(s.StandingsHandler(), paramsMiddleware))
	s.Router.Handle("POST /standings/notify", Chain(s.NotifyStandingsHandler(), paramsMiddleware))
	s.Router.Handle("POST /clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
