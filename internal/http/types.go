package http

import (
	"net/http"

	"github.com/urojiuyu1986/my-golf-app/internal/config"
	"github.com/urojiuyu1986/my-golf-app/internal/ledger"
	"github.com/urojiuyu1986/my-golf-app/internal/metrics"
	"github.com/urojiuyu1986/my-golf-app/internal/notifier"
	"github.com/urojiuyu1986/my-golf-app/internal/store"
)

type Server struct {
	Store          store.RecordStore
	Ledger         *ledger.Ledger
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *http.ServeMux
}
