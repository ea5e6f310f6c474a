// Package telemetry exports bridge activity as Prometheus metrics.
package telemetry

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gerri-robotics/g1bridge-go/pkg/g1"
	"github.com/gerri-robotics/g1bridge-go/pkg/g1/logging"
)

// Dispatch outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeSDKError = "sdk_error"
	OutcomeFailed   = "failed"
)

// Metrics implements g1.Observer.
type Metrics struct {
	dispatch    *prometheus.CounterVec
	handles     *prometheus.GaugeVec
	channelInit *prometheus.CounterVec
}

var _ g1.Observer = (*Metrics)(nil)

// NewMetrics registers the bridge collectors with reg. A nil reg uses the
// default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		dispatch: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "g1bridge",
			Name:      "dispatch_total",
			Help:      "Bridge calls by handle kind, operation and outcome.",
		}, []string{"kind", "op", "outcome"}),
		handles: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "g1bridge",
			Name:      "handles_live",
			Help:      "Live client handles by kind.",
		}, []string{"kind"}),
		channelInit: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "g1bridge",
			Name:      "channel_init_total",
			Help:      "Channel initialization attempts by result.",
		}, []string{"result"}),
	}
}

func (m *Metrics) ObserveDispatch(kind g1.HandleKind, op string, code int32, failed bool) {
	outcome := OutcomeOK
	switch {
	case failed:
		outcome = OutcomeFailed
	case code != g1.StatusOK:
		outcome = OutcomeSDKError
	}
	m.dispatch.WithLabelValues(string(kind), op, outcome).Inc()
}

func (m *Metrics) ObserveHandles(kind g1.HandleKind, delta int) {
	m.handles.WithLabelValues(string(kind)).Add(float64(delta))
}

func (m *Metrics) ObserveChannelInit(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.channelInit.WithLabelValues(result).Inc()
}

// Handler serves the metrics gathered by g. A nil g uses the default
// gatherer.
func Handler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func Serve(ctx context.Context, addr string, g prometheus.Gatherer, log logging.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(g))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info(ctx, "serving metrics", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
