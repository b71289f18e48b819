package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics defines counters for the relay's object lifecycle.
type Metrics interface {
	IncStored()
	IncFetched()
	IncRemoved()
	AddSwept(count int)
	IncSweepErrors()
}

// Noop implements Metrics without emitting anything.
type Noop struct{}

func (Noop) IncStored()      {}
func (Noop) IncFetched()     {}
func (Noop) IncRemoved()     {}
func (Noop) AddSwept(int)    {}
func (Noop) IncSweepErrors() {}

// Prom implements Metrics backed by Prometheus counters.
type Prom struct {
	stored      prometheus.Counter
	fetched     prometheus.Counter
	removed     prometheus.Counter
	swept       prometheus.Counter
	sweepErrors prometheus.Counter
	once        sync.Once
}

func NewProm(namespace string) *Prom {
	p := &Prom{
		stored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "objects_stored_total",
			Help:      "Objects stored via upload",
		}),
		fetched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "objects_fetched_total",
			Help:      "Objects fetched via download",
		}),
		removed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "objects_removed_total",
			Help:      "Objects removed via the delete endpoint",
		}),
		swept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "objects_swept_total",
			Help:      "Objects deleted by the retention sweep",
		}),
		sweepErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_errors_total",
			Help:      "Per-object delete failures during sweeps",
		}),
	}
	p.register()
	return p
}

func (p *Prom) register() {
	p.once.Do(func() {
		prometheus.MustRegister(p.stored, p.fetched, p.removed, p.swept, p.sweepErrors)
	})
}

func (p *Prom) IncStored()  { p.stored.Inc() }
func (p *Prom) IncFetched() { p.fetched.Inc() }
func (p *Prom) IncRemoved() { p.removed.Inc() }

func (p *Prom) AddSwept(count int) {
	p.swept.Add(float64(count))
}

func (p *Prom) IncSweepErrors() { p.sweepErrors.Inc() }

// Handler returns an HTTP handler for /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
