package metrics

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Sink receives operational counters and timings. Implementations must be
// safe for concurrent use. Callers treat delivery as fire-and-forget:
// failures are never surfaced to the primary operation.
type Sink interface {
	Increment(name string, tags map[string]string)                // Adds 1 to the named counter
	Observe(name string, seconds float64, tags map[string]string) // Records a duration sample
}

// PrometheusSink implements Sink on a Prometheus registry. Collectors are
// created lazily on first use of a metric name; a given name must always
// be reported with the same tag keys.
type PrometheusSink struct {
	reg prometheus.Registerer

	mu         sync.Mutex
	counters   map[string]*prometheus.CounterVec
	histograms map[string]*prometheus.HistogramVec
}

// NewPrometheusSink creates a sink registering collectors on reg.
func NewPrometheusSink(reg prometheus.Registerer) *PrometheusSink {
	return &PrometheusSink{
		reg:        reg,
		counters:   make(map[string]*prometheus.CounterVec),
		histograms: make(map[string]*prometheus.HistogramVec),
	}
}

// Increment adds 1 to the named counter with the given tags.
func (s *PrometheusSink) Increment(name string, tags map[string]string) {
	s.mu.Lock()
	vec, ok := s.counters[name]
	if !ok {
		vec = prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: name},
			labelKeys(tags),
		)
		s.reg.MustRegister(vec)
		s.counters[name] = vec
	}
	s.mu.Unlock()

	vec.With(prometheus.Labels(tags)).Inc()
}

// Observe records a duration sample in seconds on the named histogram.
func (s *PrometheusSink) Observe(name string, seconds float64, tags map[string]string) {
	s.mu.Lock()
	vec, ok := s.histograms[name]
	if !ok {
		vec = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: name, Buckets: prometheus.DefBuckets},
			labelKeys(tags),
		)
		s.reg.MustRegister(vec)
		s.histograms[name] = vec
	}
	s.mu.Unlock()

	vec.With(prometheus.Labels(tags)).Observe(seconds)
}

func labelKeys(tags map[string]string) []string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
