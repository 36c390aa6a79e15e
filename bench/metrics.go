package bench

import "github.com/prometheus/client_golang/prometheus"

// Metrics exports one benchmark session's results to Prometheus. A fresh
// Metrics owns its own registry rather than registering against the
// default one, so that a process can run more than one benchmark session
// (or a test suite can run more than one Metrics) without a duplicate
// registration panic.
type Metrics struct {
	registry *prometheus.Registry

	compareDuration   *prometheus.HistogramVec
	depthExhaustions  *prometheus.CounterVec
	branchExhaustions *prometheus.CounterVec
	netMismatches     *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors for one benchmark
// session.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		compareDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "netcompare",
			Subsystem: "bench",
			Name:      "compare_duration_seconds",
			Help:      "Duration of one Comparator.Compare call, by fixture label.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"fixture"}),
		depthExhaustions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "netcompare",
			Subsystem: "bench",
			Name:      "max_depth_exhaustions_total",
			Help:      "Branches abandoned because pairing.DefaultMaxDepth was exceeded, by fixture label.",
		}, []string{"fixture"}),
		branchExhaustions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "netcompare",
			Subsystem: "bench",
			Name:      "max_n_branch_exhaustions_total",
			Help:      "Ambiguous groups abandoned because pairing.DefaultMaxNBranch was exceeded, by fixture label.",
		}, []string{"fixture"}),
		netMismatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "netcompare",
			Subsystem: "bench",
			Name:      "net_mismatches_total",
			Help:      "Net mismatches logged during a benchmark run, by fixture label.",
		}, []string{"fixture"}),
	}
	m.registry.MustRegister(m.compareDuration, m.depthExhaustions, m.branchExhaustions, m.netMismatches)
	return m
}

// Registry returns the registry the session's collectors live in, for
// wiring into an HTTP exposition handler.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// observe folds one Run's results into the session's collectors.
func (m *Metrics) observe(r Run) {
	m.compareDuration.WithLabelValues(r.Fixture).Observe(r.Duration.Seconds())
	m.depthExhaustions.WithLabelValues(r.Fixture).Add(float64(r.Stats.DepthExhaustions))
	m.branchExhaustions.WithLabelValues(r.Fixture).Add(float64(r.Stats.BranchExhaustions))
	m.netMismatches.WithLabelValues(r.Fixture).Add(float64(r.Counts.NetMismatch))
}
