package keyly

// MetricsCollector receives extraction outcomes. Implementations decide
// what to do with them; the library itself carries no metrics backend.
type MetricsCollector interface {
	ExtractOK(src Source)
	ExtractFailed(src Source, code Code)
}

type Option func(*Extractor)

// WithMetrics installs a collector notified after every extraction.
func WithMetrics(m MetricsCollector) Option {
	return func(e *Extractor) {
		e.metrics = m
	}
}
