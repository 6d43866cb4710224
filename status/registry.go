package status

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Registry is the central counter facade
// Components cache pointers during setup; the game loop writes directly to the atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Strings.Count()
}

// Fields returns every metric as a zap field, in key order per type
func (r *Registry) Fields() []zap.Field {
	fields := make([]zap.Field, 0, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		fields = append(fields, zap.Int64(key, v.Load()))
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		fields = append(fields, zap.String(key, v.Load()))
	})
	return fields
}
