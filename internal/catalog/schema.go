package catalog

import (
	"fmt"
	"sort"
)

// Meta-info headers are attached to every record regardless of type.
const (
	HeaderType         = "Type"
	HeaderDashboardURI = "DashboardUri"
)

const (
	TypeTrainingCV = "Training CV"
	TypeInference  = "Inference"
)

// typeHeaders is the fixed header schema per benchmark type, in display order.
var typeHeaders = map[string][]string{
	TypeTrainingCV: {
		"Framework", "Framework Desc", "Model", "Precision", "Benchmark Desc",
		"Instance Type", "Top 1 Val Acc", "Top 1 Train Acc", "Throughput",
		"Time to Train", "CPU Memory", "GPU Memory Mean", "GPU Memory Max",
		"Uptime",
	},
	TypeInference: {
		"Framework", "Framework Desc", "Model", "Precision", "Benchmark Desc",
		"Instance Type", "P50 Latency", "P90 Latency", "P99 Latency",
		"Throughput", "Error Rate", "CPU Memory", "GPU Memory Mean",
		"GPU Memory Max", "Uptime",
	},
}

var headerUnits = map[string]string{
	"Latency":         "ms",
	"P50 Latency":     "ms",
	"P90 Latency":     "ms",
	"P99 Latency":     "ms",
	"Throughput":      "/s",
	"Error Rate":      "%",
	"CPU Memory":      "mb",
	"GPU Memory":      "mb",
	"GPU Memory Max":  "mb",
	"GPU Memory Mean": "mb",
	"Time to Train":   "s",
	"Uptime":          "s",
}

// defaultMetricKeys supplies the metric-name key for measurable headers the
// config leaves out. Only measurable headers belong here; the categorical set
// below must stay disjoint (see schema test).
var defaultMetricKeys = map[string]string{
	"Throughput":      "throughput",
	"CPU Memory":      "cpu_memory_usage",
	"GPU Memory Max":  "gpu_memory_usage_max",
	"GPU Memory Mean": "gpu_memory_usage_mean",
	"Time to Train":   "time_to_train",
	"Uptime":          "uptime_in_seconds",
}

// categoricalHeaders carry their configured value verbatim and never turn
// into a backend query.
var categoricalHeaders = map[string]struct{}{
	"Metric Prefix":  {},
	"Metric Suffix":  {},
	"Test":           {},
	"Framework":      {},
	"Framework Desc": {},
	"Model":          {},
	"Benchmark Desc": {},
	"Instance Type":  {},
	"Num Instances":  {},
	"Precision":      {},
}

var metaInfoHeaders = []string{HeaderType, HeaderDashboardURI}

// HeadersFor returns the declared header list for a benchmark type.
func HeadersFor(typ string) ([]string, bool) {
	h, ok := typeHeaders[typ]
	return h, ok
}

// Types returns every benchmark type with a header schema, sorted.
func Types() []string {
	types := make([]string, 0, len(typeHeaders))
	for t := range typeHeaders {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// KnownType reports whether typ has a header schema.
func KnownType(typ string) bool {
	_, ok := typeHeaders[typ]
	return ok
}

// MetaInfoHeaders returns the headers attached to every record.
func MetaInfoHeaders() []string {
	return metaInfoHeaders
}

// DefaultMetricKey returns the schema fallback metric key for a header, if any.
func DefaultMetricKey(header string) (string, bool) {
	k, ok := defaultMetricKeys[header]
	return k, ok
}

// IsCategorical reports whether a header's value is carried through verbatim.
func IsCategorical(header string) bool {
	_, ok := categoricalHeaders[header]
	return ok
}

// IsMetaInfo reports whether a header is record meta-info.
func IsMetaInfo(header string) bool {
	for _, h := range metaInfoHeaders {
		if h == header {
			return true
		}
	}
	return false
}

// HeaderWithUnit appends the display unit to a header, e.g.
// "Throughput" -> "Throughput (/s)". Dimensionless headers come back unchanged.
func HeaderWithUnit(header string) string {
	unit, ok := headerUnits[header]
	if !ok {
		return header
	}
	return fmt.Sprintf("%s (%s)", header, unit)
}
