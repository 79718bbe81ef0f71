package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderWithUnit(t *testing.T) {
	t.Run("measurable header gets its unit", func(t *testing.T) {
		assert.Equal(t, "Throughput (/s)", HeaderWithUnit("Throughput"))
		assert.Equal(t, "P99 Latency (ms)", HeaderWithUnit("P99 Latency"))
		assert.Equal(t, "Uptime (s)", HeaderWithUnit("Uptime"))
	})

	t.Run("dimensionless header is unchanged", func(t *testing.T) {
		assert.Equal(t, "Model", HeaderWithUnit("Model"))
		assert.Equal(t, "Framework", HeaderWithUnit("Framework"))
	})

	t.Run("unknown header is unchanged", func(t *testing.T) {
		assert.Equal(t, "No Such Header", HeaderWithUnit("No Such Header"))
	})
}

func TestHeadersFor(t *testing.T) {
	headers, ok := HeadersFor(TypeTrainingCV)
	require.True(t, ok)
	assert.Equal(t, "Framework", headers[0])
	assert.Contains(t, headers, "Top 1 Val Acc")
	assert.Contains(t, headers, "Time to Train")

	_, ok = HeadersFor("NoSuchType")
	assert.False(t, ok)
}

func TestTypes(t *testing.T) {
	types := Types()
	assert.Contains(t, types, TypeTrainingCV)
	assert.Contains(t, types, TypeInference)
	for _, typ := range types {
		assert.True(t, KnownType(typ))
	}
}

// The resolver decides literal-vs-query by classification before composing a
// metric name, and the schema keeps the two tables disjoint so a categorical
// header can never pick up a default metric key.
func TestDefaultKeysAreMeasurableOnly(t *testing.T) {
	for header := range defaultMetricKeys {
		assert.False(t, IsCategorical(header), "default key for categorical header %q", header)
		assert.False(t, IsMetaInfo(header), "default key for meta header %q", header)
	}
}

func TestSchemaHeadersAreClassified(t *testing.T) {
	// Every declared header is either categorical or has a unit/default key
	// path to a value; none is meta-info (those are added per record).
	for typ, headers := range typeHeaders {
		for _, h := range headers {
			assert.False(t, IsMetaInfo(h), "type %q declares meta header %q", typ, h)
		}
	}
}
