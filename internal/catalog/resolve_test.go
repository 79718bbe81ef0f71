package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveHeader(t *testing.T) {
	base := Spec{
		Type:         TypeTrainingCV,
		MetricPrefix: "p",
		MetricSuffix: "s",
	}

	t.Run("explicit categorical value is literal", func(t *testing.T) {
		spec := base
		spec.Assignments = map[string]Assignment{"Model": {Value: "ResNet-50"}}

		res := resolveHeader(spec, "Model")
		assert.Equal(t, resolveLiteral, res.kind)
		assert.Equal(t, TextValue("ResNet-50"), res.literal)
	})

	t.Run("explicit measurable value is a metric key", func(t *testing.T) {
		spec := base
		spec.Assignments = map[string]Assignment{"Top 1 Val Acc": {Value: "top1_val_acc"}}

		res := resolveHeader(spec, "Top 1 Val Acc")
		assert.Equal(t, resolveMetricKey, res.kind)
		assert.Equal(t, "top1_val_acc", res.key)
	})

	t.Run("explicit value overrides the default key", func(t *testing.T) {
		spec := base
		spec.Assignments = map[string]Assignment{"Throughput": {Value: "images_per_sec"}}

		res := resolveHeader(spec, "Throughput")
		assert.Equal(t, resolveMetricKey, res.kind)
		assert.Equal(t, "images_per_sec", res.key)
	})

	t.Run("omitted measurable header falls back to the default key", func(t *testing.T) {
		spec := base
		spec.Assignments = map[string]Assignment{}

		res := resolveHeader(spec, "Throughput")
		assert.Equal(t, resolveMetricKey, res.kind)
		assert.Equal(t, "throughput", res.key)
	})

	t.Run("explicit null shadows the default key", func(t *testing.T) {
		spec := base
		spec.Assignments = map[string]Assignment{"Throughput": {Null: true}}

		res := resolveHeader(spec, "Throughput")
		assert.Equal(t, resolveUnset, res.kind)
	})

	t.Run("header with no assignment and no default is unset", func(t *testing.T) {
		spec := base
		spec.Assignments = map[string]Assignment{}

		res := resolveHeader(spec, "Top 1 Val Acc")
		assert.Equal(t, resolveUnset, res.kind)
	})

	t.Run("meta header value is literal", func(t *testing.T) {
		spec := base
		spec.Assignments = map[string]Assignment{HeaderDashboardURI: {Value: "https://example.com/dash"}}

		res := resolveHeader(spec, HeaderDashboardURI)
		assert.Equal(t, resolveLiteral, res.kind)
		assert.Equal(t, "https://example.com/dash", res.literal.Text)
	})
}
