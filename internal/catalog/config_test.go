package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		yaml := `
benchmarks:
  - Type: Training CV
    Metric Prefix: mxnet.resnet50
    Metric Suffix: p3_16xlarge
    Framework: MXNet
    Model: ResNet-50
    Top 1 Val Acc: top1_val_acc
    Num Instances: 4
`
		cfg, err := Parse([]byte(yaml))
		require.NoError(t, err)
		require.Len(t, cfg.Benchmarks, 1)

		spec := cfg.Benchmarks[0]
		assert.Equal(t, "Training CV", spec.Type)
		assert.Equal(t, "mxnet.resnet50", spec.MetricPrefix)
		assert.Equal(t, "p3_16xlarge", spec.MetricSuffix)
		assert.Equal(t, Assignment{Value: "MXNet"}, spec.Assignments["Framework"])
		assert.Equal(t, Assignment{Value: "top1_val_acc"}, spec.Assignments["Top 1 Val Acc"])

		// Non-string scalars come through as their printed form.
		assert.Equal(t, Assignment{Value: "4"}, spec.Assignments["Num Instances"])
	})

	t.Run("explicit null assignment is kept", func(t *testing.T) {
		yaml := `
benchmarks:
  - Type: Training CV
    Metric Prefix: p
    Metric Suffix: s
    Time to Train:
`
		cfg, err := Parse([]byte(yaml))
		require.NoError(t, err)

		a, ok := cfg.Benchmarks[0].Assignments["Time to Train"]
		require.True(t, ok)
		assert.True(t, a.Null)
	})

	t.Run("missing benchmarks key", func(t *testing.T) {
		_, err := Parse([]byte(`other: []`))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfig)
		assert.Contains(t, err.Error(), "benchmarks")
	})

	t.Run("empty benchmarks list is valid", func(t *testing.T) {
		cfg, err := Parse([]byte(`benchmarks: []`))
		require.NoError(t, err)
		assert.Empty(t, cfg.Benchmarks)
	})

	t.Run("malformed YAML", func(t *testing.T) {
		_, err := Parse([]byte("benchmarks: ["))
		assert.ErrorIs(t, err, ErrConfig)
	})

	t.Run("entry missing required key", func(t *testing.T) {
		yaml := `
benchmarks:
  - Type: Training CV
    Metric Prefix: p
`
		_, err := Parse([]byte(yaml))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfig)
		assert.Contains(t, err.Error(), "Metric Suffix")
	})
}

func TestLoadFromFile(t *testing.T) {
	t.Run("file present", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "benchmarks.yaml")
		content := `
benchmarks:
  - Type: Inference
    Metric Prefix: p
    Metric Suffix: s
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := LoadFromFile(path)
		require.NoError(t, err)
		assert.Len(t, cfg.Benchmarks, 1)
	})

	t.Run("file absent", func(t *testing.T) {
		_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, ErrConfig)
	})
}

func TestSpecMetricName(t *testing.T) {
	spec := Spec{MetricPrefix: "mxnet.resnet50", MetricSuffix: "p3_16xlarge"}
	assert.Equal(t, "mxnet.resnet50.throughput.p3_16xlarge", spec.MetricName("throughput"))
}
