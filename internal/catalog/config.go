package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	specKeyType   = HeaderType
	specKeyPrefix = "Metric Prefix"
	specKeySuffix = "Metric Suffix"
)

// Assignment is one explicit header binding from the config. Null records an
// explicit null, which shadows the schema default key for that header.
type Assignment struct {
	Value string
	Null  bool
}

// Spec is one declared benchmark entry.
type Spec struct {
	Type         string
	MetricPrefix string
	MetricSuffix string
	Assignments  map[string]Assignment
}

// MetricName composes the fully qualified metric name for a key.
func (s Spec) MetricName(key string) string {
	return fmt.Sprintf("%s.%s.%s", s.MetricPrefix, key, s.MetricSuffix)
}

// Config is the parsed benchmark catalog configuration.
type Config struct {
	Benchmarks []Spec
}

// LoadFromFile reads and parses a benchmark config document.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrConfig, path, err)
	}
	return Parse(data)
}

// Parse parses a benchmark config document. The document must carry a
// top-level `benchmarks` list; each entry needs Type, Metric Prefix and
// Metric Suffix, and may bind any subset of header names.
func Parse(data []byte) (*Config, error) {
	var doc struct {
		Benchmarks *[]map[string]any `yaml:"benchmarks"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse YAML: %w", ErrConfig, err)
	}
	if doc.Benchmarks == nil {
		return nil, fmt.Errorf("%w: missing top-level benchmarks key", ErrConfig)
	}

	cfg := &Config{Benchmarks: make([]Spec, 0, len(*doc.Benchmarks))}
	for i, entry := range *doc.Benchmarks {
		spec, err := parseSpec(entry)
		if err != nil {
			return nil, fmt.Errorf("%w: benchmark at index %d: %w", ErrConfig, i, err)
		}
		cfg.Benchmarks = append(cfg.Benchmarks, spec)
	}
	return cfg, nil
}

func parseSpec(entry map[string]any) (Spec, error) {
	typ, err := requireString(entry, specKeyType)
	if err != nil {
		return Spec{}, err
	}
	prefix, err := requireString(entry, specKeyPrefix)
	if err != nil {
		return Spec{}, err
	}
	suffix, err := requireString(entry, specKeySuffix)
	if err != nil {
		return Spec{}, err
	}

	spec := Spec{
		Type:         typ,
		MetricPrefix: prefix,
		MetricSuffix: suffix,
		Assignments:  make(map[string]Assignment),
	}
	for k, v := range entry {
		if k == specKeyType || k == specKeyPrefix || k == specKeySuffix {
			continue
		}
		if v == nil {
			spec.Assignments[k] = Assignment{Null: true}
			continue
		}
		spec.Assignments[k] = Assignment{Value: scalarString(v)}
	}
	return spec, nil
}

func requireString(entry map[string]any, key string) (string, error) {
	v, ok := entry[key]
	if !ok || v == nil {
		return "", fmt.Errorf("missing %q", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%q must be a non-empty string", key)
	}
	return s, nil
}

func scalarString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
