package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/mvelja/benchtab/internal/backend"
)

const (
	DefaultNamespace = "benchmarkai-metrics-prod"
	DefaultRegion    = "us-east-1"

	// Weekly average over a 7-day lookback yields a single datapoint per
	// metric; more than one is logged as unexpected.
	DefaultLookback = 7 * 24 * time.Hour
	DefaultPeriod   = 7 * 24 * time.Hour
)

const alarmURITemplate = "https://console.aws.amazon.com/cloudwatch/home?region=%s#alarm:alarmFilter=ANY;name=%s"

// AlarmConsoleURI builds the console link for a firing alarm.
func AlarmConsoleURI(region, alarmName string) string {
	return fmt.Sprintf(alarmURITemplate, region, alarmName)
}

// State is the catalog lifecycle. The catalog never re-fetches implicitly
// once it reaches StateFetched.
type State int

const (
	StateEmpty State = iota
	StateFetched
)

type Options struct {
	// ConfigPath points at the benchmark catalog config document.
	ConfigPath string
	// Namespace all metric and alarm queries run under.
	Namespace string
	// Region scopes the alarm console links.
	Region string
	// Lookback and Period control the statistics window.
	Lookback time.Duration
	Period   time.Duration
	// FetchOnCreate populates the catalog eagerly during New.
	FetchOnCreate bool
}

func (o *Options) applyDefaults() {
	if o.Namespace == "" {
		o.Namespace = DefaultNamespace
	}
	if o.Region == "" {
		o.Region = DefaultRegion
	}
	if o.Lookback <= 0 {
		o.Lookback = DefaultLookback
	}
	if o.Period <= 0 {
		o.Period = DefaultPeriod
	}
}

// Catalog fetches benchmark metrics declared by config from a metrics
// backend and serves them as normalized records keyed by the header schema.
// It is not safe for concurrent use without external synchronization.
type Catalog struct {
	backend backend.Client
	opts    Options

	state   State
	entries []Entry
	fetchID uuid.UUID
}

// New builds a catalog on top of a metrics backend. With FetchOnCreate set
// the catalog is populated before New returns.
func New(ctx context.Context, client backend.Client, opts Options) (*Catalog, error) {
	opts.applyDefaults()
	c := &Catalog{backend: client, opts: opts}
	if opts.FetchOnCreate {
		if err := c.Fetch(ctx); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) State() State { return c.state }

// FetchID identifies the last committed fetch pass.
func (c *Catalog) FetchID() uuid.UUID { return c.fetchID }

// Entries returns every committed (record, alarm index) pair in config order.
func (c *Catalog) Entries() []Entry { return c.entries }

// Fetch loads the config, resolves every declared benchmark against the
// backend and replaces the catalog contents. Entries with an unknown type are
// logged and skipped; a backend failure aborts the pass and commits nothing.
func (c *Catalog) Fetch(ctx context.Context) error {
	cfg, err := LoadFromFile(c.opts.ConfigPath)
	if err != nil {
		return err
	}

	fetchID := uuid.New()
	slog.Info("fetching benchmark catalog",
		"fetch_id", fetchID,
		"namespace", c.opts.Namespace,
		"benchmarks", len(cfg.Benchmarks),
	)

	entries := make([]Entry, 0, len(cfg.Benchmarks))
	for _, spec := range cfg.Benchmarks {
		headers, ok := HeadersFor(spec.Type)
		if !ok {
			slog.Error("skipping benchmark with unknown type",
				"type", spec.Type,
				"metric_prefix", spec.MetricPrefix,
			)
			continue
		}
		entry, err := c.fetchEntry(ctx, spec, headers)
		if err != nil {
			return fmt.Errorf("fetch benchmark %s: %w", spec.MetricPrefix, err)
		}
		entries = append(entries, entry)
	}

	c.entries = entries
	c.fetchID = fetchID
	c.state = StateFetched
	return nil
}

func (c *Catalog) fetchEntry(ctx context.Context, spec Spec, headers []string) (Entry, error) {
	record := Record{HeaderType: TextValue(spec.Type)}
	alarms := AlarmIndex{}

	union := make([]string, 0, len(metaInfoHeaders)+len(headers))
	union = append(union, metaInfoHeaders...)
	union = append(union, headers...)

	for _, h := range union {
		if h == HeaderType {
			continue
		}
		res := resolveHeader(spec, h)
		switch res.kind {
		case resolveUnset:
			// back-filled below
		case resolveLiteral:
			record[h] = res.literal
		case resolveMetricKey:
			metric := spec.MetricName(res.key)
			value, err := c.metricValue(ctx, metric)
			if err != nil {
				return Entry{}, err
			}
			record[h] = value
			uris, err := c.alarmURIs(ctx, metric)
			if err != nil {
				return Entry{}, err
			}
			alarms[h] = uris
		}
	}

	// Every schema header is present on the record, empty when unresolved.
	for _, h := range headers {
		if _, ok := record[h]; !ok {
			record[h] = EmptyValue
		}
	}
	return Entry{Record: record, Alarms: alarms}, nil
}

func (c *Catalog) metricValue(ctx context.Context, metric string) (Value, error) {
	slog.Info("requesting metric statistics", "metric", metric)

	end := time.Now()
	points, err := c.backend.Statistics(ctx, c.opts.Namespace, metric, backend.StatWindow{
		Start:     end.Add(-c.opts.Lookback),
		End:       end,
		Period:    c.opts.Period,
		Statistic: backend.StatisticAverage,
	})
	if err != nil {
		return Value{}, fmt.Errorf("statistics for %s: %w", metric, err)
	}
	if len(points) == 0 {
		slog.Warn("metric has no datapoints", "metric", metric)
		return EmptyValue, nil
	}
	if len(points) > 1 {
		slog.Warn("more than one datapoint returned", "metric", metric, "datapoints", len(points))
	}
	return NumberValue(round2(points[0].Value)), nil
}

func (c *Catalog) alarmURIs(ctx context.Context, metric string) ([]string, error) {
	slog.Info("requesting alarms", "metric", metric)

	alarms, err := c.backend.AlarmsForMetric(ctx, c.opts.Namespace, metric)
	if err != nil {
		return nil, fmt.Errorf("alarms for %s: %w", metric, err)
	}
	uris := make([]string, 0, len(alarms))
	for _, a := range alarms {
		if a.Firing() {
			uris = append(uris, AlarmConsoleURI(c.opts.Region, a.Name))
		}
	}
	return uris, nil
}

// Query returns the fetched entries of one type in config order, along with
// the type's declared header list. An empty catalog fetches once first;
// afterwards the cached contents are served until an explicit Fetch.
func (c *Catalog) Query(ctx context.Context, typ string) ([]Entry, []string, error) {
	headers, ok := HeadersFor(typ)
	if !ok {
		return nil, nil, &UnknownTypeError{Type: typ}
	}
	if c.state == StateEmpty {
		if err := c.Fetch(ctx); err != nil {
			return nil, nil, err
		}
	}

	matches := make([]Entry, 0)
	for _, e := range c.entries {
		if e.Record.Type() == typ {
			matches = append(matches, e)
		}
	}
	return matches, headers, nil
}

// ListAllMetrics returns every metric name currently known to the backend
// under the catalog namespace. Backend pagination is handled by the client.
func (c *Catalog) ListAllMetrics(ctx context.Context) ([]string, error) {
	names, err := c.backend.ListMetrics(ctx, c.opts.Namespace)
	if err != nil {
		return nil, fmt.Errorf("list metrics in %s: %w", c.opts.Namespace, err)
	}
	return names, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
