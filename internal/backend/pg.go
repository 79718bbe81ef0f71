package backend

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresConfig struct {
	ConnStr string
	// RequestTimeout bounds every individual query.
	RequestTimeout time.Duration
}

// Postgres implements Client against a self-hosted benchmark result store,
// for running reports without CloudWatch access. Expected tables:
//
//	benchmark_datapoints(namespace, metric, value, recorded_at)
//	benchmark_alarms(namespace, metric, name, state)
type Postgres struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewPostgres(ctx context.Context, cfg PostgresConfig) (*Postgres, error) {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}

	pool, err := pgxpool.New(ctx, cfg.ConnStr)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping result store: %w", err)
	}

	return &Postgres{pool: pool, timeout: cfg.RequestTimeout}, nil
}

func (p *Postgres) Close() {
	p.pool.Close()
}

// Ping checks the result store connection.
func (p *Postgres) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *Postgres) Statistics(ctx context.Context, namespace, metric string, w StatWindow) ([]Datapoint, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	// One aggregate per window; the weekly period over a 7-day lookback
	// matches the single-bucket answer CloudWatch gives.
	const query = `
		SELECT avg(value), max(recorded_at)
		FROM benchmark_datapoints
		WHERE namespace = $1 AND metric = $2
		  AND recorded_at >= $3 AND recorded_at < $4`

	var avg *float64
	var recordedAt *time.Time
	if err := p.pool.QueryRow(ctx, query, namespace, metric, w.Start, w.End).Scan(&avg, &recordedAt); err != nil {
		return nil, fmt.Errorf("query datapoints: %w", err)
	}
	if avg == nil {
		return nil, nil
	}

	dp := Datapoint{Value: *avg}
	if recordedAt != nil {
		dp.Timestamp = *recordedAt
	}
	return []Datapoint{dp}, nil
}

func (p *Postgres) AlarmsForMetric(ctx context.Context, namespace, metric string) ([]Alarm, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	const query = `
		SELECT name, state
		FROM benchmark_alarms
		WHERE namespace = $1 AND metric = $2
		ORDER BY name`

	rows, err := p.pool.Query(ctx, query, namespace, metric)
	if err != nil {
		return nil, fmt.Errorf("query alarms: %w", err)
	}
	defer rows.Close()

	var alarms []Alarm
	for rows.Next() {
		var a Alarm
		if err := rows.Scan(&a.Name, &a.State); err != nil {
			return nil, fmt.Errorf("scan alarm: %w", err)
		}
		alarms = append(alarms, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read alarms: %w", err)
	}
	return alarms, nil
}

func (p *Postgres) ListMetrics(ctx context.Context, namespace string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	const query = `
		SELECT DISTINCT metric
		FROM benchmark_datapoints
		WHERE namespace = $1
		ORDER BY metric`

	rows, err := p.pool.Query(ctx, query, namespace)
	if err != nil {
		return nil, fmt.Errorf("query metrics: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan metric name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read metric names: %w", err)
	}
	return names, nil
}
