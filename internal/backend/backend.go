package backend

import (
	"context"
	"time"
)

type Statistic string

const StatisticAverage Statistic = "Average"

// StatWindow describes one aggregated statistics query.
type StatWindow struct {
	Start     time.Time
	End       time.Time
	Period    time.Duration
	Statistic Statistic
}

// PeriodSeconds returns the aggregation period the way metric backends
// expect it, never below one second.
func (w StatWindow) PeriodSeconds() int32 {
	s := int32(w.Period / time.Second)
	if s < 1 {
		return 1
	}
	return s
}

type Datapoint struct {
	Value     float64
	Timestamp time.Time
}

type AlarmState string

const (
	AlarmStateOK           AlarmState = "OK"
	AlarmStateFiring       AlarmState = "ALARM"
	AlarmStateInsufficient AlarmState = "INSUFFICIENT_DATA"
)

type Alarm struct {
	Name  string
	State AlarmState
}

// Firing reports whether the alarm has crossed its threshold.
func (a Alarm) Firing() bool {
	return a.State == AlarmStateFiring
}

// Client is the metrics-backend capability the catalog is built on.
// Implementations decide where the datapoints live.
type Client interface {
	// Statistics returns the aggregated datapoints for one metric over the
	// window, oldest first.
	Statistics(ctx context.Context, namespace, metric string, w StatWindow) ([]Datapoint, error)
	// AlarmsForMetric returns every alarm configured on a metric, in any state.
	AlarmsForMetric(ctx context.Context, namespace, metric string) ([]Alarm, error)
	// ListMetrics returns every metric name in a namespace. Backend-side
	// pagination is handled here; callers never see partial pages.
	ListMetrics(ctx context.Context, namespace string) ([]string, error)
}
