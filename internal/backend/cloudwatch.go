package backend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultRetryAttempts  = 3
)

type CloudWatchConfig struct {
	// Region overrides the region resolved from the environment.
	Region string
	// RequestTimeout bounds every individual backend round-trip.
	RequestTimeout time.Duration
	// RetryAttempts bounds the SDK retryer for transient failures.
	RetryAttempts int
}

// CloudWatch implements Client on top of the CloudWatch API.
type CloudWatch struct {
	client  *cloudwatch.Client
	timeout time.Duration
}

// NewCloudWatch resolves credentials and region from the environment. A
// missing region is a configuration error surfaced here, not deferred to the
// first query.
func NewCloudWatch(ctx context.Context, cfg CloudWatchConfig) (*CloudWatch, error) {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = DefaultRetryAttempts
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRetryMaxAttempts(cfg.RetryAttempts),
	}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	if awsCfg.Region == "" {
		return nil, errors.New("aws region is not configured")
	}

	return &CloudWatch{
		client:  cloudwatch.NewFromConfig(awsCfg),
		timeout: cfg.RequestTimeout,
	}, nil
}

func (c *CloudWatch) Statistics(ctx context.Context, namespace, metric string, w StatWindow) ([]Datapoint, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.client.GetMetricStatistics(ctx, &cloudwatch.GetMetricStatisticsInput{
		Namespace:  aws.String(namespace),
		MetricName: aws.String(metric),
		StartTime:  aws.Time(w.Start),
		EndTime:    aws.Time(w.End),
		Period:     aws.Int32(w.PeriodSeconds()),
		Statistics: []types.Statistic{types.Statistic(w.Statistic)},
	})
	if err != nil {
		return nil, fmt.Errorf("get metric statistics: %w", err)
	}

	points := make([]Datapoint, 0, len(out.Datapoints))
	for _, p := range out.Datapoints {
		if p.Average == nil {
			continue
		}
		dp := Datapoint{Value: *p.Average}
		if p.Timestamp != nil {
			dp.Timestamp = *p.Timestamp
		}
		points = append(points, dp)
	}
	return points, nil
}

func (c *CloudWatch) AlarmsForMetric(ctx context.Context, namespace, metric string) ([]Alarm, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.client.DescribeAlarmsForMetric(ctx, &cloudwatch.DescribeAlarmsForMetricInput{
		Namespace:  aws.String(namespace),
		MetricName: aws.String(metric),
	})
	if err != nil {
		return nil, fmt.Errorf("describe alarms: %w", err)
	}

	alarms := make([]Alarm, 0, len(out.MetricAlarms))
	for _, a := range out.MetricAlarms {
		alarms = append(alarms, Alarm{
			Name:  aws.ToString(a.AlarmName),
			State: AlarmState(a.StateValue),
		})
	}
	return alarms, nil
}

func (c *CloudWatch) ListMetrics(ctx context.Context, namespace string) ([]string, error) {
	paginator := cloudwatch.NewListMetricsPaginator(c.client, &cloudwatch.ListMetricsInput{
		Namespace: aws.String(namespace),
	})

	var names []string
	for paginator.HasMorePages() {
		page, err := c.nextMetricsPage(ctx, paginator)
		if err != nil {
			return nil, fmt.Errorf("list metrics: %w", err)
		}
		for _, m := range page.Metrics {
			names = append(names, aws.ToString(m.MetricName))
		}
	}
	return names, nil
}

func (c *CloudWatch) nextMetricsPage(ctx context.Context, p *cloudwatch.ListMetricsPaginator) (*cloudwatch.ListMetricsOutput, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return p.NextPage(ctx)
}
