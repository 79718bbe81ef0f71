package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// PingHealthChecker reports healthy while a ping callback succeeds, e.g. a
// result-store connection check.
type PingHealthChecker struct {
	ping func(ctx context.Context) error
}

func NewPingHealthChecker(ping func(ctx context.Context) error) *PingHealthChecker {
	return &PingHealthChecker{ping: ping}
}

func (hc *PingHealthChecker) Healthy(ctx context.Context) bool {
	return hc.ping(ctx) == nil
}

// OkHealthChecker always reports healthy, for backends without a cheap ping.
type OkHealthChecker struct{}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}
