package main

import (
	"flag"
	"fmt"
	"strings"
	"time"
)

type cliConfig struct {
	Mode       string
	ConfigPath string
	Namespace  string
	Region     string
	Type       string
	Output     string

	Backend   string
	PgConnStr string
	Timeout   time.Duration
	Retries   int

	EsAddresses string
	EsIndex     string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.Mode, "mode", "report", "Run mode: report, metrics, or serve")
	flag.StringVar(&cfg.ConfigPath, "config", "configs/benchmarks.yaml", "Path to benchmark catalog YAML")
	flag.StringVar(&cfg.Namespace, "namespace", "", "Metrics namespace (default: the production benchmark namespace)")
	flag.StringVar(&cfg.Region, "region", "", "Region for alarm console links and the CloudWatch client")
	flag.StringVar(&cfg.Type, "type", "", "Benchmark type to report on (default: all known types)")
	flag.StringVar(&cfg.Output, "output", "", "Output path for the JSON report artifact")

	flag.StringVar(&cfg.Backend, "backend", "cloudwatch", "Metrics backend: cloudwatch or postgres")
	flag.StringVar(&cfg.PgConnStr, "pg", "", "PostgreSQL connection string (postgres backend)")
	flag.DurationVar(&cfg.Timeout, "timeout", 30*time.Second, "Per-request backend timeout")
	flag.IntVar(&cfg.Retries, "retries", 3, "Max attempts per backend request (cloudwatch backend)")

	flag.StringVar(&cfg.EsAddresses, "es-addresses", "", "Elasticsearch addresses for archiving fetches, comma-separated")
	flag.StringVar(&cfg.EsIndex, "es-index", "benchmark-fetches", "Elasticsearch archive index name")

	flag.Parse()
	return cfg
}

func (c cliConfig) parseEsAddresses() ([]string, error) {
	var addrs []string
	for _, a := range strings.Split(c.EsAddresses, ",") {
		a = strings.TrimSpace(a)
		if a != "" {
			addrs = append(addrs, a)
		}
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("no Elasticsearch addresses in %q", c.EsAddresses)
	}
	return addrs, nil
}
