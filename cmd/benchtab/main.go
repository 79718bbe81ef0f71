package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/mvelja/benchtab/internal/archive"
	"github.com/mvelja/benchtab/internal/backend"
	"github.com/mvelja/benchtab/internal/catalog"
	"github.com/mvelja/benchtab/internal/report"
	"github.com/mvelja/benchtab/internal/router"
	"github.com/mvelja/benchtab/internal/server"
	"github.com/mvelja/benchtab/pkg/config/env"
	pkgserver "github.com/mvelja/benchtab/pkg/server"
)

func main() {
	cfg := parseFlags()
	env.LoadDotEnv(".env")
	ctx := context.Background()

	client, health, cleanup, err := newBackend(ctx, cfg)
	if err != nil {
		slog.Error("Failed to create metrics backend", "backend", cfg.Backend, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	cat, err := catalog.New(ctx, client, catalog.Options{
		ConfigPath: cfg.ConfigPath,
		Namespace:  cfg.Namespace,
		Region:     cfg.Region,
	})
	if err != nil {
		slog.Error("Failed to create catalog", "error", err)
		os.Exit(1)
	}

	switch cfg.Mode {
	case "report":
		runReport(ctx, cfg, cat)
	case "metrics":
		runMetrics(ctx, cat)
	case "serve":
		runServe(cat, health)
	default:
		slog.Error("Unknown mode", "mode", cfg.Mode)
		os.Exit(1)
	}
}

func newBackend(ctx context.Context, cfg cliConfig) (backend.Client, pkgserver.HealthChecker, func(), error) {
	switch cfg.Backend {
	case "cloudwatch":
		cw, err := backend.NewCloudWatch(ctx, backend.CloudWatchConfig{
			Region:         cfg.Region,
			RequestTimeout: cfg.Timeout,
			RetryAttempts:  cfg.Retries,
		})
		if err != nil {
			return nil, nil, nil, err
		}
		return cw, pkgserver.NewOkHealthChecker(), func() {}, nil

	case "postgres":
		if cfg.PgConnStr == "" {
			return nil, nil, nil, fmt.Errorf("postgres backend requires --pg")
		}
		pg, err := backend.NewPostgres(ctx, backend.PostgresConfig{
			ConnStr:        cfg.PgConnStr,
			RequestTimeout: cfg.Timeout,
		})
		if err != nil {
			return nil, nil, nil, err
		}
		return pg, pkgserver.NewPingHealthChecker(pg.Ping), pg.Close, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

func runReport(ctx context.Context, cfg cliConfig, cat *catalog.Catalog) {
	types := catalog.Types()
	if cfg.Type != "" {
		types = []string{cfg.Type}
	}

	var reports []*report.Report
	for _, t := range types {
		entries, headers, err := cat.Query(ctx, t)
		if err != nil {
			slog.Error("Failed to query benchmarks", "type", t, "error", err)
			os.Exit(1)
		}
		rep := report.Build(t, entries, headers)
		rep.FetchID = cat.FetchID().String()
		report.WriteTable(rep, os.Stdout)
		reports = append(reports, rep)
	}

	if cfg.Output != "" {
		if err := report.WriteJSON(reports, cfg.Output); err != nil {
			slog.Error("Failed to write JSON report", "error", err)
			os.Exit(1)
		}
		slog.Info("Report written", "path", cfg.Output)
	}

	if cfg.EsAddresses != "" {
		archiveFetch(ctx, cfg, cat)
	}
}

func archiveFetch(ctx context.Context, cfg cliConfig, cat *catalog.Catalog) {
	addrs, err := cfg.parseEsAddresses()
	if err != nil {
		slog.Error("Invalid Elasticsearch addresses", "error", err)
		os.Exit(1)
	}

	archiver, err := archive.NewArchiver(ctx, archive.ClientConfig{
		Addresses: addrs,
		IndexName: cfg.EsIndex,
		Username:  os.Getenv("ES_USERNAME"),
		Password:  os.Getenv("ES_PASSWORD"),
	})
	if err != nil {
		slog.Error("Failed to create archiver", "error", err)
		os.Exit(1)
	}

	if err := archiver.ArchiveFetch(ctx, cat.FetchID(), cat.Entries()); err != nil {
		slog.Error("Failed to archive fetch", "error", err)
		os.Exit(1)
	}
}

func runMetrics(ctx context.Context, cat *catalog.Catalog) {
	names, err := cat.ListAllMetrics(ctx)
	if err != nil {
		slog.Error("Failed to list metrics", "error", err)
		os.Exit(1)
	}
	for _, name := range names {
		fmt.Println(name)
	}
}

func runServe(cat *catalog.Catalog, health pkgserver.HealthChecker) {
	srvCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	e := echo.New()
	srv := server.NewServer(e, srvCfg)
	router.NewCatalogRouter(e, cat, health).Bind()

	if err := srv.Start(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
