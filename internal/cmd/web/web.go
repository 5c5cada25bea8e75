// Package web parses web command flags and launches the site server.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"

	entrypoint "github.com/louisbranch/showcase/internal/platform/cmd"
	"github.com/louisbranch/showcase/internal/services/web"
	"github.com/louisbranch/showcase/internal/services/web/platform/observability"
	"github.com/louisbranch/showcase/internal/services/web/storage/sqlite"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string `env:"SHOWCASE_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	MetricsAddr         string `env:"SHOWCASE_WEB_METRICS_ADDR"`
	DBPath              string `env:"SHOWCASE_WEB_DB_PATH" envDefault:"data/showcase.db"`
	AssetBaseURL        string `env:"SHOWCASE_WEB_ASSET_BASE_URL"`
	HTMXSrc             string `env:"SHOWCASE_WEB_HTMX_SRC"`
	TrustForwardedProto bool   `env:"SHOWCASE_WEB_TRUST_FORWARDED_PROTO" envDefault:"false"`
	DefaultLanguage     string `env:"SHOWCASE_WEB_DEFAULT_LANG" envDefault:"en-US"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Separate metrics listen address (empty mounts /metrics on the site)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "Gallery SQLite database path")
	fs.StringVar(&cfg.AssetBaseURL, "asset-base-url", cfg.AssetBaseURL, "Base URL for static assets")
	fs.StringVar(&cfg.HTMXSrc, "htmx-src", cfg.HTMXSrc, "htmx script URL")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto for secure cookies")
	fs.StringVar(&cfg.DefaultLanguage, "default-lang", cfg.DefaultLanguage, "Fallback language tag")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		store, err := sqlite.Open(ctx, cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open gallery store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close gallery store: %v", err)
			}
		}()

		server, err := web.NewServer(web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			MetricsAddr:         cfg.MetricsAddr,
			AssetBaseURL:        cfg.AssetBaseURL,
			HTMXSrc:             cfg.HTMXSrc,
			TrustForwardedProto: cfg.TrustForwardedProto,
			DefaultLanguage:     cfg.DefaultLanguage,
			Gallery:             store,
			Metrics:             observability.NewMetrics(),
			Logger:              log.Default(),
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
