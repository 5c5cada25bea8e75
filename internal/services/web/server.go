package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/louisbranch/showcase/internal/platform/branding"
	"github.com/louisbranch/showcase/internal/platform/timeouts"
	"github.com/louisbranch/showcase/internal/services/web/gallery"
	"github.com/louisbranch/showcase/internal/services/web/menu"
	"github.com/louisbranch/showcase/internal/services/web/navigation"
	"github.com/louisbranch/showcase/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/showcase/internal/services/web/platform/i18n"
	"github.com/louisbranch/showcase/internal/services/web/platform/observability"
	"github.com/louisbranch/showcase/internal/services/web/platform/pagerender"
	"github.com/louisbranch/showcase/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/showcase/internal/services/web/platform/weberror"
	"github.com/louisbranch/showcase/internal/services/web/routepath"
	"github.com/louisbranch/showcase/internal/services/web/routes"
	"github.com/louisbranch/showcase/internal/services/web/shell"
	"github.com/louisbranch/showcase/internal/services/web/static"
	"golang.org/x/sync/errgroup"
)

// DefaultHTMXSrc is the htmx build loaded when no override is configured.
const DefaultHTMXSrc = "https://cdn.jsdelivr.net/npm/htmx.org@2.0.4/dist/htmx.min.js"

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// MetricsAddr serves /metrics on a separate listener when set;
	// otherwise /metrics is mounted on the site handler.
	MetricsAddr         string
	AppName             string
	AssetBaseURL        string
	HTMXSrc             string
	TrustForwardedProto bool
	DefaultLanguage     string
	Gallery             gallery.Lister
	Metrics             *observability.Metrics
	Logger              *log.Logger
}

// Server hosts the site and metrics listeners.
type Server struct {
	httpServer    *http.Server
	metricsServer *http.Server
	logger        *log.Logger
}

// NewHandler builds the site handler.
func NewHandler(config Config) (http.Handler, error) {
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}
	appName := strings.TrimSpace(config.AppName)
	if appName == "" {
		appName = branding.AppName
	}
	htmxSrc := strings.TrimSpace(config.HTMXSrc)
	if htmxSrc == "" {
		htmxSrc = DefaultHTMXSrc
	}
	language := webi18n.Resolver{}
	if raw := strings.TrimSpace(config.DefaultLanguage); raw != "" {
		tag, ok := webi18n.Parse(raw)
		if !ok {
			return nil, fmt.Errorf("unsupported default language %q", raw)
		}
		language.Fallback = tag
	}
	policy := requestmeta.SchemePolicy{TrustForwardedProto: config.TrustForwardedProto}

	table := routes.DefaultTable()
	nav := navigation.Default(table)
	machine := menu.NewMachine(nav)
	renderer := pagerender.Renderer{
		AppName:   appName,
		AssetBase: strings.TrimSpace(config.AssetBaseURL),
		HTMXSrc:   htmxSrc,
		Nav:       nav,
		Menu:      machine,
		Language:  language,
		Policy:    policy,
	}
	switcher, err := routes.NewSwitcher(table, sitePages(language, config.Gallery), renderer, weberror.Writer(renderer, logger))
	if err != nil {
		return nil, fmt.Errorf("build route switcher: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServerFS(static.FS)))
	mux.HandleFunc(routepath.Health, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			httpx.MethodNotAllowed("GET, HEAD").ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if strings.TrimSpace(config.MetricsAddr) == "" && config.Metrics != nil {
		mux.Handle(routepath.Metrics, config.Metrics.Handler())
	}
	var observer shell.Observer
	if config.Metrics != nil {
		observer = config.Metrics
	}
	shell.New(shell.Config{
		Machine:  machine,
		Renderer: renderer,
		Table:    table,
		Policy:   policy,
		Observer: observer,
		Logger:   logger,
	}).Register(mux)
	mux.Handle(routepath.Root, switcher)

	return httpx.Chain(mux,
		httpx.RecoverPanicWithLogger(logger),
		httpx.RequestID(),
		observability.RequestLogger(logger),
		config.Metrics.Middleware(),
		observability.Tracing(),
	), nil
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(config)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}
	server := &Server{
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			IdleTimeout:       timeouts.Idle,
		},
		logger: logger,
	}
	if metricsAddr := strings.TrimSpace(config.MetricsAddr); metricsAddr != "" {
		if config.Metrics == nil {
			return nil, errors.New("metrics address requires metrics")
		}
		metricsMux := http.NewServeMux()
		metricsMux.Handle(routepath.Metrics, config.Metrics.Handler())
		server.metricsServer = &http.Server{
			Addr:              metricsAddr,
			Handler:           metricsMux,
			ReadHeaderTimeout: timeouts.ReadHeader,
		}
	}
	return server, nil
}

// ListenAndServe runs every listener until ctx ends or one of them fails.
//
// On cancellation each listener gets a bounded shutdown so in-flight
// requests drain before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	servers := []*http.Server{s.httpServer}
	if s.metricsServer != nil {
		servers = append(servers, s.metricsServer)
	}
	listeners := make([]net.Listener, 0, len(servers))
	for _, srv := range servers {
		listener, err := net.Listen("tcp", srv.Addr)
		if err != nil {
			for _, opened := range listeners {
				_ = opened.Close()
			}
			return fmt.Errorf("listen %s: %w", srv.Addr, err)
		}
		listeners = append(listeners, listener)
	}

	g, gCtx := errgroup.WithContext(ctx)
	for idx, srv := range servers {
		listener := listeners[idx]
		g.Go(func() error {
			s.logger.Printf("web listening on %s", listener.Addr())
			if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve %s: %w", srv.Addr, err)
			}
			return nil
		})
		g.Go(func() error {
			<-gCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown %s: %w", srv.Addr, err)
			}
			return nil
		})
	}
	return g.Wait()
}
