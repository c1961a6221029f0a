package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/galleria-dev/galleria/internal/config"
	"github.com/galleria-dev/galleria/internal/registry"
	"github.com/galleria-dev/galleria/pkg/middleware"
	"github.com/galleria-dev/galleria/pkg/picker"
	"github.com/galleria-dev/galleria/pkg/render"
	"github.com/galleria-dev/galleria/pkg/session"
	"github.com/galleria-dev/galleria/pkg/upload"
)

func serveCmd() *cobra.Command {
	var (
		addr     string
		maxSize  int64
		accept   string
		maxCount int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the demo gallery server",
		Long: `Start an HTTP server hosting a demo gallery picker.

Each page load gets its own gallery. File payloads arrive over HTTP
multipart; remove and reorder gestures arrive over a WebSocket, and the
server pushes the full gallery state back after every change.

Configuration is read from galleria.yaml and GALLERIA_* environment
variables; flags override both.

Examples:
  galleria serve
  galleria serve --addr=:3000
  galleria serve --max-count=12 --accept="image/png,image/jpeg"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Apply command-line overrides
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if maxSize > 0 {
				cfg.Picker.MaxSizeBytes = maxSize
			}
			if accept != "" {
				cfg.Picker.Accept = accept
			}
			if maxCount > 0 {
				cfg.Picker.MaxCount = maxCount
			}

			return runServe(cfg)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from galleria.yaml)")
	cmd.Flags().Int64Var(&maxSize, "max-size", 0, "Per-file size limit in bytes")
	cmd.Flags().StringVar(&accept, "accept", "", "Comma-separated accept patterns")
	cmd.Flags().IntVar(&maxCount, "max-count", 0, "Maximum files per gallery (0 = unlimited)")

	return cmd
}

func runServe(cfg config.Config) error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector())
	metrics := picker.NewMetrics(promReg)

	sinks := newSessionSinks(logger)

	galleries := registry.New(func(id string) *picker.Controller {
		store := picker.NewPreviewStore(
			picker.WithBasePath("/g/"+id+"/previews/"),
			picker.WithPreviewLogger(logger),
			picker.WithPreviewMetrics(metrics),
		)
		return picker.NewController(
			picker.WithPreviewStore(store),
			picker.WithMaxSize(cfg.Picker.MaxSizeBytes),
			picker.WithAccept(cfg.Picker.Accept),
			picker.WithMaxCount(cfg.Picker.MaxCount),
			picker.WithLogger(logger),
			picker.WithMetrics(metrics),
			picker.WithErrorSink(sinks.sink(id)),
		)
	}, registry.WithLogger(logger))
	defer galleries.Close()

	r := chi.NewRouter()
	r.Use(middleware.Metrics(middleware.WithRegistry(promReg)))
	r.Use(middleware.OTel(middleware.WithRequestFilter(func(req *http.Request) bool {
		return req.URL.Path != "/metrics" && req.URL.Path != "/healthz"
	})))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/g/"+uuid.NewString(), http.StatusSeeOther)
	})

	r.Get("/g/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "id")
		ctrl := galleries.Get(id)
		if ctrl == nil {
			http.Error(w, "server shutting down", http.StatusServiceUnavailable)
			return
		}
		servePage(w, id, ctrl)
	})

	r.Post("/g/{id}/upload", func(w http.ResponseWriter, req *http.Request) {
		ctrl, ok := galleries.Lookup(chi.URLParam(req, "id"))
		if !ok {
			http.Error(w, "unknown gallery", http.StatusNotFound)
			return
		}
		upload.Handler(ctrl).ServeHTTP(w, req)
	})

	r.Get("/g/{id}/previews/{handle}", func(w http.ResponseWriter, req *http.Request) {
		ctrl, ok := galleries.Lookup(chi.URLParam(req, "id"))
		if !ok {
			http.Error(w, "unknown gallery", http.StatusNotFound)
			return
		}
		ctrl.Store().ServeHTTP(w, req)
	})

	r.Get("/g/{id}/ws", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "id")
		ctrl, ok := galleries.Lookup(id)
		if !ok {
			http.Error(w, "unknown gallery", http.StatusNotFound)
			return
		}
		session.HandlerWithConfig(func(s *session.Session) *picker.Controller {
			sinks.set(id, s.Sink())
			return ctrl
		}, session.HandlerConfig{Logger: logger},
			session.WithLogger(logger),
			session.WithSharedController(),
		).ServeHTTP(w, req)
		sinks.clear(id)
	})

	r.Get("/assets/{file}", serveAsset)
	r.Handle("/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: time.Duration(cfg.Server.ReadHeaderTimeout) * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	printBanner()
	fmt.Println()
	info("Listening on %s", cfg.Server.Addr)
	info("Accept: %s, max size: %d bytes, max count: %d", cfg.Picker.Accept, cfg.Picker.MaxSizeBytes, cfg.Picker.MaxCount)
	fmt.Println()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

// servePage renders the gallery widget server-side and wraps it in the
// demo page shell.
func servePage(w http.ResponseWriter, id string, ctrl *picker.Controller) {
	markup, err := render.ToString(picker.Gallery(ctrl))
	if err != nil {
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, pageShell, id, markup)
}

const pageShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Galleria</title>
<link rel="stylesheet" href="/assets/galleria.css">
</head>
<body data-gallery="%s">
<main class="galleria-page">
<h1>Galleria</h1>
<p>Drop images below. Drag tiles to reorder; previews are held on the server.</p>
%s
</main>
<script src="/assets/galleria.js"></script>
</body>
</html>
`

// sessionSinks routes picker errors for a gallery to its live WebSocket
// session, falling back to the log when no session is attached.
type sessionSinks struct {
	logger *slog.Logger

	mu sync.Mutex
	m  map[string]picker.Sink
}

func newSessionSinks(logger *slog.Logger) *sessionSinks {
	return &sessionSinks{logger: logger, m: make(map[string]picker.Sink)}
}

func (g *sessionSinks) set(id string, s picker.Sink) {
	g.mu.Lock()
	g.m[id] = s
	g.mu.Unlock()
}

func (g *sessionSinks) clear(id string) {
	g.mu.Lock()
	delete(g.m, id)
	g.mu.Unlock()
}

// sink returns the stable Sink handed to the gallery's controller at
// build time. It resolves the live session on every call.
func (g *sessionSinks) sink(id string) picker.Sink {
	return func(e *picker.Error) {
		g.logger.Warn("file rejected",
			"gallery", id,
			"kind", e.Kind.String(),
			"message", e.Message,
		)
		g.mu.Lock()
		s := g.m[id]
		g.mu.Unlock()
		if s != nil {
			s(e)
		}
	}
}
