// Package app implements the application layer for stitch.
package app

import (
	"context"
	"os"
	"runtime"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/stitch/internal/engine/bundle"
	"go.trai.ch/stitch/internal/engine/cache"
	"go.trai.ch/stitch/internal/httpserver"
	"go.trai.ch/stitch/internal/metrics"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	cache        *cache.Cache
	logger       ports.Logger
	metrics      *metrics.Metrics
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, c *cache.Cache, log ports.Logger, m *metrics.Metrics) *App {
	return &App{
		configLoader: loader,
		cache:        c,
		logger:       log,
		metrics:      m,
	}
}

// ServeOptions configuration for the Serve method.
type ServeOptions struct {
	// Manifest is an explicit manifest path. Empty means search upwards
	// from the working directory.
	Manifest string
	// Listen overrides the manifest's listen address when non-empty.
	Listen string
	// NoWarmup skips the eager build of all packs at startup.
	NoWarmup bool
	// NoMinify disables minification for every pack regardless of the
	// manifest.
	NoMinify bool
	// NoWatch disables file-change invalidation for every pack; artifacts
	// are then cached for the process lifetime.
	NoWatch bool
	// JSONLogs switches the logger to JSON output when it supports it.
	JSONLogs bool
}

// Serve loads the manifest and serves the declared packs until the context
// is cancelled. Warmup failures are logged and deferred to the first
// request; they never prevent startup.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	if opts.JSONLogs {
		if js, ok := a.logger.(interface{ SetJSON(enable bool) }); ok {
			js.SetJSON(true)
		}
	}

	manifest, registry, err := a.load(opts.Manifest)
	if err != nil {
		return err
	}
	if opts.Listen != "" {
		manifest.Listen = opts.Listen
	}
	applyOverrides(manifest, opts)

	if !opts.NoWarmup {
		a.warmup(ctx, manifest, registry)
	}

	handler := httpserver.NewHandler(manifest, registry, a.logger, a.metrics)
	server := httpserver.NewServer(manifest.Listen, handler, a.logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Start(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		return server.Stop(context.WithoutCancel(gctx))
	})
	return g.Wait()
}

// CheckOptions configuration for the Check method.
type CheckOptions struct {
	Manifest string
}

// Check loads the manifest and builds every declared pack once, reporting
// each result. It fails when any pack cannot be built.
func (a *App) Check(ctx context.Context, opts CheckOptions) error {
	manifest, registry, err := a.load(opts.Manifest)
	if err != nil {
		return err
	}

	var failed bool
	for _, b := range registry.All() {
		artifact, buildErr := b.Artifact(ctx, manifest.ConfigFor(b.Path()))
		if buildErr != nil {
			a.logger.Error(buildErr)
			failed = true
			continue
		}
		a.logger.Info("pack ok",
			"pack", b.Path(),
			"files", len(b.LogicalPaths()),
			"bytes", len(artifact.Content),
			"etag", artifact.Sum(),
		)
	}

	if failed {
		return domain.ErrCheckFailed
	}
	return nil
}

// applyOverrides forces the command-line build overrides onto every pack's
// effective configuration.
func applyOverrides(manifest *domain.Manifest, opts ServeOptions) {
	if !opts.NoMinify && !opts.NoWatch {
		return
	}
	if opts.NoMinify {
		manifest.Minify = false
	}
	if opts.NoWatch {
		manifest.AutoRefresh = false
	}
	for path, cfg := range manifest.Config {
		if opts.NoMinify {
			cfg.Minify = false
		}
		if opts.NoWatch {
			cfg.AutoRefresh = false
		}
		manifest.Config[path] = cfg
	}
}

func (a *App) load(manifestPath string) (*domain.Manifest, *bundle.Registry, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to determine working directory")
	}

	manifest, err := a.configLoader.Load(cwd, manifestPath)
	if err != nil {
		return nil, nil, err
	}

	return manifest, bundle.NewRegistry(manifest, a.cache), nil
}

// warmup builds all packs eagerly so the first request is served from the
// cache. Failures are deferred to request time.
func (a *App) warmup(ctx context.Context, manifest *domain.Manifest, registry *bundle.Registry) {
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for _, b := range registry.All() {
		g.Go(func() error {
			if _, err := b.Artifact(ctx, manifest.ConfigFor(b.Path())); err != nil {
				a.logger.Warn("pack warmup failed, retrying on first request",
					"pack", b.Path(), "error", err.Error())
			}
			return nil
		})
	}
	_ = g.Wait()
}
