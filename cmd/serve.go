package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gideongeny/dailynews/internal/aggregator"
	"github.com/gideongeny/dailynews/internal/cache"
	"github.com/gideongeny/dailynews/internal/config"
	"github.com/gideongeny/dailynews/internal/server"
	"github.com/gideongeny/dailynews/internal/sources"
	"github.com/gideongeny/dailynews/internal/store"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))
	bannerDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	listen := cfg.Listen
	if flagListen != "" {
		listen = flagListen
	}

	agg, cleanup, err := buildAggregator(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := server.New(agg, cfg.DefaultCountry, slog.Default())
	httpSrv := &http.Server{
		Addr:              listen,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Println(bannerStyle.Render("dailynews " + version))
	fmt.Println(bannerDimStyle.Render("listening on " + listen))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// buildAggregator assembles the pipeline from config. The returned
// cleanup closes whatever backends were opened.
func buildAggregator(cfg *config.Config) (*aggregator.Aggregator, func(), error) {
	var closers []func()
	cleanup := func() {
		for _, c := range closers {
			c()
		}
	}

	var resultCache cache.Cache = cache.NewMemory(cfg.CacheTTLDuration())
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.CacheTTLDuration())
		if err != nil {
			slog.Warn("redis unavailable, caching in memory", "addr", cfg.Redis.Addr, "error", err)
		} else {
			resultCache = redisCache
			closers = append(closers, func() { redisCache.Close() })
		}
	}

	srcs := buildSources(cfg)
	if len(srcs) == 0 && !cfg.Fallback {
		cleanup()
		return nil, nil, fmt.Errorf("no sources enabled and fallback disabled")
	}

	var archive aggregator.Archiver
	if cfg.Archive {
		s, err := store.Open(config.ArchivePath())
		if err != nil {
			slog.Warn("archive unavailable", "error", err)
		} else {
			archive = s
			closers = append(closers, func() { s.Close() })
		}
	}

	agg := aggregator.New(aggregator.Options{
		Cache:    resultCache,
		Sources:  srcs,
		Budget:   cfg.RequestBudgetDuration(),
		Fallback: cfg.Fallback,
		Archive:  archive,
	})
	return agg, cleanup, nil
}

// buildSources instantiates the enabled adapters. Slice order is the
// order results are concatenated in, so it is deliberate.
func buildSources(cfg *config.Config) []sources.Source {
	timeout := cfg.FetchTimeoutDuration()
	var srcs []sources.Source

	if p := cfg.Providers.NewsData; p.Enabled && len(p.APIKeys) > 0 {
		srcs = append(srcs, sources.NewNewsData(p.APIKeys, timeout))
	}
	if p := cfg.Providers.TheNewsAPI; p.Enabled && p.APIKey != "" {
		srcs = append(srcs, sources.NewTheNewsAPI(p.APIKey, timeout))
	}
	if p := cfg.Providers.Mediastack; p.Enabled && p.APIKey != "" {
		srcs = append(srcs, sources.NewMediastack(p.APIKey, timeout))
	}
	if p := cfg.Providers.NYTimes; p.Enabled && p.APIKey != "" {
		srcs = append(srcs, sources.NewNYTimes(p.APIKey, timeout))
	}
	if cfg.Providers.RSS.Enabled {
		srcs = append(srcs, sources.NewRSS(timeout))
	}
	return srcs
}
