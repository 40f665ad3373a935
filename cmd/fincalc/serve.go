package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgehrsitz/fincalc/internal/api"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/output"
	"github.com/rgehrsitz/fincalc/internal/policy"
	"github.com/rgehrsitz/fincalc/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.settings
			if addr == "" {
				addr = s.Server.Addr
			}

			engine, err := a.engine(0)
			if err != nil {
				return err
			}

			sentryOn, err := api.InitSentry(s.Sentry.DSN, s.Sentry.Environment, version)
			if err != nil {
				return fmt.Errorf("sentry initialization failed: %w", err)
			}
			if sentryOn {
				defer api.FlushSentry()
			}

			var limiter *api.RateLimiter
			if s.Server.RateLimit > 0 {
				limiter = api.NewRateLimiter(s.Server.RateLimit, s.Server.RateWindow)
				defer limiter.Stop()
			}

			cache, closeCache := a.newCache(cmd.Context())
			defer closeCache()

			server := api.NewServer(api.Options{
				Engine:  engine,
				Logger:  a.logger,
				Cache:   cache,
				Limiter: limiter,
				Version: version,
			}).NewHTTPServer(addr)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			serverErr := make(chan error, 1)
			go func() {
				a.logger.Info("api listening",
					zap.String("addr", addr),
					zap.Int("tax_year", engine.Policy.Year),
					zap.Bool("sentry", sentryOn),
					zap.Int("rate_limit", s.Server.RateLimit),
				)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			select {
			case err := <-serverErr:
				return fmt.Errorf("error starting server: %w", err)
			case <-ctx.Done():
				a.logger.Info("shutting down server")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("error during server shutdown: %w", err)
			}
			a.logger.Info("server exited")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from settings, :8080)")
	return cmd
}

// newCache picks redis when configured and reachable, else the memory cache
func (a *app) newCache(ctx context.Context) (api.Cache, func()) {
	s := a.settings.Cache
	if s.RedisAddr == "" {
		return api.NewMemoryCache(s.TTL).WithMaxEntries(s.MaxEntries), func() {}
	}

	redis := api.NewRedisCache(s.RedisAddr, s.TTL)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := redis.Ping(pingCtx); err != nil {
		a.logger.Warn("redis unavailable, using in-memory cache",
			zap.String("addr", s.RedisAddr),
			zap.Error(err),
		)
		_ = redis.Close()
		return api.NewMemoryCache(s.TTL).WithMaxEntries(s.MaxEntries), func() {}
	}
	a.logger.Info("using redis cache", zap.String("addr", s.RedisAddr))
	return redis, func() { _ = redis.Close() }
}

func exploreCmd(a *app) *cobra.Command {
	var scenario string

	cmd := &cobra.Command{
		Use:   "explore [input-file]",
		Short: "Adjust inputs interactively and watch the projection change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var scenarios []domain.Scenario
			fileYear := 0
			if len(args) == 1 {
				cfg, err := a.load(args[0])
				if err != nil {
					return err
				}
				if scenarios, err = selectScenarios(cfg, scenario); err != nil {
					return err
				}
				fileYear = cfg.TaxYear
			}

			engine, err := a.engine(fileYear)
			if err != nil {
				return err
			}

			p := tea.NewProgram(tui.NewModel(engine, scenarios), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running explorer: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenario, "scenario", "s", "", "only load the named scenario")
	return cmd
}

func policyCmd(a *app) *cobra.Command {
	var format string
	var list bool

	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Show the tax-year policy tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				for _, year := range policy.Default().Years() {
					fmt.Fprintln(out, year)
				}
				return nil
			}

			engine, err := a.engine(0)
			if err != nil {
				return err
			}
			data, err := output.Encode(format, engine.Policy)
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format (yaml, json)")
	cmd.Flags().BoolVar(&list, "list", false, "list the embedded tax years")
	return cmd
}
