package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"llmboard/internal/catalog"
	"llmboard/internal/config"
	"llmboard/internal/httpapi"
	"llmboard/internal/logging"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// rootOptions receives the parsed command-line flags.
type rootOptions struct {
	configPath string
	flags      config.Config
}

func newRootCmd() *cobra.Command { return newRootCmdWith(&rootOptions{}) }

func newRootCmdWith(o *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           "llmboard",
		Short:         "Serve the LLM leaderboard API, sitemap and robots.txt",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, o.configPath, o.flags)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	f := root.Flags()
	f.StringVar(&o.configPath, "config", "", "Config file (.yaml, .yml, .json or .toml)")
	f.StringVar(&o.flags.Addr, "addr", "", "HTTP listen address, e.g. :8080 (defaults LLMBOARD_ADDR or :8080)")
	f.StringVar(&o.flags.DatasetPath, "dataset", "", "Models JSON file (defaults LLMBOARD_DATASET or the bundled dataset)")
	f.StringVar(&o.flags.BaseURL, "base-url", "", "Public site origin used in sitemap.xml and robots.txt")
	f.StringVar(&o.flags.LogLevel, "log-level", "", "Log level: debug|info|warn|error|off")
	f.StringVar(&o.flags.LogFormat, "log-format", "", "Log format: json|console")
	f.Int64Var(&o.flags.MaxBodyBytes, "max-body-bytes", 0, "Maximum JSON request body size")
	f.BoolVar(&o.flags.RecomputeRanks, "recompute-ranks", false, "Derive ranks at load time instead of trusting the file")
	f.Bool("watch", false, "Reload the dataset file when it changes")
	f.StringSliceVar(&o.flags.CORSOrigins, "cors-origins", nil, "Enable CORS for these origins")
	return root
}

func serve(parent context.Context, cfg config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return err
	}
	httpapi.SetLogger(logger)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSOrigins, nil, nil)

	// Graceful shutdown (Ctrl+C / SIGTERM)
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	httpapi.SetBaseContext(ctx)

	cat := catalog.New(catalog.Config{
		DatasetPath:    cfg.DatasetPath,
		BaseURL:        cfg.BaseURL,
		RecomputeRanks: cfg.RecomputeRanks,
		Logger:         logger,
	})
	if err := cat.Load(ctx); err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewMux(cat),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", cfg.Addr).Str("dataset", cat.Source()).Msg("llmboard listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})
	if cfg.Watch() {
		g.Go(func() error { return cat.Watch(gctx) })
	}
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			logger.Warn().Err(err).Msg("graceful shutdown error")
			return err
		}
		logger.Info().Msg("llmboard stopped")
		return nil
	})
	return g.Wait()
}
