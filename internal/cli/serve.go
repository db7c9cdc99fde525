package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/recordsort/internal/api"
	"github.com/aalvaropc/recordsort/internal/domain"
	"github.com/aalvaropc/recordsort/internal/infra/config"
	"github.com/aalvaropc/recordsort/internal/infra/filestore"
	"github.com/aalvaropc/recordsort/internal/infra/logger"
	"github.com/aalvaropc/recordsort/internal/infra/memstore"
	"github.com/aalvaropc/recordsort/internal/infra/metrics"
	"github.com/aalvaropc/recordsort/internal/infra/recordfile"
	"github.com/aalvaropc/recordsort/internal/ports"
	"github.com/aalvaropc/recordsort/internal/usecase"
)

func serveCmd(root *rootFlags) *cobra.Command {
	var configPath string
	var addr string
	var seeds []string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the records HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if root.debug {
				cfg.Log.Debug = true
			}

			cleanup, err := logger.Setup(logger.Config{
				Root:   cfg.Log.Dir,
				Debug:  cfg.Log.Debug,
				Stderr: cfg.Log.Stderr,
			})
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			deps, err := buildServer(ctx, cfg, seeds)
			if err != nil {
				return err
			}

			logger.L().Info("serve.start", "addr", cfg.Server.Addr, "storage", cfg.Storage.Driver, "metrics", cfg.Metrics.Enabled)
			fmt.Fprintf(cmd.OutOrStdout(), "recordsort listening on %s\n", cfg.Server.Addr)

			err = api.Serve(ctx, api.NewApp(deps), cfg.Server.Addr)
			logger.L().Info("serve.stop", "err", err)
			return err
		},
	}

	c.Flags().StringVar(&configPath, "config", "", "Config file (default ./recordsort.yaml if present)")
	c.Flags().StringVar(&addr, "addr", "", "Listen address, overrides server.addr")
	c.Flags().StringArrayVar(&seeds, "seed", nil, "Load records at startup from path:csv|ssv|psv (repeatable)")
	return c
}

// buildServer opens the configured store, registers metrics and loads seed
// files before any request is accepted.
func buildServer(ctx context.Context, cfg domain.Config, seeds []string) (api.Deps, error) {
	store, size, err := openStore(cfg.Storage)
	if err != nil {
		return api.Deps{}, err
	}

	deps := api.Deps{
		Store:       store,
		Logger:      logger.L(),
		CORSOrigins: cfg.Server.CORSOrigins,
	}

	var observer ports.IngestObserver
	if cfg.Metrics.Enabled {
		reg := metrics.NewRegistry()
		if err := reg.TrackStoreSize(size); err != nil {
			return api.Deps{}, err
		}
		deps.Metrics = reg
		observer = reg
	}

	if len(seeds) > 0 {
		sources := make([]usecase.Source, 0, len(seeds))
		for _, s := range seeds {
			src, err := parseSourceArg(s)
			if err != nil {
				return api.Deps{}, err
			}
			sources = append(sources, src)
		}

		imported, err := usecase.NewImportFiles(recordfile.NewReader(), store, observer, deps.Logger).Execute(ctx, sources)
		if err != nil {
			return api.Deps{}, err
		}
		deps.Logger.Info("serve.seeded", "files", len(sources), "records", len(imported))
	}

	return deps, nil
}

func openStore(cfg domain.StorageConfig) (ports.RecordStore, func() float64, error) {
	switch cfg.Driver {
	case domain.StorageMemory, "":
		s := memstore.New()
		return s, func() float64 { return float64(s.Len()) }, nil
	case domain.StorageFile:
		s := filestore.New(cfg.Path)
		logger.L().Info("serve.store", "driver", cfg.Driver, "path", s.Path())
		size := func() float64 {
			records, err := s.List(context.Background())
			if err != nil {
				return 0
			}
			return float64(len(records))
		}
		return s, size, nil
	}
	return nil, nil, &domain.OpError{
		Op:   "serve.store",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("unknown storage driver %q", cfg.Driver),
	}
}
