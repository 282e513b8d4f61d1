package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shaiso/asteroidgraph/internal/catalog"
	"github.com/shaiso/asteroidgraph/internal/mq"
	"github.com/shaiso/asteroidgraph/internal/scheduler"
	"github.com/shaiso/asteroidgraph/internal/telemetry"
	"github.com/shaiso/asteroidgraph/internal/viewer"
)

// NewServeCmd создаёт команду запуска интерактивного viewer.
func NewServeCmd(deps Deps) *cobra.Command {
	var (
		tf          tableFlags
		addr        string
		url         string
		refreshCron string
		download    bool
		overlayPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive diagram with x1/x2 range sliders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := telemetry.FromContext(ctx)

			set, err := loadOverlay(overlayPath)
			if err != nil {
				return err
			}

			downloader := catalog.NewDownloader(catalog.DownloaderConfig{Logger: logger})
			if download {
				if _, err := os.Stat(tf.data); errors.Is(err, os.ErrNotExist) {
					if _, err := downloader.Download(ctx, url, tf.data); err != nil {
						return err
					}
				}
			}

			table, err := tf.load(logger)
			if err != nil {
				return err
			}
			source := viewer.NewTableSource(table)

			if refreshCron != "" {
				conn, publisher := mq.Connect(ctx, logger)
				if conn != nil {
					defer conn.Close()
				}

				cfg := scheduler.Config{
					CronExpr:     refreshCron,
					URL:          url,
					Path:         tf.data,
					ParseOptions: tf.options(),
					Fetcher:      downloader,
					Target:       source,
					Logger:       logger,
				}
				if publisher != nil {
					cfg.Publisher = publisher
				}

				sched, err := scheduler.New(cfg)
				if err != nil {
					return err
				}
				if err := sched.Start(ctx); err != nil {
					return err
				}
				defer sched.Stop()
			}

			handler := viewer.NewHandler(viewer.Config{
				Source:  source,
				Overlay: set,
				Logger:  logger,
			})

			mux := http.NewServeMux()
			viewer.RegisterServiceRoutes(mux)
			handler.RegisterRoutes(mux)

			return runServer(ctx, addr, mux, logger, deps.OutputFn())
		},
	}

	tf.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", ":"+envOr("VIEWER_PORT", "8090"), "Listen address (env VIEWER_PORT sets the port)")
	cmd.Flags().StringVar(&url, "url", envOr("MPCORB_URL", catalog.DefaultURL), "Catalog URL for --download and --refresh")
	cmd.Flags().StringVar(&refreshCron, "refresh", "", "Cron expression for re-downloading the catalog, e.g. \"0 6 * * *\"")
	cmd.Flags().BoolVar(&download, "download", false, "Download the catalog first if --data does not exist")
	cmd.Flags().StringVar(&overlayPath, "overlay", "", "YAML file with reference lines and labels")

	return cmd
}

// runServer запускает HTTP сервер и останавливает его по отмене ctx.
func runServer(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger, o *Output) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	o.Success(fmt.Sprintf("Viewer running on %s", addr))

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("stopped")
	return nil
}
