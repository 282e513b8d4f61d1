package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shaiso/asteroidgraph/internal/catalog"
	"github.com/shaiso/asteroidgraph/internal/overlay"
	"github.com/shaiso/asteroidgraph/internal/plot"
	"github.com/shaiso/asteroidgraph/internal/repo"
	"github.com/shaiso/asteroidgraph/internal/telemetry"
)

// NewPlotCmd создаёт команду отрисовки диаграммы.
func NewPlotCmd(deps Deps) *cobra.Command {
	var (
		tf          tableFlags
		opts        = plot.DefaultOptions()
		out         string
		format      string
		overlayPath string
		fromDB      string
	)

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render the semi-major axis / eccentricity diagram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := deps.OutputFn()
			logger := telemetry.FromContext(cmd.Context())

			f, err := resolveFormat(format, out)
			if err != nil {
				return err
			}
			opts.Format = f

			set, err := loadOverlay(overlayPath)
			if err != nil {
				return err
			}

			var table *catalog.Table
			if fromDB != "" {
				table, err = loadBatch(cmd.Context(), logger, fromDB)
			} else {
				table, err = tf.load(logger)
			}
			if err != nil {
				return err
			}

			if out == "-" {
				return plot.Render(o.Writer(), table, set, opts)
			}

			if err := writeFile(out, func(w io.Writer) error {
				return plot.Render(w, table, set, opts)
			}); err != nil {
				return err
			}

			logger.Info("plot written", "path", out, "format", opts.Format, "x1", opts.X1, "x2", opts.X2)
			o.Success(fmt.Sprintf("Plot written: %s", out))
			return nil
		},
	}

	tf.register(cmd)
	cmd.Flags().Float64Var(&opts.X1, "x1", opts.X1, "Lower semi-major axis bound (AU)")
	cmd.Flags().Float64Var(&opts.X2, "x2", opts.X2, "Upper semi-major axis bound (AU)")
	cmd.Flags().IntVar(&opts.Width, "width", opts.Width, "Image width in pixels")
	cmd.Flags().IntVar(&opts.Height, "height", opts.Height, "Image height in pixels")
	cmd.Flags().StringVar(&out, "out", "asteroids.png", "Output file, '-' for stdout")
	cmd.Flags().StringVar(&format, "format", "", "Output format: png or svg (default: from --out extension)")
	cmd.Flags().StringVar(&overlayPath, "overlay", "", "YAML file with reference lines and labels")
	cmd.Flags().StringVar(&fromDB, "from-db", "", "Load the table from a PostgreSQL import batch ID instead of --data")

	return cmd
}

// resolveFormat берёт формат из флага, иначе из расширения файла.
func resolveFormat(format, out string) (plot.Format, error) {
	if format != "" {
		return plot.ParseFormat(format)
	}
	if strings.EqualFold(filepath.Ext(out), ".svg") {
		return plot.FormatSVG, nil
	}
	return plot.FormatPNG, nil
}

// loadOverlay возвращает набор из файла или встроенный.
func loadOverlay(path string) (overlay.Set, error) {
	if path == "" {
		return overlay.Default(), nil
	}
	return overlay.Load(path)
}

// loadBatch читает таблицу импорта из PostgreSQL.
func loadBatch(ctx context.Context, logger *slog.Logger, batch string) (*catalog.Table, error) {
	id, err := uuid.Parse(batch)
	if err != nil {
		return nil, fmt.Errorf("invalid batch id %q: %w", batch, err)
	}

	pool, err := repo.NewPool(ctx, repo.DSNFromEnv())
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	table, err := repo.NewOrbitRepo(pool).Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load batch %s: %w", id, err)
	}
	logger.Info("batch loaded", "batch_id", id, "rows", table.Len())
	return table, nil
}

// writeFile пишет через временный файл, чтобы не оставлять обрезанное изображение.
func writeFile(path string, fn func(w io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := fn(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}
