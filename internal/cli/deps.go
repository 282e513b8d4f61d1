package cli

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shaiso/asteroidgraph/internal/catalog"
)

// Deps — общие зависимости команд. Логгер команды берётся
// из контекста (telemetry.FromContext).
type Deps struct {
	OutputFn func() *Output
}

// tableFlags — флаги, задающие источник таблицы.
type tableFlags struct {
	data string
	skip int
	rows int
}

func (f *tableFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.data, "data", envOr("MPCORB_PATH", catalog.DefaultFile), "Path to MPCORB.DAT (env MPCORB_PATH)")
	cmd.Flags().IntVar(&f.skip, "skip", catalog.DefaultSkipRows, "Header lines to skip")
	cmd.Flags().IntVar(&f.rows, "rows", catalog.DefaultMaxRows, "Maximum rows to read (0 = all)")
}

func (f *tableFlags) options() catalog.ParseOptions {
	return catalog.ParseOptions{SkipRows: f.skip, MaxRows: f.rows}
}

func (f *tableFlags) load(logger *slog.Logger) (*catalog.Table, error) {
	table, err := catalog.ReadFile(f.data, f.options())
	if err != nil {
		return nil, err
	}
	logger.Info("catalog parsed", "path", f.data, "rows", table.Len())
	return table, nil
}

// envOr возвращает значение переменной окружения или def.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
