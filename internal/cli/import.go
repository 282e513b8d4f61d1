package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/shaiso/asteroidgraph/internal/mq"
	"github.com/shaiso/asteroidgraph/internal/repo"
	"github.com/shaiso/asteroidgraph/internal/telemetry"
)

// NewImportCmd создаёт команду импорта таблицы в PostgreSQL.
func NewImportCmd(deps Deps) *cobra.Command {
	var tf tableFlags

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Store the parsed (a, e) table in PostgreSQL (env DB_URL)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			o := deps.OutputFn()
			logger := telemetry.FromContext(ctx)

			table, err := tf.load(logger)
			if err != nil {
				return err
			}

			pool, err := repo.NewPool(ctx, repo.DSNFromEnv())
			if err != nil {
				return err
			}
			defer pool.Close()

			orbits := repo.NewOrbitRepo(pool)
			if err := orbits.EnsureSchema(ctx); err != nil {
				return err
			}

			batch, err := orbits.Import(ctx, tf.data, table)
			if err != nil {
				return err
			}

			logger = telemetry.WithBatchID(logger, batch.ID.String())
			logger.Info("catalog imported", "rows", batch.RowCount)

			conn, publisher := mq.Connect(ctx, logger)
			if conn != nil {
				defer conn.Close()
			}
			if publisher != nil {
				err := publisher.PublishCatalogImported(ctx, mq.CatalogImportedPayload{
					BatchID: batch.ID,
					Source:  batch.Source,
					Rows:    batch.RowCount,
				})
				if err != nil {
					logger.Warn("failed to publish catalog.imported", "error", err)
				}
			}

			o.Success(fmt.Sprintf("Imported batch %s", batch.ID))
			o.Print(batchHeaders, [][]string{batchRow(*batch)}, batch)
			return nil
		},
	}

	tf.register(cmd)
	return cmd
}

// NewBatchesCmd создаёт команду со списком импортов.
func NewBatchesCmd(deps Deps) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "batches",
		Short: "List tables imported into PostgreSQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			o := deps.OutputFn()

			pool, err := repo.NewPool(ctx, repo.DSNFromEnv())
			if err != nil {
				return err
			}
			defer pool.Close()

			batches, err := repo.NewOrbitRepo(pool).ListBatches(ctx, limit)
			if err != nil {
				return err
			}

			rows := make([][]string, len(batches))
			for i, b := range batches {
				rows[i] = batchRow(b)
			}
			o.Print(batchHeaders, rows, batches)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of batches")
	return cmd
}

var batchHeaders = []string{"ID", "SOURCE", "ROWS", "IMPORTED"}

func batchRow(b repo.Batch) []string {
	return []string{b.ID.String(), b.Source, strconv.Itoa(b.RowCount), b.ImportedAt.Format(time.RFC3339)}
}
