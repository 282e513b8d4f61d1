package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shaiso/asteroidgraph/internal/telemetry"
)

// NewRootCmd собирает корневую команду со всеми подкомандами.
func NewRootCmd(logger *slog.Logger, version string) *cobra.Command {
	var jsonOutput bool

	root := &cobra.Command{
		Use:           "asteroidgraph",
		Short:         "Plot the asteroid semi-major axis / eccentricity distribution from MPCORB.DAT",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Каждая команда получает логгер с полем command через контекст
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cmd.SetContext(telemetry.WithLogger(cmd.Context(), telemetry.WithCommand(logger, cmd.Name())))
	}

	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	deps := Deps{
		OutputFn: func() *Output {
			return NewOutputTo(root.OutOrStdout(), root.ErrOrStderr(), jsonOutput)
		},
	}

	root.AddCommand(
		NewDownloadCmd(deps),
		NewPlotCmd(deps),
		NewStatsCmd(deps),
		NewServeCmd(deps),
		NewImportCmd(deps),
		NewBatchesCmd(deps),
	)

	return root
}
