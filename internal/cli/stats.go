package cli

import (
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shaiso/asteroidgraph/internal/telemetry"
)

// NewStatsCmd создаёт команду вывода сводки по таблице.
func NewStatsCmd(deps Deps) *cobra.Command {
	var (
		tf         tableFlags
		aMin, aMax float64
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show a summary of the parsed (a, e) table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := deps.OutputFn()

			table, err := tf.load(telemetry.FromContext(cmd.Context()))
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("a-min") || cmd.Flags().Changed("a-max") {
				table = table.Filter(aMin, aMax)
			}

			s := table.Stats()
			o.Print(
				[]string{"ROWS", "MIN_A", "MAX_A", "MIN_E", "MAX_E"},
				[][]string{{
					strconv.Itoa(s.Count),
					formatFloat(s.MinA), formatFloat(s.MaxA),
					formatFloat(s.MinE), formatFloat(s.MaxE),
				}},
				s,
			)
			return nil
		},
	}

	tf.register(cmd)
	cmd.Flags().Float64Var(&aMin, "a-min", 0, "Only count rows with a >= a-min (AU)")
	cmd.Flags().Float64Var(&aMax, "a-max", math.Inf(1), "Only count rows with a <= a-max (AU)")
	return cmd
}
