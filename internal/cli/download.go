package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shaiso/asteroidgraph/internal/catalog"
	"github.com/shaiso/asteroidgraph/internal/telemetry"
)

// NewDownloadCmd создаёт команду скачивания каталога.
func NewDownloadCmd(deps Deps) *cobra.Command {
	var url, out string

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download MPCORB.DAT from the Minor Planet Center",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := deps.OutputFn()
			logger := telemetry.FromContext(cmd.Context())

			d := catalog.NewDownloader(catalog.DownloaderConfig{Logger: logger})
			result, err := d.Download(cmd.Context(), url, out)
			if err != nil {
				return err
			}

			o.Success(fmt.Sprintf("Downloaded %s", result.Path))
			o.Print(
				[]string{"PATH", "BYTES", "DURATION"},
				[][]string{{result.Path, strconv.FormatInt(result.Bytes, 10), result.Duration.String()}},
				result,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", envOr("MPCORB_URL", catalog.DefaultURL), "Catalog URL (env MPCORB_URL)")
	cmd.Flags().StringVar(&out, "out", envOr("MPCORB_PATH", catalog.DefaultFile), "Destination file (env MPCORB_PATH)")

	return cmd
}
