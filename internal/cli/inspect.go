package cli

import (
	"github.com/spf13/cobra"

	"github.com/mtiwari1/tableloader/internal/fileinfo"
)

func (a *app) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>...",
		Short: "Print size, checksum, rows and columns of local data files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			infos := make([]*fileinfo.Info, 0, len(args))
			for _, path := range args {
				info, err := fileinfo.Inspect(path)
				if err != nil {
					return err
				}
				infos = append(infos, info)
			}
			return printJSON(c.OutOrStdout(), infos)
		},
	}
}
