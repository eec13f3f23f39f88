package cmd

import (
	"fmt"

	"github.com/iwat/bookend/internal/domain"
	"github.com/spf13/cobra"
)

func wrapCmd(appBuilder *AppBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "wrap [file]",
		Short: "Print the wrapped content of a file",
		Long:  "Print the wrapped content of a file to standard output. Reads standard input when the file is - or omitted.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			app := appBuilder.App()
			var (
				content string
				err     error
			)
			if len(args) == 0 || args[0] == "-" {
				content, err = app.ReadStream(cmd.Context(), "-", cmd.InOrStdin())
			} else {
				content, err = app.ReadContent(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), domain.Wrap(content))
			return nil
		},
	}
}
