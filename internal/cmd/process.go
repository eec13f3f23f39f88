package cmd

import (
	"errors"

	"github.com/iwat/bookend/internal/application"
	"github.com/iwat/bookend/internal/domain"
	"github.com/spf13/cobra"
)

func runProcess(cmd *cobra.Command, appBuilder *AppBuilder, args []string, strict bool) error {
	app := appBuilder.App()

	input, output, err := resolveFilenames(cmd, app, args)
	if err != nil {
		var failure *domain.Failure
		if errors.As(err, &failure) && failure.Kind == domain.Cancelled {
			cmd.PrintErrln("Cancelled.")
			return nil
		}
		return err
	}

	if _, err := app.Process(cmd.Context(), input, output); err != nil && strict {
		return err
	}
	return nil
}

func resolveFilenames(cmd *cobra.Command, app *application.App, args []string) (string, string, error) {
	if len(args) == 0 {
		return app.CollectFilenames(cmd.Context())
	}

	input, err := app.CheckFilename(args[0], true)
	if err != nil {
		return "", "", err
	}
	output, err := app.CheckFilename(args[1], false)
	if err != nil {
		return "", "", err
	}
	return input, output, nil
}
