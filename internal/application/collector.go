package application

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/iwat/bookend/internal/domain"
)

const (
	InputPrompt  = "Enter the name of the input file: "
	OutputPrompt = "Enter the name of the output file: "
)

// CollectFilenames asks for the input file, which must exist, and then
// for the output file.
func (app *App) CollectFilenames(ctx context.Context) (input string, output string, err error) {
	input, err = app.CollectFilename(ctx, InputPrompt, true)
	if err != nil {
		return "", "", err
	}
	output, err = app.CollectFilename(ctx, OutputPrompt, false)
	if err != nil {
		return "", "", err
	}
	return input, output, nil
}

// CollectFilename prompts until a valid filename is entered. An empty line
// is rejected like any other invalid name; only end of input or a done
// context stops the loop, with a Cancelled failure.
func (app *App) CollectFilename(ctx context.Context, prompt string, requireExists bool) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", &domain.Failure{Op: "collect", Kind: domain.Cancelled, Err: fmt.Errorf("%w: %v", domain.ErrCancelled, err)}
		}

		line, err := app.prompter.ReadLine(prompt)
		if errors.Is(err, io.EOF) {
			return "", &domain.Failure{Op: "collect", Kind: domain.Cancelled, Err: domain.ErrCancelled}
		}
		if err != nil {
			return "", &domain.Failure{Op: "collect", Kind: domain.IOFailure, Err: fmt.Errorf("failed to read filename: %w", err)}
		}

		name, err := app.CheckFilename(line, requireExists)
		if err == nil {
			return name, nil
		}
		app.reportInvalidFilename(ctx, name, err)
	}
}

// CheckFilename applies the filename rules once, without prompting.
func (app *App) CheckFilename(raw string, requireExists bool) (string, error) {
	var exists domain.ExistsFunc
	if requireExists {
		exists = app.fileReader.Exists
	}
	name, err := domain.ValidateFilename(raw, exists)
	if err != nil {
		return name, &domain.Failure{Op: "collect", Path: name, Kind: domain.Validation, Err: err}
	}
	return name, nil
}

func (app *App) reportInvalidFilename(ctx context.Context, name string, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyFilename):
		app.logger.WarnContext(ctx, "Filename cannot be empty. Please try again.")
	case errors.Is(err, domain.ErrFileNotExist):
		app.logger.WarnContext(ctx, "Error: File does not exist. Please enter an existing file.", "path", name)
	default:
		app.logger.WarnContext(ctx, "Invalid characters in filename. Please use a valid filename.", "path", name)
	}
}
