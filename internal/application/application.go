package application

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"

	"github.com/iwat/bookend/internal/domain"
	"github.com/lmittmann/tint"
)

const outputFileMode = 0644

type App struct {
	logger     *slog.Logger
	prompter   Prompter
	fileReader FileReader
	fileWriter FileWriter
	encoding   domain.Encoding
}

func NewApp(logger *slog.Logger, prompter Prompter, fileReader FileReader, fileWriter FileWriter, encoding domain.Encoding) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		logger:     logger,
		prompter:   prompter,
		fileReader: fileReader,
		fileWriter: fileWriter,
		encoding:   encoding,
	}
}

// ReadContent loads the whole file at path and decodes it with the
// configured encoding. Failures are reported to the logger and returned as
// a *domain.Failure.
func (app *App) ReadContent(ctx context.Context, path string) (string, error) {
	data, err := app.fileReader.ReadFile(path)
	if err != nil {
		kind := classifyReadError(err)
		switch kind {
		case domain.NotFound:
			app.logger.ErrorContext(ctx, "Error: File not found", "path", path)
		case domain.AccessDenied, domain.IOFailure:
			app.logger.ErrorContext(ctx, "Error: Could not read file", "path", path, tint.Err(err))
		default:
			app.logger.ErrorContext(ctx, "An unexpected error occurred while reading the file", "path", path, tint.Err(err))
		}
		return "", &domain.Failure{Op: "read", Path: path, Kind: kind, Err: err}
	}

	return app.decode(ctx, path, data)
}

// ReadStream loads all of r, e.g. standard input, and decodes it like
// ReadContent. name only labels diagnostics.
func (app *App) ReadStream(ctx context.Context, name string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		app.logger.ErrorContext(ctx, "Error: Could not read input", "path", name, tint.Err(err))
		return "", &domain.Failure{Op: "read", Path: name, Kind: domain.IOFailure, Err: err}
	}
	return app.decode(ctx, name, data)
}

func (app *App) decode(ctx context.Context, path string, data []byte) (string, error) {
	content, err := app.encoding.Decode(data)
	if err != nil {
		app.logger.ErrorContext(ctx, "An unexpected error occurred while reading the file", "path", path, tint.Err(err))
		return "", &domain.Failure{Op: "read", Path: path, Kind: domain.Unknown, Err: err}
	}

	app.logger.DebugContext(ctx, "read file", "path", path, "bytes", len(data), "encoding", app.encoding.String())
	return content, nil
}

// WriteContent encodes content and writes it to path, creating or
// truncating the file.
func (app *App) WriteContent(ctx context.Context, path string, content string) error {
	data, err := app.encoding.Encode(content)
	if err != nil {
		app.logger.ErrorContext(ctx, "An unexpected error occurred while writing to the file", "path", path, tint.Err(err))
		return &domain.Failure{Op: "write", Path: path, Kind: domain.Unknown, Err: err}
	}

	if err := app.fileWriter.WriteFile(path, data, outputFileMode); err != nil {
		kind := classifyWriteError(err)
		if kind == domain.IOFailure {
			app.logger.ErrorContext(ctx, "Error: Could not write to file", "path", path, tint.Err(err))
		} else {
			app.logger.ErrorContext(ctx, "An unexpected error occurred while writing to the file", "path", path, tint.Err(err))
		}
		return &domain.Failure{Op: "write", Path: path, Kind: kind, Err: err}
	}

	app.logger.DebugContext(ctx, "wrote file", "path", path, "bytes", len(data))
	return nil
}

func classifyReadError(err error) domain.FailureKind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return domain.NotFound
	case errors.Is(err, fs.ErrPermission):
		return domain.AccessDenied
	case isOSError(err):
		return domain.IOFailure
	default:
		return domain.Unknown
	}
}

func classifyWriteError(err error) domain.FailureKind {
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) || isOSError(err) {
		return domain.IOFailure
	}
	return domain.Unknown
}

func isOSError(err error) bool {
	var pathErr *fs.PathError
	return errors.As(err, &pathErr)
}
