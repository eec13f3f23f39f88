package cmd

import (
	"fmt"
	"log/slog"

	"github.com/iwat/bookend/internal/application"
	"github.com/iwat/bookend/internal/domain"
	"github.com/iwat/bookend/internal/infrastructure/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type AppBuilder struct {
	logger     *slog.Logger
	encoding   domain.Encoding
	prompter   application.Prompter
	fileReader application.FileReader
	fileWriter application.FileWriter
	app        *application.App
}

func NewAppBuilder() *AppBuilder {
	return &AppBuilder{}
}

func (b *AppBuilder) WithLogger(logger *slog.Logger) *AppBuilder {
	b.logger = logger
	return b
}

func (b *AppBuilder) WithEncoding(encoding domain.Encoding) *AppBuilder {
	b.encoding = encoding
	return b
}

func (b *AppBuilder) WithPrompter(prompter application.Prompter) *AppBuilder {
	b.prompter = prompter
	return b
}

func (b *AppBuilder) WithFileReader(reader application.FileReader) *AppBuilder {
	b.fileReader = reader
	return b
}

func (b *AppBuilder) WithFileWriter(writer application.FileWriter) *AppBuilder {
	b.fileWriter = writer
	return b
}

func (b *AppBuilder) Build() error {
	if b.fileReader == nil || b.fileWriter == nil {
		return fmt.Errorf("file reader and writer must be configured")
	}
	if b.prompter == nil {
		return fmt.Errorf("prompter must be configured")
	}
	b.app = application.NewApp(b.logger, b.prompter, b.fileReader, b.fileWriter, b.encoding)
	return nil
}

func (b *AppBuilder) App() *application.App {
	return b.app
}

func RootCmd(appBuilder *AppBuilder) *cobra.Command {
	var (
		encoding domain.Encoding
		verbose  bool
		noColor  bool
		strict   bool
	)
	rootCmd := &cobra.Command{
		Use:   "bookend [input output]",
		Short: "Wrap a text file between a header and a footer line",
		Long: `bookend reads a text file, adds a header line before its content and a
footer line after it, and writes the result to another file.

Without arguments the input and output filenames are asked for interactively.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts either no arguments or an input and an output file, received %d", len(args))
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := logging.New(cmd.ErrOrStderr(), level, noColor)
			slog.SetDefault(logger)

			return appBuilder.WithLogger(logger).WithEncoding(encoding).Build()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runProcess(cmd, appBuilder, args, strict)
		},
	}
	rootFlags := pflag.NewFlagSet("root", pflag.ContinueOnError)
	rootFlags.Var(&encoding, "encoding", "Text encoding of the input and output files ["+domain.KnownEncodings()+"]")
	rootFlags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootFlags.BoolVar(&noColor, "no-color", false, "Disable coloured output")
	rootCmd.PersistentFlags().AddFlagSet(rootFlags)
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error status when the operation is aborted")

	rootCmd.AddCommand(wrapCmd(appBuilder))

	return rootCmd
}
