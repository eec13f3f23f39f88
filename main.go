package main

import (
	"context"
	"os"

	"github.com/iwat/bookend/internal/cmd"
	"github.com/iwat/bookend/internal/infrastructure/osfs"
	"github.com/iwat/bookend/internal/infrastructure/tui"
)

// SIGINT keeps Go's default handling so that Ctrl-C ends the process even
// while a prompt or a file read is blocked.
func main() {
	fileSystem := osfs.New()
	appBuilder := cmd.NewAppBuilder().
		WithFileReader(fileSystem).
		WithFileWriter(fileSystem).
		WithPrompter(tui.NewTerminalPrompter(os.Stdin, os.Stdout))

	if err := cmd.RootCmd(appBuilder).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
