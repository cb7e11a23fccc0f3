package main

import (
	"fmt"
	"io"
	"os"

	"github.com/javiermolinar/overtime/internal/config"
	"github.com/javiermolinar/overtime/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// Load configuration
	path := config.DefaultConfigPath()
	cfg, err := config.LoadFrom(path)
	if err != nil {
		ui.WriteError(stderr, fmt.Errorf("loading config: %w", err))
		return 1
	}

	app := ui.NewApp(cfg, path)
	app.SetIO(stdin, stdout, stderr)
	app.SetArgs(args)
	if err := app.Execute(); err != nil {
		app.PrintError(err)
		return 1
	}
	return 0
}
