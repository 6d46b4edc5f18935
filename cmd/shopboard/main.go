package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/shopboard/shopboard/internal/cli"
	"github.com/shopboard/shopboard/internal/config"
	"github.com/shopboard/shopboard/internal/schedremote"
	"github.com/shopboard/shopboard/internal/taskstore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("SHOPBOARD_CONFIG"))
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// Request logging is off by default; it would scribble over the TUI.
	var observer schedremote.Observer = schedremote.NoopObserver{}
	if os.Getenv("SHOPBOARD_LOG") != "" {
		observer = schedremote.NewLogObserver(os.Stderr)
	}

	app := &cli.App{
		Cfg:    cfg,
		Store:  taskstore.New(),
		Client: schedremote.NewClient(cfg.Service.BaseURL, observer),
		Out:    os.Stdout,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
