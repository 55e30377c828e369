package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Hemachandram324/ecommerce-project/internal/cli"
	"github.com/Hemachandram324/ecommerce-project/internal/config"
	"github.com/Hemachandram324/ecommerce-project/internal/logging"
)

func main() {
	cfg := config.Load()

	logger := logging.New(os.Stderr, logging.Options{
		Service: "storefront",
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	app, err := cli.NewApp(cfg, logger, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	// In-flight requests are cancelled on Ctrl-C.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(app)
	if err := root.ExecuteContext(ctx); err != nil {
		if !cli.Notified(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
