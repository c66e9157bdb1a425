package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zee467/twitter-clone/initialize"
	"github.com/zee467/twitter-clone/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := initialize.Build(ctx, *configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "startup failed:", err)
		os.Exit(1)
	}

	if err := server.Run(ctx, app.Cfg.HTTP.Host, app.Cfg.HTTP.Port, app.Router, app.Log); err != nil {
		app.Log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
