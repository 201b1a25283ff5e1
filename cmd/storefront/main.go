package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/phumgame/internal/buildinfo"
	"github.com/dmitrijs2005/phumgame/internal/catalog"
	"github.com/dmitrijs2005/phumgame/internal/cli"
	"github.com/dmitrijs2005/phumgame/internal/config"
	"github.com/dmitrijs2005/phumgame/internal/logging"
	"github.com/dmitrijs2005/phumgame/internal/storage"
	"github.com/dmitrijs2005/phumgame/internal/storefront"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if s, ok := logger.(interface{ Sync() error }); ok {
		defer s.Sync()
	}

	store, closer, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("storage init error: %v", err)
	}
	defer closer.Close()

	src, err := catalog.NewSource(ctx, cfg)
	if err != nil {
		log.Fatalf("catalog source error: %v", err)
	}

	cat := catalog.New(src, logger.With("component", "catalog"))
	ctrl := storefront.New(store, cat, logger, storefront.OptionsFromConfig(cfg))

	cli.NewApp(ctrl, os.Stdin, os.Stdout).Run(ctx)

}
