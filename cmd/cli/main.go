package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/libracli/internal/client/cli"
	"github.com/dmitrijs2005/libracli/internal/client/config"
	"github.com/dmitrijs2005/libracli/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewDefault(os.Stderr, cfg.Verbose)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
