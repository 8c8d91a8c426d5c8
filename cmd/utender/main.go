package main

import (
	"context"
	"log"
	"os"

	"github.com/utender/utender-cli/internal/buildinfo"
	"github.com/utender/utender-cli/internal/cli"
	"github.com/utender/utender-cli/internal/config"
	"github.com/utender/utender-cli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.Load()
	logger := logging.Setup(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
