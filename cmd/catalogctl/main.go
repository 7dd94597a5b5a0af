// Command catalogctl runs catalog operations against the configured
// database from the command line. Configuration is read the same way as
// the server (CONFIG_PATH or ./config.yaml, overridden by environment)
// unless --config names a file.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/heartmarshall/catalog-backend/internal/app"
	"github.com/heartmarshall/catalog-backend/internal/cli"
	"github.com/heartmarshall/catalog-backend/internal/config"
)

func main() {
	root := cli.NewRootCmd(openCatalog)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openCatalog(ctx context.Context, configPath string) (cli.Service, func(), error) {
	load := config.Load
	if configPath != "" {
		load = func() (*config.Config, error) { return config.LoadFile(configPath) }
	}

	cfg, err := load()
	if err != nil {
		return nil, nil, err
	}

	logger := app.NewLogger(cfg.Log)

	cat, err := app.OpenCatalog(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return cat.Service, cat.Close, nil
}
