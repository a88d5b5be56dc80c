package main

import (
	"context"
	"fmt"
	"os"

	"contact-manager/internal/app"
	"contact-manager/internal/config"
	"contact-manager/internal/logger"

	"github.com/alecthomas/kong"
)

// CLI holds the command-line overrides for the configuration file.
type CLI struct {
	Version  kong.VersionFlag `help:"Show version." short:"V"`
	Config   string           `help:"Path to YAML config file." default:"${default_config}" type:"path"`
	DB       string           `name:"db" help:"Path to the contacts database file." type:"path"`
	LogLevel string           `help:"Log level (debug, info, warn, error)."`
	JSONLogs bool             `name:"json-logs" help:"Write logs as JSON."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("contact-manager"),
		kong.Description("Desktop contact manager backed by a local SQLite file."),
		kong.Vars{
			"version":        app.Version,
			"default_config": config.DefaultPath,
		},
	)

	if err := run(cli); err != nil {
		fmt.Fprintf(os.Stderr, "contact-manager: %v\n", err)
		os.Exit(1)
	}
}

func run(cli CLI) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	log := logger.New(cfg.LogLevel(), cfg.Log.JSON)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.NewApplication(ctx, cfg, log)
	if err != nil {
		log.Error("main", err, nil)
		return err
	}

	return application.Run()
}

// loadConfig layers file, environment and flags, in increasing priority.
func loadConfig(cli CLI) (*config.Config, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	if cli.DB != "" {
		cfg.Database.Path = cli.DB
	}
	if cli.LogLevel != "" {
		cfg.Log.Level = cli.LogLevel
	}
	if cli.JSONLogs {
		cfg.Log.JSON = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
