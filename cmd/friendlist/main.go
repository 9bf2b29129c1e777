//go:build cgo

package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/appengine-ltd/friendlist/internal/config"
	"github.com/appengine-ltd/friendlist/internal/gui"
	"github.com/appengine-ltd/friendlist/internal/logging"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		configPath  string
		rosterPath  string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&configPath, "config", "", "config file (default <user config dir>/friendlist/config.yaml)")
	flag.StringVar(&rosterPath, "roster", "", "friend list file (overrides roster_file)")
	flag.Parse()

	if showVersion {
		fmt.Printf("friendlist %s (%s) %s\n", version, commit, date)
		return
	}

	if err := run(configPath, rosterPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, rosterPath string) error {
	if configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		configPath = p
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if rosterPath == "" {
		if rosterPath, err = cfg.RosterPath(configPath); err != nil {
			return err
		}
	}
	log.Info("starting client", zap.String("version", version), zap.String("config", configPath), zap.String("roster", rosterPath))

	app := gui.NewApp(gui.AppConfig{
		Version:    version,
		Config:     cfg,
		RosterPath: rosterPath,
		Log:        log,
	})
	return app.Run()
}
