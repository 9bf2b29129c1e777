package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/appengine-ltd/friendlist/internal/config"
	"github.com/appengine-ltd/friendlist/internal/logging"
	"github.com/appengine-ltd/friendlist/internal/roster"
	"github.com/appengine-ltd/friendlist/internal/session"
)

// cli carries the global flags and what PersistentPreRunE builds from them.
type cli struct {
	out io.Writer

	configPath string
	rosterPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out}
	root := &cobra.Command{
		Use:           "friendctl",
		Short:         "Manage the friend list outside the game",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default <user config dir>/friendlist/config.yaml)")
	root.PersistentFlags().StringVar(&c.rosterPath, "roster", "", "friend list file (overrides roster_file)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(c.listCmd(), c.addCmd(), c.removeCmd(), c.tuiCmd(), c.configCmd())
	return root
}

func (c *cli) setup() error {
	if c.configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		c.configPath = p
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	logCfg := cfg.Log
	// Terminal output is for the user; routine events only show with -v.
	logCfg.Level = "warn"
	if c.verbose {
		logCfg.Level = "debug"
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return err
	}
	c.logger = logger

	if c.rosterPath == "" {
		if c.rosterPath, err = cfg.RosterPath(c.configPath); err != nil {
			return err
		}
	}
	return nil
}

// printer is a SocialLog that writes notifications to the terminal.
type printer struct {
	w io.Writer
}

func (p printer) LogAdd(message, _ string) {
	fmt.Fprintln(p.w, message)
}

// session loads the roster and wraps it for the command handlers.
func (c *cli) session(social session.SocialLog) *session.Session {
	store := roster.NewStore(c.rosterPath, c.logger.Named("roster"))
	store.Load()
	return session.New(c.logger, store, social, nil)
}
