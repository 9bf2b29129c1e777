package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/appengine-ltd/friendlist/internal/config"
	"github.com/appengine-ltd/friendlist/internal/roster"
	"github.com/appengine-ltd/friendlist/internal/session"
	"github.com/appengine-ltd/friendlist/internal/ui"
)

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the friend list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := c.session(printer{c.out})
			names := sess.Roster.Names()
			if len(names) == 0 {
				fmt.Fprintln(c.out, "No friends added yet.")
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(c.out, name)
			}
			return nil
		},
	}
}

func (c *cli) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name...>",
		Short: "Add a SimPlayer to the friend list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := c.session(printer{c.out})
			name := strings.TrimSpace(strings.Join(args, " "))
			if name == "" {
				return errors.New("name is empty")
			}
			if _, added := sess.AddFriend(name, session.ColorManual); !added {
				fmt.Fprintf(c.out, "%s is already on your list.\n", name)
			}
			return nil
		},
	}
}

func (c *cli) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name...>",
		Short: "Remove a friend",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := c.session(printer{c.out})
			name := strings.TrimSpace(strings.Join(args, " "))
			if sess.RemoveFriend(name) {
				return nil
			}
			if guess, ok := sess.Roster.Suggest(name); ok {
				return fmt.Errorf("%s is not on your list; did you mean %q?", name, guess)
			}
			return fmt.Errorf("%s is not on your list", name)
		},
	}
}

func (c *cli) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Manage the friend list interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status := &ui.StatusLine{}
			sess := c.session(status)

			var watcher *roster.Watcher
			if c.cfg.WatchRoster {
				w, err := c.startWatcher(sess.Roster)
				if err != nil {
					c.logger.Warn("roster watcher unavailable", zap.Error(err))
				} else {
					watcher = w
					defer watcher.Close()
				}
			}
			return ui.NewApp(ui.AppConfig{
				Version: version,
				Session: sess,
				Status:  status,
				Watcher: watcher,
			}).Run()
		},
	}
}

// startWatcher returns a running watcher on store, closing it again when it
// fails to start.
func (c *cli) startWatcher(store *roster.Store) (*roster.Watcher, error) {
	w, err := roster.NewWatcher(store, c.logger)
	if err != nil {
		return nil, err
	}
	if err := w.Start(); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("start roster watcher: %w", err)
	}
	return w, nil
}

func (c *cli) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(c.configPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", c.configPath)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("stat config: %w", err)
			}
			if err := config.Save(c.configPath, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "wrote %s\n", c.configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config and friend list paths in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(c.out, "config: %s\nroster: %s\n", c.configPath, c.rosterPath)
			return nil
		},
	}
	cmd.AddCommand(initCmd, pathCmd)
	return cmd
}
