package main

import (
	"fmt"
	"os"

	"midic/internal/config"
	"midic/internal/errors"
	"midic/internal/log"
	"midic/internal/player"
	"midic/internal/playlist"
	"midic/internal/tui"
	"midic/internal/watch"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// runBrowser starts the terminal UI. Tests replace it.
var runBrowser = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func newRootCmd() *cobra.Command {
	cfg := config.New()

	cmd := &cobra.Command{
		Use:           "midic [directory]",
		Short:         "Browse and play MIDI files from the terminal",
		Long:          `midic lists the .mid files and folders of a directory and plays the selected file with an external MIDI player.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				cfg.StartDir = args[0]
			}
			return run(cfg)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.Player.Command, "player", config.DefaultPlayer, "MIDI player started with the selected file")
	flags.StringVar(&cfg.Player.Kill, "kill", config.DefaultKill, "command that stops the player by name")
	flags.BoolVar(&cfg.Watch, "watch", false, "refresh the listing when the directory changes")
	flags.BoolVar(&cfg.Debug, "debug", false, "enable debug logging")
	flags.StringVar(&cfg.LogFile, "log-file", "", "write log output to this file")

	cmd.AddCommand(configCmd(cfg))
	return cmd
}

// configCmd prints the effective configuration.
func configCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "config [directory]",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				cfg.StartDir = args[0]
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			out, err := cfg.YAML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if path := cfg.LogPath(); path != "" {
		f, err := log.OpenFile(path)
		if err != nil {
			return errors.NewFileError("cannot open log file", path, err)
		}
		defer f.Close()
	}
	log.SetDebug(cfg.Debug)

	if cfg.StartDir != "" {
		if err := os.Chdir(cfg.StartDir); err != nil {
			return errors.NewDirectoryError("cannot change to directory", cfg.StartDir, err)
		}
	}

	opts := []tui.Option{}
	if cfg.Watch {
		w, err := watch.New()
		if err != nil {
			return errors.Wrap(err, "cannot create directory watcher")
		}
		if err := w.Start(); err != nil {
			return errors.Wrap(err, "cannot start directory watcher")
		}
		defer w.Stop()
		opts = append(opts, tui.WithWatcher(w))
	}

	p := player.NewExecPlayer(cfg.Player.Command, cfg.Player.Kill)
	log.WithField("player", cfg.Player.Command).Info("starting browser")
	return runBrowser(tui.New(playlist.New(), p, opts...))
}
