package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rfarias/tuido/internal/config"
	"github.com/rfarias/tuido/internal/screens"
	"github.com/rfarias/tuido/internal/tasks"
	"github.com/rfarias/tuido/pkg/ui/backend/tcell"
	"github.com/rfarias/tuido/pkg/ui/runtime"
	"github.com/rfarias/tuido/pkg/ui/theme"
)

func newRootCmd() *cobra.Command {
	var configPath string
	var dataPath string

	cmd := &cobra.Command{
		Use:           "tuido",
		Short:         "A keyboard-driven to-do manager for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, mgr, err := setup(configPath, dataPath)
			if err != nil {
				return err
			}

			b, err := tcell.New()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			app := runtime.NewApp(b, runtime.WithLogger(log))
			env := &screens.Env{
				App:            app,
				Manager:        mgr,
				Theme:          theme.Default(),
				Log:            log,
				ArrowTraversal: cfg.ArrowTraversal,
			}
			return app.Run(screens.NewListSelection(env))
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "config file")
	cmd.PersistentFlags().StringVar(&dataPath, "data", "", "data file (overrides config)")

	cmd.AddCommand(newListCmd(&configPath, &dataPath))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// setup loads config, wires logging, and loads the task data.
func setup(configPath, dataPath string) (config.Config, *slog.Logger, *tasks.Manager, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	if dataPath != "" {
		cfg.DataFile = dataPath
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cfg.LogFile != "" {
		log = slog.New(slog.NewTextHandler(&lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    5,
			MaxBackups: 2,
		}, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	mgr := tasks.NewManager(cfg.DataFile, tasks.WithLogger(log))
	if err := mgr.Load(); err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("load tasks: %w", err)
	}
	return cfg, log, mgr, nil
}
