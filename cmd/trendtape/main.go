package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zappabad/trendtape/internal/app"
	"github.com/zappabad/trendtape/internal/config"
	"github.com/zappabad/trendtape/internal/cookie"
	"github.com/zappabad/trendtape/internal/logging"
	"github.com/zappabad/trendtape/tui"
	"github.com/zappabad/trendtape/tui/panels"
)

// cli holds the flags and loaded config shared by every command.
type cli struct {
	// Global flags
	cfgPath     string
	verbose     bool
	contentFile string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &cli{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "trendtape",
		Short: "Scrolling ticker of trending topics",
		Long: `trendtape scrolls trending topics across the top of the terminal.

Click a topic on the tape to use it as the seed for content generation, or
right-click for a menu of every topic on the tape.

Run without arguments to start the interactive interface.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: a.runTUI,
	}

	rootCmd.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", defaultConfigPath(), "config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")
	rootCmd.Flags().StringVar(&a.contentFile, "content", "", "topics file to show and watch, one topic per line")

	rootCmd.AddCommand(
		newSplitCmd(a),
		newCookiesCmd(a),
		newCheckCmd(),
		newConfigCmd(a),
	)
	return rootCmd
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "trendtape.yaml"
	}
	return filepath.Join(dir, "trendtape", "config.yaml")
}

func (a *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.contentFile != "" {
		cfg.Feed.ContentFile = a.contentFile
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Logging, a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func (a *cli) openStore() (*cookie.Store, error) {
	return cookie.Open(a.cfg.CookieConfig())
}

func (a *cli) runTUI(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := a.logger
	cfg := a.cfg

	svc, err := app.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer svc.Close()

	var jar tui.CookieJar
	if svc.Jar != nil {
		jar = svc.Jar
	}

	model := tui.NewModel(tui.Options{
		Tape: panels.TapeConfig{
			Width:        cfg.Tape.Width,
			Speed:        cfg.Tape.Speed,
			Interval:     cfg.Tape.Interval,
			PauseOnHover: cfg.Tape.PauseOnHover,
			Delimiter:    cfg.DelimiterRune(),
			Gap:          cfg.Tape.Gap,
		},
		SeedMaxLength: cfg.Seed.MaxLength,
		Feed:          svc.Feed,
		Jar:           jar,
		Logger:        log.Named("tui"),
	})

	log.Info("starting", zap.String("config", a.cfgPath), zap.String("content", cfg.Feed.ContentFile))

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
