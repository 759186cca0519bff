package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/valentine/internal/config"
	"github.com/alexisbeaulieu97/valentine/internal/logger"
	"github.com/alexisbeaulieu97/valentine/internal/tui/page"
)

var errNotTerminal = errors.New("interactive terminal required")

// Swapped out in tests.
var (
	isTerminal = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	}
	runProgram = func(m tea.Model) error {
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
		_, err := p.Run()
		return err
	}
)

type rootFlags struct {
	configPath string
	seed       int64
	touch      bool
	fps        int
	logFile    string
	logPretty  bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "valentine",
		Short:         "Ask the question, in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML page configuration")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "Random seed (0 uses the config seed, then the clock)")
	cmd.Flags().BoolVar(&flags.touch, "touch", false, "Treat the terminal as a touch-primary device")
	cmd.Flags().IntVar(&flags.fps, "fps", 0, "Frames per second (overrides the config)")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "Write structured logs to this file")
	cmd.Flags().BoolVar(&flags.logPretty, "log-pretty", false, "Write logs in console format instead of JSON")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newConfigCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// resolveConfig loads the configuration and applies command-line overrides.
func resolveConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	fs := cmd.Flags()
	if fs.Changed("touch") {
		cfg.Device.Touch = flags.touch
	}
	if fs.Changed("fps") {
		cfg.FPS = flags.fps
	}
	if fs.Changed("seed") && flags.seed != 0 {
		cfg.Seed = flags.seed
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(flags *rootFlags) (*logger.Logger, io.Closer, error) {
	if flags.logFile == "" {
		return logger.Nop(), nil, nil
	}

	f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	level := "info"
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, Pretty: flags.logPretty, Writer: f})
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return log, f, nil
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1))
}

func runPage(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}

	if !isTerminal() {
		return errNotTerminal
	}

	log, closer, err := newLogger(flags)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	log.WithFields(map[string]any{
		"recipient": cfg.Recipient,
		"touch":     cfg.Device.Touch,
		"fps":       cfg.FPS,
	}).Info("starting page")

	m := page.NewModel(page.Options{
		Config: cfg,
		Logger: log,
		Rand:   newRand(cfg.Seed),
	})

	if err := runProgram(m); err != nil {
		log.Error(err, "page exited with error")
		return fmt.Errorf("failed to run page: %w", err)
	}

	log.With("state", m.State().String()).Info("page closed")
	return nil
}
