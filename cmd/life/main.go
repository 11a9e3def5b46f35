package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"golife/internal/app"
	"golife/internal/config"
	"golife/internal/tui"
)

var (
	flagCfg    = config.NewConfig()
	cfg        *config.Config
	configFile string
	logFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "life",
		Short:         "Conway's Game of Life",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd)
		},
		RunE: runWindow,
	}
	flagCfg.Bind(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "open the board in a window (requires the ebiten build tag)",
		RunE:  runWindow,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "play in the terminal",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&logFile, "log-file", "", "write controller logs to this file")

	rootCmd.AddCommand(windowCmd, tuiCmd, newRunCmd(), newSweepCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, app.ErrNoGUI) {
			fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/life` or use `life tui`.")
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// loadConfig layers explicit flags over the config file, or the defaults when
// no file is given.
func loadConfig(cmd *cobra.Command) error {
	base := config.NewConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		base = loaded
	}
	cfg = flagCfg.MergeFlags(base, cmd.Flags())
	return cfg.Validate()
}

func runWindow(cmd *cobra.Command, args []string) error {
	return app.Run(cfg, log.New(os.Stderr, "life: ", log.LstdFlags))
}

func runTUI(cmd *cobra.Command, args []string) error {
	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.Wrapf(err, "open log file %s", logFile)
		}
		defer f.Close()
		out = f
	}
	return tui.Run(cmd.Context(), cfg, log.New(out, "life: ", log.LstdFlags))
}
