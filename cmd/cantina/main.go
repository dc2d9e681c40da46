package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"cantina/internal/app"
	"cantina/internal/assets"
	"cantina/internal/config"
	"cantina/internal/page"

	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
)

var errApp = errors.New("application error")

type rootFlags struct {
	configFile string
	logFile    string
	debug      bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	rootCmd := &cobra.Command{
		Use:   "cantina",
		Short: "Cantina Chichilo brochure",
		Long:  `cantina - the Cantina Chichilo brochure: home, menu, history, hours and contact in one window`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, flags)
		},
	}
	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "Config file path")
	rootCmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Log file path (default under $XDG_STATE_HOME)")
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Log at debug level")
	rootCmd.Flags().Int("width", config.DefaultWidth, "Initial window width")
	rootCmd.Flags().Int("height", config.DefaultHeight, "Initial window height")
	rootCmd.Flags().Float64("scale", 0, "Pin the display scale (0 follows the monitor)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Open the brochure window",
		Args:  cobra.NoArgs,
		RunE:  rootCmd.RunE,
	}
	runCmd.Flags().AddFlagSet(rootCmd.Flags())

	rootCmd.AddCommand(runCmd, newRenderCmd(), newDumpCmd(), newVersionCmd())
	return rootCmd
}

func main() {
	if err := fang.Execute(context.Background(), newRootCmd()); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about cantina",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cantina - %s\n\n", page.Title)
			fmt.Fprintf(out, "  Version: %s\n", BuildVersion)
			fmt.Fprintf(out, "  Commit:  %s\n", BuildCommit)
			fmt.Fprintf(out, "  Built:   %s\n", BuildDate)
			fmt.Fprintf(out, "  Runtime: %s\n\n", BuildGoVersion)
		},
	}
}

// run opens the window and blocks until it is closed.
func run(cmd *cobra.Command, flags rootFlags) error {
	configUpdates := make(chan config.Config, 1)
	configLoader := config.NewLoader(configUpdates)
	configLoader.UseFile(flags.configFile)
	for _, key := range []string{"width", "height", "scale"} {
		if err := configLoader.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return errors.Join(err, errApp)
		}
	}

	userConfig, errConfig := configLoader.Read()
	if errConfig != nil {
		return errors.Join(errApp, errConfig)
	}
	if flags.debug {
		userConfig.Debug = true
	}

	logPath := flags.logFile
	if logPath == "" {
		logPath = config.LogPath()
	}
	logFile, errLogger := config.LoggerInit(logPath, userConfig.Level())
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting cantina", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()), slog.String("config", configLoader.Path()))

	if configLoader.Path() != "" {
		configLoader.Watch()
	}

	catalog := assets.Default(slog.Default())
	if userConfig.Preload {
		if err := catalog.Preload(cmd.Context(), page.Assets()); err != nil {
			return errors.Join(err, errApp)
		}
	}

	window := app.New(app.Options{
		Config:  userConfig,
		Changes: configUpdates,
		Images:  catalog,
		Logger:  slog.Default(),
	})
	if err := window.Run(); err != nil {
		return errors.Join(err, errApp)
	}

	slog.Info("Window closed")
	return nil
}
