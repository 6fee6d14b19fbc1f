package cli

import (
	"fmt"
	"os"

	"github.com/devtoolbox/devtoolbox/internal/config"
	"github.com/devtoolbox/devtoolbox/internal/initialization"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries what every command needs. Config is loaded before each
// command runs so flags can override it.
type app struct {
	deps       *initialization.ToolDependencies
	config     *config.Config
	configFile string
	debug      bool
}

func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "devtoolbox",
		Short: "Developer utilities for the terminal and the browser",
		Long: `devtoolbox is a catalog of small, offline developer tools: formatters, encoders,
converters, generators and more. Use it from the command line, as an HTTP service
or through the interactive terminal UI. No data leaves the machine.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Path to a config file (default devtoolbox.yaml)")

	rootCmd.AddCommand(NewServeCommand(a))
	rootCmd.AddCommand(NewListCommand(a))
	rootCmd.AddCommand(NewShowCommand(a))
	rootCmd.AddCommand(NewRunCommand(a))
	rootCmd.AddCommand(NewSitemapCommand(a))
	rootCmd.AddCommand(NewTUICommand(a))
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

func (a *app) init() error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}

	zerolog.SetGlobalLevel(cfg.Level())
	if a.debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	deps, err := initialization.BuildToolDependencies()
	if err != nil {
		return fmt.Errorf("failed to build tool registry: %w", err)
	}

	a.config = cfg
	a.deps = deps

	return nil
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
