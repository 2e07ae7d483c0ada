package main

import (
	"fmt"
	"os"

	"github.com/averycrespi/semantic-movement-mcp/internal/config"
	"github.com/averycrespi/semantic-movement-mcp/internal/logging"
	"github.com/averycrespi/semantic-movement-mcp/pkg/project"
	"github.com/averycrespi/semantic-movement-mcp/pkg/types"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	overrides  config.Overrides
	config     *types.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           project.Name,
		Short:         "MCP server for jumping to and selecting the symbols that contain a cursor",
		Version:       project.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath, opts.overrides)
			if err != nil {
				return err
			}
			if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
				return err
			}
			opts.config = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts.config)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to the config file (default: <workspace-root>/"+config.DefaultFileName+")")
	flags.StringVar(&opts.overrides.WorkspaceRoot, "workspace-root", "", "Root directory of the workspace")
	flags.StringVar(&opts.overrides.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.overrides.LogFormat, "log-format", "", "Log format (text, json)")

	root.AddCommand(
		newServeCmd(opts),
		newNavigateCmd(opts),
		newCommandsCmd(),
	)
	return root
}
