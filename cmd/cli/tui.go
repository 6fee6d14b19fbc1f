package cli

import (
	"io"

	"github.com/devtoolbox/devtoolbox/internal/tui"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func NewTUICommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "tui",
		Aliases: []string{"ui"},
		Short:   "Browse and use the tools in an interactive terminal UI",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Log lines would tear the alternate screen.
			log.Logger = log.Output(io.Discard)

			return tui.Run(cmd.Context(), a.deps.Registry)
		},
	}
}
