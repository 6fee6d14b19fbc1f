package cli

import (
	"encoding/json"
	"fmt"

	"github.com/devtoolbox/devtoolbox/internal/version"

	"github.com/spf13/cobra"
)

func NewVersionCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(info)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), info.String())
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")

	return cmd
}
