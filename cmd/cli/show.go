package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"

	"github.com/spf13/cobra"
)

func NewShowCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <tool-id>",
		Short: "Describe a tool, its actions and their settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tool, err := a.deps.Registry.Lookup(domain.ToolType(args[0]))
			if err != nil {
				return err
			}

			return writeToolDetails(cmd.OutOrStdout(), tool)
		},
	}

	return cmd
}

func writeToolDetails(w io.Writer, tool domain.Tool) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%s)\n", tool.Name, tool.ID)
	fmt.Fprintf(&b, "%s\n", tool.Description)
	fmt.Fprintf(&b, "Category: %s\n", tool.Category)
	if len(tool.Keywords) > 0 {
		fmt.Fprintf(&b, "Keywords: %s\n", strings.Join(tool.Keywords, ", "))
	}

	for _, action := range tool.Actions {
		fmt.Fprintf(&b, "\nAction %s: %s\n", action.ActionType, action.Description)
		if action.IsRandom {
			b.WriteString("  Output is random\n")
		}

		for _, property := range action.Properties {
			fmt.Fprintf(&b, "  --set %s=<%s>", property.Key, property.Type)
			if property.Required {
				b.WriteString(" (required)")
			}
			if property.Default != nil {
				fmt.Fprintf(&b, " (default %v)", property.Default)
			}
			if len(property.Options) > 0 {
				values := make([]string, 0, len(property.Options))
				for _, option := range property.Options {
					values = append(values, fmt.Sprint(option.Value))
				}
				fmt.Fprintf(&b, " [%s]", strings.Join(values, "|"))
			}
			if property.Description != "" {
				fmt.Fprintf(&b, "\n      %s", property.Description)
			}
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
