package cli

import (
	"fmt"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func NewListCommand(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list [query]",
		Short: "List and search tools",
		Long:  `List the tool catalog. An optional query searches names, descriptions and keywords.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			c := domain.Category(category)
			if c != "" && !c.IsValid() {
				return fmt.Errorf("unknown category %q, expected one of: %s", category, categoryNames())
			}

			tools := a.deps.Registry.Filter(query, c)
			if len(tools) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No tools found")
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), toolTable(tools))
			return err
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only list tools in this category")

	return cmd
}

func toolTable(tools []domain.Tool) string {
	rows := make([][]string, 0, len(tools))
	for _, tool := range tools {
		rows = append(rows, []string{string(tool.ID), tool.Name, string(tool.Category), tool.Description})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("ID", "NAME", "CATEGORY", "DESCRIPTION").
		Rows(rows...).
		String()
}

func categoryNames() string {
	names := []string{string(domain.Category_All)}
	for _, info := range domain.Categories {
		names = append(names, string(info.ID))
	}

	return strings.Join(names, ", ")
}
