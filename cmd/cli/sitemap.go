package cli

import (
	"encoding/xml"
	"fmt"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/devtoolbox/devtoolbox/pkg/tools/toolkit"

	"github.com/spf13/cobra"
)

func NewSitemapCommand(a *app) *cobra.Command {
	var format string
	var baseURL string

	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Print the sitemap of every tool page",
		RunE: func(cmd *cobra.Command, args []string) error {
			if baseURL == "" {
				baseURL = a.config.BaseURL
			}

			sitemap := domain.BuildSitemap(baseURL, a.deps.Registry.Tools())

			switch format {
			case "xml":
				data, err := xml.MarshalIndent(sitemap, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode sitemap: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), xml.Header+string(data))
				return err
			case "json":
				out, err := toolkit.MarshalPretty(sitemap.Entries)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
				return err
			default:
				return fmt.Errorf("unknown format %q, expected xml or json", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "xml", "Output format: xml or json")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Site URL, overrides BASE_URL")

	return cmd
}
