package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/devtoolbox/devtoolbox/pkg/tools/toolkit"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type runOptions struct {
	sets     []string
	files    []string
	stdinKey    string
	asJSON      bool
	interactive bool
}

func NewRunCommand(a *app) *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run <tool-id> [action]",
		Short: "Run a tool action",
		Long: `Run one action of a tool and print its output. Settings are passed with --set key=value.
When the action is omitted the tool's first action runs.

  devtoolbox run base64 encode --set text=hello
  echo '{"a":1}' | devtoolbox run json-formatter beautify --stdin json
  devtoolbox run image-resizer resize --file file=logo.png --set width=64
  devtoolbox run password-generator -i`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tool, err := a.deps.Registry.Lookup(domain.ToolType(args[0]))
			if err != nil {
				return err
			}

			action := tool.DefaultAction()
			if len(args) == 2 {
				found, ok := tool.Action(domain.ToolActionType(args[1]))
				if !ok {
					return fmt.Errorf("%w: %s has no action %q", domain.ErrActionNotFound, tool.ID, args[1])
				}
				action = found
			}

			settings, err := buildSettings(action, opts, cmd.InOrStdin())
			if err != nil {
				return err
			}

			if opts.interactive {
				answers := pendingAnswers(action, settings)
				if len(answers) > 0 {
					if err := answersForm(answers).Run(); err != nil {
						return err
					}
					if err := applyAnswers(answers, settings); err != nil {
						return err
					}
				}
			}

			result, err := runAction(cmd.Context(), a.deps.Registry, tool.ID, action.ActionType, settings)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result, opts.asJSON)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.sets, "set", "s", nil, "Setting as key=value, repeatable")
	cmd.Flags().StringArrayVar(&opts.files, "file", nil, "Read a setting from a file as key=path, repeatable")
	cmd.Flags().StringVar(&opts.stdinKey, "stdin", "", "Read this setting from standard input")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the whole result as JSON")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Prompt for settings not given on the command line")

	return cmd
}

func buildSettings(action domain.ToolAction, opts runOptions, stdin io.Reader) (domain.Item, error) {
	settings := domain.Item{}

	for _, set := range opts.sets {
		key, value, ok := strings.Cut(set, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set value %q, expected key=value", set)
		}
		settings[key] = value
	}

	for _, file := range opts.files {
		key, path, ok := strings.Cut(file, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --file value %q, expected key=path", file)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		settings[key] = fileSetting(action, key, data)
	}

	if opts.stdinKey != "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}

		settings[opts.stdinKey] = fileSetting(action, opts.stdinKey, data)
	}

	return settings, nil
}

// fileSetting base64 encodes content bound to file properties and passes
// text through with one trailing newline removed.
func fileSetting(action domain.ToolAction, key string, data []byte) string {
	for _, property := range action.Properties {
		if property.Key == key && property.Type == domain.ToolPropertyType_File {
			return base64.StdEncoding.EncodeToString(data)
		}
	}

	return strings.TrimSuffix(string(data), "\n")
}

func runAction(ctx context.Context, registry domain.ToolRegistry, id domain.ToolType, actionType domain.ToolActionType, settings domain.Item) (domain.Item, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	executor, err := registry.Select(ctx, domain.SelectToolParams{ToolType: id})
	if err != nil {
		return nil, err
	}

	log.Debug().Str("tool_id", string(id)).Str("action", string(actionType)).Msg("Running tool action")

	output, err := executor.Execute(ctx, domain.ToolInput{
		ToolID:     id,
		ActionType: actionType,
		Items:      []domain.Item{settings},
	})
	if err != nil {
		return nil, err
	}

	return output.First(), nil
}

func writeResult(w io.Writer, result domain.Item, asJSON bool) error {
	if out, ok := result["output"].(string); ok && !asJSON {
		_, err := fmt.Fprintln(w, out)
		return err
	}

	out, err := toolkit.MarshalPretty(result)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, out)
	return err
}
