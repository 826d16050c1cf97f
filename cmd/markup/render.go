package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/loader"
	"github.com/vango-dev/markup/pkg/render"
	"github.com/vango-dev/markup/pkg/tag"
)

func renderCmd(a *app) *cobra.Command {
	var (
		output  string
		params  []string
		compact bool
	)

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a description",
		Long: `Render a YAML or JSON document description to HTML or XML.

Nodes marked fromContext take their value from --param.

Examples:
  markup render page.yaml
  markup render page.yaml -o page.html
  markup render form.yaml --param email=a@b.c --param name=Ann`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := parseParams(params)
			if err != nil {
				return err
			}
			rcfg := a.renderConfig()
			rcfg.Compact = rcfg.Compact || compact

			markup, _, err := renderFile(args[0], ctx, rcfg)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), markup)
				return err
			}
			if err := os.WriteFile(output, []byte(markup), 0644); err != nil {
				return err
			}
			a.logger.Debug("rendered", "file", args[0], "output", output, "bytes", len(markup))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "Context parameter name=value (repeatable)")
	cmd.Flags().BoolVar(&compact, "compact", false, "Disable line breaks and indentation")

	return cmd
}

func (a *app) renderConfig() render.Config {
	return render.Config{
		Indent:  a.cfg.Render.Indent,
		Compact: a.cfg.Render.Compact,
	}
}

// parseParams turns name=value pairs into a context.
func parseParams(params []string) (tag.Context, error) {
	ctx := tag.MapContext{}
	for _, p := range params {
		name, value, ok := strings.Cut(p, "=")
		if !ok || name == "" {
			return nil, errors.New("E050").
				WithDetailf("--param %q is not name=value", p).
				WithSuggestion("Use --param name=value")
		}
		ctx[name] = value
	}
	return ctx, nil
}

// renderFile loads and renders one description file and returns the
// markup with its content type.
func renderFile(path string, ctx tag.Context, rcfg render.Config) (string, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	root, err := loader.Load(f, ctx)
	if err != nil {
		return "", "", err
	}
	markup, err := render.New(rcfg).RenderToString(root)
	if err != nil {
		return "", "", err
	}
	return markup, loader.ContentType(root), nil
}
