package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"autosar-arxml/internal/app"
)

type inspectOptions struct {
	Query string
	YAML  bool
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Summarize the packages and elements of an ARXML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.Query, "query", "", "JMESPath expression evaluated against the summary")
	cmd.Flags().BoolVar(&opts.YAML, "yaml", false, "Print the full summary as YAML")
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, path string, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{Path: path, Query: opts.Query})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if opts.Query != "" || opts.YAML {
		var value any = result.Summary
		if opts.Query != "" {
			value = result.Query
		}
		data, err := yaml.Marshal(value)
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to encode inspect output").
				WithCause(err)
		}
		_, err = out.Write(data)
		return err
	}

	summary := result.Summary
	fmt.Fprintf(out, "%s: schema %d, %d elements\n", summary.File, summary.SchemaVersion, summary.ElementCount)
	fmt.Fprintln(out, "kinds:")
	for _, kind := range summary.SortedKinds() {
		fmt.Fprintf(out, "- %s: %d\n", kind, summary.Kinds[kind])
	}
	fmt.Fprintln(out, "packages:")
	for _, pkg := range summary.Packages {
		names := make([]string, 0, len(pkg.Elements))
		for _, element := range pkg.Elements {
			names = append(names, element.Name)
		}
		fmt.Fprintf(out, "- %s: %d elements\n", pkg.Path, len(pkg.Elements))
		if len(names) > 0 {
			fmt.Fprintf(out, "  %s\n", strings.Join(names, ", "))
		}
	}
	return nil
}
