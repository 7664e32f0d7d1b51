package cli

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"autosar-arxml/internal/app"
)

type formatOptions struct {
	Check  bool
	Strict bool
}

func newFormatCommand() *cobra.Command {
	opts := formatOptions{}
	cmd := &cobra.Command{
		Use:   "format [paths...]",
		Short: "Rewrite ARXML files in canonical form",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd.Context(), cmd, args, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.Check, "check", false, "Report files that are not canonical without rewriting them")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Refuse to write documents with unresolved references")
	_ = viper.BindPFlag("strict", cmd.Flags().Lookup("strict"))
	return cmd
}

func runFormat(ctx context.Context, cmd *cobra.Command, args []string, opts formatOptions) error {
	service := newAppService()
	check := opts.Check
	result, err := service.Format(ctx, app.FormatRequest{
		Paths:  pathsOrDefault(args),
		Check:  check,
		Strict: resolveBool(cmd, opts.Strict, "strict", "strict"),
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	changed := result.Changed()
	for _, file := range changed {
		if check {
			fmt.Fprintf(out, "would reformat %s\n", file)
		} else {
			fmt.Fprintf(out, "reformatted %s\n", file)
		}
	}
	if check && len(changed) > 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("%d of %d files are not formatted", len(changed), len(result.Files)))
	}
	fmt.Fprintf(out, "formatted: %d files, %d changed\n", len(result.Files), len(changed))
	return nil
}
