package cli

import (
	"context"

	"github.com/spf13/cobra"

	"autosar-arxml/internal/app"
)

type findOptions struct {
	Paths []string
}

func newFindCommand() *cobra.Command {
	opts := findOptions{}
	cmd := &cobra.Command{
		Use:   "find <element-path>",
		Short: "Print the ARXML of a single element, e.g. /DataTypes/BaseTypes/uint8",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd.Context(), cmd, args[0], opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.Paths, "in", []string{"."}, "Files or directories to search")
	return cmd
}

func runFind(ctx context.Context, cmd *cobra.Command, element string, opts findOptions) error {
	service := newAppService()
	result, err := service.Find(ctx, app.FindRequest{Paths: opts.Paths, Element: element})
	if err != nil {
		return err
	}
	cmd.PrintErrf("%s %s (%s)\n", result.Kind, result.Path, result.File)
	_, err = cmd.OutOrStdout().Write(result.Fragment)
	return err
}
