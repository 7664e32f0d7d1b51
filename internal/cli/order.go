package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"autosar-arxml/internal/app"
)

func newOrderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "order [paths...]",
		Short: "List data types so that every type follows the types it uses",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrder(cmd.Context(), cmd, args)
		},
	}
}

func runOrder(ctx context.Context, cmd *cobra.Command, args []string) error {
	service := newAppService()
	result, err := service.Order(ctx, app.OrderRequest{Paths: pathsOrDefault(args)})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, ordered := range result.Types {
		fmt.Fprintf(out, "%s %s\n", ordered.Kind, ordered.Path)
	}
	return nil
}
