package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"autosar-arxml/internal/app"
)

type initOptions struct {
	NamespaceConfigs []string
	Namespace        string
	SchemaVersion    int
	Force            bool
}

func newInitCommand() *cobra.Command {
	opts := initOptions{}
	cmd := &cobra.Command{
		Use:   "init <output.arxml>",
		Short: "Write an empty ARXML document with the package skeleton of a namespace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd.Context(), cmd, args[0], opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.NamespaceConfigs, "namespace-config", nil, "Namespace config files (repeatable, later files win)")
	cmd.Flags().StringVar(&opts.Namespace, "namespace", "", "Namespace whose packages to create (default namespace if empty)")
	cmd.Flags().IntVar(&opts.SchemaVersion, "schema-version", 0, "Schema revision to declare, e.g. 51")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite an existing file")
	_ = viper.BindPFlag("namespace_configs", cmd.Flags().Lookup("namespace-config"))
	_ = viper.BindPFlag("namespace", cmd.Flags().Lookup("namespace"))
	_ = viper.BindPFlag("schema_version", cmd.Flags().Lookup("schema-version"))
	return cmd
}

func runInit(ctx context.Context, cmd *cobra.Command, output string, opts initOptions) error {
	inline, err := inlineNamespaces()
	if err != nil {
		return err
	}
	service := newAppService()
	result, err := service.Init(ctx, app.InitRequest{
		Output:        output,
		ConfigFiles:   resolveStrings(cmd, opts.NamespaceConfigs, "namespace_configs", "namespace-config"),
		Inline:        inline,
		Namespace:     resolveString(cmd, opts.Namespace, "namespace", "namespace"),
		SchemaVersion: resolveInt(cmd, opts.SchemaVersion, "schema_version", "schema-version"),
		Force:         opts.Force,
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "created %s (namespace %s)\n", result.Path, result.Namespace)
	if len(result.Packages) > 0 {
		fmt.Fprintf(out, "  %s\n", strings.Join(result.Packages, "\n  "))
	}
	return nil
}
