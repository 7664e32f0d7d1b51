package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"autosar-arxml/internal/app"
)

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [paths...]",
		Short: "Parse ARXML files and check every reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), cmd, args)
		},
	}
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, args []string) error {
	service := newAppService()
	result, err := service.Validate(ctx, app.ValidateRequest{Paths: pathsOrDefault(args)})
	out := cmd.OutOrStdout()
	for _, file := range result.Files {
		fmt.Fprintf(out, "%s: schema %d, %d elements\n", file.Path, file.SchemaVersion, file.Elements)
		for _, problem := range file.Problems {
			fmt.Fprintf(out, "  %s\n", problem.Error())
		}
	}
	for _, unresolved := range result.Unresolved {
		fmt.Fprintf(out, "%s: %s\n", unresolved.Owner, unresolved.Err.Error())
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "validated: %d files\n", len(result.Files))
	return nil
}

func pathsOrDefault(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}
	return args
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetInt(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
