package cli

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"autosar-arxml/internal/app"
	"autosar-arxml/internal/types"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "ARXML"

type RootConfig struct {
	ConfigFile    string
	LogLevel      string
	CollectErrors bool
	SchemaSupport string
	MergeAction   string
}

func Execute() {
	root := newRootCommand()
	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:           "arxml",
		Short:         "Read, check and rewrite AUTOSAR XML models",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(log.Logger.WithContext(ctx))
			return nil
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	flags.BoolVar(&cfg.CollectErrors, "collect-errors", false, "Report every parse problem instead of stopping at the first")
	flags.StringVar(&cfg.SchemaSupport, "schema-support", "", "Accepted schema revisions as a PEP 440 range, e.g. '>=48,<=53'")
	flags.StringVar(&cfg.MergeAction, "merge-action", "fail", "What to do when files define the same element: fail, keep or replace")
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("collect_errors", flags.Lookup("collect-errors"))
	_ = viper.BindPFlag("schema_support", flags.Lookup("schema-support"))
	_ = viper.BindPFlag("merge_action", flags.Lookup("merge-action"))

	cmd.AddCommand(newValidateCommand())
	cmd.AddCommand(newFormatCommand())
	cmd.AddCommand(newInspectCommand())
	cmd.AddCommand(newFindCommand())
	cmd.AddCommand(newOrderCommand())
	cmd.AddCommand(newInitCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("arxml")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/arxml")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func newAppService() app.Service {
	return app.NewService(app.Options{
		CollectErrors: viper.GetBool("collect_errors"),
		SchemaSupport: viper.GetString("schema_support"),
		MergeAction:   viper.GetString("merge_action"),
	})
}

// inlineNamespaces reads a namespaces table embedded in the CLI config
// file, if there is one. Namespace names come back lowercased.
func inlineNamespaces() (*types.NamespaceConfigFile, error) {
	if !viper.IsSet("namespaces") {
		return nil, nil
	}
	file := &types.NamespaceConfigFile{
		ConfigVersion:    viper.GetString("namespace_config_version"),
		DefaultNamespace: viper.GetString("default_namespace"),
	}
	if file.ConfigVersion == "" {
		file.ConfigVersion = "1"
	}
	if err := viper.UnmarshalKey("namespaces", &file.Namespaces); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid namespaces in config file").
			WithCause(err)
	}
	for name, spec := range file.Namespaces {
		spec.Roles = canonicalRoles(spec.Roles)
		file.Namespaces[name] = spec
	}
	return file, nil
}

// canonicalRoles restores the case of role keys, which viper lowercases.
// Keys that match no role are kept so validation can report them.
func canonicalRoles(roles map[types.PackageRole]string) map[types.PackageRole]string {
	fixed := make(map[types.PackageRole]string, len(roles))
	for key, path := range roles {
		role := key
		for _, known := range types.PackageRoles() {
			if strings.EqualFold(string(known), string(key)) {
				role = known
				break
			}
		}
		fixed[role] = path
	}
	return fixed
}

func exitCodeForError(err error) int {
	code := errbuilder.CodeOf(err)
	message := errorMessage(err)
	switch code {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		return 2
	case errbuilder.CodeFailedPrecondition:
		if strings.HasPrefix(message, "validation found") || strings.HasSuffix(message, "not formatted") {
			return 3
		}
		return 4
	case errbuilder.CodePermissionDenied:
		return 3
	case errbuilder.CodeNotFound, errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
