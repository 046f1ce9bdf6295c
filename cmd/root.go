// Package cmd contains the commands of the containers demo binary.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	logLevelFlag  = "log-level"
	logFormatFlag = "log-format"
)

// NewRootCommand returns the root command with every subcommand attached.
// Flags can also be supplied through environment variables prefixed with
// CONTAINERS (e.g. CONTAINERS_LOG_LEVEL=debug).
func NewRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("CONTAINERS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "containers",
		Short: "Exercise the generic linked list and stack containers",
		Long: `Exercise the generic linked list and stack containers.

The list and stack subcommands build a container from their arguments,
mutate and query it, print every intermediate state and tear it down.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.String(logLevelFlag, "info", "log level: debug, info, warn or error")
	flags.String(logFormatFlag, "text", "log format: text or json")
	mustBindPFlag(v, logLevelFlag, flags.Lookup(logLevelFlag))
	mustBindPFlag(v, logFormatFlag, flags.Lookup(logFormatFlag))

	root.AddCommand(NewListCommand(v))
	root.AddCommand(NewStackCommand(v))
	root.AddCommand(NewVersionCommand())

	return root
}

// mustBindPFlag binds key to a pflag and panics if the binding fails.
func mustBindPFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic("failed to bind pflag: " + err.Error())
	}
}
