/*
Package cli implements the jsonrpcinspect command line: it classifies JSON-RPC 2.0
traffic read from files or standard input and prints the message schemas.
*/
package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tulinowpavel/gojsonrpc2msg/internal/config"
)

/*
settings carries the viper instance and the decoded configuration from the
root command down to its subcommands.
*/
type settings struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
}

/*
NewRootCommand builds the jsonrpcinspect command tree. Configuration is loaded
before any subcommand runs, so flags, the config file and JSONRPC_* variables
are all merged by the time a subcommand reads them.
*/
func NewRootCommand() *cobra.Command {
	s := &settings{v: config.New()}

	root := &cobra.Command{
		Use:           "jsonrpcinspect",
		Short:         "Inspect and validate JSON-RPC 2.0 messages",
		Long:          longRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(s.v, s.cfgFile)
			if err != nil {
				return err
			}
			s.cfg = cfg

			log.SetOutput(cmd.ErrOrStderr())
			log.SetLevel(cfg.Level())
			return nil
		},
	}

	root.PersistentFlags().StringVar(&s.cfgFile, "config", "", "config file (default is ./jsonrpcinspect.yaml)")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	_ = s.v.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(newParseCommand(s), newSchemaCommand(s))
	return root
}

/*
longRoot contains the detailed help text for the root command.
*/
var longRoot = `
jsonrpcinspect reads JSON-RPC 2.0 messages and reports what they are: requests,
notifications, responses, batches, or the error response a server would send back
for them.
`
