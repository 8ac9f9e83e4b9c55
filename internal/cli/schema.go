package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"github.com/tulinowpavel/gojsonrpc2msg"
)

var schemaKinds = []gojsonrpc2msg.Kind{
	gojsonrpc2msg.KindRequest,
	gojsonrpc2msg.KindNotification,
	gojsonrpc2msg.KindResponse,
	gojsonrpc2msg.KindError,
}

/*
newSchemaCommand builds the schema command, printing the JSON Schema of one
message kind or of all of them.
*/
func newSchemaCommand(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:       "schema [kind]",
		Short:     "Print the JSON Schema of message envelopes",
		Long:      longSchema,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"request", "notification", "response", "error"},
		RunE: func(cmd *cobra.Command, args []string) error {
			schemas := gojsonrpc2msg.Schemas()

			kinds := schemaKinds
			if len(args) == 1 {
				k, ok := kindByName(args[0])
				if !ok {
					return fmt.Errorf("unknown kind %q", args[0])
				}
				kinds = []gojsonrpc2msg.Kind{k}
			}

			for _, k := range kinds {
				raw, err := json.Marshal(schemas[k])
				if err != nil {
					return fmt.Errorf("marshal %s schema: %w", k, err)
				}
				if len(kinds) > 1 {
					fmt.Fprintln(cmd.OutOrStdout(), label(k))
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(bytes.TrimRight(pretty.Pretty(raw), "\n")))
			}
			return nil
		},
	}
}

func kindByName(name string) (gojsonrpc2msg.Kind, bool) {
	for _, k := range schemaKinds {
		if k.String() == name {
			return k, true
		}
	}
	return gojsonrpc2msg.KindUnknown, false
}

var longSchema = `
Print the JSON Schema describing the wire form of requests, notifications,
responses and error objects.

Examples:
  # Print every schema.
  jsonrpcinspect schema

  # Print the request schema only.
  jsonrpcinspect schema request
`
