package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"github.com/tulinowpavel/gojsonrpc2msg"
)

const maxLineSize = 16 << 20

/*
newParseCommand builds the parse command. Every input, or every line with
--lines, is parsed as one JSON-RPC payload and printed with its kind.
*/
func newParseCommand(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Classify and validate JSON-RPC messages",
		Long:  longParse,
		RunE: func(cmd *cobra.Command, args []string) error {
			i := &inspector{out: cmd.OutOrStdout(), pretty: s.cfg.Pretty}

			if len(args) == 0 {
				if err := i.read(cmd.InOrStdin(), s.cfg.Lines); err != nil {
					return err
				}
			}
			for _, name := range args {
				if err := i.readFile(name, s.cfg.Lines); err != nil {
					return err
				}
			}

			log.Debug("parse finished", "messages", i.total, "invalid", i.invalid)
			if s.cfg.Strict && i.invalid > 0 {
				return fmt.Errorf("%d of %d messages are invalid", i.invalid, i.total)
			}
			return nil
		},
	}

	cmd.Flags().Bool("lines", false, "treat every input line as a separate payload")
	cmd.Flags().Bool("pretty", false, "indent the printed JSON")
	cmd.Flags().Bool("strict", false, "exit with an error when any message is invalid")
	for _, name := range []string{"lines", "pretty", "strict"} {
		_ = s.v.BindPFlag(name, cmd.Flags().Lookup(name))
	}

	return cmd
}

// inspector prints parsed payloads and counts the invalid ones.
type inspector struct {
	out     io.Writer
	pretty  bool
	total   int
	invalid int
}

func (i *inspector) readFile(name string, lines bool) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return i.read(f, lines)
}

func (i *inspector) read(r io.Reader, lines bool) error {
	if !lines {
		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		return i.inspect(data)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if err := i.inspect(line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// inspect parses one payload. An invalid payload prints the error response
// a server would answer with.
func (i *inspector) inspect(data []byte) error {
	i.total++

	e, err := gojsonrpc2msg.ParseBytes(data)
	if err != nil {
		i.invalid++
		e = gojsonrpc2msg.AsRequestError(err, gojsonrpc2msg.NullID())
	} else if b, ok := e.(*gojsonrpc2msg.Batch); ok {
		for _, el := range b.Entities {
			if gojsonrpc2msg.IsException(el) {
				i.invalid++
				break
			}
		}
	}

	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", e.Kind(), err)
	}
	if i.pretty {
		raw = bytes.TrimRight(pretty.Pretty(raw), "\n")
	}

	_, err = fmt.Fprintf(i.out, "%s %s\n", label(e.Kind()), raw)
	return err
}

var longParse = `
Parse JSON-RPC 2.0 payloads and print each one with its kind.

Invalid payloads are printed as the error response they would receive. A batch
counts as invalid when any of its elements is.

Examples:
  # Classify a single message from standard input.
  echo '{"jsonrpc":"2.0","method":"ping","id":1}' | jsonrpcinspect parse

  # Validate a newline-delimited log and fail on the first bad message.
  jsonrpcinspect parse --lines --strict traffic.jsonl
`
