// "dequeviz" replays deque operations and renders the resulting block structure.
package cmd

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"

	"github.com/npillmayer/deque"
)

const (
	formatConsole = "console"
	formatDot     = "dot"
)

var (
	format   string
	maxItems int
	noColor  bool

	rootCmd = &cobra.Command{
		Use:   "dequeviz [flags] op...",
		Short: "Replay deque operations and render the block structure",
		Long: `dequeviz applies a sequence of operations to an empty deque of integers
and prints the resulting chain of blocks, either as colored bars or as a
Graphviz DOT graph.

Operations:
  push-back:N      append the values 0..N-1
  push-front:N     prepend the values 0..N-1
  pop-back:N       remove N elements from the back
  pop-front:N      remove N elements from the front
  insert:P:V       insert value V before position P
  erase:P          remove the element at position P
  clear            remove all elements`,
		Example:      "  dequeviz -b 4 push-back:100 pop-front:30 insert:10:-1 --format dot | dot -Tsvg",
		SilenceUsage: true,
		RunE:         run,
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntP(flagBlockCapacity, "b", deque.DefaultBlockCapacity, "block capacity B")
	flags.String(flagTraceLevel, "Error", "trace level (Error, Info, Debug)")
	flags.StringVarP(&format, "format", "f", formatConsole, "output format (console, dot)")
	flags.IntVar(&maxItems, "max-items", 4, "elements listed per block in DOT output")
	flags.BoolVar(&noColor, "no-color", false, "suppress colored console output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	conf := flagConfig{flags: cmd.Flags()}
	setupTracing(conf)
	d, err := deque.NewWithConfig[int](deque.ConfigFrom(conf))
	if err != nil {
		return err
	}
	ops, err := parseScript(args)
	if err != nil {
		return err
	}
	for _, op := range ops {
		if err := op.apply(d); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	if err := d.Check(); err != nil {
		return err
	}
	switch format {
	case formatConsole:
		config := deque.DumpConfigFromTerminal()
		config.NoColor = config.NoColor || noColor
		d.Dump(os.Stdout, config)
		return nil
	case formatDot:
		return deque.Deque2Dot(d, os.Stdout, maxItems)
	}
	return fmt.Errorf("unknown output format %q", format)
}

func setupTracing(conf flagConfig) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	level := tracing.TraceLevelFromString(conf.GetString(configKeyTraceLevel))
	tracing.Select("deque").SetTraceLevel(level)
}
