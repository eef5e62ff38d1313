// Command bintree converts level-order tree literals, as used by algorithm
// exercises, and displays the trees they denote.
//
//	bintree render "[1,null,2,null,null]"    # [1, null, 2]
//	bintree print "[3,0,4,null,2,null,null,1]"
//	bintree dot "[1,2,3]" | dot -Tsvg > tree.svg
//	bintree same "[1,2]" "[1,null,2]"        # false
//
// A literal of "-" is read from stdin.
package main

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

type settings struct {
	valueType string
	verbose   bool
	diagram   bool
	outline   bool
	noColor   bool
}

func newRootCmd() *cobra.Command {
	s := &settings{}
	rootCmd := &cobra.Command{
		Use:           "bintree [command] (flags)",
		Short:         "convert and display level-order binary tree literals",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if s.verbose {
				tracer().SetTraceLevel(tracing.LevelDebug)
			} else {
				tracer().SetTraceLevel(tracing.LevelError)
			}
		},
	}
	rootCmd.PersistentFlags().StringVarP(
		&s.valueType, "type", "t", "int", "value type of tree nodes: int, int64, float or string")
	rootCmd.PersistentFlags().BoolVarP(
		&s.verbose, "verbose", "v", false, "enable debug tracing")

	printCmd := newPrintCmd(s)
	printCmd.Flags().BoolVar(
		&s.diagram, "diagram", false, "always draw a diagram, even if wider than the terminal")
	printCmd.Flags().BoolVar(
		&s.outline, "outline", false, "always print an outline")
	printCmd.Flags().BoolVar(
		&s.noColor, "no-color", false, "disable colored output")

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		newRenderCmd(s),
		printCmd,
		newDotCmd(s),
		newHTMLCmd(s),
		newSameCmd(s),
	)
	return rootCmd
}

// tracer traces with key 'bintree', shared with the library packages.
func tracer() tracing.Trace {
	return tracing.Select("bintree")
}

func main() {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
