package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/bintree"
	"github.com/npillmayer/bintree/console"
	"github.com/npillmayer/bintree/htmltree"
	"github.com/spf13/cobra"
)

func newRenderCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "render <literal>",
		Short: "print the canonical form of a tree literal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTool(cmd, s, args, func(tool treeTool, lits []string) error {
				out, err := tool.render(lits[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
				return err
			})
		},
	}
}

func newPrintCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "print <literal>",
		Short: "display a tree as a diagram or an outline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTool(cmd, s, args, func(tool treeTool, lits []string) error {
				opts := &console.Options{Color: !s.noColor}
				mode := modeAuto
				if s.outline {
					mode = modeOutline
				} else if s.diagram {
					mode = modeDiagram
				}
				return tool.print(cmd.OutOrStdout(), lits[0], mode, opts)
			})
		},
	}
}

func newDotCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "dot <literal>",
		Short: "write a tree in Graphviz DOT format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTool(cmd, s, args, func(tool treeTool, lits []string) error {
				return tool.dot(cmd.OutOrStdout(), lits[0])
			})
		},
	}
}

func newHTMLCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "html <literal>",
		Short: "write a tree as a nested HTML list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTool(cmd, s, args, func(tool treeTool, lits []string) error {
				if err := tool.html(cmd.OutOrStdout(), lits[0]); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout())
				return err
			})
		},
	}
}

func newSameCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "same <literal> <literal>",
		Short: "check two tree literals for structural equality",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTool(cmd, s, args, func(tool treeTool, lits []string) error {
				same, err := tool.same(lits[0], lits[1])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), same)
				return err
			})
		},
	}
}

// withTool selects the tool for the configured value type and reads literal
// arguments of "-" from stdin.
func withTool(cmd *cobra.Command, s *settings, args []string, f func(treeTool, []string) error) error {
	tool, err := toolFor(s.valueType)
	if err != nil {
		return err
	}
	lits := make([]string, len(args))
	for i, arg := range args {
		if arg != "-" {
			lits[i] = arg
			continue
		}
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		lits[i] = strings.TrimSpace(string(b))
	}
	return f(tool, lits)
}

// --- Tools -----------------------------------------------------------------

type printMode int

const (
	modeAuto printMode = iota
	modeDiagram
	modeOutline
)

// treeTool hides the value type of trees from the commands.
type treeTool interface {
	render(lit string) (string, error)
	print(w io.Writer, lit string, mode printMode, opts *console.Options) error
	dot(w io.Writer, lit string) error
	html(w io.Writer, lit string) error
	same(a, b string) (bool, error)
}

func toolFor(valueType string) (treeTool, error) {
	switch valueType {
	case "int":
		return tool[int]{bintree.Ints}, nil
	case "int64":
		return tool[int64]{bintree.Int64s}, nil
	case "float":
		return tool[float64]{bintree.Float64s}, nil
	case "string":
		return tool[string]{bintree.Strings}, nil
	}
	return nil, fmt.Errorf("%w: unknown value type %q", bintree.ErrIllegalArguments, valueType)
}

type tool[T comparable] struct {
	codec *bintree.Codec[T]
}

func (t tool[T]) render(lit string) (string, error) {
	root, err := t.codec.FromString(lit)
	if err != nil {
		return "", err
	}
	return t.codec.Render(root), nil
}

func (t tool[T]) print(w io.Writer, lit string, mode printMode, opts *console.Options) error {
	root, err := t.codec.FromString(lit)
	if err != nil {
		return err
	}
	switch mode {
	case modeOutline:
		_, err = io.WriteString(w, console.Outline(root, t.codec.Format, opts))
	case modeDiagram:
		var out string
		if out, err = console.Diagram(root, t.codec.Format, opts); err == nil {
			_, err = io.WriteString(w, out)
		}
	default:
		err = console.Print(w, root, t.codec.Format, opts)
	}
	return err
}

func (t tool[T]) dot(w io.Writer, lit string) error {
	root, err := t.codec.FromString(lit)
	if err != nil {
		return err
	}
	return t.codec.ToDot(root, w)
}

func (t tool[T]) html(w io.Writer, lit string) error {
	root, err := t.codec.FromString(lit)
	if err != nil {
		return err
	}
	return htmltree.Render(root, t.codec.Format, w)
}

func (t tool[T]) same(a, b string) (bool, error) {
	p, err := t.codec.FromString(a)
	if err != nil {
		return false, err
	}
	q, err := t.codec.FromString(b)
	if err != nil {
		return false, err
	}
	return bintree.Equal(p, q), nil
}
