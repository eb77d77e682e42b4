package maincmd

import (
	"context"

	"github.com/mna/mainer"

	"github.com/mna/calyx/lang/ast"
	"github.com/mna/calyx/lang/parser"
	"github.com/mna/calyx/lang/scanner"
)

func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ParseFiles(ctx, stdio, "", args...)
}

// ParseFiles parses the source files and prints the resulting ASTs to
// stdout, one line per node. The nodeFmt is the format string used for
// each node, "%v" when empty.
func ParseFiles(ctx context.Context, stdio mainer.Stdio, nodeFmt string, files ...string) error {
	printer := ast.Printer{
		Output:  stdio.Stdout,
		NodeFmt: nodeFmt,
	}
	chunks, err := parser.ParseFiles(ctx, files...)
	for _, ch := range chunks {
		if err := printer.Print(ch); err != nil {
			return printError(stdio, err)
		}
	}
	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
	}
	return err
}
