package maincmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/calyx/lang/interp"
)

func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return RunFiles(ctx, stdio, args...)
}

// RunFiles parses and executes each source file under a fresh global scope
// containing the built-in native functions, and prints the debug form of
// the final execution result to stdout. With no files, the whole of stdin
// is read and executed as a single program. A completed parse+execute
// cycle is a success regardless of the resulting ExecResult variant,
// including a parse error.
func RunFiles(ctx context.Context, stdio mainer.Stdio, files ...string) error {
	if len(files) == 0 {
		b, err := io.ReadAll(stdio.Stdin)
		if err != nil {
			return printError(stdio, err)
		}
		runSource(stdio, b)
		return nil
	}

	for _, file := range files {
		b, err := os.ReadFile(file)
		if err != nil {
			return printError(stdio, err)
		}
		runSource(stdio, b)
	}
	return nil
}

func runSource(stdio mainer.Stdio, src []byte) {
	scope := interp.NewScope()
	scope.InsertNativeFunc("print", interp.NewPrint(stdio.Stdout))
	scope.InsertNativeFunc("println", interp.NewPrintln(stdio.Stdout))

	res := interp.Interpret(string(src), scope)
	fmt.Fprintf(stdio.Stdout, "%#v\n", res.ExecResult)
}
