package interp

import (
	"fmt"
	"io"
	"os"
)

// printNative is the built-in print/println capability. Int, Real and Str
// arguments render in their display form, any other value renders in its
// debug form. When newline is set, a single trailing newline is written
// after all arguments.
type printNative struct {
	w       io.Writer
	newline bool
}

// NewPrint returns the print native function writing to w.
func NewPrint(w io.Writer) NativeFunc {
	return &printNative{w: w}
}

// NewPrintln returns the println native function writing to w.
func NewPrintln(w io.Writer) NativeFunc {
	return &printNative{w: w, newline: true}
}

func (p *printNative) Execute(_ *ScopeChain, args []Value) Value {
	for _, arg := range args {
		switch arg.(type) {
		case Int, Real, Str:
			fmt.Fprint(p.w, arg.String())
		default:
			fmt.Fprintf(p.w, "%#v", arg)
		}
	}
	if p.newline {
		fmt.Fprintln(p.w)
	}
	return None{}
}

// DefaultGlobalScope returns a Scope prepopulated with the built-in native
// functions print and println, writing to standard output.
func DefaultGlobalScope() *Scope {
	s := NewScope()
	s.InsertNativeFunc("print", NewPrint(os.Stdout))
	s.InsertNativeFunc("println", NewPrintln(os.Stdout))
	return s
}
