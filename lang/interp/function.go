package interp

import (
	"github.com/mna/calyx/lang/ast"
)

// Function is a script function: parameter names and a body. Functions are
// non-capturing: the only names visible inside the body are its parameters
// and names resolvable in scopes pushed before the call, notably the
// global scope at the bottom of the chain. The body is immutable once
// defined, so a resolved *Function stays valid while the chain mutates.
type Function struct {
	Params []string
	Body   *ast.Block
}

// Call invokes the function with the provided argument values: it pushes a
// scope containing only the parameter bindings, executes the body and pops
// the scope before the result is observable by the caller. A Return result
// produces the returned value, any other completion produces None.
func (fn *Function) Call(chain *ScopeChain, args []Value) Value {
	chain.Push(ScopeFromArgs(fn.Params, args))
	res := ExecBlock(chain, fn.Body)
	chain.Pop()

	if res.Kind == ExecReturn {
		return res.Value
	}
	return None{}
}

// NativeFunc is a capability registered by the host before interpretation,
// callable by name from script. It receives the current scope chain and
// the evaluated arguments in order, and returns a value.
type NativeFunc interface {
	Execute(chain *ScopeChain, args []Value) Value
}
