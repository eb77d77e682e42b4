package interp_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mna/calyx/lang/interp"
)

func writerScope(w *bytes.Buffer) *interp.Scope {
	s := interp.NewScope()
	s.InsertNativeFunc("print", interp.NewPrint(w))
	s.InsertNativeFunc("println", interp.NewPrintln(w))
	return s
}

func TestPrintRendering(t *testing.T) {
	var buf bytes.Buffer

	// ints, reals and strings render bare, everything else renders in debug
	// form
	src := `print(1, " ", 1.5, " ", "x", true, null, [1, "a"])`
	res := interp.Interpret(src, writerScope(&buf))

	require.Equal(t, interp.ExecNone, res.ExecResult.Kind)
	require.Equal(t, `1 1.5 xBool(true)NoneList[Int(1), Str("a")]`, buf.String())
}

func TestPrintlnRendering(t *testing.T) {
	var buf bytes.Buffer

	src := `println(1, 2); println(); print(3)`
	res := interp.Interpret(src, writerScope(&buf))

	require.Equal(t, interp.ExecNone, res.ExecResult.Kind)
	require.Equal(t, "12\n\n3", buf.String())
}

func TestPrintReturnsNone(t *testing.T) {
	var buf bytes.Buffer

	src := `let a = print(1); let b = println(2)`
	res := interp.Interpret(src, writerScope(&buf))

	v, ok := res.ScopeChain.ResolveVar("a")
	require.True(t, ok)
	require.Equal(t, interp.None{}, v)
	v, ok = res.ScopeChain.ResolveVar("b")
	require.True(t, ok)
	require.Equal(t, interp.None{}, v)
}

func TestPrintDict(t *testing.T) {
	var buf bytes.Buffer

	src := `let d = {"b": 2, "a": 1}; print(d)`
	res := interp.Interpret(src, writerScope(&buf))

	require.Equal(t, interp.ExecNone, res.ExecResult.Kind)
	// dict keys render sorted, so output is deterministic
	require.Equal(t, `Dict{"a": Int(1), "b": Int(2)}`, buf.String())
}

func TestDefaultGlobalScope(t *testing.T) {
	chain := interp.ScopeChainFrom(interp.DefaultGlobalScope())
	require.NotNil(t, chain.ResolveNativeFunc("print"))
	require.NotNil(t, chain.ResolveNativeFunc("println"))
	require.Nil(t, chain.ResolveFunc("print"))
}

// hostNative records the arguments it receives and returns a canned value.
type hostNative struct {
	args []interp.Value
	ret  interp.Value
}

func (n *hostNative) Execute(_ *interp.ScopeChain, args []interp.Value) interp.Value {
	n.args = append([]interp.Value(nil), args...)
	return n.ret
}

func TestHostRegisteredNative(t *testing.T) {
	nat := &hostNative{ret: interp.Int(7)}
	scope := interp.NewScope()
	scope.InsertNativeFunc("host", nat)

	res := interp.Interpret(`return host(1, "a", [true])`, scope)

	require.Equal(t, interp.ExecReturn, res.ExecResult.Kind)
	require.Equal(t, interp.Int(7), res.ExecResult.Value)
	require.Equal(t, []interp.Value{
		interp.Int(1),
		interp.Str("a"),
		interp.List{interp.Bool(true)},
	}, nat.args)
}
