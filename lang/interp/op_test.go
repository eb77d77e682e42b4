package interp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mna/calyx/lang/token"
)

func TestOpcodeForToken(t *testing.T) {
	ops := []token.Token{
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT,
		token.EQEQ, token.BANGEQ, token.LT, token.LE, token.GT, token.GE,
		token.AMPAMP, token.PIPEPIPE, token.CIRCUMFLEX, token.BANG,
	}
	for _, tok := range ops {
		op, ok := OpcodeForToken(tok)
		require.True(t, ok, tok.String())
		require.Equal(t, tok.String(), op.String())
	}

	for _, tok := range []token.Token{token.EQ, token.LET, token.IDENT, token.SEMICOLON} {
		_, ok := OpcodeForToken(tok)
		require.False(t, ok, tok.String())
	}
}

func TestOpcodeApply(t *testing.T) {
	cases := []struct {
		desc string
		op   Opcode
		l, r Value
		want Value
	}{
		{"int add", Add, Int(1), Int(2), Int(3)},
		{"int sub", Sub, Int(1), Int(2), Int(-1)},
		{"int mul", Mul, Int(3), Int(4), Int(12)},
		{"real add", Add, Real(1.5), Real(2), Real(3.5)},
		{"int widens left", Add, Int(1), Real(0.5), Real(1.5)},
		{"int widens right", Mul, Real(2.5), Int(2), Real(5)},
		{"add str", Add, Str("a"), Str("b"), None{}},
		{"add bool", Add, Bool(true), Int(1), None{}},
		{"add none", Add, None{}, Int(1), None{}},

		{"div ints is real", Div, Int(7), Int(2), Real(3.5)},
		{"div mixed", Div, Int(6), Real(1.5), Real(4)},
		{"div by zero", Div, Int(1), Int(0), Real(math.Inf(1))},
		{"div neg by zero", Div, Int(-1), Int(0), Real(math.Inf(-1))},
		{"div str", Div, Str("a"), Int(1), None{}},

		{"mod", Mod, Int(7), Int(3), Int(1)},
		{"mod neg dividend", Mod, Int(-7), Int(3), Int(-1)},
		{"mod by zero", Mod, Int(7), Int(0), None{}},
		{"mod real", Mod, Real(7), Int(3), None{}},

		{"int eq", Equal, Int(1), Int(1), Bool(true)},
		{"int neq", NotEqual, Int(1), Int(2), Bool(true)},
		{"int lt widened", LessThan, Int(1), Real(1.5), Bool(true)},
		{"real ge int", GreaterThanOrEqual, Real(2), Int(2), Bool(true)},
		{"big ints compare exactly", Equal, Int(1 << 60), Int(1<<60 + 1), Bool(false)},
		{"str lt", LessThan, Str("abc"), Str("abd"), Bool(true)},
		{"str le", LessThanOrEqual, Str("abc"), Str("abc"), Bool(true)},
		{"str eq", Equal, Str("a"), Str("a"), Bool(true)},
		{"str vs int", Equal, Str("1"), Int(1), None{}},
		{"bool eq", Equal, Bool(true), Bool(true), None{}},
		{"none eq none", Equal, None{}, None{}, None{}},

		{"and", LogicalAnd, Bool(true), Bool(false), Bool(false)},
		{"or", LogicalOr, Bool(true), Bool(false), Bool(true)},
		{"xor both", LogicalXor, Bool(true), Bool(true), Bool(false)},
		{"xor one", LogicalXor, Bool(true), Bool(false), Bool(true)},
		{"xor none", LogicalXor, Bool(false), Bool(false), Bool(false)},
		{"and non-bool", LogicalAnd, Int(1), Bool(true), None{}},
		{"or non-bool", LogicalOr, Bool(true), None{}, None{}},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			require.Equal(t, c.want, c.op.Apply(c.l, c.r))
		})
	}
}

func TestOpcodeApplyNaN(t *testing.T) {
	v := Div.Apply(Int(0), Int(0))
	r, ok := v.(Real)
	require.True(t, ok)
	require.True(t, math.IsNaN(float64(r)))
}

func TestOpcodeApplyUnary(t *testing.T) {
	cases := []struct {
		desc string
		x    Value
		want Value
	}{
		{"not true", Bool(true), Bool(false)},
		{"not false", Bool(false), Bool(true)},
		{"not none is true", None{}, Bool(true)},
		{"not int is false", Int(0), Bool(false)},
		{"not str is false", Str(""), Bool(false)},
		{"not list is false", List{}, Bool(false)},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			require.Equal(t, c.want, Not.ApplyUnary(c.x))
		})
	}

	// only Not is defined as a unary opcode
	require.Equal(t, None{}, Add.ApplyUnary(Bool(true)))
}
