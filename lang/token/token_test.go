package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenString(t *testing.T) {
	for tok := Token(0); tok < maxToken; tok++ {
		if tok.String() == "" {
			t.Errorf("missing string representation of token %d", tok)
		}
	}
}

func TestLookupKw(t *testing.T) {
	for tok := Token(0); tok < maxToken; tok++ {
		expect := tok >= kwStart && tok <= kwEnd
		val := LookupKw(tok.GoString())
		if expect {
			require.Equal(t, tok, val)
		} else {
			require.Equal(t, IDENT, val)
		}
	}
}

func TestLookupPunct(t *testing.T) {
	for tok := Token(0); tok < maxToken; tok++ {
		expect := tok >= punctStart && tok <= punctEnd
		val := LookupPunct(tok.String())
		if expect {
			require.Equal(t, tok, val)
		} else {
			require.Equal(t, ILLEGAL, val)
		}
	}
}

func TestIsBinop(t *testing.T) {
	binops := map[Token]bool{
		PLUS: true, MINUS: true, STAR: true, SLASH: true, PERCENT: true,
		EQEQ: true, BANGEQ: true, LT: true, LE: true, GT: true, GE: true,
		AMPAMP: true, PIPEPIPE: true, CIRCUMFLEX: true,
	}
	for tok := Token(0); tok < maxToken; tok++ {
		require.Equal(t, binops[tok], tok.IsBinop(), tok.String())
	}
}

func TestIsUnop(t *testing.T) {
	for tok := Token(0); tok < maxToken; tok++ {
		require.Equal(t, tok == BANG, tok.IsUnop(), tok.String())
	}
}

func TestIsLit(t *testing.T) {
	lits := map[Token]bool{
		INT: true, FLOAT: true, STRING: true, TRUE: true, FALSE: true, NULL: true,
	}
	for tok := Token(0); tok < maxToken; tok++ {
		require.Equal(t, lits[tok], tok.IsLit(), tok.String())
	}
}

func TestLiteral(t *testing.T) {
	val := Value{Raw: "raw"}

	require.Equal(t, "raw", IDENT.Literal(val))
	require.Equal(t, "raw", INT.Literal(val))
	require.Equal(t, "raw", FLOAT.Literal(val))
	require.Equal(t, "raw", STRING.Literal(val))
	require.Equal(t, "", LET.Literal(val))
	require.Equal(t, "", PLUS.Literal(val))
	require.Equal(t, "", ILLEGAL.Literal(val))
}
