package parser_test

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/require"

	"github.com/mna/calyx/internal/filetest"
	"github.com/mna/calyx/internal/maincmd"
	"github.com/mna/calyx/lang/ast"
	"github.com/mna/calyx/lang/parser"
	"github.com/mna/calyx/lang/token"
)

var testUpdateParserTests = flag.Bool("test.update-parser-tests", false, "If set, replace expected parser test results with actual results.")

func TestParse(t *testing.T) {
	ctx := context.Background()
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".cal") {
		t.Run(fi.Name(), func(t *testing.T) {
			var buf, ebuf bytes.Buffer
			stdio := mainer.Stdio{
				Stdout: &buf,
				Stderr: &ebuf,
			}

			// error is ignored, we just want it to be printed to ebuf
			_ = maincmd.ParseFiles(ctx, stdio, "", filepath.Join(srcDir, fi.Name()))
			filetest.DiffOutput(t, fi, buf.String(), resultDir, testUpdateParserTests)
			filetest.DiffErrors(t, fi, ebuf.String(), resultDir, testUpdateParserTests)
		})
	}
}

func TestParseChunk(t *testing.T) {
	cases := []struct {
		desc string
		in   string
		err  string // error "contains" this err string, no error if empty
	}{
		{"empty", ``, ""},
		{"let", `let a = 1`, ""},
		{"let trailing semi", `let a = 1;`, ""},
		{"signed literals", `let a = -1; let b = +2; let c = -1.5`, ""},
		{"list literal", `let a = [1, "x", true]`, ""},
		{"empty list", `let a = []`, ""},
		{"dict literal", `let a = {"k": 1, "l": 2}`, ""},
		{"empty dict", `let a = {}`, ""},
		{"index access", `a[0]`, ""},
		{"index assign", `a[0] = 1`, ""},
		{"call no args", `f()`, ""},
		{"nested blocks", `loop { if x { break } }`, ""},
		{"fn empty params", `fn f() { return 1 }`, ""},
		{"fib style", `fn fib(n) { if n <= 0 { return 0; }; return n; }; return fib(8);`, ""},

		{"garbage", `!&*`, "illegal character"},
		{"missing value", `let a = ;`, "expected expression"},
		{"dangling binop", `1 +`, "expected expression"},
		{"missing param", `fn f(`, "expected identifier"},
		{"unterminated string", `let a = "abc`, "string literal not terminated"},
		{"trailing comma in list", `let a = [1,]`, "expected expression"},
		{"ident dict key", `let a = {k: 1}`, "expected string literal"},
		{"dict key without value", `let a = {"k"}`, "expected ':'"},
		{"assign to ident", `x = 1`, "expected end of file"},
		{"incomplete real", `let a = 1.`, "illegal character"},
		{"else without block", `if x { } else`, "expected '{'"},
		{"unbalanced brace", `loop {`, "expected '}'"},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			ch, err := parser.ParseChunk("test", []byte(c.in))
			if c.err == "" {
				require.NoError(t, err)
				require.NotNil(t, ch.Block)
			} else {
				require.ErrorContains(t, err, c.err)
			}
		})
	}
}

func TestParseLeftAssociative(t *testing.T) {
	ch, err := parser.ParseChunk("test", []byte(`1 - 2 - 3`))
	require.NoError(t, err)
	require.Len(t, ch.Block.Stmts, 1)

	expr := ch.Block.Stmts[0].(*ast.ExprStmt).Expr
	outer := expr.(*ast.BinOpExpr)
	require.Equal(t, token.MINUS, outer.Type)

	// (1 - 2) - 3, not 1 - (2 - 3)
	inner := outer.Left.(*ast.BinOpExpr)
	require.Equal(t, token.MINUS, inner.Type)
	require.Equal(t, int64(1), inner.Left.(*ast.LiteralExpr).Value)
	require.Equal(t, int64(2), inner.Right.(*ast.LiteralExpr).Value)
	require.Equal(t, int64(3), outer.Right.(*ast.LiteralExpr).Value)
}

func TestParsePrecedence(t *testing.T) {
	// relational binds tighter than product, which binds tighter than sum:
	// 1 + 2 * 3 == 4 is 1 + (2 * (3 == 4))
	ch, err := parser.ParseChunk("test", []byte(`1 + 2 * 3 == 4`))
	require.NoError(t, err)

	expr := ch.Block.Stmts[0].(*ast.ExprStmt).Expr
	sum := expr.(*ast.BinOpExpr)
	require.Equal(t, token.PLUS, sum.Type)

	prod := sum.Right.(*ast.BinOpExpr)
	require.Equal(t, token.STAR, prod.Type)

	rel := prod.Right.(*ast.BinOpExpr)
	require.Equal(t, token.EQEQ, rel.Type)
}

func TestParseUnaryBindsTightest(t *testing.T) {
	// !a && b is (!a) && b
	ch, err := parser.ParseChunk("test", []byte(`!a && b`))
	require.NoError(t, err)

	expr := ch.Block.Stmts[0].(*ast.ExprStmt).Expr
	and := expr.(*ast.BinOpExpr)
	require.Equal(t, token.AMPAMP, and.Type)

	not := and.Left.(*ast.UnaryOpExpr)
	require.Equal(t, token.BANG, not.Type)
}

func TestParseSignAbsorbedByLiteral(t *testing.T) {
	// a + -1 is a + (-1), there is no unary minus operator
	ch, err := parser.ParseChunk("test", []byte(`a + -1`))
	require.NoError(t, err)

	expr := ch.Block.Stmts[0].(*ast.ExprStmt).Expr
	sum := expr.(*ast.BinOpExpr)
	require.Equal(t, token.PLUS, sum.Type)

	lit := sum.Right.(*ast.LiteralExpr)
	require.Equal(t, "-1", lit.Raw)
	require.Equal(t, int64(-1), lit.Value)
}

func TestParseIndexAssignVsAccess(t *testing.T) {
	// statement position: indexed assignment
	ch, err := parser.ParseChunk("test", []byte(`a[0] = 1`))
	require.NoError(t, err)
	_, ok := ch.Block.Stmts[0].(*ast.IndexAssignStmt)
	require.True(t, ok)

	// expression position: indexed access
	ch, err = parser.ParseChunk("test", []byte(`let b = a[0]`))
	require.NoError(t, err)
	let := ch.Block.Stmts[0].(*ast.LetStmt)
	_, ok = let.Value.(*ast.IndexExpr)
	require.True(t, ok)
}
