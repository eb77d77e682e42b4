package ast

import (
	"fmt"

	"github.com/mna/calyx/lang/token"
)

type (
	// BreakStmt represents a break statement.
	BreakStmt struct {
		Start token.Pos
	}

	// ExprStmt represents an expression used as a statement; its value is
	// discarded.
	ExprStmt struct {
		Expr Expr
	}

	// FuncStmt represents a function definition, e.g. fn f(a, b) { ... }.
	FuncStmt struct {
		Fn     token.Pos
		Name   *IdentExpr
		Lparen token.Pos
		Params []*IdentExpr
		Rparen token.Pos
		Body   *Block
		Rbrace token.Pos
	}

	// IfStmt represents a conditional statement with an optional else
	// block. When False is nil, a condition that is not Bool(true) is a
	// no-op; when False is present, any condition other than Bool(true)
	// executes the else block.
	IfStmt struct {
		If    token.Pos
		Cond  Expr
		True  *Block
		Else  token.Pos // NoPos when no else block
		False *Block    // nil when no else block
		End   token.Pos // closing brace of the last block
	}

	// IndexAssignStmt represents assignment to an indexed element of a
	// named variable, e.g. x[0] = 1 or x["k"] = 1.
	IndexAssignStmt struct {
		Name   *IdentExpr
		Lbrack token.Pos
		Index  Expr
		Rbrack token.Pos
		Assign token.Pos
		Value  Expr
	}

	// LetStmt represents a variable binding, e.g. let x = 1. It always
	// binds in the innermost scope.
	LetStmt struct {
		Let   token.Pos
		Name  *IdentExpr
		Eq    token.Pos
		Value Expr
	}

	// LoopStmt represents an unconditional loop, terminated by a break
	// statement in its body.
	LoopStmt struct {
		Loop   token.Pos
		Body   *Block
		Rbrace token.Pos
	}

	// ReturnStmt represents a return statement with its value.
	ReturnStmt struct {
		Return token.Pos
		Value  Expr
	}
)

func (n *BreakStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, token.BREAK.String(), nil)
}
func (n *BreakStmt) Span() (start, end token.Pos) {
	return n.Start, n.Start + token.Pos(len(token.BREAK.String()))
}
func (n *BreakStmt) Walk(v Visitor) {}
func (n *BreakStmt) stmt()          {}

func (n *ExprStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "expr stmt", nil)
}
func (n *ExprStmt) Span() (start, end token.Pos) {
	return n.Expr.Span()
}
func (n *ExprStmt) Walk(v Visitor) {
	Walk(v, n.Expr)
}
func (n *ExprStmt) stmt() {}

func (n *FuncStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "fn "+n.Name.Lit, map[string]int{"params": len(n.Params)})
}
func (n *FuncStmt) Span() (start, end token.Pos) {
	return n.Fn, n.Rbrace + token.Pos(len(token.RBRACE.String()))
}
func (n *FuncStmt) Walk(v Visitor) {
	for _, e := range n.Params {
		Walk(v, e)
	}
	Walk(v, n.Body)
}
func (n *FuncStmt) stmt() {}

func (n *IfStmt) Format(f fmt.State, verb rune) {
	lbl := "if"
	if n.False != nil {
		lbl = "if/else"
	}
	format(f, verb, n, lbl, nil)
}
func (n *IfStmt) Span() (start, end token.Pos) {
	return n.If, n.End + token.Pos(len(token.RBRACE.String()))
}
func (n *IfStmt) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.True)
	if n.False != nil {
		Walk(v, n.False)
	}
}
func (n *IfStmt) stmt() {}

func (n *IndexAssignStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, n.Name.Lit+"[index] =", nil)
}
func (n *IndexAssignStmt) Span() (start, end token.Pos) {
	start, _ = n.Name.Span()
	_, end = n.Value.Span()
	return start, end
}
func (n *IndexAssignStmt) Walk(v Visitor) {
	Walk(v, n.Index)
	Walk(v, n.Value)
}
func (n *IndexAssignStmt) stmt() {}

func (n *LetStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "let "+n.Name.Lit, nil)
}
func (n *LetStmt) Span() (start, end token.Pos) {
	_, end = n.Value.Span()
	return n.Let, end
}
func (n *LetStmt) Walk(v Visitor) {
	Walk(v, n.Value)
}
func (n *LetStmt) stmt() {}

func (n *LoopStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "loop", nil)
}
func (n *LoopStmt) Span() (start, end token.Pos) {
	return n.Loop, n.Rbrace + token.Pos(len(token.RBRACE.String()))
}
func (n *LoopStmt) Walk(v Visitor) {
	Walk(v, n.Body)
}
func (n *LoopStmt) stmt() {}

func (n *ReturnStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "return", nil)
}
func (n *ReturnStmt) Span() (start, end token.Pos) {
	_, end = n.Value.Span()
	return n.Return, end
}
func (n *ReturnStmt) Walk(v Visitor) {
	Walk(v, n.Value)
}
func (n *ReturnStmt) stmt() {}
