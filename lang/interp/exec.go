package interp

import (
	"strconv"

	"github.com/mna/calyx/lang/ast"
)

// ExecKind discriminates the control-flow outcome of executing a
// statement.
type ExecKind int

// List of execution outcomes.
const (
	// ExecNone is normal completion.
	ExecNone ExecKind = iota
	// ExecBreak terminates the innermost enclosing loop.
	ExecBreak
	// ExecReturn terminates the enclosing function with a value.
	ExecReturn
	// ExecError is a terminal failure; it is only produced for a parse
	// error, runtime failures soften to the None value instead.
	ExecError
)

// ExecResult is the control-flow outcome of executing a statement or
// block: Value is set for ExecReturn, Msg for ExecError.
type ExecResult struct {
	Kind  ExecKind
	Value Value
	Msg   string
}

// GoString returns the debug form of the result, e.g. None, Break,
// Return(Int(21)), Error("..."). Use Sprintf("%#v", r) to render it.
func (r ExecResult) GoString() string {
	switch r.Kind {
	case ExecBreak:
		return "Break"
	case ExecReturn:
		return "Return(" + r.Value.GoString() + ")"
	case ExecError:
		return "Error(" + strconv.Quote(r.Msg) + ")"
	default:
		return "None"
	}
}

// ExecBlock executes the statements of a block in order. A Return, Break
// or Error result of a statement is propagated immediately; otherwise
// execution continues and the block completes with None.
func ExecBlock(chain *ScopeChain, block *ast.Block) ExecResult {
	for _, stmt := range block.Stmts {
		if res := ExecStmt(chain, stmt); res.Kind != ExecNone {
			return res
		}
	}
	return ExecResult{}
}

// ExecStmt executes a single statement against the scope chain and returns
// its control-flow outcome.
func ExecStmt(chain *ScopeChain, stmt ast.Stmt) ExecResult {
	switch stmt := stmt.(type) {
	case *ast.LetStmt:
		chain.InsertVar(stmt.Name.Lit, EvalExpr(chain, stmt.Value))
		return ExecResult{}

	case *ast.FuncStmt:
		params := make([]string, len(stmt.Params))
		for i, p := range stmt.Params {
			params[i] = p.Lit
		}
		chain.InsertFunc(stmt.Name.Lit, &Function{Params: params, Body: stmt.Body})
		return ExecResult{}

	case *ast.ReturnStmt:
		return ExecResult{Kind: ExecReturn, Value: EvalExpr(chain, stmt.Value)}

	case *ast.IfStmt:
		return execIf(chain, stmt)

	case *ast.LoopStmt:
		for {
			res := ExecBlock(chain, stmt.Body)
			if res.Kind == ExecBreak {
				// the loop consumes the break
				return ExecResult{}
			}
			if res.Kind != ExecNone {
				return res
			}
		}

	case *ast.BreakStmt:
		return ExecResult{Kind: ExecBreak}

	case *ast.IndexAssignStmt:
		execIndexAssign(chain, stmt)
		return ExecResult{}

	case *ast.ExprStmt:
		EvalExpr(chain, stmt.Expr)
		return ExecResult{}

	default:
		return ExecResult{}
	}
}

// execIf evaluates the condition and dispatches. The two forms treat a
// non-Bool condition differently: a lone if treats it as false and
// completes with None, an if/else takes the else branch on any condition
// other than Bool(true).
func execIf(chain *ScopeChain, stmt *ast.IfStmt) ExecResult {
	cond, _ := EvalExpr(chain, stmt.Cond).(Bool)

	if bool(cond) {
		return ExecBlock(chain, stmt.True)
	}
	if stmt.False != nil {
		return ExecBlock(chain, stmt.False)
	}
	return ExecResult{}
}

// execIndexAssign evaluates the index and value expressions in order, then
// dispatches on the index type: an Int mutates a List variable, a Str
// mutates a Dict variable, any other index type is a no-op.
func execIndexAssign(chain *ScopeChain, stmt *ast.IndexAssignStmt) {
	idx := EvalExpr(chain, stmt.Index)
	val := EvalExpr(chain, stmt.Value)

	switch idx := idx.(type) {
	case Int:
		chain.InsertListItem(stmt.Name.Lit, int(idx), val)
	case Str:
		chain.InsertDictItem(stmt.Name.Lit, string(idx), val)
	}
}
