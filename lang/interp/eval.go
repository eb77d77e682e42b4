package interp

import (
	"github.com/mna/calyx/lang/ast"
	"github.com/mna/calyx/lang/token"
)

// EvalExpr evaluates an expression against the scope chain and returns its
// value. Sub-expressions are evaluated in left-to-right source order.
// Semantic failures (unresolved names, type-mismatched operations,
// out-of-range or wrong-type indexing) evaluate to None, execution never
// aborts.
func EvalExpr(chain *ScopeChain, expr ast.Expr) Value {
	switch expr := expr.(type) {
	case *ast.LiteralExpr:
		return evalLiteral(expr)

	case *ast.IdentExpr:
		if v, ok := chain.ResolveVar(expr.Lit); ok {
			return v
		}
		return None{}

	case *ast.ParenExpr:
		return EvalExpr(chain, expr.Expr)

	case *ast.ListExpr:
		lst := make(List, len(expr.Items))
		for i, e := range expr.Items {
			lst[i] = EvalExpr(chain, e)
		}
		return lst

	case *ast.DictExpr:
		d := NewDict(len(expr.Items))
		for _, kv := range expr.Items {
			d.Put(kv.Key.Value.(string), EvalExpr(chain, kv.Value))
		}
		return d

	case *ast.IndexExpr:
		return evalIndex(chain, expr)

	case *ast.CallExpr:
		return evalCall(chain, expr)

	case *ast.BinOpExpr:
		op, ok := OpcodeForToken(expr.Type)
		if !ok {
			return None{}
		}
		l := EvalExpr(chain, expr.Left)
		r := EvalExpr(chain, expr.Right)
		return op.Apply(l, r)

	case *ast.UnaryOpExpr:
		op, ok := OpcodeForToken(expr.Type)
		if !ok {
			return None{}
		}
		return op.ApplyUnary(EvalExpr(chain, expr.Right))

	default:
		return None{}
	}
}

func evalLiteral(expr *ast.LiteralExpr) Value {
	switch expr.Type {
	case token.INT:
		return Int(expr.Value.(int64))
	case token.FLOAT:
		return Real(expr.Value.(float64))
	case token.STRING:
		return Str(expr.Value.(string))
	case token.TRUE:
		return Bool(true)
	case token.FALSE:
		return Bool(false)
	default: // NULL
		return None{}
	}
}

// evalIndex resolves the named variable and evaluates the index: a List
// indexed by an Int yields the element (None when out of range), a Dict
// indexed by a Str yields the value for that key (None when absent), any
// other combination yields None.
func evalIndex(chain *ScopeChain, expr *ast.IndexExpr) Value {
	v, ok := chain.ResolveVar(expr.Name.Lit)
	idx := EvalExpr(chain, expr.Index)
	if !ok {
		return None{}
	}

	switch v := v.(type) {
	case List:
		i, ok := idx.(Int)
		if !ok || i < 0 || int(i) >= len(v) {
			return None{}
		}
		return v[i]
	case *Dict:
		k, ok := idx.(Str)
		if !ok {
			return None{}
		}
		if e, ok := v.Get(string(k)); ok {
			return e
		}
	}
	return None{}
}

// evalCall evaluates the arguments left to right, then dispatches: a
// script function resolved by name wins over a native function of the same
// name; an unresolvable name evaluates to None.
func evalCall(chain *ScopeChain, expr *ast.CallExpr) Value {
	args := make([]Value, len(expr.Args))
	for i, e := range expr.Args {
		args[i] = EvalExpr(chain, e)
	}

	if fn := chain.ResolveFunc(expr.Name.Lit); fn != nil {
		return fn.Call(chain, args)
	}
	if nf := chain.ResolveNativeFunc(expr.Name.Lit); nf != nil {
		return nf.Execute(chain, args)
	}
	return None{}
}
