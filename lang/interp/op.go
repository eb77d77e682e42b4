package interp

import (
	"golang.org/x/exp/constraints"

	"github.com/mna/calyx/lang/token"
)

// Opcode identifies a binary or unary operation on values.
type Opcode int

// List of supported opcodes.
const (
	Add Opcode = iota
	Sub
	Mul
	Div
	Mod
	Equal
	NotEqual
	LessThan
	LessThanOrEqual
	GreaterThan
	GreaterThanOrEqual
	LogicalAnd
	LogicalOr
	LogicalXor
	Not
)

var opcodeNames = [...]string{
	Add:                "+",
	Sub:                "-",
	Mul:                "*",
	Div:                "/",
	Mod:                "%",
	Equal:              "==",
	NotEqual:           "!=",
	LessThan:           "<",
	LessThanOrEqual:    "<=",
	GreaterThan:        ">",
	GreaterThanOrEqual: ">=",
	LogicalAnd:         "&&",
	LogicalOr:          "||",
	LogicalXor:         "^",
	Not:                "!",
}

func (op Opcode) String() string { return opcodeNames[op] }

var tokenOpcodes = map[token.Token]Opcode{
	token.PLUS:       Add,
	token.MINUS:      Sub,
	token.STAR:       Mul,
	token.SLASH:      Div,
	token.PERCENT:    Mod,
	token.EQEQ:       Equal,
	token.BANGEQ:     NotEqual,
	token.LT:         LessThan,
	token.LE:         LessThanOrEqual,
	token.GT:         GreaterThan,
	token.GE:         GreaterThanOrEqual,
	token.AMPAMP:     LogicalAnd,
	token.PIPEPIPE:   LogicalOr,
	token.CIRCUMFLEX: LogicalXor,
	token.BANG:       Not,
}

// OpcodeForToken returns the Opcode corresponding to an operator token.
func OpcodeForToken(tok token.Token) (Opcode, bool) {
	op, ok := tokenOpcodes[tok]
	return op, ok
}

// Apply applies the binary opcode to its operands. Operations on operand
// types without a defined result produce None: arithmetic requires numeric
// operands (an integer widens to a double when mixed with one), '%'
// requires two integers (including '% 0', which has no defined result),
// comparisons require two numbers or two strings, and the logical
// operators require two booleans.
func (op Opcode) Apply(l, r Value) Value {
	switch op {
	case Add, Sub, Mul:
		switch lv := l.(type) {
		case Int:
			switch rv := r.(type) {
			case Int:
				return op.calcInt(lv, rv)
			case Real:
				return op.calcReal(Real(lv), rv)
			}
		case Real:
			switch rv := r.(type) {
			case Int:
				return op.calcReal(lv, Real(rv))
			case Real:
				return op.calcReal(lv, rv)
			}
		}
		return None{}

	case Div:
		// division always produces a real, Int operands widen first
		lv, lok := widenReal(l)
		rv, rok := widenReal(r)
		if !lok || !rok {
			return None{}
		}
		return lv / rv

	case Mod:
		lv, lok := l.(Int)
		rv, rok := r.(Int)
		if !lok || !rok || rv == 0 {
			return None{}
		}
		return lv % rv

	case Equal, NotEqual, LessThan, LessThanOrEqual, GreaterThan, GreaterThanOrEqual:
		return op.compare(l, r)

	case LogicalAnd, LogicalOr, LogicalXor:
		lv, lok := l.(Bool)
		rv, rok := r.(Bool)
		if !lok || !rok {
			return None{}
		}
		switch op {
		case LogicalAnd:
			return lv && rv
		case LogicalOr:
			return lv || rv
		default:
			return (lv || rv) && !(lv && rv)
		}
	}
	return None{}
}

// ApplyUnary applies the unary opcode to its operand. Logical not maps
// Bool to its negation, treats None as falsy (so !None is true) and any
// other operand as truthy.
func (op Opcode) ApplyUnary(x Value) Value {
	if op != Not {
		return None{}
	}
	switch xv := x.(type) {
	case Bool:
		return !xv
	case None:
		return Bool(true)
	default:
		return Bool(false)
	}
}

func (op Opcode) calcInt(l, r Int) Value {
	switch op {
	case Add:
		return l + r
	case Sub:
		return l - r
	case Mul:
		return l * r
	}
	return None{}
}

func (op Opcode) calcReal(l, r Real) Value {
	switch op {
	case Add:
		return l + r
	case Sub:
		return l - r
	case Mul:
		return l * r
	}
	return None{}
}

// compare dispatches the relational opcodes: ints compare directly (no
// precision loss), an integer widens to a double when mixed with one, and
// strings compare lexicographically.
func (op Opcode) compare(l, r Value) Value {
	switch lv := l.(type) {
	case Str:
		if rv, ok := r.(Str); ok {
			return compareOrdered(op, string(lv), string(rv))
		}
	case Int:
		switch rv := r.(type) {
		case Int:
			return compareOrdered(op, int64(lv), int64(rv))
		case Real:
			return compareOrdered(op, float64(lv), float64(rv))
		}
	case Real:
		switch rv := r.(type) {
		case Int:
			return compareOrdered(op, float64(lv), float64(rv))
		case Real:
			return compareOrdered(op, float64(lv), float64(rv))
		}
	}
	return None{}
}

func compareOrdered[T constraints.Ordered](op Opcode, l, r T) Value {
	switch op {
	case Equal:
		return Bool(l == r)
	case NotEqual:
		return Bool(l != r)
	case LessThan:
		return Bool(l < r)
	case LessThanOrEqual:
		return Bool(l <= r)
	case GreaterThan:
		return Bool(l > r)
	case GreaterThanOrEqual:
		return Bool(l >= r)
	}
	return None{}
}

func widenReal(v Value) (Real, bool) {
	switch v := v.(type) {
	case Int:
		return Real(v), true
	case Real:
		return v, true
	}
	return 0, false
}
