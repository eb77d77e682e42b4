package interp

import (
	"github.com/mna/calyx/lang/parser"
)

// ErrParse is the message of the ExecResult produced when the source
// cannot be parsed. The exact phrasing is part of the contract, hosts may
// inspect it.
const ErrParse = "Unable to parse program source"

// InterpretResult is the outcome of parsing and executing source code:
// the terminal ExecResult and the scope chain after execution, so the
// host may inspect the final bindings.
type InterpretResult struct {
	ExecResult ExecResult
	ScopeChain *ScopeChain
}

// Interpret parses and executes src under a chain containing global as its
// single root frame. On parse failure the ExecResult is Error(ErrParse)
// and the chain is returned as-is; on success the resulting block is
// executed against the chain and the terminal ExecResult is returned along
// with the mutated chain.
func Interpret(src string, global *Scope) InterpretResult {
	chain := ScopeChainFrom(global)

	ch, err := parser.ParseChunk("", []byte(src))
	if err != nil {
		return InterpretResult{
			ExecResult: ExecResult{Kind: ExecError, Msg: ErrParse},
			ScopeChain: chain,
		}
	}
	return InterpretResult{
		ExecResult: ExecBlock(chain, ch.Block),
		ScopeChain: chain,
	}
}
