package interp

import (
	"github.com/dolthub/swiss"
)

// Scope is a single mapping frame of identifiers to variables, script
// functions and native functions. Script functions and variables are owned
// by the scope; native functions are shared handles that the host may
// register into any number of scopes.
type Scope struct {
	vars    *swiss.Map[string, Value]
	funcs   map[string]*Function
	natives map[string]NativeFunc
}

// NewScope creates an empty Scope.
func NewScope() *Scope {
	return &Scope{
		vars:    swiss.NewMap[string, Value](8),
		funcs:   make(map[string]*Function),
		natives: make(map[string]NativeFunc),
	}
}

// ScopeFromArgs builds the scope of a function invocation: variables named
// by params bound to the corresponding values. An arity mismatch is not an
// error: surplus params are left unbound and surplus values are dropped.
func ScopeFromArgs(params []string, values []Value) *Scope {
	s := NewScope()
	for i, param := range params {
		if i >= len(values) {
			break
		}
		s.vars.Put(param, values[i])
	}
	return s
}

// InsertVar binds a variable in the scope, replacing any existing entry.
func (s *Scope) InsertVar(name string, v Value) {
	s.vars.Put(name, v)
}

// InsertFunc binds a script function in the scope, replacing any existing
// entry.
func (s *Scope) InsertFunc(name string, fn *Function) {
	s.funcs[name] = fn
}

// InsertNativeFunc registers a native function in the scope, replacing any
// existing entry.
func (s *Scope) InsertNativeFunc(name string, fn NativeFunc) {
	s.natives[name] = fn
}

// Var returns the variable bound to name in this scope only, without
// walking any chain. The value is returned as stored, not cloned.
func (s *Scope) Var(name string) (Value, bool) {
	return s.vars.Get(name)
}

// ScopeChain is a stack of Scopes. The bottom scope is the root/global
// scope; each function invocation pushes a fresh scope and pops it on
// return. Identifier resolution walks from the innermost scope outward and
// returns the first match.
type ScopeChain struct {
	scopes []*Scope
}

// NewScopeChain creates an empty ScopeChain.
func NewScopeChain() *ScopeChain {
	return &ScopeChain{}
}

// ScopeChainFrom creates a ScopeChain with scope as its single root frame.
func ScopeChainFrom(scope *Scope) *ScopeChain {
	return &ScopeChain{scopes: []*Scope{scope}}
}

// Push pushes a new innermost Scope onto the chain.
func (c *ScopeChain) Push(scope *Scope) {
	c.scopes = append(c.scopes, scope)
}

// Pop removes and returns the innermost Scope, or nil if the chain is
// empty.
func (c *ScopeChain) Pop() *Scope {
	if len(c.scopes) == 0 {
		return nil
	}
	s := c.scopes[len(c.scopes)-1]
	c.scopes = c.scopes[:len(c.scopes)-1]
	return s
}

// Len returns the number of frames on the chain.
func (c *ScopeChain) Len() int {
	return len(c.scopes)
}

// InsertVar binds a variable in the innermost scope, shadowing any outer
// binding of the same name.
func (c *ScopeChain) InsertVar(name string, v Value) {
	if len(c.scopes) == 0 {
		return
	}
	c.scopes[len(c.scopes)-1].InsertVar(name, v)
}

// InsertFunc binds a script function in the innermost scope.
func (c *ScopeChain) InsertFunc(name string, fn *Function) {
	if len(c.scopes) == 0 {
		return
	}
	c.scopes[len(c.scopes)-1].InsertFunc(name, fn)
}

// InsertListItem walks from the innermost scope outward and mutates the
// first scope whose variable of that name is a List: the element at index
// idx is replaced, growing the list with None padding when idx is beyond
// the current length. A negative index, or the absence of any matching
// List variable, is a no-op.
func (c *ScopeChain) InsertListItem(name string, idx int, v Value) {
	if idx < 0 {
		return
	}
	for i := len(c.scopes) - 1; i >= 0; i-- {
		scope := c.scopes[i]
		sv, ok := scope.vars.Get(name)
		if !ok {
			continue
		}
		lst, ok := sv.(List)
		if !ok {
			// wrong collection kind in this scope, keep walking outward
			continue
		}
		for len(lst) <= idx {
			lst = append(lst, None{})
		}
		lst[idx] = v
		scope.vars.Put(name, lst)
		return
	}
}

// InsertDictItem walks from the innermost scope outward and mutates the
// first scope whose variable of that name is a Dict: the key is inserted
// or its value replaced. The absence of any matching Dict variable is a
// no-op.
func (c *ScopeChain) InsertDictItem(name, key string, v Value) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		sv, ok := c.scopes[i].vars.Get(name)
		if !ok {
			continue
		}
		d, ok := sv.(*Dict)
		if !ok {
			continue
		}
		d.Put(key, v)
		return
	}
}

// ResolveVar walks from the innermost scope outward and returns a clone of
// the first variable bound to name, or !ok if none is.
func (c *ScopeChain) ResolveVar(name string) (Value, bool) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if v, ok := c.scopes[i].vars.Get(name); ok {
			return v.clone(), true
		}
	}
	return nil, false
}

// ResolveFunc walks from the innermost scope outward and returns the first
// script function bound to name, or nil if none is. The returned handle is
// shared and its body immutable, so it remains valid while the chain
// mutates during the call.
func (c *ScopeChain) ResolveFunc(name string) *Function {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if fn, ok := c.scopes[i].funcs[name]; ok {
			return fn
		}
	}
	return nil
}

// ResolveNativeFunc walks from the innermost scope outward and returns the
// first native function registered under name, or nil if none is.
func (c *ScopeChain) ResolveNativeFunc(name string) NativeFunc {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if fn, ok := c.scopes[i].natives[name]; ok {
			return fn
		}
	}
	return nil
}
