package interp

import "fmt"

// Environment is a symbol table for variable storage and scope management.
// Nested scopes reference their enclosing scope through outer, so lookups
// walk the chain and closures keep outer frames alive after their call
// returns.
type Environment struct {
	store map[string]Value
	outer *Environment
}

// NewEnvironment creates a new root-level environment with no outer scope.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Value)}
}

// NewEnclosedEnvironment creates an environment enclosed by outer. Function
// calls use this to build their frame on top of the callee's captured
// scope.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[string]Value), outer: outer}
}

// Get retrieves a variable by name, searching the current environment first
// and then the outer chain.
func (e *Environment) Get(name string) (Value, bool) {
	if val, ok := e.store[name]; ok {
		return val, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// Define writes the binding into the current scope unconditionally. An
// existing binding with the same name in this scope is overwritten.
func (e *Environment) Define(name string, val Value) {
	e.store[name] = val
}

// Set updates an existing variable in the scope that defines it, walking
// the outer chain. It fails if the name is not defined anywhere.
//
// The evaluator currently uses Define for all assignment forms; Set backs
// future rebinding semantics and the tests that pin the chain behavior.
func (e *Environment) Set(name string, val Value) error {
	if _, ok := e.store[name]; ok {
		e.store[name] = val
		return nil
	}
	if e.outer != nil {
		return e.outer.Set(name, val)
	}
	return fmt.Errorf("undefined variable: %s", name)
}
