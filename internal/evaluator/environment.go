package evaluator

// Environment is a name→Value mapping with a parent link. Environments form
// a tree; Lookup and Assign walk the parent chain, Define only ever touches
// the innermost environment.
//
// No locking here: Eva programs are single-threaded and strictly eager (no
// suspension points), so a single goroutine ever touches a given chain of
// environments during one evaluation.
type Environment struct {
	bindings map[string]Value
	parent   *Environment
}

// NewEnvironment creates a root environment with no parent.
func NewEnvironment() *Environment {
	return &Environment{bindings: make(map[string]Value)}
}

// NewEnclosedEnvironment creates a child environment parented by outer.
// Blocks, function calls, class declarations, and instance construction all
// create one of these.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{bindings: make(map[string]Value), parent: outer}
}

// Define inserts or overwrites name in the innermost bindings. This never
// fails and is what gives shadowing its "restores on exit" behavior: an
// inner var creates a new binding rather than touching the outer one.
func (e *Environment) Define(name string, value Value) Value {
	e.bindings[name] = value
	return value
}

// Lookup searches this environment, then walks parent links, failing with
// UndefinedName if the chain is exhausted.
func (e *Environment) Lookup(name string) (Value, error) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.bindings[name]; ok {
			return v, nil
		}
	}
	return nil, &EvalError{Kind: UndefinedName, Message: "undefined name: " + name, Name: name}
}

// Assign locates the nearest environment in the chain that already defines
// name and rebinds it there. It never creates a new binding; that's
// Define's job. Fails with UndefinedName if no such environment exists.
func (e *Environment) Assign(name string, value Value) (Value, error) {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.bindings[name]; ok {
			env.bindings[name] = value
			return value, nil
		}
	}
	return nil, &EvalError{Kind: UndefinedName, Message: "undefined name: " + name, Name: name}
}
