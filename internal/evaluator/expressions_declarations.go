package evaluator

import "github.com/eva-lang/eva/internal/ast"

// evalVariableDeclaration evaluates the value expression, then defines it
// in env using define semantics (creates shadowing).
func (e *Evaluator) evalVariableDeclaration(n *ast.VariableDeclaration, env *Environment) (Value, error) {
	v, err := e.eval(n.Value, env)
	if err != nil {
		return nil, err
	}
	return env.Define(n.Name, v), nil
}

// evalAssignment handles two shapes: rebind an existing name (assign
// semantics, fails if undeclared), or define a field directly on an
// instance's environment (member assignment always succeeds, even for a
// field that doesn't exist yet).
func (e *Evaluator) evalAssignment(n *ast.Assignment, env *Environment) (Value, error) {
	if n.Member != nil {
		instVal, err := env.Lookup(n.Member.InstanceName)
		if err != nil {
			return nil, err
		}
		inst, ok := instVal.(*Instance)
		if !ok {
			return nil, typeMismatch("member assignment", "Instance", string(instVal.Type()))
		}
		v, err := e.eval(n.Value, env)
		if err != nil {
			return nil, err
		}
		return inst.InstanceEnv.Define(n.Member.MemberName, v), nil
	}

	v, err := e.eval(n.Value, env)
	if err != nil {
		return nil, err
	}
	return env.Assign(n.Name, v)
}

// evalIncrDecr treats Increment/Decrement as sugar for
// Assignment(x, BinaryOperation(+|-, Identifier(x), Literal(1))).
func (e *Evaluator) evalIncrDecr(name string, delta int64, env *Environment) (Value, error) {
	cur, err := env.Lookup(name)
	if err != nil {
		return nil, err
	}
	curInt, ok := cur.(*Int)
	if !ok {
		op := "increment"
		if delta < 0 {
			op = "decrement"
		}
		return nil, typeMismatch(op, "Int", string(cur.Type()))
	}
	return env.Assign(name, &Int{Value: curInt.Value + delta})
}
