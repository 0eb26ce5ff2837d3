package evaluator

import "github.com/eva-lang/eva/internal/ast"

// evalBlock creates a fresh child scope, evaluates its expressions in
// order, and returns the last one's value (Null for an empty block). The
// child env is simply left unreferenced once eval returns unless some
// escaping Value (a closure, typically) still points at it.
func (e *Evaluator) evalBlock(n *ast.Block, env *Environment) (Value, error) {
	child := NewEnclosedEnvironment(env)
	return e.evalSequence(n.Exprs, child)
}

// evalSequence evaluates exprs in order in env and returns the last value,
// or Null if exprs is empty. Shared by Block (with its own fresh scope) and
// ClassDeclaration (which evaluates its body directly into class_env,
// without an extra scope).
func (e *Evaluator) evalSequence(exprs []ast.Node, env *Environment) (Value, error) {
	var result Value = NullVal
	for _, expr := range exprs {
		v, err := e.eval(expr, env)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func asBool(v Value, op string) (bool, error) {
	b, ok := v.(*Bool)
	if !ok {
		return false, typeMismatch(op, "Bool", string(v.Type()))
	}
	return b.Value, nil
}

// evalCondition evaluates exactly one branch.
func (e *Evaluator) evalCondition(n *ast.Condition, env *Environment) (Value, error) {
	condVal, err := e.eval(n.Cond, env)
	if err != nil {
		return nil, err
	}
	cond, err := asBool(condVal, "condition")
	if err != nil {
		return nil, err
	}
	if cond {
		return e.eval(n.Then, env)
	}
	return e.eval(n.Else, env)
}

// evalLoop is a while loop: result is Null if the loop never iterates,
// otherwise the last body value.
func (e *Evaluator) evalLoop(n *ast.Loop, env *Environment) (Value, error) {
	var result Value = NullVal
	for {
		condVal, err := e.eval(n.Cond, env)
		if err != nil {
			return nil, err
		}
		cond, err := asBool(condVal, "loop condition")
		if err != nil {
			return nil, err
		}
		if !cond {
			return result, nil
		}
		result, err = e.eval(n.Body, env)
		if err != nil {
			return nil, err
		}
	}
}

// evalForLoop runs Init, Cond, Step, and Body all sharing one environment
// nested under the caller's (so the loop variable is scoped to the loop,
// equivalent to Block(init; while(cond){body;step}), without requiring a
// second nested scope per iteration — any further scoping comes from Body
// being a Block in its own right).
func (e *Evaluator) evalForLoop(n *ast.ForLoop, env *Environment) (Value, error) {
	loopEnv := NewEnclosedEnvironment(env)
	if _, err := e.eval(n.Init, loopEnv); err != nil {
		return nil, err
	}

	var result Value = NullVal
	for {
		condVal, err := e.eval(n.Cond, loopEnv)
		if err != nil {
			return nil, err
		}
		cond, err := asBool(condVal, "for condition")
		if err != nil {
			return nil, err
		}
		if !cond {
			return result, nil
		}
		result, err = e.eval(n.Body, loopEnv)
		if err != nil {
			return nil, err
		}
		if _, err := e.eval(n.Step, loopEnv); err != nil {
			return nil, err
		}
	}
}

// evalSwitch returns the first matching case's value; Null if none match
// (a trailing always-true case makes that unreachable).
func (e *Evaluator) evalSwitch(n *ast.Switch, env *Environment) (Value, error) {
	for _, c := range n.Cases {
		condVal, err := e.eval(c.Cond, env)
		if err != nil {
			return nil, err
		}
		cond, err := asBool(condVal, "switch case")
		if err != nil {
			return nil, err
		}
		if cond {
			return e.eval(c.Body, env)
		}
	}
	return NullVal, nil
}
