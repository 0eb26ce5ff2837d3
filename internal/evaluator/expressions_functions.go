package evaluator

import "github.com/eva-lang/eva/internal/ast"

// evalFunctionDeclaration builds a Function capturing env, then defines
// name -> fn in that same env (the only form that gives a function a bound
// name; Lambda, by contrast, never binds).
func (e *Evaluator) evalFunctionDeclaration(n *ast.FunctionDeclaration, env *Environment) (Value, error) {
	fn := NewFunction(n.Name, n.Params, n.Body, env)
	env.Define(n.Name, fn)
	return fn, nil
}

// resolveCallee handles the three callee shapes a call can name: named
// lookup, an arbitrary expression, or a method resolved via member access.
func (e *Evaluator) resolveCallee(n *ast.FunctionCall, env *Environment) (*Function, error) {
	var callee Value
	var err error
	switch {
	case n.Member != nil:
		callee, err = e.evalMemberAccess(n.Member, env)
	case n.Callee != nil:
		callee, err = e.eval(n.Callee, env)
	default:
		callee, err = env.Lookup(n.Name)
	}
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(*Function)
	if !ok {
		return nil, typeMismatch("call", "Function", string(callee.Type()))
	}
	return fn, nil
}

// evalFunctionCall resolves the callee, evaluates arguments left-to-right
// in the caller's env, then runs the body in a fresh environment parented
// by the function's captured env (not the caller's — this is what gives
// lexical scoping its bite).
func (e *Evaluator) evalFunctionCall(n *ast.FunctionCall, env *Environment) (Value, error) {
	fn, err := e.resolveCallee(n, env)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(n.Args))
	for i, argExpr := range n.Args {
		v, err := e.eval(argExpr, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	return e.applyFunction(fn, args)
}

// applyFunction binds args to fn's parameters and evaluates its body. Extra
// arguments are ignored; missing ones are an ArityMismatch.
func (e *Evaluator) applyFunction(fn *Function, args []Value) (Value, error) {
	if len(args) < len(fn.Params) {
		return nil, arityMismatch(displayName(fn), len(fn.Params), len(args))
	}

	callEnv := NewEnclosedEnvironment(fn.CapturedEnv)
	for i, param := range fn.Params {
		callEnv.Define(param, args[i])
	}

	name := fn.Name
	if name == "" {
		name = "<lambda>"
	}
	if err := e.pushCall(name); err != nil {
		return nil, err
	}
	defer e.popCall()

	return e.eval(fn.Body, callEnv)
}

func displayName(fn *Function) string {
	if fn.Name == "" {
		return "<lambda>"
	}
	return fn.Name
}
