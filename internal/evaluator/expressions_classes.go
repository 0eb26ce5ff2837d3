package evaluator

import "github.com/eva-lang/eva/internal/ast"

// evalClassDeclaration evaluates Body directly into the new class_env —
// using evalSequence, the same per-expression loop Block uses, but without
// Block's extra nested scope — which is how FunctionDeclarations inside
// the body end up defining methods on class_env itself rather than in a
// throwaway child scope.
func (e *Evaluator) evalClassDeclaration(n *ast.ClassDeclaration, env *Environment) (Value, error) {
	parentEnv := env
	if n.Parent != nil {
		parentVal, err := e.eval(n.Parent, env)
		if err != nil {
			return nil, err
		}
		parentClass, ok := parentVal.(*Class)
		if !ok {
			return nil, typeMismatch("class declaration", "Class", string(parentVal.Type()))
		}
		parentEnv = parentClass.ClassEnv
	}

	classEnv := NewEnclosedEnvironment(parentEnv)
	if _, err := e.evalSequence(n.Body.Exprs, classEnv); err != nil {
		return nil, err
	}

	class := &Class{Name: n.Name, ClassEnv: classEnv}
	env.Define(n.Name, class)
	return NullVal, nil
}

// evalNewInstance resolves the class, builds its instance_env parented by
// class_env, then runs "constructor" (looked up through the class chain)
// with self pre-bound and the remaining parameters bound to the call
// arguments.
func (e *Evaluator) evalNewInstance(n *ast.NewInstance, env *Environment) (Value, error) {
	classVal, err := env.Lookup(n.ClassName)
	if err != nil {
		return nil, err
	}
	class, ok := classVal.(*Class)
	if !ok {
		return nil, typeMismatch("new", "Class", string(classVal.Type()))
	}

	instanceEnv := NewEnclosedEnvironment(class.ClassEnv)
	instance := &Instance{Class: class, InstanceEnv: instanceEnv}

	ctorVal, err := class.ClassEnv.Lookup("constructor")
	if err != nil {
		return nil, err
	}
	ctor, ok := ctorVal.(*Function)
	if !ok {
		return nil, typeMismatch("new", "Function", string(ctorVal.Type()))
	}

	args := make([]Value, len(n.Args))
	for i, argExpr := range n.Args {
		v, err := e.eval(argExpr, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	ctorEnv := NewEnclosedEnvironment(ctor.CapturedEnv)
	ctorEnv.Define("self", instance)

	params := ctor.Params
	if len(params) > 0 {
		params = params[1:] // first slot is the implicit self
	}
	if len(args) < len(params) {
		return nil, arityMismatch("constructor", len(params), len(args))
	}
	for i, param := range params {
		ctorEnv.Define(param, args[i])
	}

	if err := e.pushCall("constructor"); err != nil {
		return nil, err
	}
	defer e.popCall()

	if _, err := e.eval(ctor.Body, ctorEnv); err != nil {
		return nil, err
	}

	return instance, nil
}

// evalMemberAccess looks up instanceName, then resolves memberName in its
// instance_env, which chains into the class hierarchy so inherited methods
// resolve automatically.
func (e *Evaluator) evalMemberAccess(n *ast.MemberAccess, env *Environment) (Value, error) {
	instVal, err := env.Lookup(n.InstanceName)
	if err != nil {
		return nil, err
	}
	inst, ok := instVal.(*Instance)
	if !ok {
		return nil, typeMismatch("member access", "Instance", string(instVal.Type()))
	}
	return inst.InstanceEnv.Lookup(n.MemberName)
}
