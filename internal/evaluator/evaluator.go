package evaluator

import (
	"github.com/eva-lang/eva/internal/ast"
)

// CallFrame records one entry in the evaluator's call stack, used to
// annotate errors raised from deep inside a function call chain and to
// bound recursion (MaxDepth, defaulting to defaultMaxDepth below).
type CallFrame struct {
	Name string
}

// defaultMaxDepth caps the nesting of function and constructor calls
// (recursion included; nested blocks are not counted) so that a runaway Eva program fails with a structured
// error instead of overflowing the host goroutine's stack. Grounded on the
// source evaluator's own evalDepth guard.
const defaultMaxDepth = 10000

// Evaluator walks an AST and produces Values. It is the top-level driver:
// construct one with New, then call Eval on a root node. A zero-value
// Evaluator is not ready to use; always go through New.
type Evaluator struct {
	CallStack []CallFrame
	MaxDepth  int

	depth int
}

// New returns an Evaluator ready to run programs.
func New() *Evaluator {
	return &Evaluator{MaxDepth: defaultMaxDepth}
}

func (e *Evaluator) pushCall(name string) error {
	e.depth++
	if e.depth > e.MaxDepth {
		e.depth--
		// No dedicated error kind exists for a depth overrun; ArityMismatch
		// is the closest fit (a call the evaluator refuses to make).
		return &EvalError{Kind: ArityMismatch, Message: "maximum call depth exceeded"}
	}
	e.CallStack = append(e.CallStack, CallFrame{Name: name})
	return nil
}

func (e *Evaluator) popCall() {
	e.depth--
	if len(e.CallStack) > 0 {
		e.CallStack = e.CallStack[:len(e.CallStack)-1]
	}
}

func (e *Evaluator) withStack(err *EvalError) *EvalError {
	if err != nil && err.Stack == nil {
		err.Stack = append([]CallFrame(nil), e.CallStack...)
	}
	return err
}

// Eval is the per-node dispatcher: a pure function of (node, env) to a
// Value, save for the defined side effects on env. Evaluation is strictly
// eager and left-to-right; nodes are never mutated and may be re-evaluated
// any number of times with the same result.
func (e *Evaluator) Eval(node ast.Node, env *Environment) (Value, error) {
	v, err := e.eval(node, env)
	if ee, ok := err.(*EvalError); ok {
		return v, e.withStack(ee)
	}
	return v, err
}

func (e *Evaluator) eval(node ast.Node, env *Environment) (v Value, err error) {
	// Attach the call stack as it stands where the error is raised, before
	// the enclosing calls' popCall defers unwind it.
	defer func() {
		if ee, ok := err.(*EvalError); ok {
			e.withStack(ee)
		}
	}()
	switch n := node.(type) {
	case *ast.Literal:
		return e.evalLiteral(n)
	case *ast.Identifier:
		return env.Lookup(n.Name)
	case *ast.VariableDeclaration:
		return e.evalVariableDeclaration(n, env)
	case *ast.Assignment:
		return e.evalAssignment(n, env)
	case *ast.BinaryOperation:
		return e.evalBinaryOperation(n, env)
	case *ast.Block:
		return e.evalBlock(n, env)
	case *ast.Condition:
		return e.evalCondition(n, env)
	case *ast.Loop:
		return e.evalLoop(n, env)
	case *ast.ForLoop:
		return e.evalForLoop(n, env)
	case *ast.FunctionDeclaration:
		return e.evalFunctionDeclaration(n, env)
	case *ast.Lambda:
		return NewFunction("", n.Params, n.Body, env), nil
	case *ast.FunctionCall:
		return e.evalFunctionCall(n, env)
	case *ast.Switch:
		return e.evalSwitch(n, env)
	case *ast.Increment:
		return e.evalIncrDecr(n.Identifier, 1, env)
	case *ast.Decrement:
		return e.evalIncrDecr(n.Identifier, -1, env)
	case *ast.ClassDeclaration:
		return e.evalClassDeclaration(n, env)
	case *ast.NewInstance:
		return e.evalNewInstance(n, env)
	case *ast.MemberAccess:
		return e.evalMemberAccess(n, env)
	case nil:
		return nil, malformedNode("nil node")
	default:
		return nil, malformedNode("unrecognized node type")
	}
}

// Eval is the package-level driver entry point: accept an AST root and an
// optional environment (the global environment when env is nil) and
// evaluate it with a fresh Evaluator.
func Eval(node ast.Node, env *Environment) (Value, error) {
	if env == nil {
		env = NewGlobalEnvironment()
	}
	return New().Eval(node, env)
}
