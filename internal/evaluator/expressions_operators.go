package evaluator

import "github.com/eva-lang/eva/internal/ast"

// evalBinaryOperation requires both operands to be Int for every operator
// in this core; arithmetic ops yield Int, comparisons yield Bool. Both
// sides are evaluated left before right even though only one of
// arithmetic/comparison applies per op, keeping evaluation order
// deterministic.
func (e *Evaluator) evalBinaryOperation(n *ast.BinaryOperation, env *Environment) (Value, error) {
	left, err := e.eval(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.eval(n.Right, env)
	if err != nil {
		return nil, err
	}

	l, ok := left.(*Int)
	if !ok {
		return nil, typeMismatch(n.Op, "Int", string(left.Type()))
	}
	r, ok := right.(*Int)
	if !ok {
		return nil, typeMismatch(n.Op, "Int", string(right.Type()))
	}

	switch n.Op {
	case "+":
		return &Int{Value: l.Value + r.Value}, nil
	case "-":
		return &Int{Value: l.Value - r.Value}, nil
	case "*":
		return &Int{Value: l.Value * r.Value}, nil
	case "/":
		if r.Value == 0 {
			return nil, divisionByZero("/")
		}
		return &Int{Value: l.Value / r.Value}, nil
	case "%":
		if r.Value == 0 {
			return nil, divisionByZero("%")
		}
		return &Int{Value: l.Value % r.Value}, nil
	case ">":
		return NativeBool(l.Value > r.Value), nil
	case "<":
		return NativeBool(l.Value < r.Value), nil
	case ">=":
		return NativeBool(l.Value >= r.Value), nil
	case "<=":
		return NativeBool(l.Value <= r.Value), nil
	case "==":
		return NativeBool(l.Value == r.Value), nil
	case "!=":
		return NativeBool(l.Value != r.Value), nil
	default:
		return nil, malformedNode("unrecognized binary operator: " + n.Op)
	}
}
