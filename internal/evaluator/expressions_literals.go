package evaluator

import "github.com/eva-lang/eva/internal/ast"

func (e *Evaluator) evalLiteral(n *ast.Literal) (Value, error) {
	switch n.Kind {
	case ast.KindInt:
		return &Int{Value: n.Int}, nil
	case ast.KindStr:
		return &Str{Value: n.Str}, nil
	case ast.KindBool:
		return NativeBool(n.Bool), nil
	case ast.KindNull:
		return NullVal, nil
	default:
		return nil, malformedNode("literal has unknown kind")
	}
}
