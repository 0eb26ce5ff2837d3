package astjson

import (
	"testing"

	"github.com/eva-lang/eva/internal/ast"
	"github.com/eva-lang/eva/internal/evaluator"
)

func TestRoundTripAndEval(t *testing.T) {
	prog := ast.Blk(
		ast.Var("x", ast.Int(10)),
		ast.Var("y", ast.Int(20)),
		ast.Bin("+", ast.Bin("*", ast.Id("x"), ast.Id("y")), ast.Int(30)),
	)

	data, err := Marshal(prog)
	if err != nil {
		t.Fatalf("marshal error: %s", err)
	}

	decoded, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal error: %s", err)
	}

	v, err := evaluator.Eval(decoded, nil)
	if err != nil {
		t.Fatalf("eval error: %s", err)
	}
	i, ok := v.(*evaluator.Int)
	if !ok || i.Value != 230 {
		t.Errorf("expected 230, got %v", v)
	}
}

func TestRoundTripClassAndMember(t *testing.T) {
	prog := ast.Blk(
		ast.Class("Point", nil, ast.Blk(
			ast.Def("constructor", []string{"self", "x", "y"}, ast.Blk(
				ast.SetMember("self", "x", ast.Id("x")),
				ast.SetMember("self", "y", ast.Id("y")),
			)),
			ast.Def("calc", []string{"self"}, ast.Bin("+", ast.Member("self", "x"), ast.Member("self", "y"))),
		)),
		ast.Var("p", ast.New("Point", ast.Int(10), ast.Int(20))),
		ast.CallMethod("p", "calc", ast.Id("p")),
	)

	data, err := Marshal(prog)
	if err != nil {
		t.Fatalf("marshal error: %s", err)
	}
	decoded, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal error: %s", err)
	}
	v, err := evaluator.Eval(decoded, nil)
	if err != nil {
		t.Fatalf("eval error: %s", err)
	}
	i, ok := v.(*evaluator.Int)
	if !ok || i.Value != 30 {
		t.Errorf("expected 30, got %v", v)
	}
}

func TestUnmarshalUnknownTagFails(t *testing.T) {
	_, err := Unmarshal([]byte(`{"node": "NotARealNode"}`))
	if err == nil {
		t.Fatalf("expected an error for an unknown node tag")
	}
}
