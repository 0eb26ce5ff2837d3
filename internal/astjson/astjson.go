// Package astjson round-trips ast.Node trees through JSON using a
// tagged-union envelope, since ast.Node has no fields in common across
// variants for encoding/json to key off of on its own. This is the wire
// format the CLI's -program flag and the RPC front door (internal/evalservice)
// both read and write.
package astjson

import (
	"encoding/json"
	"fmt"

	"github.com/eva-lang/eva/internal/ast"
)

// doc is the on-the-wire shape: a "node" discriminator plus whichever
// fields that node kind needs. Unused fields are simply omitted by
// omitempty; every case reads only the fields it defined.
type doc struct {
	Node string `json:"node"`

	// Literal
	LitKind string `json:"litKind,omitempty"` // "int" | "str" | "bool" | "null"
	Int     int64  `json:"int,omitempty"`
	Str     string `json:"str,omitempty"`
	Bool    bool   `json:"bool,omitempty"`

	// Identifier / Increment / Decrement / VariableDeclaration / Assignment /
	// FunctionDeclaration / FunctionCall / ClassDeclaration
	Name string `json:"name,omitempty"`

	// VariableDeclaration / Assignment / ClassDeclaration / FunctionDeclaration / NewInstance
	Value  *doc   `json:"value,omitempty"`
	Member *doc   `json:"member,omitempty"` // MemberAccess, for Assignment/FunctionCall
	Parent *doc   `json:"parent,omitempty"`
	Params []string `json:"params,omitempty"`
	Body   *doc   `json:"body,omitempty"`
	Args   []*doc `json:"args,omitempty"`

	// BinaryOperation
	Op    string `json:"op,omitempty"`
	Left  *doc   `json:"left,omitempty"`
	Right *doc   `json:"right,omitempty"`

	// Block / ClassDeclaration.Body
	Exprs []*doc `json:"exprs,omitempty"`

	// Condition
	Cond *doc `json:"cond,omitempty"`
	Then *doc `json:"then,omitempty"`
	Else *doc `json:"else,omitempty"`

	// Loop / ForLoop
	Init *doc `json:"init,omitempty"`
	Step *doc `json:"step,omitempty"`

	// FunctionCall
	Callee *doc `json:"callee,omitempty"`

	// Switch
	Cases []switchCaseDoc `json:"cases,omitempty"`

	// MemberAccess
	InstanceName string `json:"instanceName,omitempty"`
	MemberName   string `json:"memberName,omitempty"`

	// NewInstance
	ClassName string `json:"className,omitempty"`
}

type switchCaseDoc struct {
	Cond *doc `json:"cond"`
	Body *doc `json:"body"`
}

// Marshal encodes an ast.Node tree to its JSON wire form.
func Marshal(n ast.Node) ([]byte, error) {
	d, err := toDoc(n)
	if err != nil {
		return nil, err
	}
	return json.Marshal(d)
}

// Unmarshal decodes an ast.Node tree from its JSON wire form.
func Unmarshal(data []byte) (ast.Node, error) {
	var d doc
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return fromDoc(&d)
}

func toDoc(n ast.Node) (*doc, error) {
	if n == nil {
		return nil, nil
	}
	switch v := n.(type) {
	case *ast.Literal:
		d := &doc{Node: "Literal", Int: v.Int, Str: v.Str, Bool: v.Bool}
		switch v.Kind {
		case ast.KindInt:
			d.LitKind = "int"
		case ast.KindStr:
			d.LitKind = "str"
		case ast.KindBool:
			d.LitKind = "bool"
		case ast.KindNull:
			d.LitKind = "null"
		}
		return d, nil
	case *ast.Identifier:
		return &doc{Node: "Identifier", Name: v.Name}, nil
	case *ast.VariableDeclaration:
		value, err := toDoc(v.Value)
		if err != nil {
			return nil, err
		}
		return &doc{Node: "VariableDeclaration", Name: v.Name, Value: value}, nil
	case *ast.Assignment:
		value, err := toDoc(v.Value)
		if err != nil {
			return nil, err
		}
		member, err := toDoc(v.Member)
		if err != nil {
			return nil, err
		}
		return &doc{Node: "Assignment", Name: v.Name, Member: member, Value: value}, nil
	case *ast.BinaryOperation:
		left, err := toDoc(v.Left)
		if err != nil {
			return nil, err
		}
		right, err := toDoc(v.Right)
		if err != nil {
			return nil, err
		}
		return &doc{Node: "BinaryOperation", Op: v.Op, Left: left, Right: right}, nil
	case *ast.Block:
		exprs, err := toDocs(v.Exprs)
		if err != nil {
			return nil, err
		}
		return &doc{Node: "Block", Exprs: exprs}, nil
	case *ast.Condition:
		cond, err := toDoc(v.Cond)
		if err != nil {
			return nil, err
		}
		then, err := toDoc(v.Then)
		if err != nil {
			return nil, err
		}
		els, err := toDoc(v.Else)
		if err != nil {
			return nil, err
		}
		return &doc{Node: "Condition", Cond: cond, Then: then, Else: els}, nil
	case *ast.Loop:
		cond, err := toDoc(v.Cond)
		if err != nil {
			return nil, err
		}
		body, err := toDoc(v.Body)
		if err != nil {
			return nil, err
		}
		return &doc{Node: "Loop", Cond: cond, Body: body}, nil
	case *ast.ForLoop:
		init, err := toDoc(v.Init)
		if err != nil {
			return nil, err
		}
		cond, err := toDoc(v.Cond)
		if err != nil {
			return nil, err
		}
		step, err := toDoc(v.Step)
		if err != nil {
			return nil, err
		}
		body, err := toDoc(v.Body)
		if err != nil {
			return nil, err
		}
		return &doc{Node: "ForLoop", Init: init, Cond: cond, Step: step, Body: body}, nil
	case *ast.FunctionDeclaration:
		body, err := toDoc(v.Body)
		if err != nil {
			return nil, err
		}
		return &doc{Node: "FunctionDeclaration", Name: v.Name, Params: v.Params, Body: body}, nil
	case *ast.Lambda:
		body, err := toDoc(v.Body)
		if err != nil {
			return nil, err
		}
		return &doc{Node: "Lambda", Params: v.Params, Body: body}, nil
	case *ast.FunctionCall:
		callee, err := toDoc(v.Callee)
		if err != nil {
			return nil, err
		}
		member, err := toDoc(v.Member)
		if err != nil {
			return nil, err
		}
		args, err := toDocs(v.Args)
		if err != nil {
			return nil, err
		}
		return &doc{Node: "FunctionCall", Name: v.Name, Callee: callee, Member: member, Args: args}, nil
	case *ast.Switch:
		cases := make([]switchCaseDoc, len(v.Cases))
		for i, c := range v.Cases {
			cond, err := toDoc(c.Cond)
			if err != nil {
				return nil, err
			}
			body, err := toDoc(c.Body)
			if err != nil {
				return nil, err
			}
			cases[i] = switchCaseDoc{Cond: cond, Body: body}
		}
		return &doc{Node: "Switch", Cases: cases}, nil
	case *ast.Increment:
		return &doc{Node: "Increment", Name: v.Identifier}, nil
	case *ast.Decrement:
		return &doc{Node: "Decrement", Name: v.Identifier}, nil
	case *ast.ClassDeclaration:
		parent, err := toDoc(v.Parent)
		if err != nil {
			return nil, err
		}
		exprs, err := toDocs(v.Body.Exprs)
		if err != nil {
			return nil, err
		}
		return &doc{Node: "ClassDeclaration", Name: v.Name, Parent: parent, Exprs: exprs}, nil
	case *ast.NewInstance:
		args, err := toDocs(v.Args)
		if err != nil {
			return nil, err
		}
		return &doc{Node: "NewInstance", ClassName: v.ClassName, Args: args}, nil
	case *ast.MemberAccess:
		return &doc{Node: "MemberAccess", InstanceName: v.InstanceName, MemberName: v.MemberName}, nil
	default:
		return nil, fmt.Errorf("astjson: unsupported node type %T", n)
	}
}

func toDocs(nodes []ast.Node) ([]*doc, error) {
	if nodes == nil {
		return nil, nil
	}
	out := make([]*doc, len(nodes))
	for i, n := range nodes {
		d, err := toDoc(n)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

func fromDoc(d *doc) (ast.Node, error) {
	if d == nil {
		return nil, nil
	}
	switch d.Node {
	case "Literal":
		switch d.LitKind {
		case "int":
			return ast.Int(d.Int), nil
		case "str":
			return ast.Str(d.Str), nil
		case "bool":
			return ast.Bool(d.Bool), nil
		case "null":
			return ast.Nil(), nil
		default:
			return nil, fmt.Errorf("astjson: unknown literal kind %q", d.LitKind)
		}
	case "Identifier":
		return ast.Id(d.Name), nil
	case "VariableDeclaration":
		value, err := fromDoc(d.Value)
		if err != nil {
			return nil, err
		}
		return ast.Var(d.Name, value), nil
	case "Assignment":
		value, err := fromDoc(d.Value)
		if err != nil {
			return nil, err
		}
		if d.Member != nil {
			member, err := fromDoc(d.Member)
			if err != nil {
				return nil, err
			}
			ma := member.(*ast.MemberAccess)
			return ast.SetMember(ma.InstanceName, ma.MemberName, value), nil
		}
		return ast.Set(d.Name, value), nil
	case "BinaryOperation":
		left, err := fromDoc(d.Left)
		if err != nil {
			return nil, err
		}
		right, err := fromDoc(d.Right)
		if err != nil {
			return nil, err
		}
		return ast.Bin(d.Op, left, right), nil
	case "Block":
		exprs, err := fromDocs(d.Exprs)
		if err != nil {
			return nil, err
		}
		return &ast.Block{Exprs: exprs}, nil
	case "Condition":
		cond, err := fromDoc(d.Cond)
		if err != nil {
			return nil, err
		}
		then, err := fromDoc(d.Then)
		if err != nil {
			return nil, err
		}
		els, err := fromDoc(d.Else)
		if err != nil {
			return nil, err
		}
		return ast.If(cond, then, els), nil
	case "Loop":
		cond, err := fromDoc(d.Cond)
		if err != nil {
			return nil, err
		}
		body, err := fromDoc(d.Body)
		if err != nil {
			return nil, err
		}
		return ast.While(cond, body), nil
	case "ForLoop":
		init, err := fromDoc(d.Init)
		if err != nil {
			return nil, err
		}
		cond, err := fromDoc(d.Cond)
		if err != nil {
			return nil, err
		}
		step, err := fromDoc(d.Step)
		if err != nil {
			return nil, err
		}
		body, err := fromDoc(d.Body)
		if err != nil {
			return nil, err
		}
		return ast.For(init, cond, step, body), nil
	case "FunctionDeclaration":
		body, err := fromDoc(d.Body)
		if err != nil {
			return nil, err
		}
		return ast.Def(d.Name, d.Params, body), nil
	case "Lambda":
		body, err := fromDoc(d.Body)
		if err != nil {
			return nil, err
		}
		return ast.Lam(d.Params, body), nil
	case "FunctionCall":
		args, err := fromDocs(d.Args)
		if err != nil {
			return nil, err
		}
		switch {
		case d.Member != nil:
			member, err := fromDoc(d.Member)
			if err != nil {
				return nil, err
			}
			ma := member.(*ast.MemberAccess)
			return &ast.FunctionCall{Member: ma, Args: args}, nil
		case d.Callee != nil:
			callee, err := fromDoc(d.Callee)
			if err != nil {
				return nil, err
			}
			return &ast.FunctionCall{Callee: callee, Args: args}, nil
		default:
			return ast.Call(d.Name, args...), nil
		}
	case "Switch":
		cases := make([]ast.SwitchCase, len(d.Cases))
		for i, c := range d.Cases {
			cond, err := fromDoc(c.Cond)
			if err != nil {
				return nil, err
			}
			body, err := fromDoc(c.Body)
			if err != nil {
				return nil, err
			}
			cases[i] = ast.SwitchCase{Cond: cond, Body: body}
		}
		return &ast.Switch{Cases: cases}, nil
	case "Increment":
		return ast.Inc(d.Name), nil
	case "Decrement":
		return ast.Dec(d.Name), nil
	case "ClassDeclaration":
		parent, err := fromDoc(d.Parent)
		if err != nil {
			return nil, err
		}
		exprs, err := fromDocs(d.Exprs)
		if err != nil {
			return nil, err
		}
		return ast.Class(d.Name, parent, &ast.Block{Exprs: exprs}), nil
	case "NewInstance":
		args, err := fromDocs(d.Args)
		if err != nil {
			return nil, err
		}
		return ast.New(d.ClassName, args...), nil
	case "MemberAccess":
		return ast.Member(d.InstanceName, d.MemberName), nil
	default:
		return nil, fmt.Errorf("astjson: unknown node tag %q", d.Node)
	}
}

func fromDocs(docs []*doc) ([]ast.Node, error) {
	if docs == nil {
		return nil, nil
	}
	out := make([]ast.Node, len(docs))
	for i, d := range docs {
		n, err := fromDoc(d)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
