package evaluator

import (
	"fmt"
	"strings"

	"github.com/eva-lang/eva/internal/ast"
)

// Function is a callable value: parameters, a body node, and the
// environment in effect at its definition site (I1: CapturedEnv is never
// nil — every Function, lambdas included, is built through NewFunction below).
type Function struct {
	Name        string
	Params      []string
	Body        ast.Node
	CapturedEnv *Environment
}

func NewFunction(name string, params []string, body ast.Node, capturedEnv *Environment) *Function {
	if capturedEnv == nil {
		panic("evaluator: Function built with a nil captured environment")
	}
	return &Function{Name: name, Params: params, Body: body, CapturedEnv: capturedEnv}
}

func (f *Function) Type() ObjectType { return FunctionObj }
func (f *Function) Inspect() string {
	name := f.Name
	if name == "" {
		name = "<lambda>"
	}
	return fmt.Sprintf("fn %s(%s)", name, strings.Join(f.Params, ", "))
}

// Class is a class value: its ClassEnv holds methods and static members and
// chains (I3) to the parent class's ClassEnv, or to the declaration-site
// env when there is no parent.
type Class struct {
	Name     string
	ClassEnv *Environment
}

func (c *Class) Type() ObjectType { return ClassObj }
func (c *Class) Inspect() string  { return fmt.Sprintf("class %s", c.Name) }

// Instance is an object; its InstanceEnv is parented (I2) by the class's
// ClassEnv, so method lookup through MemberAccess walks the inheritance
// chain automatically while fields set by the constructor live directly in
// InstanceEnv.
type Instance struct {
	Class       *Class
	InstanceEnv *Environment
}

func (i *Instance) Type() ObjectType { return InstanceObj }
func (i *Instance) Inspect() string {
	name := "?"
	if i.Class != nil {
		name = i.Class.Name
	}
	return fmt.Sprintf("%s instance", name)
}
