package ast

// Builder helpers. The real AST construction layer — parsing source text,
// or a fluent host-language builder — is an external collaborator and is
// not part of this package; these functions exist only so callers (tests,
// the CLI driver, the RPC codec) have a convenient way to assemble trees
// without spelling out every struct literal by hand.

func Int(v int64) *Literal  { return &Literal{Kind: KindInt, Int: v} }
func Str(v string) *Literal { return &Literal{Kind: KindStr, Str: v} }
func Bool(v bool) *Literal  { return &Literal{Kind: KindBool, Bool: v} }
func Nil() *Literal         { return &Literal{Kind: KindNull} }

func Id(name string) *Identifier { return &Identifier{Name: name} }

func Var(name string, value Node) *VariableDeclaration {
	return &VariableDeclaration{Name: name, Value: value}
}

func Set(name string, value Node) *Assignment {
	return &Assignment{Name: name, Value: value}
}

func SetMember(instanceName, memberName string, value Node) *Assignment {
	return &Assignment{Member: Member(instanceName, memberName), Value: value}
}

func Bin(op string, left, right Node) *BinaryOperation {
	return &BinaryOperation{Op: op, Left: left, Right: right}
}

func Blk(exprs ...Node) *Block { return &Block{Exprs: exprs} }

func If(cond, then, els Node) *Condition {
	return &Condition{Cond: cond, Then: then, Else: els}
}

func While(cond, body Node) *Loop { return &Loop{Cond: cond, Body: body} }

func For(init, cond, step, body Node) *ForLoop {
	return &ForLoop{Init: init, Cond: cond, Step: step, Body: body}
}

func Def(name string, params []string, body Node) *FunctionDeclaration {
	return &FunctionDeclaration{Name: name, Params: params, Body: body}
}

func Lam(params []string, body Node) *Lambda {
	return &Lambda{Params: params, Body: body}
}

func Call(name string, args ...Node) *FunctionCall {
	return &FunctionCall{Name: name, Args: args}
}

func CallExpr(callee Node, args ...Node) *FunctionCall {
	return &FunctionCall{Callee: callee, Args: args}
}

func CallMethod(instanceName, methodName string, args ...Node) *FunctionCall {
	return &FunctionCall{Member: Member(instanceName, methodName), Args: args}
}

func When(cond, body Node) SwitchCase { return SwitchCase{Cond: cond, Body: body} }

// Any builds the trailing always-true arm of a Switch, guaranteeing a
// match so the switch never falls through to Null.
func Any(body Node) SwitchCase { return SwitchCase{Cond: Bool(true), Body: body} }

func Select(cases ...SwitchCase) *Switch { return &Switch{Cases: cases} }

func Inc(name string) *Increment { return &Increment{Identifier: name} }
func Dec(name string) *Decrement { return &Decrement{Identifier: name} }

func Class(name string, parent Node, body *Block) *ClassDeclaration {
	return &ClassDeclaration{Name: name, Parent: parent, Body: body}
}

func New(className string, args ...Node) *NewInstance {
	return &NewInstance{ClassName: className, Args: args}
}

func Member(instanceName, memberName string) *MemberAccess {
	return &MemberAccess{InstanceName: instanceName, MemberName: memberName}
}
