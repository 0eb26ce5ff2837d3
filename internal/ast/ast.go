// Package ast defines the node shapes the evaluator consumes.
//
// There is no lexer or parser here: a program is built directly as a tree
// of these node values, the way an embedder would build it programmatically.
// Nodes are immutable once constructed and safe to evaluate more than once.
package ast

// Node is the common interface implemented by every tree node. It carries
// no behavior of its own; the evaluator type-switches on the concrete type.
type Node interface {
	evaNode()
}

// LiteralKind tags which field of Literal holds the value.
type LiteralKind int

const (
	KindInt LiteralKind = iota
	KindStr
	KindBool
	KindNull
)

// Literal is a self-evaluating constant.
type Literal struct {
	Kind LiteralKind
	Int  int64
	Str  string
	Bool bool
}

func (*Literal) evaNode() {}

// Identifier resolves a name against the environment chain.
type Identifier struct {
	Name string
}

func (*Identifier) evaNode() {}

// VariableDeclaration introduces Name in the innermost scope (define semantics).
type VariableDeclaration struct {
	Name  string
	Value Node
}

func (*VariableDeclaration) evaNode() {}

// Assignment rebinds an existing name (assign semantics), or, when Member is
// set, defines a field directly on an instance's environment.
type Assignment struct {
	Name   string // set for "set x = ..."
	Member *MemberAccess
	Value  Node
}

func (*Assignment) evaNode() {}

// BinaryOperation applies an arithmetic or comparison operator to two
// operands. Op is one of: + - * / % > < >= <= == !=.
type BinaryOperation struct {
	Op    string
	Left  Node
	Right Node
}

func (*BinaryOperation) evaNode() {}

// Block evaluates a sequence of expressions in a freshly nested scope,
// yielding the value of the last one (or Null if empty).
type Block struct {
	Exprs []Node
}

func (*Block) evaNode() {}

// Condition is an if/then/else; exactly one branch runs.
type Condition struct {
	Cond Node
	Then Node
	Else Node
}

func (*Condition) evaNode() {}

// Loop is a while loop: re-evaluate Cond before every iteration of Body.
type Loop struct {
	Cond Node
	Body Node
}

func (*Loop) evaNode() {}

// ForLoop is a counted loop: Init runs once, then Cond/Body/Step repeat.
type ForLoop struct {
	Init Node
	Cond Node
	Step Node
	Body Node
}

func (*ForLoop) evaNode() {}

// FunctionDeclaration both builds a function value and binds it to Name in
// the defining environment.
type FunctionDeclaration struct {
	Name   string
	Params []string
	Body   Node
}

func (*FunctionDeclaration) evaNode() {}

// Lambda builds an unnamed function value without binding it anywhere.
type Lambda struct {
	Params []string
	Body   Node
}

func (*Lambda) evaNode() {}

// FunctionCall invokes a function resolved one of three ways: by Name (a
// named lookup), by Callee (an arbitrary expression producing a function),
// or by Member (a method resolved via member access).
type FunctionCall struct {
	Name   string
	Callee Node
	Member *MemberAccess
	Args   []Node
}

func (*FunctionCall) evaNode() {}

// SwitchCase is one (cond, body) arm of a Switch.
type SwitchCase struct {
	Cond Node
	Body Node
}

// Switch walks Cases in order and evaluates the body of the first whose
// condition is true. A trailing always-true case acts as the default.
type Switch struct {
	Cases []SwitchCase
}

func (*Switch) evaNode() {}

// Increment is sugar for set x = x + 1.
type Increment struct {
	Identifier string
}

func (*Increment) evaNode() {}

// Decrement is sugar for set x = x - 1.
type Decrement struct {
	Identifier string
}

func (*Decrement) evaNode() {}

// ClassDeclaration declares a class: Body is evaluated directly into the new
// class environment (no extra scope, unlike Block), which is how methods and
// static members end up defined there. Parent, if non-nil, must evaluate to
// a Class whose class environment becomes this one's parent.
type ClassDeclaration struct {
	Name   string
	Parent Node
	Body   *Block
}

func (*ClassDeclaration) evaNode() {}

// NewInstance constructs an instance of ClassName by running its
// constructor with Args.
type NewInstance struct {
	ClassName string
	Args      []Node
}

func (*NewInstance) evaNode() {}

// MemberAccess reads a field or method off an instance, by looking it up in
// the instance's own environment (which chains into its class hierarchy).
type MemberAccess struct {
	InstanceName string
	MemberName   string
}

func (*MemberAccess) evaNode() {}
