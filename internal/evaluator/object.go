// Package evaluator is the tree-walking evaluator for Eva: the value
// domain, the lexical environment, and the per-node semantics.
package evaluator

// ObjectType tags a Value's runtime kind, mirroring the variant names used
// in diagnostics and TypeMismatch errors.
type ObjectType string

const (
	IntObj      ObjectType = "Int"
	StrObj      ObjectType = "Str"
	BoolObj     ObjectType = "Bool"
	NullObj     ObjectType = "Null"
	FunctionObj ObjectType = "Function"
	ClassObj    ObjectType = "Class"
	InstanceObj ObjectType = "Instance"
)

// Value is the sum type of everything the evaluator can produce: integers,
// strings, booleans, the null singleton, callables, classes, and instances.
type Value interface {
	Type() ObjectType
	Inspect() string
}

// Equals implements the structural-for-primitives, identity-for-everything-
// else equality described in the value domain: Int/Str/Bool compare by
// value, Null only equals Null, and Function/Class/Instance compare by
// pointer identity of the value itself (two Functions sharing one captured
// environment are still unequal).
func Equals(a, b Value) bool {
	switch av := a.(type) {
	case *Int:
		bv, ok := b.(*Int)
		return ok && av.Value == bv.Value
	case *Str:
		bv, ok := b.(*Str)
		return ok && av.Value == bv.Value
	case *Bool:
		bv, ok := b.(*Bool)
		return ok && av.Value == bv.Value
	case *Null:
		_, ok := b.(*Null)
		return ok
	case *Function:
		bv, ok := b.(*Function)
		return ok && av == bv
	case *Class:
		bv, ok := b.(*Class)
		return ok && av == bv
	case *Instance:
		bv, ok := b.(*Instance)
		return ok && av == bv
	default:
		return false
	}
}
