package evaluator

import "testing"

func TestDefineAndLookup(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", &Int{Value: 1})

	v, err := env.Lookup("x")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if i, ok := v.(*Int); !ok || i.Value != 1 {
		t.Errorf("expected x = 1, got %v", v)
	}
}

func TestLookupWalksParentChain(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", &Int{Value: 42})
	inner := NewEnclosedEnvironment(outer)

	v, err := inner.Lookup("x")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if i, ok := v.(*Int); !ok || i.Value != 42 {
		t.Errorf("expected x = 42, got %v", v)
	}
}

func TestLookupUndefinedNameFails(t *testing.T) {
	env := NewEnvironment()
	_, err := env.Lookup("missing")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if ee, ok := err.(*EvalError); !ok || ee.Kind != UndefinedName {
		t.Errorf("expected UndefinedName, got %v", err)
	}
}

func TestAssignWalksToNearestExistingBinding(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", &Int{Value: 1})
	inner := NewEnclosedEnvironment(outer)

	if _, err := inner.Assign("x", &Int{Value: 2}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	v, err := outer.Lookup("x")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if i, ok := v.(*Int); !ok || i.Value != 2 {
		t.Errorf("expected outer x = 2 after inner assign, got %v", v)
	}
}

func TestAssignUndefinedNameFails(t *testing.T) {
	env := NewEnvironment()
	_, err := env.Assign("never_defined", &Int{Value: 1})
	if err == nil {
		t.Fatalf("expected an error")
	}
	if ee, ok := err.(*EvalError); !ok || ee.Kind != UndefinedName {
		t.Errorf("expected UndefinedName, got %v", err)
	}
}

func TestDefineAlwaysTargetsInnermost(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", &Int{Value: 1})
	inner := NewEnclosedEnvironment(outer)
	inner.Define("x", &Int{Value: 99})

	outerVal, _ := outer.Lookup("x")
	innerVal, _ := inner.Lookup("x")

	if i, ok := outerVal.(*Int); !ok || i.Value != 1 {
		t.Errorf("expected outer x to remain 1, got %v", outerVal)
	}
	if i, ok := innerVal.(*Int); !ok || i.Value != 99 {
		t.Errorf("expected inner x = 99, got %v", innerVal)
	}
}

func TestEqualsStructuralForPrimitives(t *testing.T) {
	if !Equals(&Int{Value: 5}, &Int{Value: 5}) {
		t.Errorf("expected equal Ints to compare equal")
	}
	if Equals(&Int{Value: 5}, &Int{Value: 6}) {
		t.Errorf("expected unequal Ints to compare unequal")
	}
	if !Equals(NullVal, &Null{}) {
		t.Errorf("expected any two Nulls to compare equal")
	}
}

func TestEqualsIdentityForCallables(t *testing.T) {
	env := NewEnvironment()
	fn1 := NewFunction("f", nil, nil, env)
	fn2 := NewFunction("f", nil, nil, env)
	if Equals(fn1, fn2) {
		t.Errorf("expected distinct Function values to compare unequal")
	}
	if !Equals(fn1, fn1) {
		t.Errorf("expected a Function to equal itself")
	}
}
