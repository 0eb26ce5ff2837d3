package config

import (
	"fmt"

	"github.com/eva-lang/eva/internal/evaluator"
)

// Apply seeds env with the configured extra globals and returns the max
// call depth to use (0 means "caller should keep the evaluator default").
func (c *Config) Apply(env *evaluator.Environment) (maxCallDepth int, err error) {
	if c == nil {
		return 0, nil
	}
	for name, v := range c.Globals {
		val, convErr := toValue(v)
		if convErr != nil {
			return 0, fmt.Errorf("globals.%s: %w", name, convErr)
		}
		env.Define(name, val)
	}
	return c.MaxCallDepth, nil
}

func toValue(v any) (evaluator.Value, error) {
	switch x := v.(type) {
	case int:
		return &evaluator.Int{Value: int64(x)}, nil
	case int64:
		return &evaluator.Int{Value: x}, nil
	case string:
		return &evaluator.Str{Value: x}, nil
	case bool:
		return evaluator.NativeBool(x), nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}
