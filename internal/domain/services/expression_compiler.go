// Package services contains domain services that turn declarative sheet
// definitions into working attributes.
package services

import (
	"fmt"
	"math"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/reglet-dev/attrkit/internal/domain/values"
)

// Complexity limits for user supplied expressions
const (
	maxExpressionLength = 1000 // Character limit for readability
	maxASTNodes         = 100  // AST node limit prevents deeply nested expressions
)

// AttributeEnv defines the variables available to validate and derive
// expressions.
type AttributeEnv struct {
	Value float64 `expr:"value"`
	Pi    float64 `expr:"pi"`
}

func newAttributeEnv(v float64) AttributeEnv {
	return AttributeEnv{Value: v, Pi: math.Pi}
}

type expressionKind string

const (
	kindRule       expressionKind = "rule"
	kindDerivation expressionKind = "derivation"
)

// ExpressionCompiler compiles sheet expressions into rules and derivations.
// It caches compiled programs to avoid redundant compilation.
type ExpressionCompiler struct {
	programCache map[string]*vm.Program // Keyed by kind and source
	cacheMu      sync.RWMutex           // Protects programCache
}

// NewExpressionCompiler creates a compiler with an empty cache.
func NewExpressionCompiler() *ExpressionCompiler {
	return &ExpressionCompiler{
		programCache: make(map[string]*vm.Program),
	}
}

// CompileRule compiles a boolean expression into a rule over float64
// values. Evaluation errors reject the value.
func (c *ExpressionCompiler) CompileRule(source string) (values.Rule[float64], error) {
	program, err := c.getOrCompile(kindRule, source, expr.AsBool())
	if err != nil {
		return values.Rule[float64]{}, err
	}

	return values.NewRule(fmt.Sprintf("must satisfy %q", source), func(v float64) bool {
		output, err := expr.Run(program, newAttributeEnv(v))
		if err != nil {
			return false
		}
		ok, isBool := output.(bool)
		return isBool && ok
	}), nil
}

// CompileDerivation compiles a numeric expression into a derivation.
// Evaluation errors yield NaN.
func (c *ExpressionCompiler) CompileDerivation(source string) (values.DeriveFunc[float64, float64], error) {
	program, err := c.getOrCompile(kindDerivation, source, expr.AsFloat64())
	if err != nil {
		return nil, err
	}

	return func(v float64) float64 {
		output, err := expr.Run(program, newAttributeEnv(v))
		if err != nil {
			return math.NaN()
		}
		f, ok := output.(float64)
		if !ok {
			return math.NaN()
		}
		return f
	}, nil
}

// CacheSize returns the number of compiled programs held.
func (c *ExpressionCompiler) CacheSize() int {
	c.cacheMu.RLock()
	defer c.cacheMu.RUnlock()
	return len(c.programCache)
}

// getOrCompile retrieves a cached program or compiles and caches a new one.
func (c *ExpressionCompiler) getOrCompile(kind expressionKind, source string, expect expr.Option) (*vm.Program, error) {
	if len(source) > maxExpressionLength {
		return nil, fmt.Errorf("expression too long (max %d chars): %d chars", maxExpressionLength, len(source))
	}

	key := string(kind) + "\x00" + source

	c.cacheMu.RLock()
	program, found := c.programCache[key]
	c.cacheMu.RUnlock()

	if found {
		return program, nil
	}

	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	// Double-check after acquiring write lock
	if program, found := c.programCache[key]; found {
		return program, nil
	}

	program, err := expr.Compile(source,
		expr.Env(AttributeEnv{}),
		expect,
		expr.MaxNodes(maxASTNodes),
		expr.Function("sqrt", func(params ...interface{}) (interface{}, error) {
			if len(params) != 1 {
				return nil, fmt.Errorf("sqrt expects 1 argument")
			}
			switch n := params[0].(type) {
			case float64:
				return math.Sqrt(n), nil
			case int:
				return math.Sqrt(float64(n)), nil
			default:
				return nil, fmt.Errorf("sqrt: argument must be a number")
			}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s expression %q: %w", kind, source, err)
	}

	c.programCache[key] = program
	return program, nil
}
