package extensions

import (
	"reflect"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/aretw0/roentgen/pkg/domain"
	"github.com/aretw0/roentgen/pkg/registry"
	"github.com/aretw0/roentgen/pkg/schema"
)

// TypeExpr is the type tag of the CEL expression validator.
const TypeExpr = "expr"

// DefaultExprMessage is reported when an Expr schema sets no message.
const DefaultExprMessage = "expression not satisfied"

// Expr is a schema accepting values for which a boolean CEL expression
// holds. The value under test is bound to the variable self:
//
//	extensions.Expr{Expression: "self % 2 == 0", Message: "even number required"}
type Expr struct {
	Expression string `mapstructure:"expr"`
	Message    string `mapstructure:"message"`
}

func (Expr) TypeName() string { return TypeExpr }

var exprEnv = sync.OnceValues(func() (*cel.Env, error) {
	return cel.NewEnv(cel.Variable("self", cel.DynType))
})

type exprValidator struct {
	domain.Base
	program cel.Program
	message string
}

// NewExpr is the registry.Factory for TypeExpr. The expression is compiled
// once here; it must type-check to bool.
func NewExpr(_ registry.Builder, s schema.Schema) (domain.Validator, error) {
	opts, err := schema.As[Expr](s)
	if err != nil {
		return nil, err
	}
	if opts.Expression == "" {
		return nil, domain.Invalid(`"expr" option is required`)
	}

	env, err := exprEnv()
	if err != nil {
		return nil, err
	}

	ast, iss := env.Compile(opts.Expression)
	if err := iss.Err(); err != nil {
		return nil, domain.Invalid("cannot compile %q: %v", opts.Expression, err)
	}
	if !reflect.DeepEqual(ast.OutputType(), cel.BoolType) {
		return nil, domain.Invalid("expression %q must evaluate to bool, got %v", opts.Expression, ast.OutputType())
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, domain.Invalid("cannot plan %q: %v", opts.Expression, err)
	}

	message := opts.Message
	if message == "" {
		message = DefaultExprMessage
	}
	return &exprValidator{program: program, message: message}, nil
}

// Run fails with the configured message when the expression is false or
// cannot be evaluated for the input (e.g. no matching overload).
func (v *exprValidator) Run(input any) domain.Result {
	out, _, err := v.program.Eval(map[string]any{"self": input})
	if err != nil {
		return v.Fail(v.message)
	}
	if ok, isBool := out.Value().(bool); !isBool || !ok {
		return v.Fail(v.message)
	}
	return v.Ok(input)
}
