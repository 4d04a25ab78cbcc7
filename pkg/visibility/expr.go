package visibility

import (
	"fmt"
	"strings"
	"sync"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"

	"github.com/goliatone/go-formfield/pkg/model"
)

// ExprEvaluator evaluates rules written in the expr language
// (github.com/expr-lang/expr), e.g. `request_type == "Incident" && urgency != ""`.
//
// Context.Values entries are exposed as top-level variables, Context.Extras
// under `extras`, and the evaluated field path as `field`. Unknown variables
// evaluate to nil. Compiled programs are cached per rule and the evaluator is
// safe for concurrent use.
type ExprEvaluator struct {
	mu       sync.RWMutex
	programs map[string]*exprvm.Program
}

var _ Evaluator = (*ExprEvaluator)(nil)

// NewExprEvaluator returns an evaluator with an empty program cache.
func NewExprEvaluator() *ExprEvaluator {
	return &ExprEvaluator{programs: make(map[string]*exprvm.Program)}
}

// Eval runs rule against ctx. An empty rule is always visible; a rule that
// does not produce a boolean is an error.
func (e *ExprEvaluator) Eval(fieldPath, rule string, ctx Context) (bool, error) {
	trimmed := strings.TrimSpace(rule)
	if trimmed == "" {
		return true, nil
	}

	program, err := e.program(trimmed)
	if err != nil {
		return false, err
	}

	out, err := exprlang.Run(program, environment(fieldPath, ctx))
	if err != nil {
		return false, fmt.Errorf("visibility/expr: run %q: %w", trimmed, err)
	}
	visible, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("visibility/expr: rule %q returned %T, want bool", trimmed, out)
	}
	return visible, nil
}

func (e *ExprEvaluator) program(rule string) (*exprvm.Program, error) {
	e.mu.RLock()
	program, ok := e.programs[rule]
	e.mu.RUnlock()
	if ok {
		return program, nil
	}

	program, err := exprlang.Compile(rule,
		exprlang.Env(map[string]any{}),
		exprlang.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("visibility/expr: compile %q: %w", rule, err)
	}

	e.mu.Lock()
	if e.programs == nil {
		e.programs = make(map[string]*exprvm.Program)
	}
	e.programs[rule] = program
	e.mu.Unlock()
	return program, nil
}

func environment(fieldPath string, ctx Context) map[string]any {
	env := make(map[string]any, len(ctx.Values)+2)
	for key, value := range ctx.Values {
		env[key] = value
	}
	extras := ctx.Extras
	if extras == nil {
		extras = map[string]any{}
	}
	env["extras"] = extras
	env["field"] = fieldPath
	return env
}

// ValuesFromAnswers builds Context.Values from answers keyed by question name.
// Unsubmitted answers map to nil so rules can test `name == nil`.
func ValuesFromAnswers(answers map[string]model.Answer) map[string]any {
	if len(answers) == 0 {
		return nil
	}
	out := make(map[string]any, len(answers))
	for name, answer := range answers {
		if !answer.IsSet() {
			out[name] = nil
			continue
		}
		out[name] = answer.Text()
	}
	return out
}
