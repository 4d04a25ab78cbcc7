// Package visibility decides whether a question is displayed. Condition lists
// attached to a question are resolved against the answers of other questions
// (Visible), while free-form rules are delegated to an Evaluator.
package visibility

// Evaluator determines whether a field should be visible based on a rule
// string and optional context such as current answers or request metadata.
type Evaluator interface {
	Eval(fieldPath, rule string, ctx Context) (bool, error)
}

// Context provides inputs to an Evaluator. Values usually holds answers keyed
// by question name while Extras allows callers to inject arbitrary context
// such as the requester profile.
type Context struct {
	Values map[string]any
	Extras map[string]any
}

// EvaluatorFunc adapts a function into an Evaluator.
type EvaluatorFunc func(fieldPath, rule string, ctx Context) (bool, error)

// Eval delegates to the underlying function.
func (fn EvaluatorFunc) Eval(fieldPath, rule string, ctx Context) (bool, error) {
	return fn(fieldPath, rule, ctx)
}
