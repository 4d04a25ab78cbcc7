package visibility_test

import (
	"testing"

	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/visibility"
)

func TestExprEvaluator(t *testing.T) {
	t.Parallel()

	eval := visibility.NewExprEvaluator()
	ctx := visibility.Context{
		Values: visibility.ValuesFromAnswers(map[string]model.Answer{
			"request_type": model.Submitted("Incident"),
			"urgency":      model.Submitted(""),
			"category":     model.NotSubmitted(),
		}),
		Extras: map[string]any{"role": "technician"},
	}

	tests := []struct {
		rule string
		want bool
	}{
		{rule: "", want: true},
		{rule: `request_type == "Incident"`, want: true},
		{rule: `request_type == "Incident" && urgency != ""`, want: false},
		{rule: `category == nil`, want: true},
		{rule: `missing == nil`, want: true},
		{rule: `extras.role == "technician"`, want: true},
		{rule: `field == "urgency"`, want: true},
		{rule: `request_type matches "^Inc"`, want: true},
	}

	for _, tt := range tests {
		got, err := eval.Eval("urgency", tt.rule, ctx)
		if err != nil {
			t.Fatalf("Eval(%q) returned error: %v", tt.rule, err)
		}
		if got != tt.want {
			t.Fatalf("Eval(%q) = %v, want %v", tt.rule, got, tt.want)
		}
	}
}

func TestExprEvaluatorErrors(t *testing.T) {
	t.Parallel()

	eval := visibility.NewExprEvaluator()

	if _, err := eval.Eval("x", `request_type ==`, visibility.Context{}); err == nil {
		t.Fatalf("expected compile error")
	}
	if _, err := eval.Eval("x", `"not a bool"`, visibility.Context{}); err == nil {
		t.Fatalf("expected non-bool error")
	}
}

func TestExprEvaluatorZeroValue(t *testing.T) {
	t.Parallel()

	var eval visibility.ExprEvaluator
	ok, err := eval.Eval("x", `1 < 2`, visibility.Context{})
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected true")
	}
}

func TestEvaluatorFunc(t *testing.T) {
	t.Parallel()

	var called string
	var eval visibility.Evaluator = visibility.EvaluatorFunc(func(fieldPath, rule string, _ visibility.Context) (bool, error) {
		called = fieldPath + ":" + rule
		return false, nil
	})
	ok, err := eval.Eval("urgency", "anything", visibility.Context{})
	if err != nil || ok {
		t.Fatalf("unexpected result %v, %v", ok, err)
	}
	if called != "urgency:anything" {
		t.Fatalf("unexpected call %q", called)
	}
}
