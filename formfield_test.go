package formfield_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield"
	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/testsupport"
	"github.com/goliatone/go-formfield/pkg/visibility"
)

func strPtr(value string) *string { return &value }

func TestNew(t *testing.T) {
	field, err := formfield.New(model.Question{FieldType: model.FieldTypeRadios})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if field.Name() != "Radios" {
		t.Fatalf("expected radios field, got %q", field.Name())
	}

	if _, err := formfield.New(model.Question{FieldType: "textarea"}); !errors.Is(err, formfield.ErrUnsupportedFieldType) {
		t.Fatalf("expected ErrUnsupportedFieldType, got %v", err)
	}
}

func TestFromRecord(t *testing.T) {
	field, err := formfield.FromRecord(map[string]string{
		"id":       "9",
		"name":     "question",
		"required": "1",
		"values":   `a\r\nb`,
	})
	if err != nil {
		t.Fatalf("FromRecord returned error: %v", err)
	}
	field.DeserializeValue(strPtr(""))
	if field.IsValid() {
		t.Fatalf("expected required empty answer to be invalid")
	}

	if _, err := formfield.FromRecord(map[string]string{"required": "perhaps"}); err == nil {
		t.Fatalf("expected invalid record to fail")
	}
}

func TestSubmissionHiddenQuestionSkipsValidation(t *testing.T) {
	questions := testsupport.MustLoadQuestions(t, "testdata/form.yaml")

	sub, err := formfield.ParseSubmission(questions, map[string]*string{
		model.FieldKey(1): strPtr(" Request "),
		model.FieldKey(3): strPtr("L'accueil"),
	})
	if err != nil {
		t.Fatalf("ParseSubmission returned error: %v", err)
	}

	visible, err := sub.Visible(2)
	if err != nil {
		t.Fatalf("Visible returned error: %v", err)
	}
	if visible {
		t.Fatalf("expected urgency to be hidden for requests")
	}

	result, err := sub.Validate()
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected submission to be valid, got %#v", result.Issues)
	}

	wantStored := map[int]string{1: "Request", 2: "", 3: `L\'accueil`}
	if diff := cmp.Diff(wantStored, sub.Serialize()); diff != "" {
		t.Fatalf("serialised answers mismatch (-want +got):\n%s", diff)
	}

	text, err := sub.TargetText(false)
	if err != nil {
		t.Fatalf("TargetText returned error: %v", err)
	}
	wantText := map[string]string{"request_type": "Request", "channel": "L'accueil"}
	if diff := cmp.Diff(wantText, text); diff != "" {
		t.Fatalf("target text mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmissionVisibleRequiredQuestion(t *testing.T) {
	questions := testsupport.MustLoadQuestions(t, "testdata/form.yaml")

	sub, err := formfield.ParseSubmission(questions, map[string]*string{
		model.FieldKey(1): strPtr("Incident"),
		model.FieldKey(2): strPtr(""),
	})
	if err != nil {
		t.Fatalf("ParseSubmission returned error: %v", err)
	}

	result, err := sub.Validate()
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if result.Valid {
		t.Fatalf("expected visible required question to fail")
	}
	if len(result.Issues) != 1 || result.Issues[0].Field != model.FieldKey(2) {
		t.Fatalf("unexpected issues %#v", result.Issues)
	}

	field, ok := sub.Field(3)
	if !ok {
		t.Fatalf("expected channel field")
	}
	if field.Answer().IsSet() {
		t.Fatalf("expected channel to be not submitted")
	}
}

func TestSubmissionUnsetShowRule(t *testing.T) {
	questions := []model.Question{
		{ID: 1, Name: "request_type", Values: []string{"Incident", "Request"}},
		{ID: 2, Name: "urgency", Required: true, Values: []string{"Low", "High"}, Conditions: []model.Condition{
			{QuestionID: 1, Operator: model.OperatorEquals, Value: "Incident"},
		}},
	}

	sub, err := formfield.ParseSubmission(questions, map[string]*string{model.FieldKey(1): strPtr("Request")})
	if err != nil {
		t.Fatalf("ParseSubmission returned error: %v", err)
	}

	result, err := sub.Validate()
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if result.Valid {
		t.Fatalf("expected required question without show rule to be validated")
	}
	if _, err := sub.TargetText(false); err != nil {
		t.Fatalf("TargetText returned error: %v", err)
	}
}

func TestParseSubmissionErrors(t *testing.T) {
	dup := []model.Question{{ID: 1}, {ID: 1}}
	if _, err := formfield.ParseSubmission(dup, nil); err == nil {
		t.Fatalf("expected duplicate id error")
	}

	other := []model.Question{{ID: 1, FieldType: "date"}}
	if _, err := formfield.ParseSubmission(other, nil); !errors.Is(err, formfield.ErrUnsupportedFieldType) {
		t.Fatalf("expected ErrUnsupportedFieldType, got %v", err)
	}

	sub, err := formfield.ParseSubmission(nil, nil)
	if err != nil {
		t.Fatalf("ParseSubmission returned error: %v", err)
	}
	if _, err := sub.Visible(4); err == nil {
		t.Fatalf("expected unknown question error")
	}
}

func ruleQuestions() []model.Question {
	return []model.Question{
		{ID: 1, Name: "request_type", Order: 1, Values: []string{"Incident", "Request"}},
		{
			ID:        2,
			Name:      "urgency",
			Required:  true,
			Order:     2,
			Values:    []string{"Low", "High"},
			VisibleIf: `request_type == "Incident" && extras.role != "guest"`,
		},
	}
}

func TestSubmissionVisibleIf(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		options []formfield.Option
		want    bool
	}{
		{name: "rule met", answer: "Incident", want: true},
		{name: "rule not met", answer: "Request", want: false},
		{
			name:    "extras hide",
			answer:  "Incident",
			options: []formfield.Option{formfield.WithExtras(map[string]any{"role": "guest"})},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := formfield.ParseSubmission(ruleQuestions(), map[string]*string{
				model.FieldKey(1): strPtr(tt.answer),
			}, tt.options...)
			if err != nil {
				t.Fatalf("ParseSubmission returned error: %v", err)
			}
			visible, err := sub.Visible(2)
			if err != nil {
				t.Fatalf("Visible returned error: %v", err)
			}
			if visible != tt.want {
				t.Fatalf("Visible(2) = %v, want %v", visible, tt.want)
			}

			result, err := sub.Validate()
			if err != nil {
				t.Fatalf("Validate returned error: %v", err)
			}
			if result.Valid == tt.want {
				t.Fatalf("expected required urgency to be validated only when visible, got valid=%v", result.Valid)
			}
		})
	}
}

func TestSubmissionWithEvaluator(t *testing.T) {
	var gotField, gotRule string
	var gotValues map[string]any
	eval := visibility.EvaluatorFunc(func(fieldPath, rule string, ctx visibility.Context) (bool, error) {
		gotField, gotRule, gotValues = fieldPath, rule, ctx.Values
		return false, nil
	})

	sub, err := formfield.ParseSubmission(ruleQuestions(), map[string]*string{
		model.FieldKey(1): strPtr("Incident"),
	}, formfield.WithEvaluator(eval))
	if err != nil {
		t.Fatalf("ParseSubmission returned error: %v", err)
	}
	visible, err := sub.Visible(2)
	if err != nil {
		t.Fatalf("Visible returned error: %v", err)
	}
	if visible {
		t.Fatalf("expected custom evaluator to hide urgency")
	}
	if gotField != "urgency" || gotRule != ruleQuestions()[1].VisibleIf {
		t.Fatalf("unexpected evaluator call field=%q rule=%q", gotField, gotRule)
	}
	wantValues := map[string]any{"request_type": "Incident", "urgency": nil}
	if diff := cmp.Diff(wantValues, gotValues); diff != "" {
		t.Fatalf("rule values mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmissionVisibleIfErrors(t *testing.T) {
	questions := []model.Question{{ID: 1, Name: "broken", VisibleIf: "1 +"}}
	sub, err := formfield.ParseSubmission(questions, nil)
	if err != nil {
		t.Fatalf("ParseSubmission returned error: %v", err)
	}
	if _, err := sub.Validate(); err == nil {
		t.Fatalf("expected compile error from visible_if rule")
	}
}

func TestSubmissionAnswer(t *testing.T) {
	sub, err := formfield.ParseSubmission(ruleQuestions(), nil)
	if err != nil {
		t.Fatalf("ParseSubmission returned error: %v", err)
	}
	if visible, _ := sub.Visible(2); visible {
		t.Fatalf("expected urgency hidden before request_type is answered")
	}

	if err := sub.Answer(1, " Incident "); err != nil {
		t.Fatalf("Answer returned error: %v", err)
	}
	if visible, _ := sub.Visible(2); !visible {
		t.Fatalf("expected urgency visible after answering request_type")
	}
	if got := sub.Serialize()[1]; got != "Incident" {
		t.Fatalf("expected trimmed answer, got %q", got)
	}
	if err := sub.Answer(9, "x"); !errors.Is(err, visibility.ErrUnknownQuestion) {
		t.Fatalf("expected ErrUnknownQuestion, got %v", err)
	}

	names := []string{}
	for _, q := range sub.Questions() {
		names = append(names, q.Name)
	}
	if diff := cmp.Diff([]string{"request_type", "urgency"}, names); diff != "" {
		t.Fatalf("question order mismatch (-want +got):\n%s", diff)
	}
}
