// Package formfield is the entry point of the module: it builds the field
// implementation for a question and processes whole form submissions. See
// pkg/fields for the per-type value handling.
package formfield

import (
	"errors"
	"fmt"
	"sort"

	"github.com/goliatone/go-formfield/pkg/fields"
	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/validation"
	"github.com/goliatone/go-formfield/pkg/visibility"
)

// ErrUnsupportedFieldType is returned for questions of a type this module does
// not implement.
var ErrUnsupportedFieldType = errors.New("formfield: unsupported field type")

// New returns the field for q. An empty field type is treated as radios.
func New(q model.Question, options ...fields.Option) (fields.Field, error) {
	switch q.FieldType {
	case model.FieldTypeRadios, "":
		return fields.NewRadios(q, options...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFieldType, q.FieldType)
	}
}

// FromRecord decodes a flat storage record and returns its field.
func FromRecord(record map[string]string, options ...fields.Option) (fields.Field, error) {
	q, err := model.QuestionFromRecord(record)
	if err != nil {
		return nil, err
	}
	return New(q, options...)
}

// Option configures ParseSubmission.
type Option func(*submissionConfig)

type submissionConfig struct {
	fieldOptions []fields.Option
	evaluator    visibility.Evaluator
	extras       map[string]any
}

// WithFieldOptions passes options to every field built for the submission.
func WithFieldOptions(options ...fields.Option) Option {
	return func(cfg *submissionConfig) {
		cfg.fieldOptions = append(cfg.fieldOptions, options...)
	}
}

// WithEvaluator replaces the evaluator used for VisibleIf rules. The default
// evaluates expr-lang rules.
func WithEvaluator(evaluator visibility.Evaluator) Option {
	return func(cfg *submissionConfig) {
		if evaluator != nil {
			cfg.evaluator = evaluator
		}
	}
}

// WithExtras exposes extra context to VisibleIf rules under `extras`.
func WithExtras(extras map[string]any) Option {
	return func(cfg *submissionConfig) {
		cfg.extras = extras
	}
}

var defaultEvaluator visibility.Evaluator = visibility.NewExprEvaluator()

// Submission holds the parsed answers of one form submission.
type Submission struct {
	questions []model.Question
	fields    map[int]fields.Field
	evaluator visibility.Evaluator
	extras    map[string]any
}

// ParseSubmission builds a field per question and parses its answer from
// input. Questions are kept in their configured order.
func ParseSubmission(questions []model.Question, input map[string]*string, options ...Option) (*Submission, error) {
	cfg := submissionConfig{evaluator: defaultEvaluator}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	ordered := append([]model.Question(nil), questions...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})

	byID := make(map[int]fields.Field, len(ordered))
	for _, q := range ordered {
		if _, exists := byID[q.ID]; exists {
			return nil, fmt.Errorf("formfield: duplicate question id %d", q.ID)
		}
		field, err := New(q, cfg.fieldOptions...)
		if err != nil {
			return nil, fmt.Errorf("formfield: question %d: %w", q.ID, err)
		}
		field.ParseAnswerValues(input)
		byID[q.ID] = field
	}
	return &Submission{
		questions: ordered,
		fields:    byID,
		evaluator: cfg.evaluator,
		extras:    cfg.extras,
	}, nil
}

// Questions returns the questions of the submission in display order.
func (s *Submission) Questions() []model.Question {
	return append([]model.Question(nil), s.questions...)
}

// Answer records text as the submitted answer of a question, as if it had
// been part of the parsed input.
func (s *Submission) Answer(questionID int, text string) error {
	field, ok := s.fields[questionID]
	if !ok {
		return fmt.Errorf("%w: %d", visibility.ErrUnknownQuestion, questionID)
	}
	field.ParseAnswerValues(map[string]*string{model.FieldKey(questionID): &text})
	return nil
}

// Field returns the parsed field of a question.
func (s *Submission) Field(questionID int) (fields.Field, bool) {
	field, ok := s.fields[questionID]
	return field, ok
}

func (s *Submission) resolve(questionID int) (fields.Comparer, bool) {
	field, ok := s.fields[questionID]
	return field, ok
}

// Visible reports whether a question is displayed given the other answers.
// The show rule and conditions are applied first; a VisibleIf rule can only
// hide a question that they leave visible.
func (s *Submission) Visible(questionID int) (bool, error) {
	for _, q := range s.questions {
		if q.ID == questionID {
			return s.visible(q)
		}
	}
	return false, fmt.Errorf("%w: %d", visibility.ErrUnknownQuestion, questionID)
}

func (s *Submission) visible(q model.Question) (bool, error) {
	visible, err := visibility.Visible(q, s.resolve)
	if err != nil || !visible {
		return visible, err
	}
	if q.VisibleIf == "" {
		return true, nil
	}
	visible, err = s.evaluator.Eval(q.Name, q.VisibleIf, s.ruleContext())
	if err != nil {
		return false, fmt.Errorf("formfield: question %d visible_if: %w", q.ID, err)
	}
	return visible, nil
}

// ruleContext exposes the current answers keyed by question name.
func (s *Submission) ruleContext() visibility.Context {
	answers := make(map[string]model.Answer, len(s.questions))
	for _, q := range s.questions {
		if q.Name == "" {
			continue
		}
		answers[q.Name] = s.fields[q.ID].Answer()
	}
	return visibility.Context{
		Values: visibility.ValuesFromAnswers(answers),
		Extras: s.extras,
	}
}

// Validate checks every visible question. Hidden questions are never
// reported, even when required.
func (s *Submission) Validate() (validation.Result, error) {
	var issues []validation.Issue
	for _, q := range s.questions {
		visible, err := s.visible(q)
		if err != nil {
			return validation.Result{}, err
		}
		if !visible {
			continue
		}
		field := s.fields[q.ID]
		if field.IsValid() {
			continue
		}
		issues = append(issues, validation.Issue{
			Field:   model.FieldKey(q.ID),
			Message: fmt.Sprintf("a required field is empty: %s", q.Label()),
		})
	}
	if len(issues) > 0 {
		return validation.Invalid(issues...), nil
	}
	return validation.Valid(), nil
}

// Serialize returns the storage form of every answer keyed by question id.
func (s *Submission) Serialize() map[int]string {
	out := make(map[int]string, len(s.fields))
	for id, field := range s.fields {
		out[id] = field.SerializeValue()
	}
	return out
}

// TargetText returns the answers rendered for target documents, keyed by
// question name, for visible questions only.
func (s *Submission) TargetText(richText bool) (map[string]string, error) {
	out := make(map[string]string, len(s.questions))
	for _, q := range s.questions {
		visible, err := s.visible(q)
		if err != nil {
			return nil, err
		}
		if !visible {
			continue
		}
		out[q.Name] = s.fields[q.ID].ValueForTargetText(richText)
	}
	return out, nil
}
