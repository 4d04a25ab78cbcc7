package fields

import (
	"fmt"
	"log/slog"
	"maps"
	"strings"

	"github.com/goliatone/go-formfield/pkg/logging"
	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/validation"
)

// RadiosName is the display name of the radios field type.
const RadiosName = "Radios"

// Radios is a single-choice question: the answer is one option picked from
// the question's available values. A Radios value is owned by one request and
// is not safe for concurrent use.
type Radios struct {
	question model.Question
	value    model.Answer
	logger   *slog.Logger
}

var _ Field = (*Radios)(nil)

// NewRadios returns a radios field for question with no answer set.
func NewRadios(question model.Question, options ...Option) *Radios {
	cfg := applyOptions(options)
	return &Radios{
		question: question,
		logger:   logging.Or(cfg.logger),
	}
}

func (r *Radios) Type() model.FieldType { return model.FieldTypeRadios }

func (r *Radios) Name() string { return RadiosName }

func (r *Radios) CanRequire() bool { return true }

func (r *Radios) IsAnonymousFormCompatible() bool { return true }

func (r *Radios) IsPrerequisites() bool { return true }

// Question returns the configuration the field was built from.
func (r *Radios) Question() model.Question { return r.question }

// AvailableValues returns a copy of the selectable options.
func (r *Radios) AvailableValues() []string {
	return append([]string(nil), r.question.Values...)
}

// DefaultValue returns the first configured default, or "".
func (r *Radios) DefaultValue() string {
	if len(r.question.DefaultValues) == 0 {
		return ""
	}
	return r.question.DefaultValues[0]
}

// PrepareInputForSave normalises the option list and default of a question
// being saved. An empty or missing values entry yields a nil map and a nil
// error: there is nothing to save. Otherwise the returned map is a copy of
// input where values holds the canonical JSON array and default_values the
// trimmed default.
func (r *Radios) PrepareInputForSave(input map[string]string) (map[string]string, error) {
	raw := input[model.RecordValues]
	if raw == "" {
		return nil, nil
	}

	split := model.SplitValues(raw)
	values := model.NormalizeValues(split)
	if dropped := countNonEmpty(split) - len(values); dropped > 0 {
		r.logger.Debug("radios: dropped duplicate options",
			slog.Int("question", r.question.ID),
			slog.Int("dropped", dropped),
		)
	}

	encoded, err := model.EncodeValues(values)
	if err != nil {
		return nil, fmt.Errorf("fields: radios prepare input: %w", err)
	}

	out := maps.Clone(input)
	out[model.RecordValues] = encoded
	if def, ok := input[model.RecordDefaultValues]; ok {
		out[model.RecordDefaultValues] = strings.TrimSpace(def)
	}
	return out, nil
}

// SerializeValue returns the storage form of the answer: trimmed, with every
// apostrophe backslash-escaped. An unset or empty answer serialises to "".
func (r *Radios) SerializeValue() string {
	if r.value.IsEmpty() {
		return ""
	}
	return escapeQuotes(strings.TrimSpace(r.value.Text()))
}

// DeserializeValue loads a stored answer. A nil or empty stored value sets the
// answer to the empty string.
func (r *Radios) DeserializeValue(stored *string) {
	if stored == nil || *stored == "" {
		r.value = model.Submitted("")
		return
	}
	r.value = model.Submitted(strings.TrimSpace(unescapeQuotes(*stored)))
}

// ParseAnswerValues reads the answer from a form submission keyed by
// model.FieldKey. It reports false and leaves the answer unset when the key is
// absent; a present key with a nil value is an empty submission.
func (r *Radios) ParseAnswerValues(input map[string]*string) bool {
	key := model.FieldKey(r.question.ID)
	raw, ok := input[key]
	if !ok {
		r.value = model.NotSubmitted()
		r.logger.Debug("radios: answer not submitted", slog.String("key", key))
		return false
	}
	if raw == nil {
		r.value = model.Submitted("")
		return true
	}
	r.value = model.Submitted(strings.TrimSpace(*raw))
	return true
}

// Answer returns the current answer, including whether it was set.
func (r *Radios) Answer() model.Answer { return r.value }

// ValueForTargetText returns the answer for target documents. Radios values
// are plain text, so the rich text flag has no effect.
func (r *Radios) ValueForTargetText(bool) string {
	return r.value.Text()
}

// ValueForDesign returns the answer for the form designer preview.
func (r *Radios) ValueForDesign() string {
	return r.value.Text()
}

// IsValid reports whether the answer satisfies the question. Only the
// required flag is enforced; range bounds belong to multi-choice types.
func (r *Radios) IsValid() bool {
	if r.question.Required && r.value.IsEmpty() {
		r.logger.Debug("radios: required answer is empty", slog.Int("question", r.question.ID))
		return false
	}
	return true
}

// Validate is IsValid with a displayable issue attached on failure.
func (r *Radios) Validate() validation.Result {
	if r.IsValid() {
		return validation.Valid()
	}
	return validation.Invalid(validation.Issue{
		Field:   model.FieldKey(r.question.ID),
		Message: fmt.Sprintf("a required field is empty: %s", r.question.Label()),
	})
}

func (r *Radios) Equals(value string) bool {
	return r.value.Text() == value
}

func (r *Radios) NotEquals(value string) bool {
	return !r.Equals(value)
}

// GreaterThan is not defined for radios.
func (r *Radios) GreaterThan(string) (bool, error) {
	return false, fmt.Errorf("%w: %s greater than", ErrComparisonUnsupported, RadiosName)
}

// LessThan is not defined for radios.
func (r *Radios) LessThan(string) (bool, error) {
	return false, fmt.Errorf("%w: %s less than", ErrComparisonUnsupported, RadiosName)
}

// RegexMatch reports whether the answer matches pattern. See compilePattern
// for the accepted syntax.
func (r *Radios) RegexMatch(pattern string) (bool, error) {
	re, err := compilePattern(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(r.value.Text()), nil
}

func countNonEmpty(values []string) int {
	count := 0
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			count++
		}
	}
	return count
}
