// Package fields implements the value handling of form question types. Each
// field type answers a fixed set of capability queries and owns the
// conversion of its answer between submission input, storage text and the
// plain-text renderings consumed by designers and targets.
package fields

import (
	"errors"
	"log/slog"

	"github.com/goliatone/go-formfield/pkg/model"
)

// ErrComparisonUnsupported is returned by ordering comparisons on field types
// whose values have no natural order.
var ErrComparisonUnsupported = errors.New("fields: comparison not supported by field type")

// Capabilities are the fixed descriptors a field type exposes to form
// builders.
type Capabilities interface {
	Type() model.FieldType
	Name() string
	CanRequire() bool
	IsAnonymousFormCompatible() bool
	IsPrerequisites() bool
}

// Comparer compares the current answer against a condition value.
type Comparer interface {
	Equals(value string) bool
	NotEquals(value string) bool
	GreaterThan(value string) (bool, error)
	LessThan(value string) (bool, error)
	RegexMatch(pattern string) (bool, error)
}

// Field is the full contract of a question field type.
type Field interface {
	Capabilities
	Comparer

	PrepareInputForSave(input map[string]string) (map[string]string, error)
	SerializeValue() string
	DeserializeValue(stored *string)
	ParseAnswerValues(input map[string]*string) bool
	Answer() model.Answer
	ValueForTargetText(richText bool) string
	ValueForDesign() string
	IsValid() bool
}

// Option configures a field instance.
type Option func(*fieldOptions)

type fieldOptions struct {
	logger *slog.Logger
}

// WithLogger routes debug events of the field to logger instead of the
// package-level logger.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *fieldOptions) {
		opts.logger = logger
	}
}

func applyOptions(options []Option) fieldOptions {
	cfg := fieldOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
