package model

import "strconv"

// FieldType tags the kind of question a configuration describes.
type FieldType string

const (
	FieldTypeRadios FieldType = "radios"
)

// ShowRule controls when a question is displayed relative to its conditions.
type ShowRule int

const (
	// ShowRuleUnset is the zero value. It is treated as ShowRuleAlways.
	ShowRuleUnset ShowRule = 0
	// ShowRuleAlways displays the question regardless of conditions.
	ShowRuleAlways ShowRule = 1
	// ShowRuleHidden hides the question unless its conditions are met.
	ShowRuleHidden ShowRule = 2
	// ShowRuleShown shows the question unless its conditions are met.
	ShowRuleShown ShowRule = 3
)

func (r ShowRule) String() string {
	switch r {
	case ShowRuleUnset:
		return "unset"
	case ShowRuleAlways:
		return "always"
	case ShowRuleHidden:
		return "hidden"
	case ShowRuleShown:
		return "shown"
	default:
		return "unknown(" + strconv.Itoa(int(r)) + ")"
	}
}

// Operator is the comparison applied by a visibility condition.
type Operator string

const (
	OperatorEquals    Operator = "=="
	OperatorNotEquals Operator = "!="
	OperatorLessThan  Operator = "<"
	OperatorGreater   Operator = ">"
	OperatorRegex     Operator = "regex"
)

// Logic joins a condition to the one before it.
type Logic string

const (
	LogicAnd Logic = "and"
	LogicOr  Logic = "or"
)

// Condition compares the answer of another question against a fixed value.
type Condition struct {
	QuestionID int      `json:"questionId" yaml:"questionId"`
	Operator   Operator `json:"operator" yaml:"operator"`
	Value      string   `json:"value" yaml:"value"`
	Logic      Logic    `json:"logic,omitempty" yaml:"logic,omitempty"`
}

// Question is the static configuration of a single form field. Values holds
// the selectable options in display order; DefaultValues is a subset of them.
// RangeMin and RangeMax are carried for multi-choice variants and are nil when
// unset. VisibleIf is an optional expression rule applied on top of the show
// rule.
type Question struct {
	ID            int         `json:"id" yaml:"id"`
	FieldType     FieldType   `json:"fieldtype" yaml:"fieldtype"`
	Name          string      `json:"name" yaml:"name"`
	Required      bool        `json:"required" yaml:"required"`
	Values        []string    `json:"values,omitempty" yaml:"values,omitempty"`
	DefaultValues []string    `json:"default_values,omitempty" yaml:"default_values,omitempty"`
	Order         int         `json:"order,omitempty" yaml:"order,omitempty"`
	ShowRule      ShowRule    `json:"show_rule,omitempty" yaml:"show_rule,omitempty"`
	RangeMin      *int        `json:"range_min,omitempty" yaml:"range_min,omitempty"`
	RangeMax      *int        `json:"range_max,omitempty" yaml:"range_max,omitempty"`
	Conditions    []Condition `json:"conditions,omitempty" yaml:"conditions,omitempty"`
	VisibleIf     string      `json:"visible_if,omitempty" yaml:"visible_if,omitempty"`
}

// Label returns a human-friendly label derived from the question name.
func (q Question) Label() string {
	return DefaultLabeler(q.Name)
}

// Answer is the value submitted for a question. The zero value means the
// question was not submitted at all, which is distinct from an empty
// submission.
type Answer struct {
	text string
	set  bool
}

// Submitted returns an answer holding text.
func Submitted(text string) Answer {
	return Answer{text: text, set: true}
}

// NotSubmitted returns an answer for a question absent from the submission.
func NotSubmitted() Answer {
	return Answer{}
}

// Text returns the answer text, or "" when not submitted.
func (a Answer) Text() string {
	return a.text
}

// IsSet reports whether the answer was submitted.
func (a Answer) IsSet() bool {
	return a.set
}

// IsEmpty reports whether the answer is unset or holds the empty string.
func (a Answer) IsEmpty() bool {
	return a.text == ""
}
