package model

import internalmodel "github.com/goliatone/go-formfield/internal/model"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeRadios = internalmodel.FieldTypeRadios
)

// ShowRule re-exports the internal ShowRule enumeration.
type ShowRule = internalmodel.ShowRule

const (
	ShowRuleUnset  = internalmodel.ShowRuleUnset
	ShowRuleAlways = internalmodel.ShowRuleAlways
	ShowRuleHidden = internalmodel.ShowRuleHidden
	ShowRuleShown  = internalmodel.ShowRuleShown
)

type Operator = internalmodel.Operator

const (
	OperatorEquals    = internalmodel.OperatorEquals
	OperatorNotEquals = internalmodel.OperatorNotEquals
	OperatorLessThan  = internalmodel.OperatorLessThan
	OperatorGreater   = internalmodel.OperatorGreater
	OperatorRegex     = internalmodel.OperatorRegex
)

type Logic = internalmodel.Logic

const (
	LogicAnd = internalmodel.LogicAnd
	LogicOr  = internalmodel.LogicOr
)

type Condition = internalmodel.Condition
type Question = internalmodel.Question
type Answer = internalmodel.Answer

// Submitted returns an answer holding text.
func Submitted(text string) Answer { return internalmodel.Submitted(text) }

// NotSubmitted returns the answer for a question absent from a submission.
func NotSubmitted() Answer { return internalmodel.NotSubmitted() }

// NormalizeValues trims, drops empty entries and deduplicates an option list.
func NormalizeValues(values []string) []string { return internalmodel.NormalizeValues(values) }

// SplitValues splits a raw option list on line breaks.
func SplitValues(raw string) []string { return internalmodel.SplitValues(raw) }

// EncodeValues renders an option list as its canonical JSON array.
func EncodeValues(values []string) (string, error) { return internalmodel.EncodeValues(values) }

// DecodeValues reads a stored option list (JSON array or line-delimited).
func DecodeValues(raw string) []string { return internalmodel.DecodeValues(raw) }
