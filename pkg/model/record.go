package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	internalmodel "github.com/goliatone/go-formfield/internal/model"
	"github.com/goliatone/go-formfield/pkg/validation"
)

// Storage record keys.
const (
	RecordID            = "id"
	RecordFieldType     = "fieldtype"
	RecordName          = "name"
	RecordRequired      = "required"
	RecordValues        = "values"
	RecordDefaultValues = "default_values"
	RecordOrder         = "order"
	RecordShowRule      = "show_rule"
	RecordRangeMin      = "range_min"
	RecordRangeMax      = "range_max"
	RecordVisibleIf     = "visible_if"
)

// FieldKeyPrefix prefixes the question id in form submission keys.
const FieldKeyPrefix = "formcreator_field_"

var errRecordMissing = errors.New("model: question record is required")

// FieldKey returns the submission key carrying the answer for questionID.
func FieldKey(questionID int) string {
	return FieldKeyPrefix + strconv.Itoa(questionID)
}

// QuestionFromRecord decodes a flat storage record into a Question. The record
// is validated against the question schema first; schema failures are
// returned as *validation.Error. A missing fieldtype defaults to radios and a
// missing show_rule defaults to always.
func QuestionFromRecord(record map[string]string) (Question, error) {
	if record == nil {
		return Question{}, errRecordMissing
	}
	if err := validation.ValidateRecord(record).Err(); err != nil {
		return Question{}, fmt.Errorf("model: question record: %w", err)
	}

	q := Question{
		FieldType:     FieldTypeRadios,
		Name:          strings.TrimSpace(record[RecordName]),
		Values:        DecodeValues(record[RecordValues]),
		DefaultValues: decodeDefaults(record[RecordDefaultValues]),
		ShowRule:      ShowRuleAlways,
		VisibleIf:     strings.TrimSpace(record[RecordVisibleIf]),
	}

	if raw := strings.TrimSpace(record[RecordFieldType]); raw != "" {
		q.FieldType = FieldType(raw)
	}

	var err error
	if q.ID, err = atoiOrZero(record[RecordID]); err != nil {
		return Question{}, fmt.Errorf("model: question record %s: %w", RecordID, err)
	}
	if q.Order, err = atoiOrZero(record[RecordOrder]); err != nil {
		return Question{}, fmt.Errorf("model: question record %s: %w", RecordOrder, err)
	}
	if q.Required, err = parseFlag(record[RecordRequired]); err != nil {
		return Question{}, fmt.Errorf("model: question record %s: %w", RecordRequired, err)
	}
	if q.ShowRule, err = ParseShowRule(record[RecordShowRule]); err != nil {
		return Question{}, fmt.Errorf("model: question record %s: %w", RecordShowRule, err)
	}
	if q.RangeMin, err = optionalInt(record[RecordRangeMin]); err != nil {
		return Question{}, fmt.Errorf("model: question record %s: %w", RecordRangeMin, err)
	}
	if q.RangeMax, err = optionalInt(record[RecordRangeMax]); err != nil {
		return Question{}, fmt.Errorf("model: question record %s: %w", RecordRangeMax, err)
	}
	return q, nil
}

// ParseShowRule accepts the stored numeric form or the rule name. Empty input
// yields ShowRuleAlways.
func ParseShowRule(raw string) (ShowRule, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "1", "always":
		return ShowRuleAlways, nil
	case "2", "hidden":
		return ShowRuleHidden, nil
	case "3", "shown":
		return ShowRuleShown, nil
	default:
		return 0, fmt.Errorf("model: unknown show rule %q", raw)
	}
}

// decodeDefaults accepts a JSON array written by multi-choice variants or the
// plain string stored for radios.
func decodeDefaults(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		if list, err := internalmodel.DecodeJSONList(trimmed); err == nil {
			return NormalizeValues(list)
		}
	}
	return []string{trimmed}
}

func parseFlag(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "0", "false":
		return false, nil
	case "1", "true":
		return true, nil
	default:
		return false, fmt.Errorf("model: invalid flag %q", raw)
	}
}

func atoiOrZero(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, nil
	}
	return strconv.Atoi(trimmed)
}

func optionalInt(raw string) (*int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
