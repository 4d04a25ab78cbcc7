package model

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type questionFile struct {
	Questions []questionEntry `json:"questions" yaml:"questions"`
}

type questionEntry struct {
	ID            int         `json:"id" yaml:"id"`
	FieldType     string      `json:"fieldtype" yaml:"fieldtype"`
	Name          string      `json:"name" yaml:"name"`
	Required      bool        `json:"required" yaml:"required"`
	Values        []string    `json:"values" yaml:"values"`
	Default       string      `json:"default" yaml:"default"`
	DefaultValues []string    `json:"default_values" yaml:"default_values"`
	Order         int         `json:"order" yaml:"order"`
	ShowRule      string      `json:"show_rule" yaml:"show_rule"`
	RangeMin      *int        `json:"range_min" yaml:"range_min"`
	RangeMax      *int        `json:"range_max" yaml:"range_max"`
	Conditions    []Condition `json:"conditions" yaml:"conditions"`
	VisibleIf     string      `json:"visible_if" yaml:"visible_if"`
}

// LoadQuestionsFile reads a JSON or YAML question file from disk.
func LoadQuestionsFile(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("model: read question file: %w", err)
	}
	return LoadQuestions(data, path)
}

// LoadQuestions parses a question document. JSON is attempted first, then
// YAML. Each question is normalised the same way a storage record is; source
// is only used in error messages.
func LoadQuestions(data []byte, source string) ([]Question, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("model: question file %s is empty", source)
	}

	var doc questionFile
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = questionFile{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("model: parse %s: invalid JSON or YAML", source)
		}
	}

	questions := make([]Question, 0, len(doc.Questions))
	seen := make(map[int]struct{}, len(doc.Questions))
	for idx, entry := range doc.Questions {
		q, err := normaliseEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("model: question file %s entry %d: %w", source, idx, err)
		}
		if q.ID != 0 {
			if _, exists := seen[q.ID]; exists {
				return nil, fmt.Errorf("model: question file %s defines duplicate question id %d", source, q.ID)
			}
			seen[q.ID] = struct{}{}
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func normaliseEntry(entry questionEntry) (Question, error) {
	fieldType := FieldType(strings.TrimSpace(entry.FieldType))
	if fieldType == "" {
		fieldType = FieldTypeRadios
	}
	if fieldType != FieldTypeRadios {
		return Question{}, fmt.Errorf("unsupported field type %q", fieldType)
	}

	rule, err := ParseShowRule(entry.ShowRule)
	if err != nil {
		return Question{}, err
	}

	defaults := append([]string(nil), entry.DefaultValues...)
	if entry.Default != "" {
		defaults = append(defaults, entry.Default)
	}

	conditions, err := normaliseConditions(entry.Conditions)
	if err != nil {
		return Question{}, err
	}

	return Question{
		ID:            entry.ID,
		FieldType:     fieldType,
		Name:          strings.TrimSpace(entry.Name),
		Required:      entry.Required,
		Values:        NormalizeValues(entry.Values),
		DefaultValues: NormalizeValues(defaults),
		Order:         entry.Order,
		ShowRule:      rule,
		RangeMin:      entry.RangeMin,
		RangeMax:      entry.RangeMax,
		Conditions:    conditions,
		VisibleIf:     strings.TrimSpace(entry.VisibleIf),
	}, nil
}

func normaliseConditions(raw []Condition) ([]Condition, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]Condition, len(raw))
	for idx, cond := range raw {
		switch cond.Operator {
		case OperatorEquals, OperatorNotEquals, OperatorLessThan, OperatorGreater, OperatorRegex:
		default:
			return nil, fmt.Errorf("condition %d: unknown operator %q", idx, cond.Operator)
		}
		switch Logic(strings.ToLower(string(cond.Logic))) {
		case "", LogicAnd:
			cond.Logic = LogicAnd
		case LogicOr:
			cond.Logic = LogicOr
		default:
			return nil, fmt.Errorf("condition %d: unknown logic %q", idx, cond.Logic)
		}
		cond.Value = strings.TrimSpace(cond.Value)
		out[idx] = cond
	}
	return out, nil
}
