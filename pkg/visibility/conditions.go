package visibility

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formfield/pkg/fields"
	"github.com/goliatone/go-formfield/pkg/model"
)

// ErrUnknownQuestion is returned when a condition references a question the
// resolver cannot find.
var ErrUnknownQuestion = errors.New("visibility: condition references unknown question")

// Resolver returns the answered field for a question id.
type Resolver func(questionID int) (fields.Comparer, bool)

// ResolverFromMap builds a Resolver over a fixed set of fields.
func ResolverFromMap(byID map[int]fields.Comparer) Resolver {
	return func(questionID int) (fields.Comparer, bool) {
		field, ok := byID[questionID]
		return field, ok && field != nil
	}
}

// Visible applies the question's show rule to its conditions. A question with
// no conditions is always visible, and an unset show rule behaves as
// ShowRuleAlways. Conditions are combined left to right with AND binding
// tighter than OR.
func Visible(q model.Question, resolve Resolver) (bool, error) {
	if q.ShowRule == model.ShowRuleUnset || q.ShowRule == model.ShowRuleAlways || len(q.Conditions) == 0 {
		return true, nil
	}
	if resolve == nil {
		return false, fmt.Errorf("visibility: question %d: resolver is required", q.ID)
	}

	met, err := conditionsMet(q.Conditions, resolve)
	if err != nil {
		return false, fmt.Errorf("visibility: question %d: %w", q.ID, err)
	}

	switch q.ShowRule {
	case model.ShowRuleHidden:
		return met, nil
	case model.ShowRuleShown:
		return !met, nil
	default:
		return false, fmt.Errorf("visibility: question %d: unsupported show rule %s", q.ID, q.ShowRule)
	}
}

func conditionsMet(conditions []model.Condition, resolve Resolver) (bool, error) {
	anyGroup := false
	group := true
	for idx, cond := range conditions {
		ok, err := evalCondition(cond, resolve)
		if err != nil {
			return false, fmt.Errorf("condition %d: %w", idx, err)
		}
		if idx > 0 && cond.Logic == model.LogicOr {
			anyGroup = anyGroup || group
			group = ok
			continue
		}
		group = group && ok
	}
	return anyGroup || group, nil
}

func evalCondition(cond model.Condition, resolve Resolver) (bool, error) {
	field, ok := resolve(cond.QuestionID)
	if !ok {
		return false, fmt.Errorf("%w: %d", ErrUnknownQuestion, cond.QuestionID)
	}

	switch cond.Operator {
	case model.OperatorEquals:
		return field.Equals(cond.Value), nil
	case model.OperatorNotEquals:
		return field.NotEquals(cond.Value), nil
	case model.OperatorLessThan:
		return field.LessThan(cond.Value)
	case model.OperatorGreater:
		return field.GreaterThan(cond.Value)
	case model.OperatorRegex:
		return field.RegexMatch(cond.Value)
	default:
		return false, fmt.Errorf("visibility: unknown operator %q", cond.Operator)
	}
}
