package openapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formfield/pkg/model"
)

// Extension keys set on exported schemas.
const (
	ExtensionFieldType = "x-formfield-type"
	ExtensionOrder     = "x-formfield-order"
	ExtensionShowRule  = "x-formfield-show-rule"
)

var errQuestionsMissing = errors.New("openapi: at least one question is required")

// SchemaForQuestion returns a string schema whose enum lists the available
// values in display order. The first default, when present, becomes the
// schema default.
func SchemaForQuestion(q model.Question) *openapi3.Schema {
	schema := openapi3.NewStringSchema()
	schema.Title = q.Label()
	if len(q.Values) > 0 {
		schema.Enum = make([]any, len(q.Values))
		for idx, value := range q.Values {
			schema.Enum[idx] = value
		}
	}
	if len(q.DefaultValues) > 0 {
		schema.Default = q.DefaultValues[0]
	}
	schema.Extensions = map[string]any{
		ExtensionFieldType: string(q.FieldType),
		ExtensionOrder:     q.Order,
		ExtensionShowRule:  q.ShowRule.String(),
	}
	return schema
}

// SchemaForForm returns an object schema with one property per question keyed
// by model.FieldKey. Required questions are listed in the schema's required
// set.
func SchemaForForm(questions []model.Question) (*openapi3.Schema, error) {
	if len(questions) == 0 {
		return nil, errQuestionsMissing
	}
	schema := openapi3.NewObjectSchema()
	if schema.Properties == nil {
		schema.Properties = openapi3.Schemas{}
	}
	for _, q := range questions {
		key := model.FieldKey(q.ID)
		if _, exists := schema.Properties[key]; exists {
			return nil, fmt.Errorf("openapi: duplicate question id %d", q.ID)
		}
		schema.Properties[key] = openapi3.NewSchemaRef("", SchemaForQuestion(q))
		if q.Required {
			schema.Required = append(schema.Required, key)
		}
	}
	return schema, nil
}

// ValidateQuestion checks the exported schema is well formed, including that
// the default value is one of the available values.
func ValidateQuestion(ctx context.Context, q model.Question) error {
	if err := SchemaForQuestion(q).Validate(ctx); err != nil {
		return fmt.Errorf("openapi: question %d: %w", q.ID, err)
	}
	return nil
}

// ValidateAnswer checks a submitted answer against the question schema. An
// empty or missing answer is accepted for optional questions and rejected for
// required ones; any other answer must be one of the available values.
func ValidateAnswer(q model.Question, answer model.Answer) error {
	if answer.IsEmpty() {
		if q.Required {
			return fmt.Errorf("openapi: question %d: answer is required", q.ID)
		}
		return nil
	}
	if err := SchemaForQuestion(q).VisitJSON(answer.Text()); err != nil {
		return fmt.Errorf("openapi: question %d: %w", q.ID, err)
	}
	return nil
}
