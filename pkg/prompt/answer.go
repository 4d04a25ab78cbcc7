package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-formfield/pkg/fields"
	"github.com/goliatone/go-formfield/pkg/model"
)

// NoAnswer is the option offered for optional questions to submit nothing.
const NoAnswer = "(no answer)"

var errNoOptions = errors.New("prompt: question has no options")

// AskRadios prompts for the answer of a radios question and feeds the choice
// through the field's submission parsing, so the field holds the answer when
// AskRadios returns. Optional questions get a NoAnswer option that submits the
// empty string.
func AskRadios(ctx context.Context, driver Driver, field *fields.Radios) (model.Answer, error) {
	if driver == nil {
		return model.Answer{}, errors.New("prompt: driver is required")
	}
	question := field.Question()
	options := field.AvailableValues()
	if len(options) == 0 {
		return model.Answer{}, fmt.Errorf("%w: %s", errNoOptions, question.Label())
	}
	if !question.Required {
		options = append(options, NoAnswer)
	}

	message := question.Label()
	if question.Required {
		message += " *"
	}

	choice, err := driver.Select(ctx, SelectConfig{
		Message: message,
		Options: options,
		Default: field.DefaultValue(),
	})
	if err != nil {
		return model.Answer{}, err
	}
	if choice == NoAnswer && !question.Required {
		choice = ""
	}

	field.ParseAnswerValues(map[string]*string{model.FieldKey(question.ID): &choice})
	return field.Answer(), nil
}
