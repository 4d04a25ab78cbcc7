package prompt_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/fields"
	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/prompt"
)

type fakeDriver struct {
	choice string
	err    error
	got    prompt.SelectConfig
}

func (d *fakeDriver) Select(_ context.Context, cfg prompt.SelectConfig) (string, error) {
	d.got = cfg
	return d.choice, d.err
}

func question(required bool) model.Question {
	return model.Question{
		ID:            5,
		FieldType:     model.FieldTypeRadios,
		Name:          "request_type",
		Required:      required,
		Values:        []string{"Incident", "Request"},
		DefaultValues: []string{"Request"},
	}
}

func TestAskRadiosRequired(t *testing.T) {
	driver := &fakeDriver{choice: "Incident"}
	field := fields.NewRadios(question(true))

	answer, err := prompt.AskRadios(context.Background(), driver, field)
	if err != nil {
		t.Fatalf("AskRadios returned error: %v", err)
	}
	if !answer.IsSet() || answer.Text() != "Incident" {
		t.Fatalf("unexpected answer %#v", answer)
	}
	if field.SerializeValue() != "Incident" {
		t.Fatalf("expected field to hold the answer, got %q", field.SerializeValue())
	}

	want := prompt.SelectConfig{
		Message: "Request Type *",
		Options: []string{"Incident", "Request"},
		Default: "Request",
	}
	if diff := cmp.Diff(want, driver.got); diff != "" {
		t.Fatalf("select config mismatch (-want +got):\n%s", diff)
	}
}

func TestAskRadiosOptionalNoAnswer(t *testing.T) {
	driver := &fakeDriver{choice: prompt.NoAnswer}
	field := fields.NewRadios(question(false))

	answer, err := prompt.AskRadios(context.Background(), driver, field)
	if err != nil {
		t.Fatalf("AskRadios returned error: %v", err)
	}
	if !answer.IsSet() || answer.Text() != "" {
		t.Fatalf("expected empty submission, got %#v", answer)
	}
	if diff := cmp.Diff([]string{"Incident", "Request", prompt.NoAnswer}, driver.got.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if !field.IsValid() {
		t.Fatalf("expected optional empty answer to be valid")
	}
}

func TestAskRadiosErrors(t *testing.T) {
	ctx := context.Background()

	_, err := prompt.AskRadios(ctx, &fakeDriver{err: prompt.ErrAborted}, fields.NewRadios(question(true)))
	if !errors.Is(err, prompt.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}

	empty := question(true)
	empty.Values = nil
	if _, err := prompt.AskRadios(ctx, &fakeDriver{}, fields.NewRadios(empty)); err == nil {
		t.Fatalf("expected error for question without options")
	}

	if _, err := prompt.AskRadios(ctx, nil, fields.NewRadios(question(true))); err == nil {
		t.Fatalf("expected error for nil driver")
	}
}
