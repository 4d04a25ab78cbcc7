package validation

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const recordSchemaURL = "question.schema.json"

//go:embed question.schema.json
var recordSchemaJSON []byte

var (
	recordSchema *jsonschema.Schema
	compileOnce  sync.Once
	compileErr   error

	issuePrinter = message.NewPrinter(language.English)
)

func compileRecordSchema() error {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(recordSchemaJSON))
		if err != nil {
			compileErr = fmt.Errorf("validation: unmarshal record schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(recordSchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("validation: add record schema resource: %w", err)
			return
		}
		recordSchema, err = compiler.Compile(recordSchemaURL)
		if err != nil {
			compileErr = fmt.Errorf("validation: compile record schema: %w", err)
		}
	})
	return compileErr
}

// ValidateRecord checks a flat storage record against the embedded question
// schema. Every issue found is reported; the first failing keyword does not
// stop the walk.
func ValidateRecord(record map[string]string) Result {
	if err := compileRecordSchema(); err != nil {
		return Invalid(Issue{Message: err.Error()})
	}

	instance := make(map[string]any, len(record))
	for key, value := range record {
		instance[key] = value
	}

	err := recordSchema.Validate(instance)
	if err == nil {
		return Valid()
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return Invalid(Issue{Message: strings.TrimSpace(err.Error())})
	}
	issues := collectIssues(validationErr, nil)
	if len(issues) == 0 {
		issues = []Issue{{Message: strings.TrimSpace(validationErr.Error())}}
	}
	return Invalid(issues...)
}

func collectIssues(err *jsonschema.ValidationError, out []Issue) []Issue {
	if err == nil {
		return out
	}
	if len(err.Causes) > 0 {
		for _, cause := range err.Causes {
			out = collectIssues(cause, out)
		}
		return out
	}
	issue := Issue{
		Path:  pointerFromLocation(err.InstanceLocation),
		Field: strings.Join(err.InstanceLocation, "."),
	}
	if err.ErrorKind != nil {
		issue.Message = err.ErrorKind.LocalizedString(issuePrinter)
	} else {
		issue.Message = strings.TrimSpace(err.Error())
	}
	return append(out, issue)
}

func pointerFromLocation(location []string) string {
	if len(location) == 0 {
		return ""
	}
	segments := make([]string, len(location))
	for idx, segment := range location {
		segment = strings.ReplaceAll(segment, "~", "~0")
		segments[idx] = strings.ReplaceAll(segment, "/", "~1")
	}
	return "/" + strings.Join(segments, "/")
}
