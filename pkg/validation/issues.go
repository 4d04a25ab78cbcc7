package validation

import (
	"errors"
	"strings"
)

// ErrInvalid is matched by every *Error via errors.Is.
var ErrInvalid = errors.New("validation: invalid input")

// Issue represents a validation error with optional location metadata.
type Issue struct {
	Path    string `json:"path,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Result captures validation outcomes for a record or an answer.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Valid returns a passing result.
func Valid() Result {
	return Result{Valid: true}
}

// Invalid returns a failing result carrying the provided issues.
func Invalid(issues ...Issue) Result {
	return Result{Valid: false, Issues: issues}
}

// Err converts a failing result into an *Error. Passing results return nil.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return &Error{Issues: append([]Issue(nil), r.Issues...)}
}

// Error reports one or more validation issues.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return "validation: invalid input"
	}
	messages := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msg := strings.TrimSpace(issue.Message)
		if issue.Field != "" {
			msg = issue.Field + ": " + msg
		}
		messages = append(messages, msg)
	}
	return "validation: " + strings.Join(messages, "; ")
}

// Is reports ErrInvalid as the error class.
func (e *Error) Is(target error) bool {
	return target == ErrInvalid
}
