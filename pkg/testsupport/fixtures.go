package testsupport

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"

	pkgmodel "github.com/goliatone/go-formfield/pkg/model"
)

// MustLoadQuestions reads a JSON or YAML question file, failing the test on
// error.
func MustLoadQuestions(t *testing.T, path string) []pkgmodel.Question {
	t.Helper()

	questions, err := pkgmodel.LoadQuestionsFile(path)
	if err != nil {
		t.Fatalf("load questions: %v", err)
	}
	return questions
}

// MustFindQuestion returns the question with the given name from questions.
func MustFindQuestion(t *testing.T, questions []pkgmodel.Question, name string) pkgmodel.Question {
	t.Helper()

	for _, q := range questions {
		if q.Name == name {
			return q
		}
	}
	t.Fatalf("question %q not found in fixture", name)
	return pkgmodel.Question{}
}

// LoadRecords reads a JSON fixture holding named storage records, returning an
// error for callers managing setup outside of *testing.T.
func LoadRecords(path string) (map[string]map[string]string, error) {
	if path == "" {
		return nil, errors.New("testsupport: records path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read records: %w", err)
	}
	var out map[string]map[string]string
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("testsupport: unmarshal records: %w", err)
	}
	return out, nil
}

// MustLoadRecords is LoadRecords for tests.
func MustLoadRecords(t *testing.T, path string) map[string]map[string]string {
	t.Helper()

	records, err := LoadRecords(path)
	if err != nil {
		t.Fatalf("load records: %v", err)
	}
	return records
}
