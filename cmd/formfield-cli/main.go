package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/goliatone/go-formfield"
	"github.com/goliatone/go-formfield/pkg/fields"
	"github.com/goliatone/go-formfield/pkg/logging"
	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/openapi"
	"github.com/goliatone/go-formfield/pkg/prompt"
)

type config struct {
	questions   string
	question    string
	answers     answerFlags
	interactive bool
	schema      bool
	debug       bool
}

// answerFlags collects repeated -answer name=value flags.
type answerFlags map[string]string

func (a answerFlags) String() string { return fmt.Sprint(map[string]string(a)) }

func (a answerFlags) Set(raw string) error {
	name, value, ok := strings.Cut(raw, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return fmt.Errorf("answer must be name=value, got %q", raw)
	}
	a[strings.TrimSpace(name)] = value
	return nil
}

func main() {
	cfg := config{answers: answerFlags{}}
	flag.StringVar(&cfg.questions, "questions", "questions.yaml", "JSON or YAML question file")
	flag.StringVar(&cfg.question, "question", "", "only process the named question")
	flag.Var(cfg.answers, "answer", "answer as name=value (repeatable)")
	flag.BoolVar(&cfg.interactive, "interactive", false, "prompt for answers in the terminal")
	flag.BoolVar(&cfg.schema, "schema", false, "print the OpenAPI schema of the form and exit")
	flag.BoolVar(&cfg.debug, "debug", false, "log debug events to stderr")
	flag.Parse()

	if cfg.debug {
		logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var driver prompt.Driver
	if cfg.interactive {
		driver = prompt.NewSurveyDriver()
	}

	if err := run(context.Background(), cfg, driver, os.Stdout); err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			os.Exit(130)
		}
		log.Fatalf("formfield: %v", err)
	}
}

func run(ctx context.Context, cfg config, driver prompt.Driver, out io.Writer) error {
	questions, err := model.LoadQuestionsFile(cfg.questions)
	if err != nil {
		return err
	}
	questions, err = selectQuestions(questions, cfg.question)
	if err != nil {
		return err
	}

	if cfg.schema {
		return writeSchema(out, questions)
	}

	for _, q := range questions {
		if err := openapi.ValidateQuestion(ctx, q); err != nil {
			return err
		}
	}

	input := make(map[string]*string, len(questions))
	if driver == nil {
		for _, q := range questions {
			if value, ok := cfg.answers[q.Name]; ok {
				input[model.FieldKey(q.ID)] = &value
			}
		}
	}

	sub, err := formfield.ParseSubmission(questions, input)
	if err != nil {
		return err
	}
	if driver != nil {
		if err := ask(ctx, driver, sub); err != nil {
			return err
		}
	}
	return writeReport(out, questions, sub)
}

// ask prompts for each question in display order. Visibility is evaluated
// against the answers given so far, so questions hidden by earlier answers
// are skipped.
func ask(ctx context.Context, driver prompt.Driver, sub *formfield.Submission) error {
	for _, q := range sub.Questions() {
		visible, err := sub.Visible(q.ID)
		if err != nil {
			return err
		}
		if !visible {
			continue
		}
		answer, err := prompt.AskRadios(ctx, driver, fields.NewRadios(q))
		if err != nil {
			return err
		}
		if err := sub.Answer(q.ID, answer.Text()); err != nil {
			return err
		}
	}
	return nil
}

func selectQuestions(questions []model.Question, name string) ([]model.Question, error) {
	if name == "" {
		return questions, nil
	}
	for _, q := range questions {
		if q.Name == name {
			return []model.Question{q}, nil
		}
	}
	return nil, fmt.Errorf("question %q not found", name)
}

func writeSchema(out io.Writer, questions []model.Question) error {
	schema, err := openapi.SchemaForForm(questions)
	if err != nil {
		return err
	}
	payload, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	_, err = fmt.Fprintln(out, string(payload))
	return err
}

func writeReport(out io.Writer, questions []model.Question, sub *formfield.Submission) error {
	stored := sub.Serialize()
	for _, q := range questions {
		field, _ := sub.Field(q.ID)
		visible, err := sub.Visible(q.ID)
		if err != nil {
			return err
		}
		status := "ok"
		switch {
		case !visible:
			status = "hidden"
		case !field.IsValid():
			status = "required"
		case !field.Answer().IsSet():
			status = "not submitted"
		case openapi.ValidateAnswer(q, field.Answer()) != nil:
			status = "not an option"
		}
		if _, err := fmt.Fprintf(out, "%s\tstored=%q\tdesign=%q\tstatus=%s\n",
			q.Label(), stored[q.ID], field.ValueForDesign(), status); err != nil {
			return err
		}
	}

	result, err := sub.Validate()
	if err != nil {
		return err
	}
	if !result.Valid {
		return result.Err()
	}
	return nil
}
