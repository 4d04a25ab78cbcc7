// Package model defines the question configuration and answer types shared by
// field implementations. A Question is decoded once per question from the
// flat storage record (QuestionFromRecord) or from a question file
// (LoadQuestions); option lists are trimmed, deduplicated and kept in display
// order. An Answer distinguishes a question that was not submitted from one
// submitted empty, so callers never rely on a sentinel empty string.
package model
