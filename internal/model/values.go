package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// escapedLineBreak is the two-character form the storage layer leaves in
// submitted text after slash-escaping a CRLF.
const escapedLineBreak = `\r\n`

var lineBreaks = strings.NewReplacer(
	escapedLineBreak, "\n",
	"\r\n", "\n",
	"\r", "\n",
)

// SplitValues splits a raw option list on line breaks. Both real CR/LF bytes
// and the escaped `\r\n` sequence are treated as separators. Segments are not
// trimmed; see NormalizeValues.
func SplitValues(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(lineBreaks.Replace(raw), "\n")
}

// NormalizeValues trims every entry, drops empty entries, and removes
// duplicates while preserving first-seen order. It returns nil when nothing
// remains.
func NormalizeValues(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// EncodeValues renders values as a compact JSON array. HTML characters and
// non-ASCII runes are written verbatim.
func EncodeValues(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(values); err != nil {
		return "", fmt.Errorf("model: encode values: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// DecodeValues reads a stored option list. JSON arrays are decoded directly;
// any other text is treated as a line-delimited list. The result is
// normalised.
func DecodeValues(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		if list, err := DecodeJSONList(trimmed); err == nil {
			return NormalizeValues(list)
		}
	}
	return NormalizeValues(SplitValues(raw))
}

// DecodeJSONList decodes a JSON array into its items as text. Numbers keep
// their literal form, booleans render as true/false, nulls are skipped and
// nested arrays or objects are kept as compact JSON.
func DecodeJSONList(raw string) ([]string, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var items []any
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("model: decode value list: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("model: decode value list: trailing data after array")
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case nil:
			continue
		case string:
			out = append(out, v)
		case json.Number:
			out = append(out, v.String())
		case bool:
			out = append(out, strconv.FormatBool(v))
		default:
			nested, err := json.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("model: decode value list: %w", err)
			}
			out = append(out, string(nested))
		}
	}
	return out, nil
}
