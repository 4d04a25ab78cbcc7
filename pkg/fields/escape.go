package fields

import "strings"

// Stored answers carry a backslash before every apostrophe. Escaping adds
// exactly one backslash per apostrophe and unescaping removes exactly one, so
// the pair round-trips any string.
var (
	quoteEscaper   = strings.NewReplacer(`'`, `\'`)
	quoteUnescaper = strings.NewReplacer(`\'`, `'`)
)

func escapeQuotes(value string) string {
	return quoteEscaper.Replace(value)
}

func unescapeQuotes(value string) string {
	return quoteUnescaper.Replace(value)
}
