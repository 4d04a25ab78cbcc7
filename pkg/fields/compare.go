package fields

import (
	"fmt"
	"regexp"
	"strings"
)

var patternFlags = map[rune]string{
	'i': "i",
	'm': "m",
	's': "s",
	'U': "U",
}

// compilePattern accepts either a bare Go regular expression or a
// slash-delimited pattern with trailing flags, e.g. "/^foo$/i". Only the i, m,
// s and U flags are understood; the u flag is accepted and ignored since Go
// patterns are always UTF-8.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	expr := pattern
	if len(pattern) >= 2 && pattern[0] == '/' {
		end := strings.LastIndexByte(pattern, '/')
		if end > 0 {
			var flags strings.Builder
			for _, flag := range pattern[end+1:] {
				if flag == 'u' {
					continue
				}
				mapped, ok := patternFlags[flag]
				if !ok {
					return nil, fmt.Errorf("fields: unsupported regex flag %q in %q", flag, pattern)
				}
				flags.WriteString(mapped)
			}
			expr = pattern[1:end]
			if flags.Len() > 0 {
				expr = "(?" + flags.String() + ")" + expr
			}
		}
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("fields: invalid pattern %q: %w", pattern, err)
	}
	return re, nil
}
