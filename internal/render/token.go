package render

import "regexp"

var tokenPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// Substitute replaces every {key} occurrence in text with its value from
// vars. Keys are case-sensitive; a key absent from vars substitutes to the
// empty string so no literal placeholder ever survives. Substituted values
// are never re-scanned, so the operation cannot recurse.
func Substitute(text string, vars map[string]string) string {
	if text == "" {
		return ""
	}
	return tokenPattern.ReplaceAllStringFunc(text, func(match string) string {
		key := match[1 : len(match)-1]
		return vars[key]
	})
}

// HasToken reports whether text contains at least one {key} placeholder.
func HasToken(text string) bool {
	return tokenPattern.MatchString(text)
}
