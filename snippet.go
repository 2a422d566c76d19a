package docfind

import (
	"regexp"
	"unicode/utf8"
)

// DefaultContextSize is the number of characters kept on each side of a
// keyword occurrence.
const DefaultContextSize = 30

// Matcher tests text for a case-insensitive literal keyword and cuts
// excerpts around the first occurrence. Regexp metacharacters in the
// keyword match themselves.
type Matcher struct {
	keyword     string
	contextSize int
	re          *regexp.Regexp
}

// NewMatcher compiles a matcher for keyword. A negative contextSize is
// treated as zero.
func NewMatcher(keyword string, contextSize int) *Matcher {
	return &Matcher{
		keyword:     keyword,
		contextSize: max(contextSize, 0),
		re:          regexp.MustCompile("(?i)" + regexp.QuoteMeta(keyword)),
	}
}

// Keyword returns the keyword the matcher was compiled for.
func (m *Matcher) Keyword() string {
	return m.keyword
}

// ContextSize returns the number of characters kept on each side.
func (m *Matcher) ContextSize() int {
	return m.contextSize
}

// Match reports whether text contains the keyword.
func (m *Matcher) Match(text string) bool {
	return m.re.MatchString(text)
}

// Snippet returns the window of text around the first occurrence of the
// keyword. The window starts contextSize characters before the occurrence
// and spans at most len(keyword)+2*contextSize characters. Returns false
// when the keyword does not occur in text.
func (m *Matcher) Snippet(text string) (string, bool) {
	loc := m.re.FindStringIndex(text)
	if loc == nil {
		return "", false
	}

	runes := []rune(text)
	at := utf8.RuneCountInString(text[:loc[0]])
	start := max(at-m.contextSize, 0)
	end := min(start+utf8.RuneCountInString(m.keyword)+2*m.contextSize, len(runes))
	return string(runes[start:end]), true
}

// ExtractSnippet returns the excerpt of text around the first
// case-insensitive occurrence of keyword. See Matcher.Snippet.
func ExtractSnippet(text, keyword string, contextSize int) (string, bool) {
	return NewMatcher(keyword, contextSize).Snippet(text)
}
