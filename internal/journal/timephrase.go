package journal

import (
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/sandevgo/jotbot/internal/core"
)

// Absolute layouts tried before falling back to natural-language
// parsing.
var dueLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

var whenParser = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

// resolveDue resolves a due-time phrase (absolute or relative, e.g.
// "tomorrow at 2pm") against base. It also accepts the phrase embedded
// in a longer sentence and reports the matched fragment so the caller
// can strip it from the entry text.
func resolveDue(phrase string, base time.Time) (t time.Time, matched string, err error) {
	trimmed := strings.TrimSpace(phrase)
	if trimmed == "" {
		return time.Time{}, "", &core.TimeParseError{Phrase: phrase}
	}

	for _, layout := range dueLayouts {
		if t, perr := time.ParseInLocation(layout, trimmed, base.Location()); perr == nil {
			return t, trimmed, nil
		}
	}

	res, perr := whenParser.Parse(trimmed, base)
	if perr != nil || res == nil {
		return time.Time{}, "", &core.TimeParseError{Phrase: phrase}
	}
	return res.Time, res.Text, nil
}

// stripPhrase removes the matched time fragment and dangling
// connectives from the entry text.
func stripPhrase(text, matched string) string {
	if matched == "" {
		return text
	}
	idx := strings.Index(strings.ToLower(text), strings.ToLower(matched))
	if idx < 0 {
		return text
	}
	out := text[:idx] + text[idx+len(matched):]
	out = strings.TrimSpace(out)
	out = strings.TrimRight(out, ",.;:")
	for _, suffix := range []string{" at", " on", " by", " in"} {
		out = strings.TrimSuffix(out, suffix)
	}
	return strings.TrimSpace(out)
}
