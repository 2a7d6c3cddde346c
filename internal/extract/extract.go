package extract

import (
	"regexp"
	"strings"
)

// bodyRe isolates the clinical narrative between the QTc interval field at
// the end of the measurement header and the Referred By footer. The capture
// is non-greedy, so the body ends at the next footer marker, and it spans
// newlines.
var bodyRe = regexp.MustCompile(`(?s)QTc\s*Int\s*:\s*\d+\s*ms(.*?)Referred\s*By:`)

// Body returns the report body with surrounding whitespace trimmed. The
// second return value is false when the marker pair is absent in order,
// which callers must keep distinct from a report whose body is genuinely
// empty.
func Body(report string) (string, bool) {
	m := bodyRe.FindStringSubmatch(report)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}
