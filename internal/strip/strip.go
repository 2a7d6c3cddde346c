package strip

import "regexp"

var (
	citedOnRe      = regexp.MustCompile(`.*\(cited on or before \d{2}-[A-Za-z]{3}-\d{4}\)`)
	ageUndetRe     = regexp.MustCompile(`.*age\s*undetermined`)
	comparedWithRe = regexp.MustCompile(`(?s)When compared with.*`)
)

// CitedOn deletes every line span that ends in a "(cited on or before
// DD-Mon-YYYY)" annotation. Those findings were already documented on a
// prior ECG and must not count as new.
func CitedOn(body string) string {
	return citedOnRe.ReplaceAllString(body, "")
}

// AgeUndetermined deletes every line span that ends in "age undetermined".
// Onset timing is unknown for such findings, so they are non-actionable
// here.
func AgeUndetermined(body string) string {
	return ageUndetRe.ReplaceAllString(body, "")
}

// ComparedWith deletes everything from the first "When compared with" to
// the end of the body. The comparison narrative has its own handling in the
// exclusion gate and must not feed the finding markers.
func ComparedWith(body string) string {
	return comparedWithRe.ReplaceAllString(body, "")
}
