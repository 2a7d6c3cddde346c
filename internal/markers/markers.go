// Package markers holds the finding patterns evaluated against a cleaned
// report body. Each marker is an independent case-insensitive scan; any one
// firing makes the report a new finding.
package markers

import "regexp"

var (
	acuteMIRe    = regexp.MustCompile(`(?i)\* acute mi`)
	infarctionRe = regexp.MustCompile(`(?i)infarc`)
	ischemiaRe   = regexp.MustCompile(`(?i)ischem|ischaem`)
)

// AcuteMI reports whether the body carries the template's "* ACUTE MI"
// marker. STEMI findings always co-occur with this marker in the source
// template, so no separate STEMI pattern exists.
func AcuteMI(body string) bool {
	return acuteMIRe.MatchString(body)
}

// Infarction matches the root "infarc": infarct, infarction, infarcted.
func Infarction(body string) bool {
	return infarctionRe.MatchString(body)
}

// Ischemia matches both the American "ischem" and British "ischaem" roots.
func Ischemia(body string) bool {
	return ischemiaRe.MatchString(body)
}
