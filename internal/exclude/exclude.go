package exclude

import (
	"fmt"
	"regexp"
	"time"
)

var (
	// compareRe captures the date of the first comparison clause and all
	// remaining text through the end of the report.
	compareRe  = regexp.MustCompile(`(?s)When compared with ECG of (\d{2}-[A-Za-z]{3}-\d{4})(.*)`)
	noChangeRe = regexp.MustCompile(`(?i)no significant change`)
)

// dateLayout is the date format the clinical template embeds in report
// text, e.g. "05-Jan-2020".
const dateLayout = "02-Jan-2006"

// NoChange reports whether the report should be excluded outright because
// it documents no significant change relative to an ECG taken more than one
// day before refDate, usually the admission date. Only the first comparison
// clause contributes the date; a comparison date that does not parse as
// DD-Mon-YYYY is a hard error rather than a silent "not excluded".
func NoChange(report string, refDate time.Time) (bool, error) {
	m := compareRe.FindStringSubmatch(report)
	if m == nil {
		return false, nil
	}
	if !noChangeRe.MatchString(m[2]) {
		return false, nil
	}
	prior, err := time.Parse(dateLayout, m[1])
	if err != nil {
		return false, fmt.Errorf("parse comparison date %q: %w", m[1], err)
	}
	// Exactly one day is still within the admission window; the boundary is
	// exclusive.
	return refDate.Sub(prior) > 24*time.Hour, nil
}
