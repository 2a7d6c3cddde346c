// Package classify runs the full triage pipeline over one ECG report: the
// no-change exclusion gate, body extraction, the stale-finding strippers,
// and the MI/ischemia markers.
package classify

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/clinsight/ecgtriage/internal/exclude"
	"github.com/clinsight/ecgtriage/internal/extract"
	"github.com/clinsight/ecgtriage/internal/markers"
	"github.com/clinsight/ecgtriage/internal/strip"
)

// NewFinding reports whether an ECG report documents a new MI or ischemia
// finding relative to refDate. Reports that only restate a prior ECG with
// no significant change are excluded before the body is ever inspected.
// The result is a pure function of the two inputs; the error is non-nil
// only for a malformed comparison date.
func NewFinding(report string, refDate time.Time) (bool, error) {
	excluded, err := exclude.NoChange(report, refDate)
	if err != nil {
		return false, err
	}
	if excluded {
		return false, nil
	}

	body, ok := extract.Body(report)
	if !ok {
		// Truncated or malformed reports commonly lack the marker pair.
		// Classification continues over the empty body and lands on false
		// rather than aborting the report.
		log.Debug().Str("stage", "extract").Msg("body markers not found")
	}
	body = strip.CitedOn(body)
	body = strip.AgeUndetermined(body)
	body = strip.ComparedWith(body)

	if markers.AcuteMI(body) {
		return true, nil
	}
	if markers.Infarction(body) {
		return true, nil
	}
	return markers.Ischemia(body), nil
}
