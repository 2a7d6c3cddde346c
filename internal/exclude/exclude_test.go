package exclude

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("02-Jan-2006", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNoChange_NoComparisonClause(t *testing.T) {
	got, err := NoChange("Normal sinus rhythm.", date("05-Jan-2020"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got {
		t.Fatalf("expected no exclusion without a comparison clause")
	}
}

func TestNoChange_OldComparisonExcludes(t *testing.T) {
	report := "When compared with ECG of 01-Jan-2020, no significant change was found."
	got, err := NoChange(report, date("05-Jan-2020"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Fatalf("expected exclusion for 4-day-old no-change comparison")
	}
}

func TestNoChange_PhraseIsCaseInsensitive(t *testing.T) {
	report := "When compared with ECG of 01-Jan-2020, No Significant Change."
	got, err := NoChange(report, date("05-Jan-2020"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Fatalf("expected exclusion regardless of phrase casing")
	}
}

func TestNoChange_OneDayBoundaryIsExclusive(t *testing.T) {
	report := "When compared with ECG of 04-Jan-2020, no significant change."

	got, err := NoChange(report, date("05-Jan-2020"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got {
		t.Fatalf("exactly one day must not exclude")
	}

	got, err = NoChange(report, date("06-Jan-2020"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Fatalf("two days must exclude")
	}
}

func TestNoChange_PhraseAbsent(t *testing.T) {
	report := "When compared with ECG of 01-Jan-2019, ST depression is now evident."
	got, err := NoChange(report, date("05-Jan-2020"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got {
		t.Fatalf("expected no exclusion when the no-change phrase is absent")
	}
}

func TestNoChange_MalformedDateIsHardError(t *testing.T) {
	report := "When compared with ECG of 99-Zzz-2020, no significant change."
	if _, err := NoChange(report, date("05-Jan-2020")); err == nil {
		t.Fatalf("expected a parse error for a malformed comparison date")
	}
}

// Only the first comparison clause contributes a date, even when a later
// clause would put the comparison outside the one-day window.
func TestNoChange_FirstClauseOnly(t *testing.T) {
	report := "When compared with ECG of 10-Jan-2020, rate has slowed.\n" +
		"When compared with ECG of 01-Jan-2020, no significant change."
	got, err := NoChange(report, date("11-Jan-2020"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got {
		t.Fatalf("first clause is one day old; must not exclude on the later clause's date")
	}
}
