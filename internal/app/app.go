package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/clinsight/ecgtriage/internal/classify"
	"github.com/clinsight/ecgtriage/internal/report"
)

// refDateLayout matches the date format embedded in the reports themselves.
const refDateLayout = "02-Jan-2006"

// Run classifies a single report and prints "include" or "exclude" on
// stdout. A malformed comparison date inside the report propagates to the
// caller so the CLI can map it to a hard exit.
func Run(cfg Config) error {
	refDate, err := time.Parse(refDateLayout, cfg.RefDate)
	if err != nil {
		return fmt.Errorf("parse reference date %q: %w", cfg.RefDate, err)
	}

	text, err := readInput(cfg.InputPath)
	if err != nil {
		return err
	}
	if cfg.HTML {
		text = report.FromHTML([]byte(text))
	} else {
		text = report.Normalize(text)
	}

	include, err := classify.NewFinding(text, refDate)
	if err != nil {
		return err
	}
	log.Info().Bool("include", include).Str("input", cfg.InputPath).Msg("classified")
	if include {
		fmt.Println("include")
	} else {
		fmt.Println("exclude")
	}
	return nil
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read report: %w", err)
	}
	return string(b), nil
}
