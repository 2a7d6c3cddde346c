package app

// Config carries everything a classification run needs. Values come from
// flags, optionally back-filled from a YAML config file.
type Config struct {
	// InputPath is the report file to classify; empty or "-" reads stdin.
	InputPath string
	// RefDate is the reference date in DD-Mon-YYYY form, usually the
	// admission date.
	RefDate string
	// HTML strips HTML markup from the input before classification.
	HTML bool
	// Verbose enables debug logging.
	Verbose bool
}
