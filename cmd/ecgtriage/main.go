package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/clinsight/ecgtriage/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath  string
		refDate    string
		configPath string
		htmlInput  bool
		verbose    bool
	)
	flag.StringVar(&inputPath, "input", "", "Path to the ECG report text file ('-' or empty reads stdin)")
	flag.StringVar(&refDate, "ref", "", "Reference date as DD-Mon-YYYY, usually the admission date")
	flag.StringVar(&configPath, "config", "", "Optional YAML config file; flags take precedence")
	flag.BoolVar(&htmlInput, "html", false, "Treat input as an HTML-wrapped EHR export")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{InputPath: inputPath, RefDate: refDate, HTML: htmlInput, Verbose: verbose}
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Msg("config file")
			os.Exit(2)
		}
		cfg = app.Merge(cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if cfg.RefDate == "" {
		log.Error().Msg("missing -ref date")
		os.Exit(2)
	}

	if err := app.Run(cfg); err != nil {
		// A malformed embedded date indicates corrupted upstream data;
		// surface it with a hard exit rather than a silent "exclude".
		log.Error().Err(err).Msg("run failed")
		os.Exit(2)
	}
}
