package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/linkrank/internal/app"
	"github.com/hyperifyio/linkrank/internal/corpus"
	"github.com/hyperifyio/linkrank/internal/rank"
)

// Exit codes, one per failure class.
const (
	exitHelp          = 1
	exitUsage         = 2
	exitScan          = 3
	exitEmptyCorpus   = 4
	exitNoConvergence = 5
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Dotenv first so LINKRANK_* defaults below can see it.
	if err := app.LoadEnvFile(".linkrank.env"); err != nil {
		log.Warn().Err(err).Msg("dotenv load failed")
	}

	fs := flag.NewFlagSet("linkrank", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		docsDir    string
		follow     float64
		maxIter    int
		pdfPath    string
		configPath string
		debug      bool
		help       bool
	)
	fs.StringVar(&docsDir, "docs", os.Getenv("LINKRANK_DOCS"), "Path to the directory containing pages")
	fs.StringVar(&docsDir, "d", os.Getenv("LINKRANK_DOCS"), "Shorthand for -docs")
	fs.Float64Var(&follow, "f", envFloat("LINKRANK_F"), "Probability of following links in the rank model, in (0,1)")
	fs.IntVar(&maxIter, "max.iterations", 0, "Iteration cap for the solver (0 uses the default)")
	fs.StringVar(&pdfPath, "pdf", os.Getenv("LINKRANK_PDF"), "Optional path for a PDF rendering of the ranking")
	fs.StringVar(&configPath, "config", "", "Optional YAML or JSON config file")
	fs.BoolVar(&debug, "debug", false, "Debug logging")
	fs.BoolVar(&help, "help", false, "Print this help text")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(exitHelp)
		}
		os.Exit(exitUsage)
	}
	if help {
		fs.Usage()
		os.Exit(exitHelp)
	}

	cfg := app.Config{
		DocsDir:       docsDir,
		Follow:        follow,
		MaxIterations: maxIter,
		PDFPath:       pdfPath,
		Debug:         debug,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config file: %v\n", err)
			os.Exit(exitUsage)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if err := app.ValidateConfig(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		os.Exit(exitUsage)
	}

	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := app.New(cfg).Run(os.Stdout); err != nil {
		log.Error().Err(err).Msg("run failed")
		switch {
		case errors.Is(err, corpus.ErrEmpty):
			os.Exit(exitEmptyCorpus)
		case errors.Is(err, rank.ErrNoConvergence):
			os.Exit(exitNoConvergence)
		case errors.Is(err, rank.ErrFollowOutOfRange):
			os.Exit(exitUsage)
		default:
			os.Exit(exitScan)
		}
	}
}

// envFloat parses an environment variable as a flag default; unset or
// malformed values fall back to zero and fail validation later.
func envFloat(key string) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return 0
	}
	return v
}
