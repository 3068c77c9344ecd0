package app

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/linkrank/internal/corpus"
	"github.com/hyperifyio/linkrank/internal/extract"
	"github.com/hyperifyio/linkrank/internal/quality"
	"github.com/hyperifyio/linkrank/internal/rank"
	"github.com/hyperifyio/linkrank/internal/report"
	"github.com/hyperifyio/linkrank/internal/scan"
)

// App runs the full ranking pipeline: scan the corpus directory, extract
// quality and links per document, build the normalized transition structure,
// iterate the solver to convergence, and print the sorted result.
type App struct {
	cfg Config
}

func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run executes one batch pass and writes the ranking to out. The whole
// pipeline is sequential: no stage starts before the previous one finished
// and only this goroutine ever touches the corpus.
func (a *App) Run(out io.Writer) error {
	files, err := scan.Dir(a.cfg.DocsDir)
	if err != nil {
		return fmt.Errorf("scan documents: %w", err)
	}

	docs := make([]*corpus.Document, 0, len(files))
	for _, f := range files {
		q := quality.Score(string(f.Data))
		links, err := extract.Links(f.Data)
		if err != nil {
			// Unparseable markup only costs the document its out-links;
			// it still participates as a sink.
			log.Warn().Err(err).Str("name", f.Name).Msg("parse failed; treating document as sink")
			links = nil
		}
		d := &corpus.Document{Name: f.Name, Quality: q}
		for _, l := range links {
			d.Out = append(d.Out, corpus.Link{Target: l.Target, Score: l.Score})
		}
		log.Debug().Str("name", f.Name).Float64("quality", q).Int("outLinks", len(d.Out)).Msg("scored document")
		docs = append(docs, d)
	}

	c, err := corpus.Build(docs)
	if err != nil {
		return fmt.Errorf("prepare corpus: %w", err)
	}

	solver := &rank.Solver{Follow: a.cfg.Follow, MaxIterations: a.cfg.MaxIterations}
	iterations, err := solver.Solve(c)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	log.Info().
		Int("documents", len(c.Docs)).
		Int("iterations", iterations).
		Float64("f", a.cfg.Follow).
		Msg("rank converged")

	rows := report.Rows(c)
	if err := report.Write(out, rows); err != nil {
		return err
	}

	if a.cfg.PDFPath != "" {
		if err := writeRankingPDF(rows, a.cfg.DocsDir, a.cfg.PDFPath); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("out", a.cfg.PDFPath).Msg("wrote pdf report")
	}
	return nil
}
