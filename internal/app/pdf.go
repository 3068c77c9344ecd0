package app

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/hyperifyio/linkrank/internal/report"
)

// writeRankingPDF renders the ranking as a minimal one-table PDF: a heading
// naming the corpus directory, then one monospaced line per document so the
// fixed-width score column stays aligned.
func writeRankingPDF(rows []report.Row, docsDir, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Weighted PageRank", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Corpus: "+docsDir, "", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Courier", "", 10)
	for _, r := range rows {
		pdf.CellFormat(0, 5, fmt.Sprintf("%s %8.4f", r.Name, r.Score), "", 1, "L", false, 0, "")
	}

	return pdf.OutputFileAndClose(outPath)
}
