package report

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hyperifyio/linkrank/internal/corpus"
)

// Row is one formatted result line: the display name (markup suffix
// stripped) and the final score.
type Row struct {
	Name  string
	Score float64
}

// Rows sorts the corpus by descending final score. The sort is stable so
// ties keep the document encounter order, which is fixed at scan time.
func Rows(c *corpus.Corpus) []Row {
	rows := make([]Row, 0, len(c.Docs))
	for _, d := range c.Docs {
		rows = append(rows, Row{Name: stripMarkupSuffix(d.Name), Score: d.Score})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Score > rows[j].Score
	})
	return rows
}

// Write prints one line per row: name, then the score to four decimal
// digits right-aligned in a fixed-width field.
func Write(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s %8.4f\n", r.Name, r.Score); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}

func stripMarkupSuffix(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm", ".xhtml":
		return name[:len(name)-len(filepath.Ext(name))]
	}
	return name
}
