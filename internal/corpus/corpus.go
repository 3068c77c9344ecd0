package corpus

import (
	"errors"

	"github.com/rs/zerolog/log"
)

// Link is one outbound edge of a document: the raw href target and the
// accumulated emphasis score of all anchors pointing at it.
type Link struct {
	Target string
	Score  float64
}

// Document is one node of the rank model. Quality is the raw content-size
// score, Base the teleport prior (Quality normalized to sum 1 over the
// corpus), and Score the current rank estimate. Out is fixed after parsing;
// Score is the only field the solver mutates.
type Document struct {
	Name    string
	Quality float64
	Base    float64
	Score   float64
	Out     []Link
}

// Corpus owns the documents in scan order and the dense transition matrix
// derived from them. Document position in Docs is the node index everywhere:
// Weights[target][source] is the probability mass a walker at source moves to
// target in one step. After Build, only document scores mutate.
type Corpus struct {
	Docs    []*Document
	Weights [][]float64
	Epsilon float64
}

// ErrEmpty is returned when no documents were scanned. The solver must not
// run on an empty corpus.
var ErrEmpty = errors.New("corpus: no documents")

// convergenceBase is divided by the document count to yield the per-node
// change tolerance used by the solver.
const convergenceBase = 0.01

// Build normalizes document qualities into the teleport prior and derives
// the transition matrix:
//
//   - Base = Quality / ΣQuality, initial Score = Base. A zero quality sum
//     (every document empty or single-token) degrades to the uniform
//     distribution with a warning instead of dividing by zero.
//   - A source with outbound links distributes mass proportionally to raw
//     link scores, normalized by the sum over all of its links. Targets
//     naming no known document are dropped without renormalization: links
//     out of the corpus contribute no mass anywhere.
//   - A sink (no outbound links) distributes mass according to the score
//     vector as it stood before any column was filled. All sink columns
//     share that one pre-iteration snapshot.
//
// Document order is fixed here and determines both node indices and the
// stable tie order of the final report.
func Build(docs []*Document) (*Corpus, error) {
	n := len(docs)
	if n == 0 {
		return nil, ErrEmpty
	}

	index := make(map[string]int, n)
	for i, d := range docs {
		if _, ok := index[d.Name]; !ok {
			index[d.Name] = i
		}
	}

	var sumQuality float64
	for _, d := range docs {
		sumQuality += d.Quality
	}
	if sumQuality == 0 {
		log.Warn().Int("documents", n).Msg("zero total quality; falling back to uniform base")
		for _, d := range docs {
			d.Base = 1 / float64(n)
			d.Score = d.Base
		}
	} else {
		for _, d := range docs {
			d.Base = d.Quality / sumQuality
			d.Score = d.Base
		}
	}

	// One snapshot for every sink column, taken before any column is filled.
	snapshot := make([]float64, n)
	for j, d := range docs {
		snapshot[j] = d.Score
	}

	weights := make([][]float64, n)
	for i := range weights {
		weights[i] = make([]float64, n)
	}
	for i, d := range docs {
		if len(d.Out) == 0 {
			for j := range docs {
				weights[j][i] = snapshot[j]
			}
			continue
		}
		var sumOut float64
		for _, l := range d.Out {
			sumOut += l.Score
		}
		for _, l := range d.Out {
			j, ok := index[l.Target]
			if !ok {
				continue
			}
			weights[j][i] = l.Score / sumOut
		}
	}

	return &Corpus{
		Docs:    docs,
		Weights: weights,
		Epsilon: convergenceBase / float64(n),
	}, nil
}

// Scores returns a copy of the current score vector in document order.
func (c *Corpus) Scores() []float64 {
	out := make([]float64, len(c.Docs))
	for i, d := range c.Docs {
		out[i] = d.Score
	}
	return out
}
