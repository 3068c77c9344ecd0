package rank

import (
	"math"
	"testing"

	"github.com/hyperifyio/linkrank/internal/corpus"
)

func buildCorpus(t *testing.T, docs []*corpus.Document) *corpus.Corpus {
	t.Helper()
	c, err := corpus.Build(docs)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return c
}

func cycleDocs() []*corpus.Document {
	return []*corpus.Document{
		{Name: "a.html", Quality: 4, Out: []corpus.Link{{Target: "b.html", Score: 1}}},
		{Name: "b.html", Quality: 4, Out: []corpus.Link{{Target: "c.html", Score: 1}}},
		{Name: "c.html", Quality: 4, Out: []corpus.Link{{Target: "a.html", Score: 1}}},
	}
}

func TestSolve_SymmetricCycleConvergesToThirds(t *testing.T) {
	for _, f := range []float64{0.1, 0.5, 0.85, 0.99} {
		c := buildCorpus(t, cycleDocs())
		s := &Solver{Follow: f}
		if _, err := s.Solve(c); err != nil {
			t.Fatalf("f=%v: Solve: %v", f, err)
		}
		for _, d := range c.Docs {
			if math.Abs(d.Score-1.0/3.0) > c.Epsilon {
				t.Fatalf("f=%v: %s score = %v, want ≈ 1/3", f, d.Name, d.Score)
			}
		}
	}
}

func TestSolve_SinkFedByTwoLinkersGainsScore(t *testing.T) {
	// sink.html has no out-links; the other two link only to it. Its final
	// score must exceed its base, approaching the mass of its contributors.
	docs := []*corpus.Document{
		{Name: "p.html", Quality: 4, Out: []corpus.Link{{Target: "sink.html", Score: 1}}},
		{Name: "q.html", Quality: 4, Out: []corpus.Link{{Target: "sink.html", Score: 1}}},
		{Name: "sink.html", Quality: 4},
	}
	c := buildCorpus(t, docs)
	base := c.Docs[2].Base

	s := &Solver{Follow: 0.85}
	if _, err := s.Solve(c); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	sink := c.Docs[2].Score
	if sink <= base {
		t.Fatalf("sink score %v did not rise above base %v", sink, base)
	}
	if sink <= c.Docs[0].Score || sink <= c.Docs[1].Score {
		t.Fatalf("sink %v should outrank its contributors (%v, %v)", sink, c.Docs[0].Score, c.Docs[1].Score)
	}
}

func TestSolve_ConvergenceIsIdempotent(t *testing.T) {
	docs := []*corpus.Document{
		{Name: "a.html", Quality: 2, Out: []corpus.Link{{Target: "b.html", Score: 3}, {Target: "c.html", Score: 1}}},
		{Name: "b.html", Quality: 5, Out: []corpus.Link{{Target: "c.html", Score: 1}}},
		{Name: "c.html", Quality: 3},
	}
	c := buildCorpus(t, docs)
	s := &Solver{Follow: 0.7}
	if _, err := s.Solve(c); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	before := c.Scores()

	// One more full run must terminate on its first pass without moving any
	// score by more than epsilon.
	iters, err := s.Solve(c)
	if err != nil {
		t.Fatalf("second Solve: %v", err)
	}
	if iters != 1 {
		t.Fatalf("second Solve took %d passes, want 1", iters)
	}
	for i, v := range c.Scores() {
		if math.Abs(v-before[i]) > c.Epsilon {
			t.Fatalf("score %d moved by %v after convergence", i, math.Abs(v-before[i]))
		}
	}
}

func TestSolve_Deterministic(t *testing.T) {
	run := func() []float64 {
		docs := []*corpus.Document{
			{Name: "a.html", Quality: 2, Out: []corpus.Link{{Target: "b.html", Score: 2}}},
			{Name: "b.html", Quality: 7, Out: []corpus.Link{{Target: "a.html", Score: 1}, {Target: "c.html", Score: 4}}},
			{Name: "c.html", Quality: 1},
		}
		c := buildCorpus(t, docs)
		s := &Solver{Follow: 0.85}
		if _, err := s.Solve(c); err != nil {
			t.Fatalf("Solve: %v", err)
		}
		return c.Scores()
	}
	first, second := run(), run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("run diverged at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestSolve_FollowOutOfRange(t *testing.T) {
	c := buildCorpus(t, cycleDocs())
	for _, f := range []float64{0, 1, -0.5, 1.5} {
		s := &Solver{Follow: f}
		if _, err := s.Solve(c); err != ErrFollowOutOfRange {
			t.Fatalf("f=%v: err = %v, want ErrFollowOutOfRange", f, err)
		}
	}
}

func TestSolve_IterationCapReported(t *testing.T) {
	// A lopsided corpus far from its fixed point cannot settle in one pass.
	docs := []*corpus.Document{
		{Name: "a.html", Quality: 10, Out: []corpus.Link{{Target: "b.html", Score: 1}}},
		{Name: "b.html", Quality: 1, Out: []corpus.Link{{Target: "a.html", Score: 1}}},
	}
	c := buildCorpus(t, docs)
	s := &Solver{Follow: 0.99, MaxIterations: 1}
	if _, err := s.Solve(c); err != ErrNoConvergence {
		t.Fatalf("err = %v, want ErrNoConvergence", err)
	}
}
