package rank

import (
	"errors"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/linkrank/internal/corpus"
)

// Solver iterates the weighted rank recurrence over a prepared corpus until
// no score moves by more than the corpus epsilon in a full pass.
type Solver struct {
	// Follow is the probability of following links rather than teleporting
	// to the base distribution. Must lie strictly between 0 and 1.
	Follow float64

	// MaxIterations caps the loop as a guard against non-convergence.
	// Zero selects the default cap.
	MaxIterations int
}

const defaultMaxIterations = 10_000

var (
	// ErrFollowOutOfRange is returned when the follow probability lies
	// outside the open interval (0,1).
	ErrFollowOutOfRange = errors.New("rank: follow probability must be in (0,1)")

	// ErrNoConvergence is returned when the iteration cap is exhausted
	// before every score settles within epsilon.
	ErrNoConvergence = errors.New("rank: did not converge within iteration cap")
)

// Solve mutates the corpus score vector in place and returns the number of
// passes executed. Each pass computes every new score from the previous
// pass's snapshot and commits them simultaneously, so in-pass updates never
// see partially written state.
func (s *Solver) Solve(c *corpus.Corpus) (int, error) {
	if s.Follow <= 0 || s.Follow >= 1 {
		return 0, ErrFollowOutOfRange
	}
	maxIter := s.MaxIterations
	if maxIter <= 0 {
		maxIter = defaultMaxIterations
	}

	n := len(c.Docs)
	f := s.Follow
	next := make([]float64, n)

	for iter := 1; iter <= maxIter; iter++ {
		changed := false
		for i := 0; i < n; i++ {
			var inbound float64
			for j, d := range c.Docs {
				inbound += d.Score * c.Weights[i][j]
			}
			next[i] = (1-f)*c.Docs[i].Base + f*inbound
			if math.Abs(next[i]-c.Docs[i].Score) > c.Epsilon {
				changed = true
			}
		}
		for i, d := range c.Docs {
			d.Score = next[i]
		}
		if !changed {
			log.Debug().Int("iterations", iter).Msg("rank converged")
			return iter, nil
		}
	}
	return maxIter, ErrNoConvergence
}
