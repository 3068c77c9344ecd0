package quality

import (
	"math"
	"strings"
)

// Score computes the intrinsic quality of a document from its raw text
// content: log base 2 of the whitespace-delimited token count. The raw
// markup is tokenized as-is; tags count as tokens, matching the size
// measure the rank model normalizes against.
//
// A document with zero tokens scores 0 rather than -Inf so an empty file
// never poisons the corpus-wide normalization. A one-token document also
// scores 0 (log2 1).
func Score(text string) float64 {
	n := len(strings.Fields(text))
	if n == 0 {
		return 0
	}
	return math.Log2(float64(n))
}
