package app

// Config holds runtime configuration for one ranking run.
type Config struct {
	// DocsDir is the root of the HTML corpus, scanned recursively.
	DocsDir string

	// Follow is the probability of following links rather than teleporting
	// to the base distribution. Required, strictly between 0 and 1.
	Follow float64

	// MaxIterations caps the solver loop; zero selects the solver default.
	MaxIterations int

	// PDFPath, when set, additionally renders the ranking as a PDF.
	PDFPath string

	// Debug enables per-document debug logging.
	Debug bool
}
