// Package bundle implements the file selection and aggregation pipeline:
// pattern-based filtering, single-line comment stripping, and delimited
// concatenation of cleaned file contents into one output artifact.
package bundle

import "time"

// Status describes the outcome of processing one candidate file.
type Status string

const (
	StatusIncluded Status = "included" // file was cleaned and appended to the artifact
	StatusSkipped  Status = "skipped"  // file was rejected by the include/exclude rules
	StatusFailed   Status = "failed"   // file could not be read; the run continued
)

// Result records the outcome for a single candidate path.
type Result struct {
	Path   string // path as produced by the directory walk
	Status Status
	Err    error // underlying cause for StatusFailed, nil otherwise
}

// Summary aggregates the per-file results of one bundle run.
type Summary struct {
	RunID    string        // unique identifier for this run
	Output   string        // path of the output artifact
	Results  []Result      // one entry per enumerated file, in walk order
	Included int
	Skipped  int
	Failed   int
	Elapsed  time.Duration
}

func (s *Summary) add(r Result) {
	s.Results = append(s.Results, r)
	switch r.Status {
	case StatusIncluded:
		s.Included++
	case StatusSkipped:
		s.Skipped++
	case StatusFailed:
		s.Failed++
	}
}

// Failures returns the results for files that could not be read.
func (s *Summary) Failures() []Result {
	var failed []Result
	for _, r := range s.Results {
		if r.Status == StatusFailed {
			failed = append(failed, r)
		}
	}
	return failed
}
