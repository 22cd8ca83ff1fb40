package pipeline

// Outcome is the terminal state of one clip.
type Outcome string

const (
	OutcomeCompleted         Outcome = "completed"
	OutcomeSkippedNoSegments Outcome = "skipped-no-segments"
	OutcomeSkippedExported   Outcome = "skipped-exported"
	OutcomeSkippedExists     Outcome = "skipped-exists"
	OutcomeFailed            Outcome = "failed"
)

// Skipped reports whether the outcome is any of the skip variants.
func (o Outcome) Skipped() bool {
	switch o {
	case OutcomeSkippedNoSegments, OutcomeSkippedExported, OutcomeSkippedExists:
		return true
	}
	return false
}

// Stage names used in failure reporting.
const (
	StageParse     = "parse"
	StageLocate    = "locate"
	StageWorkspace = "workspace"
	StageAssemble  = "assemble"
	StageMux       = "mux"
)

// Result is the outcome of one clip.
type Result struct {
	// ClipDir is the base name of the clip directory.
	ClipDir string
	Outcome Outcome
	// Stage is set for failed clips to the stage that errored.
	Stage string
	// Output is the destination path for completed clips (and for
	// skipped-exported, the previously recorded output).
	Output string
	Err    error
}

// Summary accumulates per-clip results for the whole run.
type Summary struct {
	Completed int
	Skipped   int
	Failed    int
	Results   []Result
}

func (s *Summary) add(res Result) {
	s.Results = append(s.Results, res)
	switch {
	case res.Outcome == OutcomeCompleted:
		s.Completed++
	case res.Outcome.Skipped():
		s.Skipped++
	default:
		s.Failed++
	}
}

// Total returns the number of clips considered.
func (s *Summary) Total() int {
	return len(s.Results)
}
