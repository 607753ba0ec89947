package model

// FileResult holds the outcome of processing a single source file.
type FileResult struct {
	File    File
	Sites   []Site
	Written bool   // true if the file was rewritten on disk
	Diff    string // unified diff, only set in dry-run mode
	Err     error  // parse, read, or write failure; the run continues
}

// RunSummary aggregates the per-file results of one run.
type RunSummary struct {
	Files    int `json:"files"`
	Modified int `json:"modified"`
	Sites    int `json:"sites"`
	Failed   int `json:"failed"`
	Findings int `json:"findings"`
}

// Add folds a file result into the summary.
func (s *RunSummary) Add(result FileResult) {
	s.Files++

	if result.Err != nil {
		s.Failed++
		return
	}

	if len(result.Sites) > 0 {
		s.Sites += len(result.Sites)
		if result.Written || result.Diff != "" {
			s.Modified++
		}
	}
}
