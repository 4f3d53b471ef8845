package types

// RunResult is the outcome of running a definition over one input.
type RunResult struct {
	Definition DefinitionName `json:"definition"`
	Input      string         `json:"input"`
	Final      string         `json:"final"`
	Accepted   bool           `json:"accepted"`
	Path       []string       `json:"path"` // initial state first
}

// RemainderResult is the outcome of one mod-3 computation in a batch.
type RemainderResult struct {
	Input     string `json:"input"`
	Remainder int    `json:"remainder"`
	Err       error  `json:"-"`
}
