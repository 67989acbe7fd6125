package judge

import "context"

// Result is the normalised outcome of one code execution. Output fields are
// always present (empty strings rather than nulls) so consumers never need
// nil checks.
type Result struct {
	StatusID          int    `json:"status_id"`
	StatusDescription string `json:"status_description"`
	Stdout            string `json:"stdout"`
	Stderr            string `json:"stderr"`
	CompileOutput     string `json:"compile_output"`
	Time              string `json:"time"`
	MemoryKB          int    `json:"memory_kb"`
	Mocked            bool   `json:"mocked,omitempty"`
}

// Well-known status identifiers. StatusErrored is a local sentinel for
// transport failures, not part of the Judge0 status table.
const (
	StatusAccepted = 3
	StatusErrored  = -1
)

// Runner executes submitted source code against an execution backend.
type Runner interface {
	Execute(ctx context.Context, language, source, stdin string) Result
}
