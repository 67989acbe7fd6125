package dto

import (
	"github.com/codecoach-dev/codecoach-api/pkg/ai"
	"github.com/codecoach-dev/codecoach-api/pkg/judge"
)

// ProblemSnapshot is the optional problem context the editor sends along with
// a submission so the coach can reference the exercise.
type ProblemSnapshot struct {
	ID        string      `json:"id,omitempty"`
	Title     string      `json:"title,omitempty"`
	Statement string      `json:"statement,omitempty"`
	Examples  interface{} `json:"examples,omitempty"`
	Tags      interface{} `json:"tags,omitempty"`
}

// SubmissionRequest is the payload for one orchestrated run.
type SubmissionRequest struct {
	Language   string           `json:"language" validate:"required"`
	SourceCode string           `json:"sourceCode" validate:"required"`
	Stdin      string           `json:"stdin"`
	ProblemID  string           `json:"problemId"`
	Problem    *ProblemSnapshot `json:"problem"`
}

// SubmissionResponse combines the execution result and the coaching report.
type SubmissionResponse struct {
	JudgeResult judge.Result `json:"judgeResult"`
	AIReport    ai.Report    `json:"aiReport"`
}
