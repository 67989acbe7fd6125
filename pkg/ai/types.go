package ai

import "context"

// AnalysisInput contains the artefacts the coach needs to review a submission.
type AnalysisInput struct {
	Language         string
	ProblemID        string
	ProblemTitle     string
	ProblemStatement string
	Source           string
	ExecutionJSON    string
}

// SuggestedFix is one concrete improvement tied to the submitted code.
type SuggestedFix struct {
	Description string  `json:"description"`
	LineHint    float64 `json:"line_hint,omitempty"`
	FixSnippet  string  `json:"fix_snippet,omitempty"`
}

// RoadmapItem is a single day of a 7-day learning path.
type RoadmapItem struct {
	Day      int     `json:"day"`
	Task     string  `json:"task"`
	EstHours float64 `json:"est_hours"`
}

// RecommendedProblem points at a practice exercise worth attempting next.
type RecommendedProblem struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Difficulty string `json:"difficulty"`
}

// Report is the structured coaching feedback for one submission. When present
// the roadmap always holds exactly 7 entries with day values 1..7.
type Report struct {
	Summary             string               `json:"summary"`
	Strengths           []string             `json:"strengths"`
	Weaknesses          []string             `json:"weaknesses"`
	SuggestedFixes      []SuggestedFix       `json:"suggested_fixes"`
	Roadmap             []RoadmapItem        `json:"roadmap"`
	RecommendedProblems []RecommendedProblem `json:"recommendedProblems"`
}

// TipsReport is the narrower feedback shape produced without running code.
type TipsReport struct {
	Summary        string         `json:"summary"`
	Strengths      []string       `json:"strengths"`
	Weaknesses     []string       `json:"weaknesses"`
	SuggestedFixes []SuggestedFix `json:"suggested_fixes,omitempty"`
}

// QuizQuestion is one multiple-choice question with the index of the correct
// option and a short explanation.
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      int      `json:"answer"`
	Explanation string   `json:"explanation"`
}

// Coach generates structured learning content. Implementations never return
// an error: when the backend is unreachable or its output cannot be parsed,
// a fixed fallback value is returned instead.
type Coach interface {
	Analyze(ctx context.Context, input AnalysisInput) Report
	GenerateTips(ctx context.Context, language, source, problemTitle string) TipsReport
	GenerateQuiz(ctx context.Context, language, topic string) QuizQuestion
	GenerateRoadmap(ctx context.Context, language, skillLevel string) []RoadmapItem
}
