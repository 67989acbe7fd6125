package handler_test

import (
	"context"

	"github.com/codecoach-dev/codecoach-api/pkg/ai"
	"github.com/codecoach-dev/codecoach-api/pkg/judge"
)

type stubRunner struct{}

func (stubRunner) Execute(_ context.Context, _, _, _ string) judge.Result {
	return judge.Result{StatusID: judge.StatusAccepted, StatusDescription: "Accepted"}
}

type stubCoach struct{}

func (stubCoach) Analyze(_ context.Context, _ ai.AnalysisInput) ai.Report {
	return ai.Report{Summary: "stub"}
}

func (stubCoach) GenerateTips(_ context.Context, _, _, _ string) ai.TipsReport {
	return ai.TipsReport{Summary: "stub"}
}

func (stubCoach) GenerateQuiz(_ context.Context, _, _ string) ai.QuizQuestion {
	return ai.QuizQuestion{Question: "stub"}
}

func (stubCoach) GenerateRoadmap(_ context.Context, _, _ string) []ai.RoadmapItem {
	return []ai.RoadmapItem{{Day: 1, Task: "stub"}}
}
