package dto

import "github.com/codecoach-dev/codecoach-api/pkg/ai"

// TipsRequest asks for quick feedback on code without running it.
type TipsRequest struct {
	Language   string           `json:"language" validate:"required"`
	SourceCode string           `json:"sourceCode" validate:"required"`
	Problem    *ProblemSnapshot `json:"problem"`
}

// QuizRequest asks for one generated quiz question.
type QuizRequest struct {
	Language string `json:"language" validate:"required"`
	Topic    string `json:"topic"`
}

// QuizResponse wraps generated questions for the UI.
type QuizResponse struct {
	Questions []ai.QuizQuestion `json:"questions"`
}

// RoadmapRequest asks for a 7-day learning path.
type RoadmapRequest struct {
	Language   string `json:"language" validate:"required"`
	SkillLevel string `json:"skillLevel" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// RoadmapResponse wraps the generated learning path.
type RoadmapResponse struct {
	Roadmap []ai.RoadmapItem `json:"roadmap"`
}
