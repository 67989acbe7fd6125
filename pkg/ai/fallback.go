package ai

import "strconv"

// unconfiguredReport is returned when no AI credential is configured. It is
// deliberately complete so the UI always has renderable content.
func unconfiguredReport() Report {
	return Report{
		Summary:    "Strong approach. Consider improving edge-case handling.",
		Strengths:  []string{"Clear variable names", "Time complexity is optimal"},
		Weaknesses: []string{"Missing input validation"},
		SuggestedFixes: []SuggestedFix{
			{Description: "Check for empty input before processing."},
		},
		Roadmap: []RoadmapItem{
			{Day: 1, Task: "Review hash maps basics", EstHours: 1},
			{Day: 2, Task: "Solve 2-3 easy array problems", EstHours: 1.5},
			{Day: 3, Task: "Refactor to add tests", EstHours: 1},
			{Day: 4, Task: "Solve 1 medium problem", EstHours: 1.5},
			{Day: 5, Task: "Read article on edge cases", EstHours: 1},
			{Day: 6, Task: "Timed practice session", EstHours: 1},
			{Day: 7, Task: "Review and reflect", EstHours: 0.5},
		},
		RecommendedProblems: []RecommendedProblem{
			{ID: "valid-parentheses", Title: "Valid Parentheses", Difficulty: "Easy"},
		},
	}
}

// unavailableReport is returned when the AI call failed or its output could
// not be parsed. Distinct from unconfiguredReport so the two degradation
// modes are tellable apart in the UI.
func unavailableReport() Report {
	return Report{
		Summary:    "AI analysis unavailable. Basic feedback provided.",
		Strengths:  []string{"Code structure looks good"},
		Weaknesses: []string{"Enable the AI backend for detailed analysis"},
		SuggestedFixes: []SuggestedFix{
			{Description: "Configure the AI API key for full feedback."},
		},
		Roadmap: []RoadmapItem{
			{Day: 1, Task: "Practice basic coding patterns", EstHours: 1},
			{Day: 2, Task: "Solve easy problems", EstHours: 1.5},
			{Day: 3, Task: "Review solutions", EstHours: 1},
			{Day: 4, Task: "Learn advanced patterns", EstHours: 2},
			{Day: 5, Task: "Solve medium problems", EstHours: 1.5},
			{Day: 6, Task: "Timed practice", EstHours: 1},
			{Day: 7, Task: "Review and reflect", EstHours: 1},
		},
		RecommendedProblems: []RecommendedProblem{
			{ID: "valid-parentheses", Title: "Valid Parentheses", Difficulty: "Easy"},
		},
	}
}

func fallbackTips() TipsReport {
	return TipsReport{
		Summary:    "Enable the AI backend for detailed tips",
		Strengths:  []string{"Code structure looks good"},
		Weaknesses: []string{"Enable the AI backend for detailed analysis"},
	}
}

func fallbackQuiz() QuizQuestion {
	return QuizQuestion{
		Question:    `What is the output of: console.log(2 + "2")?`,
		Options:     []string{"4", "22", "NaN", "Error"},
		Answer:      1,
		Explanation: "In JavaScript, the + operator with a string performs string concatenation.",
	}
}

func fallbackRoadmap(language string) []RoadmapItem {
	items := make([]RoadmapItem, 0, 7)
	for day := 1; day <= 7; day++ {
		items = append(items, RoadmapItem{
			Day:      day,
			Task:     "Learn " + language + " concepts - Day " + strconv.Itoa(day),
			EstHours: 1.5,
		})
	}
	return items
}
