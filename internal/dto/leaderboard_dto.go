package dto

// LeaderboardEntry is one ranked row. Rank is the 1-based position in the
// points-descending ordering.
type LeaderboardEntry struct {
	Rank           int    `json:"rank"`
	UserID         string `json:"userId"`
	DisplayName    string `json:"displayName"`
	Email          string `json:"email,omitempty"`
	Points         int    `json:"points"`
	ProblemsSolved int    `json:"problemsSolved"`
}

// LeaderboardResponse wraps the ranked entries.
type LeaderboardResponse struct {
	Items []LeaderboardEntry `json:"items"`
}
