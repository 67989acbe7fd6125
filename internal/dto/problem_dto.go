package dto

// ProblemResponse is one practice exercise as rendered in the catalog.
type ProblemResponse struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Statement  string      `json:"statement,omitempty"`
	Difficulty string      `json:"difficulty"`
	Tags       []string    `json:"tags"`
	Examples   interface{} `json:"examples,omitempty"`
}

// ProblemListResponse is a filtered, paginated page of the catalog.
type ProblemListResponse struct {
	Items    []ProblemResponse `json:"items"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}
