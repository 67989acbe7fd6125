package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/codecoach-dev/codecoach-api/internal/models"
)

type stubProblemRepo struct {
	problems []models.Problem
	err      error
}

func (s *stubProblemRepo) List(_ context.Context, difficulty string) ([]models.Problem, error) {
	if s.err != nil {
		return nil, s.err
	}
	if difficulty == "" {
		return s.problems, nil
	}
	var filtered []models.Problem
	for _, problem := range s.problems {
		if problem.Difficulty == difficulty {
			filtered = append(filtered, problem)
		}
	}
	return filtered, nil
}

func TestProblemsFallbackFiltersDifficultyAndPageSize(t *testing.T) {
	svc := NewProblemService(nil, zerolog.Nop())

	response := svc.List(context.Background(), ProblemQuery{Difficulty: "Easy", PageSize: 2})
	require.LessOrEqual(t, len(response.Items), 2)
	require.NotEmpty(t, response.Items)
	for _, item := range response.Items {
		require.Equal(t, "Easy", item.Difficulty)
	}
	require.Equal(t, 1, response.Page)
	require.Equal(t, 2, response.PageSize)
}

func TestProblemsFallbackFiltersTag(t *testing.T) {
	svc := NewProblemService(nil, zerolog.Nop())

	response := svc.List(context.Background(), ProblemQuery{Tag: "stack"})
	require.NotEmpty(t, response.Items)
	for _, item := range response.Items {
		require.Contains(t, item.Tags, "stack")
	}
}

func TestProblemsFallbackPaginatesBeyondEnd(t *testing.T) {
	svc := NewProblemService(nil, zerolog.Nop())

	response := svc.List(context.Background(), ProblemQuery{Page: 99, PageSize: 10})
	require.Empty(t, response.Items)
	require.Equal(t, 99, response.Page)
}

func TestProblemsDatabaseErrorFallsBack(t *testing.T) {
	repo := &stubProblemRepo{err: errors.New("connection refused")}
	svc := NewProblemService(repo, zerolog.Nop())

	response := svc.List(context.Background(), ProblemQuery{Difficulty: "Easy", PageSize: 2})
	require.LessOrEqual(t, len(response.Items), 2)
	require.NotEmpty(t, response.Items)
	for _, item := range response.Items {
		require.Equal(t, "Easy", item.Difficulty)
	}
}

func TestProblemsServedFromDatabase(t *testing.T) {
	repo := &stubProblemRepo{problems: []models.Problem{
		{
			ID:         "fizz-buzz",
			Title:      "Fizz Buzz",
			Difficulty: "Easy",
			Tags:       datatypes.JSON([]byte(`["math","string"]`)),
		},
		{
			ID:         "n-queens",
			Title:      "N-Queens",
			Difficulty: "Hard",
			Tags:       datatypes.JSON([]byte(`["backtracking"]`)),
		},
	}}
	svc := NewProblemService(repo, zerolog.Nop())

	response := svc.List(context.Background(), ProblemQuery{Tag: "math"})
	require.Len(t, response.Items, 1)
	require.Equal(t, "fizz-buzz", response.Items[0].ID)
	require.Equal(t, []string{"math", "string"}, response.Items[0].Tags)
}

func TestProblemsPageSizeClamped(t *testing.T) {
	svc := NewProblemService(nil, zerolog.Nop())

	response := svc.List(context.Background(), ProblemQuery{PageSize: 10_000})
	require.Equal(t, maxPageSize, response.PageSize)
}
