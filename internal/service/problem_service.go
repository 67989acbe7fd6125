package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"

	"github.com/codecoach-dev/codecoach-api/internal/catalog"
	"github.com/codecoach-dev/codecoach-api/internal/dto"
	"github.com/codecoach-dev/codecoach-api/internal/models"
	"github.com/codecoach-dev/codecoach-api/internal/repository"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ProblemQuery narrows and paginates the catalog listing.
type ProblemQuery struct {
	Tag        string
	Difficulty string
	Page       int
	PageSize   int
}

// ProblemService serves the problem catalog with a static fallback, so the
// caller sees uniform filtering and pagination regardless of backend state.
type ProblemService interface {
	List(ctx context.Context, query ProblemQuery) dto.ProblemListResponse
}

type problemService struct {
	// problems is nil when no database is configured.
	problems repository.ProblemRepository
	logger   zerolog.Logger
}

// NewProblemService constructs the catalog reader.
func NewProblemService(problems repository.ProblemRepository, logger zerolog.Logger) ProblemService {
	return &problemService{
		problems: problems,
		logger:   logger.With().Str("component", "problem_service").Logger(),
	}
}

func (s *problemService) List(ctx context.Context, query ProblemQuery) dto.ProblemListResponse {
	query = normalizeQuery(query)

	items, ok := s.fromDatabase(ctx, query)
	if !ok {
		items = s.fromCatalog(query)
	}

	items = filterByTag(items, query.Tag)
	return dto.ProblemListResponse{
		Items:    paginate(items, query.Page, query.PageSize),
		Page:     query.Page,
		PageSize: query.PageSize,
	}
}

func (s *problemService) fromDatabase(ctx context.Context, query ProblemQuery) ([]dto.ProblemResponse, bool) {
	if s.problems == nil {
		return nil, false
	}

	problems, err := s.problems.List(ctx, query.Difficulty)
	if err != nil {
		s.logger.Warn().Err(err).Msg("problem query failed, serving bundled catalog")
		return nil, false
	}

	items := make([]dto.ProblemResponse, 0, len(problems))
	for _, problem := range problems {
		items = append(items, toProblemResponse(problem))
	}
	return items, true
}

func (s *problemService) fromCatalog(query ProblemQuery) []dto.ProblemResponse {
	bundled, err := catalog.Problems()
	if err != nil {
		s.logger.Error().Err(err).Msg("bundled catalog is unreadable")
		return []dto.ProblemResponse{}
	}

	if query.Difficulty == "" {
		return bundled
	}

	filtered := make([]dto.ProblemResponse, 0, len(bundled))
	for _, problem := range bundled {
		if problem.Difficulty == query.Difficulty {
			filtered = append(filtered, problem)
		}
	}
	return filtered
}

func toProblemResponse(problem models.Problem) dto.ProblemResponse {
	response := dto.ProblemResponse{
		ID:         problem.ID,
		Title:      problem.Title,
		Statement:  problem.Statement,
		Difficulty: problem.Difficulty,
		Tags:       []string{},
	}

	if len(problem.Tags) > 0 {
		_ = json.Unmarshal(problem.Tags, &response.Tags)
	}
	if len(problem.Examples) > 0 {
		_ = json.Unmarshal(problem.Examples, &response.Examples)
	}

	return response
}

func filterByTag(items []dto.ProblemResponse, tag string) []dto.ProblemResponse {
	if tag == "" {
		return items
	}

	filtered := make([]dto.ProblemResponse, 0, len(items))
	for _, item := range items {
		for _, candidate := range item.Tags {
			if strings.EqualFold(candidate, tag) {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered
}

func paginate(items []dto.ProblemResponse, page, pageSize int) []dto.ProblemResponse {
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []dto.ProblemResponse{}
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func normalizeQuery(query ProblemQuery) ProblemQuery {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.PageSize <= 0 {
		query.PageSize = defaultPageSize
	}
	if query.PageSize > maxPageSize {
		query.PageSize = maxPageSize
	}
	return query
}
