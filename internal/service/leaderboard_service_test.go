package service

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/codecoach-dev/codecoach-api/internal/models"
)

type stubUserRepo struct {
	users []models.User
	err   error
	calls int
}

func (s *stubUserRepo) ListByPoints(_ context.Context, _ int) ([]models.User, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.users, nil
}

func TestLeaderboardFallsBackOnError(t *testing.T) {
	repo := &stubUserRepo{err: errors.New("connection refused")}
	svc := NewLeaderboardService(repo, nil, time.Minute, zerolog.Nop())

	response := svc.List(context.Background(), "")
	require.Len(t, response.Items, 10)
	for idx, item := range response.Items {
		require.Equal(t, idx+1, item.Rank)
		if idx > 0 {
			require.LessOrEqual(t, item.Points, response.Items[idx-1].Points)
		}
	}
	require.Equal(t, "Ada Lovelace", response.Items[0].DisplayName)
}

func TestLeaderboardFallbackInsertsCurrentUser(t *testing.T) {
	svc := NewLeaderboardService(nil, nil, time.Minute, zerolog.Nop())

	response := svc.List(context.Background(), "Casey")
	require.Len(t, response.Items, 11)
	require.Equal(t, "Casey", response.Items[0].DisplayName)
	require.Equal(t, 1, response.Items[0].Rank)
	require.Equal(t, 2, response.Items[1].Rank)
}

func TestLeaderboardRanksDatabaseUsers(t *testing.T) {
	repo := &stubUserRepo{users: []models.User{
		{ID: 2, DisplayName: "Top", Points: 300, ProblemsSolved: 12},
		{ID: 5, Email: "runner.up@example.com", Points: 200, ProblemsSolved: 9},
		{ID: 9, Points: 100},
	}}
	svc := NewLeaderboardService(repo, nil, time.Minute, zerolog.Nop())

	response := svc.List(context.Background(), "")
	require.Len(t, response.Items, 3)
	require.Equal(t, 1, response.Items[0].Rank)
	require.Equal(t, "Top", response.Items[0].DisplayName)
	require.Equal(t, "runner.up", response.Items[1].DisplayName)
	require.Equal(t, "User 9", response.Items[2].DisplayName)
}

func TestLeaderboardFallsBackWhenEmpty(t *testing.T) {
	svc := NewLeaderboardService(&stubUserRepo{}, nil, time.Minute, zerolog.Nop())

	response := svc.List(context.Background(), "")
	require.Len(t, response.Items, 10)
}

func TestLeaderboardServesFromCache(t *testing.T) {
	server, err := miniredis.Run()
	require.NoError(t, err)
	defer server.Close()

	cache := redis.NewClient(&redis.Options{Addr: server.Addr()})
	repo := &stubUserRepo{users: []models.User{{ID: 1, DisplayName: "Solo", Points: 10}}}
	svc := NewLeaderboardService(repo, cache, time.Minute, zerolog.Nop())

	first := svc.List(context.Background(), "")
	require.Len(t, first.Items, 1)
	require.Equal(t, 1, repo.calls)

	second := svc.List(context.Background(), "")
	require.Len(t, second.Items, 1)
	require.Equal(t, 1, repo.calls, "second read must be served from cache")
}
