package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/anika/sprout/internal/engine"
)

func testSession(id, childID string, state engine.State) *engine.LearningSession {
	return &engine.LearningSession{
		ID:       id,
		ChildID:  childID,
		AgeGroup: engine.Ages6To9,
		Type:     engine.TypeLesson,
		Title:    "Fractions",
		Objectives: []engine.Objective{
			{Text: "Name halves", Completed: true},
			{Text: "Name quarters"},
		},
		Timing:        engine.TimingConfig{RecommendedDuration: 20, BreakDuration: 5, BreakInterval: 10},
		State:         state,
		TotalDuration: 90 * time.Second,
		CreatedAt:     time.Now().UTC().Truncate(time.Second),
	}
}

func TestPersistAndFetchRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	sess := testSession("s1", "c1", engine.StateActive)
	sess.InteractionCount = 7
	sess.AvgResponseTime = 2500 * time.Millisecond
	require.NoError(t, repo.Persist(ctx, sess))

	got, err := repo.FetchRecent(ctx, "c1", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)

	require.Equal(t, "s1", got[0].ID)
	require.Equal(t, engine.StateActive, got[0].State)
	require.Equal(t, engine.TypeLesson, got[0].Type)
	require.Equal(t, 90*time.Second, got[0].TotalDuration)
	require.Equal(t, 7, got[0].InteractionCount)
	require.Equal(t, 2500*time.Millisecond, got[0].AvgResponseTime)
	require.Len(t, got[0].Objectives, 2)
	require.True(t, got[0].Objectives[0].Completed)
	require.Equal(t, "Name quarters", got[0].Objectives[1].Text)
}

func TestPersist_Upsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	sess := testSession("s1", "c1", engine.StateActive)
	require.NoError(t, repo.Persist(ctx, sess))

	sess.State = engine.StateCompleted
	sess.TotalDuration = 20 * time.Minute
	sess.CompletionRate = 1.0
	sess.Objectives[1].Completed = true
	require.NoError(t, repo.Persist(ctx, sess))

	got, err := repo.FetchRecent(ctx, "c1", 10)
	require.NoError(t, err)
	require.Len(t, got, 1, "upsert must not duplicate rows")
	require.Equal(t, engine.StateCompleted, got[0].State)
	require.Equal(t, 20*time.Minute, got[0].TotalDuration)
	require.Equal(t, 1.0, got[0].CompletionRate)
	require.True(t, got[0].Objectives[1].Completed)
}

func TestFetchRecent_OrderAndLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i, id := range []string{"s1", "s2", "s3"} {
		sess := testSession(id, "c1", engine.StateCompleted)
		sess.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, repo.Persist(ctx, sess))
	}
	// Another child's session must not leak in.
	require.NoError(t, repo.Persist(ctx, testSession("other", "c2", engine.StateCompleted)))

	got, err := repo.FetchRecent(ctx, "c1", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "s3", got[0].ID)
	require.Equal(t, "s2", got[1].ID)
}

func TestFetchStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	done := testSession("s1", "c1", engine.StateCompleted)
	done.TotalDuration = 10 * time.Minute
	done.CompletionRate = 0.8
	done.InteractionCount = 12
	require.NoError(t, repo.Persist(ctx, done))

	perfect := testSession("s2", "c1", engine.StateCompleted)
	perfect.TotalDuration = 20 * time.Minute
	perfect.CompletionRate = 1.0
	perfect.InteractionCount = 8
	require.NoError(t, repo.Persist(ctx, perfect))

	quit := testSession("s3", "c1", engine.StateAbandoned)
	quit.TotalDuration = 2 * time.Minute
	require.NoError(t, repo.Persist(ctx, quit))

	stats, err := repo.FetchStats(ctx, "c1")
	require.NoError(t, err)

	require.Equal(t, 3, stats.TotalSessions)
	require.Equal(t, 2, stats.CompletedSessions)
	require.Equal(t, 1, stats.AbandonedSessions)
	require.Equal(t, 32*time.Minute, stats.TotalActive)
	require.Equal(t, 20, stats.TotalInteractions)
	require.InDelta(t, 0.9, stats.AvgCompletionRate, 1e-9)
}

func TestFetchStats_Empty(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()

	stats, err := repo.FetchStats(context.Background(), "nobody")
	require.NoError(t, err)
	require.Equal(t, 0, stats.TotalSessions)
	require.Equal(t, 0.0, stats.AvgCompletionRate)
}
