package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/anika/sprout/internal/engine"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// SessionRepo persists learning sessions. It implements engine.Repository.
type SessionRepo struct {
	db *sql.DB
}

var _ engine.Repository = (*SessionRepo)(nil)

// objectiveRecord is the serialized form of an objective.
type objectiveRecord struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Persist upserts the session row. The engine calls this optimistically
// after every transition; a failed write never affects the in-memory state.
func (r *SessionRepo) Persist(ctx context.Context, s *engine.LearningSession) error {
	objectives, err := marshalObjectives(s.Objectives)
	if err != nil {
		return fmt.Errorf("marshal objectives: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO sessions (
	id, child_id, age_group, type, title, description, state, objectives,
	recommended_min, break_min, break_interval_min,
	total_duration_secs, interaction_count, completion_rate, avg_response_ms,
	created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	state               = excluded.state,
	objectives          = excluded.objectives,
	total_duration_secs = excluded.total_duration_secs,
	interaction_count   = excluded.interaction_count,
	completion_rate     = excluded.completion_rate,
	avg_response_ms     = excluded.avg_response_ms,
	updated_at          = excluded.updated_at
`,
		s.ID, s.ChildID, string(s.AgeGroup), string(s.Type), s.Title, s.Description,
		string(s.State), objectives,
		s.Timing.RecommendedDuration, s.Timing.BreakDuration, s.Timing.BreakInterval,
		int64(s.TotalDuration.Seconds()), s.InteractionCount, s.CompletionRate,
		s.AvgResponseTime.Milliseconds(),
		s.CreatedAt.UTC(), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

// FetchRecent returns the child's most recent sessions, newest first.
func (r *SessionRepo) FetchRecent(ctx context.Context, childID string, limit int) ([]*engine.LearningSession, error) {
	query := sqlBuilder.
		Select("id", "child_id", "age_group", "type", "title", "description",
			"state", "objectives", "recommended_min", "break_min", "break_interval_min",
			"total_duration_secs", "interaction_count", "completion_rate",
			"avg_response_ms", "created_at").
		From("sessions").
		OrderBy("created_at DESC")

	if childID != "" {
		query = query.Where(squirrel.Eq{"child_id": childID})
	}
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*engine.LearningSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// FetchStats aggregates the child's session history.
func (r *SessionRepo) FetchStats(ctx context.Context, childID string) (*engine.ChildStats, error) {
	query := sqlBuilder.
		Select(
			"COUNT(*)",
			"COALESCE(SUM(CASE WHEN state = 'completed' THEN 1 ELSE 0 END), 0)",
			"COALESCE(SUM(CASE WHEN state = 'abandoned' THEN 1 ELSE 0 END), 0)",
			"COALESCE(SUM(total_duration_secs), 0)",
			"COALESCE(SUM(interaction_count), 0)",
			"COALESCE(AVG(CASE WHEN state = 'completed' THEN completion_rate END), 0)",
		).
		From("sessions")

	if childID != "" {
		query = query.Where(squirrel.Eq{"child_id": childID})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var stats engine.ChildStats
	var totalSecs int64
	err = r.db.QueryRowContext(ctx, sqlStr, args...).Scan(
		&stats.TotalSessions,
		&stats.CompletedSessions,
		&stats.AbandonedSessions,
		&totalSecs,
		&stats.TotalInteractions,
		&stats.AvgCompletionRate,
	)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	stats.TotalActive = time.Duration(totalSecs) * time.Second
	return &stats, nil
}

func scanSession(rows *sql.Rows) (*engine.LearningSession, error) {
	var (
		s            engine.LearningSession
		ageGroup     string
		sessionType  string
		state        string
		objectives   string
		durationSecs int64
		avgMs        int64
	)
	err := rows.Scan(
		&s.ID, &s.ChildID, &ageGroup, &sessionType, &s.Title, &s.Description,
		&state, &objectives,
		&s.Timing.RecommendedDuration, &s.Timing.BreakDuration, &s.Timing.BreakInterval,
		&durationSecs, &s.InteractionCount, &s.CompletionRate, &avgMs,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan session: %w", err)
	}

	s.AgeGroup = engine.AgeGroup(ageGroup)
	s.Type = engine.SessionType(sessionType)
	s.State = engine.State(state)
	s.TotalDuration = time.Duration(durationSecs) * time.Second
	s.AvgResponseTime = time.Duration(avgMs) * time.Millisecond

	var records []objectiveRecord
	if err := json.Unmarshal([]byte(objectives), &records); err != nil {
		return nil, fmt.Errorf("unmarshal objectives: %w", err)
	}
	for _, rec := range records {
		s.Objectives = append(s.Objectives, engine.Objective{Text: rec.Text, Completed: rec.Completed})
	}

	return &s, nil
}

func marshalObjectives(objectives []engine.Objective) (string, error) {
	records := make([]objectiveRecord, 0, len(objectives))
	for _, o := range objectives {
		records = append(records, objectiveRecord{Text: o.Text, Completed: o.Completed})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
