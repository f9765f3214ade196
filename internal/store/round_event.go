package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const roundEventsTable = "round_events"

type roundRepo struct {
	drv *entsql.Driver
}

func (r *roundRepo) AppendRound(ctx context.Context, data RoundEventData) error {
	ts := data.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(roundEventsTable).
		Columns("session_id", "level", "correct", "selected", "correct_index", "options", "streak", "degraded", "timestamp").
		Values(data.SessionID, data.Level, boolInt(data.Correct), data.Selected, data.CorrectIndex, data.Options, data.Streak, boolInt(data.Degraded), ts.UnixMilli()).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("append round event: %w", err)
	}
	return nil
}

func (r *roundRepo) LevelTallies(ctx context.Context, sessionID string) ([]LevelTally, error) {
	t := entsql.Table(roundEventsTable)
	query, args := entsql.Dialect(dialect.SQLite).
		Select(
			t.C("level"),
			entsql.As(entsql.Count("*"), "rounds"),
			entsql.As(entsql.Sum(t.C("correct")), "correct"),
		).
		From(t).
		Where(entsql.EQ(t.C("session_id"), sessionID)).
		GroupBy(t.C("level")).
		OrderBy(t.C("level")).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query level tallies: %w", err)
	}
	defer rows.Close()

	var tallies []LevelTally
	for rows.Next() {
		var lt LevelTally
		if err := rows.Scan(&lt.Level, &lt.Rounds, &lt.Correct); err != nil {
			return nil, fmt.Errorf("scan level tally: %w", err)
		}
		tallies = append(tallies, lt)
	}
	return tallies, rows.Err()
}

func (r *roundRepo) RecentRounds(ctx context.Context, sessionID string, limit int) ([]RoundEventData, error) {
	t := entsql.Table(roundEventsTable)
	sel := entsql.Dialect(dialect.SQLite).
		Select(
			t.C("session_id"), t.C("level"), t.C("correct"), t.C("selected"),
			t.C("correct_index"), t.C("options"), t.C("streak"), t.C("degraded"), t.C("timestamp"),
		).
		From(t).
		Where(entsql.EQ(t.C("session_id"), sessionID)).
		OrderBy(entsql.Desc(t.C("id")))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query recent rounds: %w", err)
	}
	defer rows.Close()

	var events []RoundEventData
	for rows.Next() {
		var (
			e                 RoundEventData
			correct, degraded int
			ts                int64
		)
		if err := rows.Scan(&e.SessionID, &e.Level, &correct, &e.Selected, &e.CorrectIndex, &e.Options, &e.Streak, &degraded, &ts); err != nil {
			return nil, fmt.Errorf("scan round event: %w", err)
		}
		e.Correct = correct != 0
		e.Degraded = degraded != 0
		e.Timestamp = time.UnixMilli(ts)
		events = append(events, e)
	}
	return events, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
