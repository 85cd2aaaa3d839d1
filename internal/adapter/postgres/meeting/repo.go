// Package meeting implements the Meeting repository using PostgreSQL.
package meeting

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/oneonone-backend/internal/adapter/postgres"
	"github.com/heartmarshall/oneonone-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides meeting persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new meeting repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const meetingColumns = `id, member_id, meeting_date, started_at, ended_at, mood, created_at, updated_at`

const createMeetingSQL = `
INSERT INTO meetings (member_id, meeting_date, started_at, ended_at, mood)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + meetingColumns

const getMeetingSQL = `SELECT ` + meetingColumns + ` FROM meetings WHERE id = $1`

const listByMemberSQL = `
SELECT ` + meetingColumns + `
FROM meetings
WHERE member_id = $1
ORDER BY meeting_date DESC, id`

const deleteMeetingSQL = `DELETE FROM meetings WHERE id = $1`

const listDatesSinceSQL = `
SELECT member_id, meeting_date
FROM meetings
WHERE meeting_date >= $1
ORDER BY meeting_date`

// Create inserts a new meeting and returns the persisted row.
func (r *Repo) Create(ctx context.Context, m *domain.Meeting) (*domain.Meeting, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createMeetingSQL,
		m.MemberID, m.Date, ptrToPgTimestamptz(m.StartedAt), ptrToPgTimestamptz(m.EndedAt), ptrToPgInt4(m.Mood))

	created, err := scanMeeting(row)
	if err != nil {
		return nil, postgres.MapError(err, "meeting", uuid.Nil)
	}
	return created, nil
}

// GetByID returns a meeting row by primary key (children not loaded).
// Returns domain.ErrNotFound if the meeting does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanMeeting(querier.QueryRow(ctx, getMeetingSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "meeting", id)
	}
	return m, nil
}

// Update modifies meeting fields using partial update params built with
// squirrel. Returns domain.ErrNotFound if the meeting does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.MeetingUpdateParams) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	b := psql.Update("meetings").Set("updated_at", sq.Expr("now()")).Where(sq.Eq{"id": id})
	if params.Date != nil {
		b = b.Set("meeting_date", *params.Date)
	}
	if params.StartedAt != nil {
		b = b.Set("started_at", *params.StartedAt)
	}
	if params.EndedAt != nil {
		b = b.Set("ended_at", *params.EndedAt)
	}
	if params.Mood != nil {
		b = b.Set("mood", *params.Mood)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build update meeting: %w", err)
	}

	tag, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "meeting", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("meeting %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a meeting. CASCADE deletes its topics and the action items
// that originated from it. Returns domain.ErrNotFound if the meeting does
// not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteMeetingSQL, id)
	if err != nil {
		return postgres.MapError(err, "meeting", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("meeting %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListByMember returns all meetings of a member, most recent first.
// Returns an empty slice (not nil) when the member has no meetings.
func (r *Repo) ListByMember(ctx context.Context, memberID uuid.UUID) ([]*domain.Meeting, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByMemberSQL, memberID)
	if err != nil {
		return nil, fmt.Errorf("list meetings by member: %w", err)
	}
	defer rows.Close()

	meetings := []*domain.Meeting{}
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, fmt.Errorf("list meetings by member: %w", err)
		}
		meetings = append(meetings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list meetings by member: %w", err)
	}

	return meetings, nil
}

// ListDatesSince returns raw (member_id, meeting_date) rows for meetings on
// or after the given instant, ordered by date ascending. The frequency and
// heatmap aggregations bucket these rows in memory.
func (r *Repo) ListDatesSince(ctx context.Context, since time.Time) ([]domain.MemberMeetingDate, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listDatesSinceSQL, since)
	if err != nil {
		return nil, fmt.Errorf("list meeting dates: %w", err)
	}
	defer rows.Close()

	result := []domain.MemberMeetingDate{}
	for rows.Next() {
		var rec domain.MemberMeetingDate
		if err := rows.Scan(&rec.MemberID, &rec.Date); err != nil {
			return nil, fmt.Errorf("list meeting dates: %w", err)
		}
		rec.Date = rec.Date.UTC()
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list meeting dates: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanMeeting(row pgx.Row) (*domain.Meeting, error) {
	var (
		m         domain.Meeting
		startedAt pgtype.Timestamptz
		endedAt   pgtype.Timestamptz
		mood      pgtype.Int4
	)
	err := row.Scan(&m.ID, &m.MemberID, &m.Date, &startedAt, &endedAt, &mood,
		&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	m.Date = m.Date.UTC()
	if startedAt.Valid {
		t := startedAt.Time.UTC()
		m.StartedAt = &t
	}
	if endedAt.Valid {
		t := endedAt.Time.UTC()
		m.EndedAt = &t
	}
	if mood.Valid {
		v := int(mood.Int32)
		m.Mood = &v
	}
	return &m, nil
}

// ---------------------------------------------------------------------------
// pgtype helpers
// ---------------------------------------------------------------------------

func ptrToPgTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

func ptrToPgInt4(v *int) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: int32(*v), Valid: true}
}
