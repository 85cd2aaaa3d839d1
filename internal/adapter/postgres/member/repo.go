// Package member implements the Member repository using PostgreSQL.
package member

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/oneonone-backend/internal/adapter/postgres"
	"github.com/heartmarshall/oneonone-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides member persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new member repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const memberColumns = `id, name, department, position, meeting_interval_days, created_at, updated_at`

const createMemberSQL = `
INSERT INTO members (name, department, position, meeting_interval_days)
VALUES ($1, $2, $3, $4)
RETURNING ` + memberColumns

const getMemberSQL = `SELECT ` + memberColumns + ` FROM members WHERE id = $1`

const listMembersSQL = `SELECT ` + memberColumns + ` FROM members ORDER BY name, id`

const deleteMemberSQL = `DELETE FROM members WHERE id = $1`

const listWithLastMeetingSQL = `
SELECT m.id, m.name, m.meeting_interval_days, max(mt.meeting_date)
FROM members m
LEFT JOIN meetings mt ON mt.member_id = m.id
GROUP BY m.id, m.name, m.meeting_interval_days
ORDER BY m.name, m.id`

// Create inserts a new member and returns the persisted row.
// A non-positive interval is replaced by the documented default before insert.
func (r *Repo) Create(ctx context.Context, m *domain.Member) (*domain.Member, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	interval := m.MeetingIntervalDays
	if interval <= 0 {
		interval = domain.DefaultMeetingIntervalDays
	}

	row := querier.QueryRow(ctx, createMemberSQL,
		m.Name, ptrToPgText(m.Department), ptrToPgText(m.Position), interval)

	created, err := scanMember(row)
	if err != nil {
		return nil, postgres.MapError(err, "member", uuid.Nil)
	}
	return created, nil
}

// GetByID returns a member by primary key.
// Returns domain.ErrNotFound if the member does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanMember(querier.QueryRow(ctx, getMemberSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "member", id)
	}
	return m, nil
}

// List returns all members ordered by name.
// Returns an empty slice (not nil) when there are no members.
func (r *Repo) List(ctx context.Context) ([]*domain.Member, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listMembersSQL)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	members := []*domain.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("list members: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	return members, nil
}

// Update modifies a member using partial update params built with squirrel.
// Returns domain.ErrNotFound if the member does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.MemberUpdateParams) (*domain.Member, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	b := psql.Update("members").Set("updated_at", sq.Expr("now()")).Where(sq.Eq{"id": id})
	if params.Name != nil {
		b = b.Set("name", *params.Name)
	}
	if params.Department != nil {
		// ptr("") means clear (set NULL in DB).
		b = b.Set("department", emptyToNull(*params.Department))
	}
	if params.Position != nil {
		b = b.Set("position", emptyToNull(*params.Position))
	}
	if params.MeetingIntervalDays != nil {
		b = b.Set("meeting_interval_days", *params.MeetingIntervalDays)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update member: %w", err)
	}

	tag, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "member", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("member %s: %w", id, domain.ErrNotFound)
	}

	return r.GetByID(ctx, id)
}

// Delete removes a member. CASCADE deletes meetings, topics, and action items.
// Returns domain.ErrNotFound if the member does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteMemberSQL, id)
	if err != nil {
		return postgres.MapError(err, "member", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("member %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListWithLastMeeting returns every member paired with the date of their
// latest meeting (nil for members that never met), ordered by name.
func (r *Repo) ListWithLastMeeting(ctx context.Context) ([]domain.MemberLastMeeting, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listWithLastMeetingSQL)
	if err != nil {
		return nil, fmt.Errorf("list members with last meeting: %w", err)
	}
	defer rows.Close()

	result := []domain.MemberLastMeeting{}
	for rows.Next() {
		var (
			rec  domain.MemberLastMeeting
			last pgtype.Timestamptz
		)
		if err := rows.Scan(&rec.MemberID, &rec.MemberName, &rec.MeetingIntervalDays, &last); err != nil {
			return nil, fmt.Errorf("list members with last meeting: %w", err)
		}
		if last.Valid {
			d := last.Time.UTC()
			rec.LastDate = &d
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list members with last meeting: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanMember(row pgx.Row) (*domain.Member, error) {
	var (
		m          domain.Member
		department pgtype.Text
		position   pgtype.Text
	)
	err := row.Scan(&m.ID, &m.Name, &department, &position,
		&m.MeetingIntervalDays, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if department.Valid {
		m.Department = &department.String
	}
	if position.Valid {
		m.Position = &position.String
	}
	return &m, nil
}

// ---------------------------------------------------------------------------
// pgtype helpers
// ---------------------------------------------------------------------------

func ptrToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func emptyToNull(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}
