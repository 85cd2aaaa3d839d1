// Package actionitem implements the ActionItem repository using PostgreSQL.
// Action items belong to a member and optionally originate from a meeting;
// status and completed_at are written only through UpdateStatus.
package actionitem

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

// Repo provides action item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new action item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const actionItemColumns = `id, member_id, meeting_id, title, description, status, due_date, completed_at, sort_order, created_at, updated_at`

const insertActionItemSQL = `
INSERT INTO action_items (member_id, meeting_id, title, description, status, due_date, sort_order)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const getActionItemSQL = `SELECT ` + actionItemColumns + ` FROM action_items WHERE id = $1`

const updateStatusSQL = `
UPDATE action_items
SET status = $2, completed_at = $3, updated_at = now()
WHERE id = $1
RETURNING ` + actionItemColumns

const deleteByIDsSQL = `
DELETE FROM action_items WHERE meeting_id = $1 AND id = ANY($2::uuid[])`

const listByMeetingSQL = `
SELECT ` + actionItemColumns + `
FROM action_items
WHERE meeting_id = $1
ORDER BY sort_order, created_at, id`

const listByMemberSQL = `
SELECT ` + actionItemColumns + `
FROM action_items
WHERE member_id = $1
ORDER BY created_at, id`

// CreateBatch inserts action items in one round trip via SendBatch.
// Every item must already carry the owning member id (the engine resolves it
// from the meeting row, never from client input). A nil or empty slice is a
// no-op.
func (r *Repo) CreateBatch(ctx context.Context, items []domain.ActionItem) error {
	if len(items) == 0 {
		return nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(insertActionItemSQL,
			it.MemberID, ptrToPgUUID(it.MeetingID), it.Title, ptrToPgText(it.Description),
			it.Status, ptrToPgTimestamptz(it.DueDate), it.SortOrder)
	}

	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	for _, it := range items {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "action_item", it.MemberID)
		}
	}

	return nil
}

// GetByID returns an action item by primary key.
// Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ActionItem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	item, err := scanActionItem(querier.QueryRow(ctx, getActionItemSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "action_item", id)
	}
	return item, nil
}

// Update modifies the edit-form fields of an action item using partial
// update params built with squirrel. Status and completed_at are never
// touched here. Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ActionItemUpdateParams) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	b := psql.Update("action_items").Set("updated_at", sq.Expr("now()")).Where(sq.Eq{"id": id})
	if params.Title != nil {
		b = b.Set("title", *params.Title)
	}
	if params.Description != nil {
		// ptr("") means clear (set NULL in DB).
		b = b.Set("description", emptyToNull(*params.Description))
	}
	if params.DueDate != nil {
		b = b.Set("due_date", *params.DueDate)
	} else if params.ClearDue {
		b = b.Set("due_date", nil)
	}
	if params.SortOrder != nil {
		b = b.Set("sort_order", *params.SortOrder)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build update action item: %w", err)
	}

	tag, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "action_item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("action_item %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// UpdateStatus writes the status/completed_at pair atomically and returns
// the updated row. Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ActionItemStatus, completedAt *time.Time) (*domain.ActionItem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, updateStatusSQL, id, status, ptrToPgTimestamptz(completedAt))

	item, err := scanActionItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "action_item", id)
	}
	return item, nil
}

// DeleteByIDs removes the listed action items, scoped to one meeting so a
// stray id cannot touch items from another meeting. Ids that do not exist
// are ignored.
func (r *Repo) DeleteByIDs(ctx context.Context, meetingID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteByIDsSQL, meetingID, ids); err != nil {
		return postgres.MapError(err, "action_item", meetingID)
	}

	return nil
}

// ListByMeeting returns a meeting's action items in display order.
// Returns an empty slice (not nil) when the meeting has no items.
func (r *Repo) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]domain.ActionItem, error) {
	return r.list(ctx, listByMeetingSQL, meetingID, "list action items by meeting")
}

// ListByMember returns all of a member's action items ordered by creation
// time. Feeds the cross-meeting pending list and the trend aggregation.
func (r *Repo) ListByMember(ctx context.Context, memberID uuid.UUID) ([]domain.ActionItem, error) {
	return r.list(ctx, listByMemberSQL, memberID, "list action items by member")
}

func (r *Repo) list(ctx context.Context, query string, id uuid.UUID, op string) ([]domain.ActionItem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := []domain.ActionItem{}
	for rows.Next() {
		item, err := scanActionItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanActionItem(row pgx.Row) (*domain.ActionItem, error) {
	var (
		item        domain.ActionItem
		meetingID   pgtype.UUID
		description pgtype.Text
		dueDate     pgtype.Timestamptz
		completedAt pgtype.Timestamptz
	)
	err := row.Scan(&item.ID, &item.MemberID, &meetingID, &item.Title, &description,
		&item.Status, &dueDate, &completedAt, &item.SortOrder,
		&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if meetingID.Valid {
		id := uuid.UUID(meetingID.Bytes)
		item.MeetingID = &id
	}
	if description.Valid {
		item.Description = &description.String
	}
	if dueDate.Valid {
		t := dueDate.Time.UTC()
		item.DueDate = &t
	}
	if completedAt.Valid {
		t := completedAt.Time.UTC()
		item.CompletedAt = &t
	}
	return &item, nil
}

// ---------------------------------------------------------------------------
// pgtype helpers
// ---------------------------------------------------------------------------

func ptrToPgUUID(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func ptrToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func ptrToPgTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

func emptyToNull(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}
