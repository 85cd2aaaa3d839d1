// Package topic implements the Topic repository using PostgreSQL.
// Topics are owned by meetings; the reconciliation engine inserts, updates,
// and deletes them in explicit sets inside one transaction.
package topic

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/oneonone-backend/internal/adapter/postgres"
	"github.com/heartmarshall/oneonone-backend/internal/domain"
)

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new topic repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const topicColumns = `id, meeting_id, category, title, notes, sort_order, created_at`

const insertTopicSQL = `
INSERT INTO topics (meeting_id, category, title, notes, sort_order)
VALUES ($1, $2, $3, $4, $5)`

const updateTopicSQL = `
UPDATE topics
SET category = $3, title = $4, notes = $5, sort_order = $6
WHERE id = $1 AND meeting_id = $2`

const deleteTopicsByIDsSQL = `
DELETE FROM topics WHERE meeting_id = $1 AND id = ANY($2::uuid[])`

const listByMeetingSQL = `
SELECT ` + topicColumns + `
FROM topics
WHERE meeting_id = $1
ORDER BY sort_order, created_at, id`

const listByMemberWithDatesSQL = `
SELECT t.id, t.meeting_id, t.category, t.title, t.notes, t.sort_order, t.created_at,
       m.meeting_date
FROM topics t
JOIN meetings m ON m.id = t.meeting_id
WHERE m.member_id = $1
ORDER BY m.meeting_date, t.sort_order`

// CreateBatch inserts all topics for a meeting in one round trip via SendBatch.
// A nil or empty slice is a no-op.
func (r *Repo) CreateBatch(ctx context.Context, meetingID uuid.UUID, topics []domain.Topic) error {
	if len(topics) == 0 {
		return nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, t := range topics {
		batch.Queue(insertTopicSQL, meetingID, t.Category, t.Title, t.Notes, t.SortOrder)
	}

	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	for range topics {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "topic", meetingID)
		}
	}

	return nil
}

// Update rewrites a topic's category, title, notes, and sort order in place,
// scoped to the owning meeting so a stray id cannot touch another meeting's
// children. Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) Update(ctx context.Context, t domain.Topic) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateTopicSQL, t.ID, t.MeetingID, t.Category, t.Title, t.Notes, t.SortOrder)
	if err != nil {
		return postgres.MapError(err, "topic", t.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic %s: %w", t.ID, domain.ErrNotFound)
	}

	return nil
}

// DeleteByIDs removes the listed topics, scoped to one meeting so a stray id
// cannot touch another meeting's children. Ids that do not exist are ignored:
// the deletion list expresses caller intent, not a precondition.
func (r *Repo) DeleteByIDs(ctx context.Context, meetingID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteTopicsByIDsSQL, meetingID, ids); err != nil {
		return postgres.MapError(err, "topic", meetingID)
	}

	return nil
}

// ListByMeeting returns a meeting's topics in display order.
// Returns an empty slice (not nil) when the meeting has no topics.
func (r *Repo) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]domain.Topic, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByMeetingSQL, meetingID)
	if err != nil {
		return nil, fmt.Errorf("list topics by meeting: %w", err)
	}
	defer rows.Close()

	topics := []domain.Topic{}
	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, fmt.Errorf("list topics by meeting: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list topics by meeting: %w", err)
	}

	return topics, nil
}

// ListByMemberWithDates returns every topic of a member's meetings paired
// with the meeting date, ordered by date. Feeds the topic trend aggregation.
func (r *Repo) ListByMemberWithDates(ctx context.Context, memberID uuid.UUID) ([]domain.TopicWithDate, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByMemberWithDatesSQL, memberID)
	if err != nil {
		return nil, fmt.Errorf("list topics by member: %w", err)
	}
	defer rows.Close()

	result := []domain.TopicWithDate{}
	for rows.Next() {
		var rec domain.TopicWithDate
		err := rows.Scan(&rec.Topic.ID, &rec.Topic.MeetingID, &rec.Topic.Category,
			&rec.Topic.Title, &rec.Topic.Notes, &rec.Topic.SortOrder,
			&rec.Topic.CreatedAt, &rec.MeetingDate)
		if err != nil {
			return nil, fmt.Errorf("list topics by member: %w", err)
		}
		rec.MeetingDate = rec.MeetingDate.UTC()
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list topics by member: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanTopic(rows pgx.Rows) (domain.Topic, error) {
	var t domain.Topic
	err := rows.Scan(&t.ID, &t.MeetingID, &t.Category, &t.Title, &t.Notes,
		&t.SortOrder, &t.CreatedAt)
	if err != nil {
		return domain.Topic{}, err
	}
	return t, nil
}
