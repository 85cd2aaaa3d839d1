package topic_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/oneonone-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/oneonone-backend/internal/adapter/postgres/topic"
	"github.com/heartmarshall/oneonone-backend/internal/domain"
)

func TestRepo_CreateBatchAndList(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := topic.New(pool)
	ctx := context.Background()

	m := testhelper.SeedMember(t, pool)
	meeting := testhelper.SeedMeeting(t, pool, m.ID, time.Now().UTC())

	err := repo.CreateBatch(ctx, meeting.ID, []domain.Topic{
		{Category: domain.TopicCategoryCareer, Title: "Growth plan", SortOrder: 1},
		{Category: domain.TopicCategoryWorkProgress, Title: "Sprint review", Notes: "went well", SortOrder: 0},
	})
	if err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	topics, err := repo.ListByMeeting(ctx, meeting.ID)
	if err != nil {
		t.Fatalf("ListByMeeting: %v", err)
	}
	if len(topics) != 2 {
		t.Fatalf("got %d topics, want 2", len(topics))
	}
	if topics[0].Title != "Sprint review" || topics[1].Title != "Growth plan" {
		t.Errorf("sort order: got [%q %q]", topics[0].Title, topics[1].Title)
	}
	if topics[0].Notes != "went well" {
		t.Errorf("notes: got %q", topics[0].Notes)
	}
}

func TestRepo_CreateBatch_Empty(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := topic.New(pool)

	if err := repo.CreateBatch(context.Background(), uuid.New(), nil); err != nil {
		t.Fatalf("empty batch must be a no-op, got %v", err)
	}
}

func TestRepo_Update_ScopedToMeeting(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := topic.New(pool)
	ctx := context.Background()

	m := testhelper.SeedMember(t, pool)
	owner := testhelper.SeedMeeting(t, pool, m.ID, time.Now().UTC())
	other := testhelper.SeedMeeting(t, pool, m.ID, time.Now().UTC().Add(-24*time.Hour))
	seeded := testhelper.SeedTopic(t, pool, owner.ID, 0)

	updated := seeded
	updated.Category = domain.TopicCategoryFeedback
	updated.Title = "Renamed"
	updated.Notes = "updated notes"
	if err := repo.Update(ctx, updated); err != nil {
		t.Fatalf("Update: %v", err)
	}

	topics, err := repo.ListByMeeting(ctx, owner.ID)
	if err != nil {
		t.Fatalf("ListByMeeting: %v", err)
	}
	if len(topics) != 1 || topics[0].Title != "Renamed" || topics[0].Category != domain.TopicCategoryFeedback {
		t.Errorf("got %+v", topics)
	}

	// Same id under the wrong meeting must not match anything.
	spoofed := updated
	spoofed.MeetingID = other.ID
	if err := repo.Update(ctx, spoofed); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("cross-meeting update: expected ErrNotFound, got %v", err)
	}
}

func TestRepo_DeleteByIDs(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := topic.New(pool)
	ctx := context.Background()

	m := testhelper.SeedMember(t, pool)
	meeting := testhelper.SeedMeeting(t, pool, m.ID, time.Now().UTC())
	keep := testhelper.SeedTopic(t, pool, meeting.ID, 0)
	doomed := testhelper.SeedTopic(t, pool, meeting.ID, 1)

	// Unknown ids in the list are ignored, not an error.
	if err := repo.DeleteByIDs(ctx, meeting.ID, []uuid.UUID{doomed.ID, uuid.New()}); err != nil {
		t.Fatalf("DeleteByIDs: %v", err)
	}

	topics, err := repo.ListByMeeting(ctx, meeting.ID)
	if err != nil {
		t.Fatalf("ListByMeeting: %v", err)
	}
	if len(topics) != 1 || topics[0].ID != keep.ID {
		t.Errorf("got %+v, want only the kept topic", topics)
	}
}

func TestRepo_ListByMemberWithDates(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := topic.New(pool)
	ctx := context.Background()

	m := testhelper.SeedMember(t, pool)
	jan := testhelper.SeedMeeting(t, pool, m.ID, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC))
	feb := testhelper.SeedMeeting(t, pool, m.ID, time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC))
	testhelper.SeedTopic(t, pool, feb.ID, 0)
	testhelper.SeedTopic(t, pool, jan.ID, 0)

	rows, err := repo.ListByMemberWithDates(ctx, m.ID)
	if err != nil {
		t.Fatalf("ListByMemberWithDates: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if !rows[0].MeetingDate.Before(rows[1].MeetingDate) {
		t.Errorf("rows must be ordered by meeting date: %v then %v", rows[0].MeetingDate, rows[1].MeetingDate)
	}
	if rows[0].Topic.MeetingID != jan.ID {
		t.Errorf("first row must come from the January meeting")
	}
}
