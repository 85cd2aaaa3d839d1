package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	member := SeedMember(t, pool)

	// Verify member exists in DB via SELECT.
	var name string
	err := pool.QueryRow(
		context.Background(),
		`SELECT name FROM members WHERE id = $1`,
		member.ID,
	).Scan(&name)
	if err != nil {
		t.Fatalf("expected member in DB, got error: %v", err)
	}

	if name != member.Name {
		t.Fatalf("expected name %q, got %q", member.Name, name)
	}
}
