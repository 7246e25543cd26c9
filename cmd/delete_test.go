package cmd

import (
	"testing"

	"github.com/iksnae/trainlog/testutil"
)

func TestDeleteCommand(t *testing.T) {
	db := testDBPath(t)
	store := openTestStore(t, db)
	testutil.SeedStore(t, store,
		testutil.NewPlannedSession("s1", "2026-02-23"),
		testutil.NewPlannedSession("s2", "2026-02-24"))

	if err := runCommand(t, "delete", "--db", db, "s1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	sessions, err := store.ListAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 1 || sessions[0].ID != "s2" {
		t.Errorf("store after delete: %+v", sessions)
	}
}

func TestDeleteCommand_RequiresID(t *testing.T) {
	if err := runCommand(t, "delete", "--db", testDBPath(t)); err == nil {
		t.Error("delete without id accepted")
	}
}
