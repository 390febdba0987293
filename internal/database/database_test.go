package database

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"resumecraft/pkg/models"
)

// createTestDB creates a temporary test database
func createTestDB(t *testing.T) *sql.DB {
	// Create temp directory
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	// Open with pragmas
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	// Run migrations
	if err := RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

// setupTest sets up a test database and returns a cleanup function
func setupTest(t *testing.T) (oldDB *sql.DB, cleanup func()) {
	db := createTestDB(t)
	oldDB = DB
	DB = db

	return oldDB, func() {
		DB = oldDB
		db.Close()
	}
}

// TestSaveDraftAssignsIdentityOnce verifies that the first save assigns
// an identity and creation timestamp, and that a second save preserves
// both while advancing the update timestamp.
func TestSaveDraftAssignsIdentityOnce(t *testing.T) {
	_, cleanup := setupTest(t)
	defer cleanup()

	doc := models.NewResume()
	doc.Title = "My Draft"

	first := SaveDraft(doc)
	if first.ID == "" {
		t.Fatal("first save did not assign an identity")
	}
	if first.CreatedAt == "" || first.UpdatedAt == "" {
		t.Fatal("first save did not stamp timestamps")
	}

	time.Sleep(2 * time.Millisecond)

	second := SaveDraft(first)
	if second.ID != first.ID {
		t.Errorf("second save changed identity: %q -> %q", first.ID, second.ID)
	}
	if second.CreatedAt != first.CreatedAt {
		t.Errorf("second save changed creation timestamp: %q -> %q", first.CreatedAt, second.CreatedAt)
	}
	if second.UpdatedAt == first.UpdatedAt {
		t.Error("second save did not advance the update timestamp")
	}

	// Upsert, not insert: still a single draft row.
	drafts, err := ListDrafts()
	if err != nil {
		t.Fatalf("failed to list drafts: %v", err)
	}
	if len(drafts) != 1 {
		t.Errorf("expected 1 draft, got %d", len(drafts))
	}
}

// TestListDraftsOrder verifies most-recently-saved-first ordering.
func TestListDraftsOrder(t *testing.T) {
	_, cleanup := setupTest(t)
	defer cleanup()

	var last *models.Resume
	for i := 1; i <= 3; i++ {
		doc := models.NewResume()
		doc.Title = fmt.Sprintf("Draft %d", i)
		last = SaveDraft(doc)
		time.Sleep(2 * time.Millisecond)
	}

	drafts, err := ListDrafts()
	if err != nil {
		t.Fatalf("failed to list drafts: %v", err)
	}
	if len(drafts) != 3 {
		t.Fatalf("expected 3 drafts, got %d", len(drafts))
	}
	if drafts[0].ID != last.ID {
		t.Errorf("most recent draft not first: got %q", drafts[0].Title)
	}
	if drafts[2].Title != "Draft 1" {
		t.Errorf("oldest draft not last: got %q", drafts[2].Title)
	}
}

func TestGetDraft(t *testing.T) {
	_, cleanup := setupTest(t)
	defer cleanup()

	doc := models.NewResume()
	doc.Title = "Loadable"
	doc.Skills = append(doc.Skills, models.Skill{ID: "s1", Name: "Go", Level: models.LevelExpert})
	saved := SaveDraft(doc)

	loaded, err := GetDraft(saved.ID)
	if err != nil {
		t.Fatalf("failed to load draft: %v", err)
	}
	if loaded == nil {
		t.Fatal("draft not found")
	}
	if loaded.Title != "Loadable" || len(loaded.Skills) != 1 {
		t.Errorf("draft round trip lost data: %+v", loaded)
	}

	// Unknown identity yields nil without error.
	missing, err := GetDraft("nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown draft")
	}
}

// TestGetDraftRejectsCorruptPayload verifies schema validation guards
// draft loads.
func TestGetDraftRejectsCorruptPayload(t *testing.T) {
	_, cleanup := setupTest(t)
	defer cleanup()

	_, err := DB.Exec(`INSERT INTO drafts (id, payload, saved_at) VALUES (?, ?, ?)`,
		"bad", `{"title": 42}`, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		t.Fatalf("failed to seed corrupt draft: %v", err)
	}

	if _, err := GetDraft("bad"); err == nil {
		t.Error("expected validation error for corrupt payload")
	}
}

func TestDeleteDraft(t *testing.T) {
	_, cleanup := setupTest(t)
	defer cleanup()

	saved := SaveDraft(models.NewResume())
	if err := DeleteDraft(saved.ID); err != nil {
		t.Fatalf("failed to delete draft: %v", err)
	}

	loaded, err := GetDraft(saved.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded != nil {
		t.Error("draft should be gone after delete")
	}
}

func TestWorkspaceRoundTrip(t *testing.T) {
	_, cleanup := setupTest(t)
	defer cleanup()

	// Empty database: no workspace yet.
	doc, fetched, err := LoadWorkspace()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc != nil || fetched {
		t.Error("expected empty workspace")
	}

	saved := models.NewResume()
	saved.Title = "In Progress"
	if err := SaveWorkspace(saved, true); err != nil {
		t.Fatalf("failed to save workspace: %v", err)
	}

	doc, fetched, err = LoadWorkspace()
	if err != nil {
		t.Fatalf("failed to load workspace: %v", err)
	}
	if doc == nil || doc.Title != "In Progress" {
		t.Errorf("workspace document lost: %+v", doc)
	}
	if !fetched {
		t.Error("remote-fetched flag lost")
	}

	// Overwrite with a cleared flag (logout path).
	if err := SaveWorkspace(saved, false); err != nil {
		t.Fatalf("failed to overwrite workspace: %v", err)
	}
	_, fetched, _ = LoadWorkspace()
	if fetched {
		t.Error("remote-fetched flag should be cleared")
	}
}
