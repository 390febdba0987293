package database

import (
	"database/sql"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"resumecraft/pkg/models"
)

// Draft operations
//
// Drafts make the current document durable without network access. The
// write itself is best-effort: a store failure is logged and the caller
// still receives the stamped document, so the in-memory state stays
// authoritative for the session.

// SaveDraft stamps and upserts the document into the local draft
// collection. A document saved for the first time is assigned a fresh
// identity and creation timestamp; subsequent saves keep both and only
// advance the update timestamp.
func SaveDraft(doc *models.Resume) *models.Resume {
	if doc == nil {
		return nil
	}

	next := doc.Clone()
	now := time.Now().UTC().Format(time.RFC3339Nano)
	if next.ID == "" {
		next.ID = uuid.NewString()
		next.CreatedAt = now
	}
	next.UpdatedAt = now

	payload, err := json.Marshal(next)
	if err != nil {
		log.Printf("draft save: marshal failed: %v", err)
		return next
	}

	query := `INSERT INTO drafts (id, payload, saved_at) VALUES (?, ?, ?)
			  ON CONFLICT(id) DO UPDATE SET payload=excluded.payload, saved_at=excluded.saved_at`
	if _, err := DB.Exec(query, next.ID, string(payload), now); err != nil {
		log.Printf("draft save: write failed: %v", err)
	}
	return next
}

// ListDrafts returns the saved drafts, most recently saved first.
// Corrupt payloads are skipped with a log line rather than failing the
// whole listing.
func ListDrafts() ([]models.Resume, error) {
	query := `SELECT payload FROM drafts ORDER BY saved_at DESC`
	rows, err := DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drafts := []models.Resume{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var doc models.Resume
		if err := json.Unmarshal([]byte(payload), &doc); err != nil {
			log.Printf("draft list: skipping corrupt payload: %v", err)
			continue
		}
		drafts = append(drafts, doc)
	}
	return drafts, rows.Err()
}

// GetDraft loads one draft by identity, validating the stored payload
// against the document schema first. Returns nil without error when no
// draft has that identity.
func GetDraft(id string) (*models.Resume, error) {
	query := `SELECT payload FROM drafts WHERE id=?`
	var payload string
	err := DB.QueryRow(query, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := models.Validate([]byte(payload)); err != nil {
		return nil, err
	}

	doc := &models.Resume{}
	if err := json.Unmarshal([]byte(payload), doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// DeleteDraft removes a draft by identity.
func DeleteDraft(id string) error {
	query := `DELETE FROM drafts WHERE id=?`
	_, err := DB.Exec(query, id)
	return err
}

// Workspace operations
//
// The workspace row carries the document being edited between command
// invocations, together with the session flag that guards the
// fetch-remote-collection-once behaviour.

// SaveWorkspace persists the current document and session state.
func SaveWorkspace(doc *models.Resume, remoteFetched bool) error {
	var payload any
	if doc != nil {
		raw, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		payload = string(raw)
	}

	fetched := 0
	if remoteFetched {
		fetched = 1
	}

	query := `INSERT INTO workspace (slot, payload, remote_fetched) VALUES (1, ?, ?)
			  ON CONFLICT(slot) DO UPDATE SET payload=excluded.payload, remote_fetched=excluded.remote_fetched`
	_, err := DB.Exec(query, payload, fetched)
	return err
}

// LoadWorkspace restores the document being edited and the session
// state. Returns a nil document when no workspace exists yet.
func LoadWorkspace() (*models.Resume, bool, error) {
	query := `SELECT payload, remote_fetched FROM workspace WHERE slot=1`
	var payload sql.NullString
	var fetched int
	err := DB.QueryRow(query).Scan(&payload, &fetched)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if !payload.Valid || payload.String == "" {
		return nil, fetched == 1, nil
	}

	doc := &models.Resume{}
	if err := json.Unmarshal([]byte(payload.String), doc); err != nil {
		log.Printf("workspace load: corrupt payload, starting fresh: %v", err)
		return nil, fetched == 1, nil
	}
	return doc, fetched == 1, nil
}
