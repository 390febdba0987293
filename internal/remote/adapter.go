package remote

import (
	"context"
	"errors"
	"log"

	"resumecraft/internal/document"
	"resumecraft/pkg/models"
)

// ErrNoDocument is returned when a sync operation is requested while
// the store holds no document.
var ErrNoDocument = errors.New("no document to sync")

// Adapter reconciles the server-held resume collection with the local
// document store. The fetched flag is session state: it is set after
// the first successful or failed hydration attempt and cleared at
// logout, so a startup routine running twice never issues a second
// network call.
type Adapter struct {
	client  *Client
	store   *document.Store
	fetched bool
}

// NewAdapter wires a client to the document store. fetched restores
// the once-per-session guard persisted across command invocations.
func NewAdapter(client *Client, store *document.Store, fetched bool) *Adapter {
	return &Adapter{client: client, store: store, fetched: fetched}
}

// Fetched reports whether the remote collection was already hydrated
// this session.
func (a *Adapter) Fetched() bool {
	return a.fetched
}

// ResetSession clears the once-per-session guard (logout path).
func (a *Adapter) ResetSession() {
	a.fetched = false
}

// Login exchanges credentials for a bearer token.
func (a *Adapter) Login(ctx context.Context, email, password string) (string, error) {
	return a.client.Login(ctx, email, password)
}

// Register creates an account and returns a bearer token.
func (a *Adapter) Register(ctx context.Context, email, password, name string) (string, error) {
	return a.client.Register(ctx, email, password, name)
}

// FetchOnce hydrates the store from the remote collection, at most
// once per session. A fetch failure is logged and leaves the fresh
// empty document active; it does not reset the guard.
func (a *Adapter) FetchOnce(ctx context.Context) {
	if a.fetched {
		return
	}
	a.fetched = true

	records, err := a.client.List(ctx)
	if err != nil {
		log.Printf("remote fetch: %v", err)
		return
	}
	if len(records) == 0 {
		return
	}

	docs := make([]models.Resume, 0, len(records))
	for _, rec := range records {
		docs = append(docs, Normalize(rec))
	}
	a.store.SetSummaryList(docs)
	a.store.SetDocument(&docs[0])
}

// Save pushes the current document to the server, creating it when it
// has no identity yet and updating it otherwise. On success the
// server-assigned identity and timestamps are merged back into the
// local document; on failure the document is left unchanged and the
// error carries the server's message.
func (a *Adapter) Save(ctx context.Context) (*models.Resume, error) {
	doc := a.store.Current()
	if doc == nil {
		return nil, ErrNoDocument
	}

	var rec *Record
	var err error
	if doc.ID != "" {
		rec, err = a.client.Update(ctx, doc.ID, doc)
	} else {
		rec, err = a.client.Create(ctx, doc)
	}
	if err != nil {
		return nil, err
	}

	// The server is authoritative for identity and timestamps here,
	// unlike the local-draft path.
	next := doc.Clone()
	if id := rec.Identity(); id != "" {
		next.ID = id
	}
	if rec.CreatedAt != "" {
		next.CreatedAt = rec.CreatedAt
	}
	if rec.UpdatedAt != "" {
		next.UpdatedAt = rec.UpdatedAt
	}
	a.store.SetDocument(next)
	return next, nil
}

// Delete removes a persisted remote record and refreshes the cached
// listing from the server rather than splicing it locally. A failed
// refresh is logged but does not fail the delete.
func (a *Adapter) Delete(ctx context.Context, id string) error {
	if err := a.client.Delete(ctx, id); err != nil {
		return err
	}

	records, err := a.client.List(ctx)
	if err != nil {
		log.Printf("remote delete: refresh listing: %v", err)
		return nil
	}
	docs := make([]models.Resume, 0, len(records))
	for _, rec := range records {
		docs = append(docs, Normalize(rec))
	}
	a.store.SetSummaryList(docs)
	return nil
}
