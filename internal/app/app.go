package app

import (
	"context"
	"database/sql"
	"fmt"

	"resumecraft/internal/config"
	"resumecraft/internal/database"
	"resumecraft/internal/document"
	"resumecraft/internal/remote"
	"resumecraft/internal/template"
)

// App is the dependency container for the CLI application
type App struct {
	DB     *sql.DB
	Config *config.Config
	Store  *document.Store
	Remote *remote.Adapter
}

// NewApp initializes and returns a new App instance. The document being
// edited is restored from the workspace, and when a token is configured
// the remote collection is fetched, at most once per login session.
func NewApp(ctx context.Context) (*App, error) {
	// Initialize config
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	// Open database with proper pragmas
	if err := database.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Verify database connection
	if err := database.DB.Ping(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Restore the editing workspace
	doc, fetched, err := database.LoadWorkspace()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}

	store := document.NewStore()
	if doc != nil {
		store.SetDocument(doc)
	} else {
		ApplyDefaultTemplate(store, config.AppConfig.DefaultTemplate)
	}

	client := remote.NewClient(config.AppConfig.APIBaseURL, config.AppConfig.Token)
	adapter := remote.NewAdapter(client, store, fetched)

	application := &App{
		DB:     database.DB,
		Config: config.AppConfig,
		Store:  store,
		Remote: adapter,
	}

	if config.AppConfig.Token != "" {
		adapter.FetchOnce(ctx)
	}

	return application, nil
}

// ApplyDefaultTemplate sets the configured starting template on the
// store's document. An empty or unknown name keeps the built-in
// default.
func ApplyDefaultTemplate(store *document.Store, name string) {
	if name == "" || !template.Exists(name) {
		return
	}
	store.SetSelectedTemplate(name)
}

// Flush persists the current document and session state back to the
// workspace. Called once per command invocation, after the command ran.
func (a *App) Flush() error {
	return database.SaveWorkspace(a.Store.Current(), a.Remote.Fetched())
}

// Close closes all resources
func (a *App) Close() error {
	return database.Close()
}
