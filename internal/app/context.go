package app

import "context"

// contextKey keys the per-invocation App in a command context
type contextKey struct{}

var appContextKey = contextKey{}

// GetAppFromContext returns the App placed in the cobra command context
// by the root command, or nil when no App has been attached
func GetAppFromContext(ctx context.Context) *App {
	app, ok := ctx.Value(appContextKey).(*App)
	if !ok {
		return nil
	}
	return app
}

// SetAppInContext attaches the App to the context handed to subcommands
func SetAppInContext(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appContextKey, app)
}
