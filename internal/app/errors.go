package app

import "errors"

// Sentinel errors for common application errors
var (
	ErrNotLoggedIn = errors.New("not logged in, run 'resumecraft auth login' first")
)
