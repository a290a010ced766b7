package services

import (
	"context"
	"time"
)

// TokenSvcFacade mints bearer credentials proving caller identity. It is a
// pluggable capability: verification lives in the auth middleware against the
// same configured secret.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed, time-limited token binding the username.
	GenerateAccessToken(ctx context.Context, username string) (string, time.Time, error)
}
