package interfaces

import "context"

// StatusProvider looks up the current state of a named environment.
//
// Fetch returns an error matching environment.ErrEnvironmentNotFound when no
// environment has the given name, environment.ErrAuthenticationFailure when the
// credentials are missing or rejected, and environment.ErrUnexpected otherwise.
type StatusProvider interface {
	Fetch(ctx context.Context, environmentName string) (EnvironmentSnapshot, error)
}

// OutputSink receives the line-oriented name=value outputs consumed by the
// calling pipeline
type OutputSink interface {
	Set(name, value string) error
}

// CallerIdentity describes the principal behind the active credentials
type CallerIdentity struct {
	Account string `json:"account"`
	ARN     string `json:"arn"`
	UserID  string `json:"user_id"`
}

// IdentityChecker resolves the caller identity for the active credentials
type IdentityChecker interface {
	CallerIdentity(ctx context.Context) (CallerIdentity, error)
}
