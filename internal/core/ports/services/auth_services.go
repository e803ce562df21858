package services

import (
	"context"

	"github.com/retailcore/branch_retail_app/internal/core/domain"
)

// AuthSvcFacade is the credential registry and login state machine. The core
// invariant is at-most-one-active-session-per-username: the logged-in flag's
// check-and-set runs inside a single critical section, so two simultaneous
// logins for the same username never both succeed.
type AuthSvcFacade interface {
	// Register binds credentials to an employee and initializes the account
	// as not logged in. Returns apperrors.ErrDuplicate when the username is
	// already registered; registry state is unchanged in that case.
	Register(ctx context.Context, employee domain.Employee, username, password string) error

	// Unregister releases a username binding. Used only to compensate a
	// registration whose employee insert failed; not exposed as a command.
	Unregister(ctx context.Context, username string) error

	// Login authenticates and marks the account logged in. Fails with
	// apperrors.ErrUnauthorized on unknown username or password mismatch and
	// with apperrors.ErrAlreadyLoggedIn when the account already holds an
	// active session.
	Login(ctx context.Context, username, password string) (*domain.Employee, error)

	// Logout clears the logged-in flag if set. Idempotent.
	Logout(ctx context.Context, username string) error

	// Authenticate verifies credentials without touching the session flag.
	// Used by the reporting API, whose bearer tokens are stateless.
	Authenticate(ctx context.Context, username, password string) (*domain.Employee, error)
}
