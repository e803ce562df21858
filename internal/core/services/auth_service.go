package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/retailcore/branch_retail_app/internal/apperrors"
	"github.com/retailcore/branch_retail_app/internal/core/domain"
	portsrepo "github.com/retailcore/branch_retail_app/internal/core/ports/repositories"
	portssvc "github.com/retailcore/branch_retail_app/internal/core/ports/services"
	"github.com/retailcore/branch_retail_app/internal/utils"
)

// credential is the registry's record for one username: who it belongs to,
// its password hash, and whether a session currently holds it.
type credential struct {
	employeeID   string
	passwordHash string
	loggedIn     bool
}

// authService implements AuthSvcFacade. One mutex guards the whole
// credential map; in particular the logged-in flag's check-and-set during
// Login is a single critical section, which is what makes duplicate-login
// races impossible.
type authService struct {
	mu           sync.Mutex
	byUsername   map[string]*credential
	employeeRepo portsrepo.EmployeeRepository
}

// NewAuthService creates the credential registry.
func NewAuthService(employeeRepo portsrepo.EmployeeRepository) portssvc.AuthSvcFacade {
	return &authService{
		byUsername:   make(map[string]*credential),
		employeeRepo: employeeRepo,
	}
}

// Register binds credentials to an employee and initializes the account as
// not logged in.
func (s *authService) Register(ctx context.Context, employee domain.Employee, username, password string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byUsername[username]; exists {
		return fmt.Errorf("%w: username %s", apperrors.ErrDuplicate, username)
	}
	s.byUsername[username] = &credential{
		employeeID:   employee.EmployeeID,
		passwordHash: hash,
	}
	return nil
}

// Unregister releases a username binding. Compensation path only.
func (s *authService) Unregister(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byUsername, username)
	return nil
}

// Login authenticates and atomically claims the account's session slot.
func (s *authService) Login(ctx context.Context, username, password string) (*domain.Employee, error) {
	s.mu.Lock()
	cred, exists := s.byUsername[username]
	if !exists {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: unknown username", apperrors.ErrUnauthorized)
	}
	if !utils.CheckPasswordHash(password, cred.passwordHash) {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: password mismatch", apperrors.ErrUnauthorized)
	}
	if cred.loggedIn {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", apperrors.ErrAlreadyLoggedIn, username)
	}
	cred.loggedIn = true
	employeeID := cred.employeeID
	s.mu.Unlock()

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		// The credential points at a missing employee record; release the
		// slot we just claimed rather than stranding the account.
		s.mu.Lock()
		cred.loggedIn = false
		s.mu.Unlock()
		return nil, fmt.Errorf("failed to resolve employee for %s: %w", username, err)
	}
	return employee, nil
}

// Logout clears the logged-in flag if set. Idempotent; unknown usernames are
// a no-op.
func (s *authService) Logout(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cred, exists := s.byUsername[username]; exists {
		cred.loggedIn = false
	}
	return nil
}

// Authenticate verifies credentials without touching the session flag.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*domain.Employee, error) {
	s.mu.Lock()
	cred, exists := s.byUsername[username]
	if !exists {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: unknown username", apperrors.ErrUnauthorized)
	}
	hash := cred.passwordHash
	employeeID := cred.employeeID
	s.mu.Unlock()

	if !utils.CheckPasswordHash(password, hash) {
		return nil, fmt.Errorf("%w: password mismatch", apperrors.ErrUnauthorized)
	}
	return s.employeeRepo.FindEmployeeByID(ctx, employeeID)
}
