package session

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"

	"github.com/retailcore/branch_retail_app/internal/core/domain"
	portssvc "github.com/retailcore/branch_retail_app/internal/core/ports/services"
)

// sessionState is the connection-scoped state machine position.
type sessionState int

const (
	awaitingUsername sessionState = iota
	awaitingPassword
	authenticated
)

const (
	usernamePrompt = "Username:"
	passwordPrompt = "Password:"
)

// Session is the per-connection command engine. Exactly one goroutine runs a
// session, so its fields need no locking; all shared state lives behind the
// services.
type Session struct {
	conn     net.Conn
	scanner  *bufio.Scanner
	services *portssvc.ServiceContainer
	collab   Collaborators
	logger   *slog.Logger

	state           sessionState
	pendingUsername string
	username        string
	operator        *domain.Employee
	chatID          string

	closeOnce sync.Once
}

// NewSession creates a session bound to conn.
func NewSession(conn net.Conn, services *portssvc.ServiceContainer, collab Collaborators, logger *slog.Logger) *Session {
	return &Session{
		conn:     conn,
		scanner:  bufio.NewScanner(conn),
		services: services,
		collab:   collab,
		logger:   logger.With(slog.String("remote", conn.RemoteAddr().String())),
		state:    awaitingUsername,
	}
}

// Run drives the session until EXIT, a transport error, or ctx cancellation.
// Every exit path releases the auth flag and closes the connection exactly
// once.
func (s *Session) Run(ctx context.Context) {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			// Unblocks the scanner; teardown runs on the session goroutine.
			s.conn.Close()
		case <-done:
		}
	}()

	defer s.teardown(ctx)

	s.logger.Info("session opened")
	s.writeLine(usernamePrompt)

	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())

		switch s.state {
		case awaitingUsername:
			if line == "" {
				continue
			}
			s.pendingUsername = line
			s.state = awaitingPassword
			s.writeLine(passwordPrompt)

		case awaitingPassword:
			s.handleLogin(ctx, line)

		case authenticated:
			if line == "" {
				// Malformed/empty input yields no reply.
				continue
			}
			reply, action := s.dispatch(ctx, line)
			if reply != "" {
				s.writeLine(reply)
			}
			switch action {
			case actionLogout:
				s.logout(ctx)
				s.state = awaitingUsername
				s.writeLine(usernamePrompt)
			case actionExit:
				return
			}
		}
	}

	if err := s.scanner.Err(); err != nil {
		// Transport failure: terminate without attempting a reply.
		s.logger.Warn("session transport error", slog.String("error", err.Error()))
	}
}

func (s *Session) handleLogin(ctx context.Context, password string) {
	username := s.pendingUsername
	s.pendingUsername = ""

	operator, err := s.services.Auth.Login(ctx, username, password)
	if err != nil {
		s.logger.Info("login rejected", slog.String("username", username), slog.String("error", err.Error()))
		s.writeLine("Error: " + err.Error())
		s.state = awaitingUsername
		s.writeLine(usernamePrompt)
		return
	}

	s.username = username
	s.operator = operator
	s.state = authenticated
	s.logger.Info("operator authenticated",
		slog.String("username", username),
		slog.String("branch", operator.BranchID),
		slog.String("role", string(operator.Role)))
	s.writeLine(fmt.Sprintf("Welcome %s (%s, branch %s). Type MENU for available commands.",
		operator.Name, operator.Role, operator.BranchID))
}

// logout releases the operator's session slot; re-login on the same
// connection is allowed.
func (s *Session) logout(ctx context.Context) {
	if s.username == "" {
		return
	}
	if err := s.services.Auth.Logout(ctx, s.username); err != nil {
		s.logger.Error("logout failed", slog.String("username", s.username), slog.String("error", err.Error()))
	}
	s.logger.Info("operator logged out", slog.String("username", s.username))
	s.username = ""
	s.operator = nil
	s.chatID = ""
}

// teardown runs on every exit path.
func (s *Session) teardown(ctx context.Context) {
	s.closeOnce.Do(func() {
		s.logout(ctx)
		s.conn.Close()
		s.logger.Info("session closed")
	})
}

func (s *Session) writeLine(text string) {
	if _, err := fmt.Fprintf(s.conn, "%s\n", text); err != nil {
		s.logger.Warn("write failed", slog.String("error", err.Error()))
	}
}

// audit appends one line to the action log; failures never fail the command.
func (s *Session) audit(action string) {
	if s.collab.ActionLog == nil {
		return
	}
	branch := ""
	if s.operator != nil {
		branch = s.operator.BranchID
	}
	if err := s.collab.ActionLog.Record(s.username, branch, action); err != nil {
		s.logger.Error("action log append failed", slog.String("error", err.Error()))
	}
}
