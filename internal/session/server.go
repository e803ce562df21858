// Package session implements the textual command protocol: a long-lived TCP
// listener, one goroutine per accepted connection, and the per-connection
// state machine that drives login and command dispatch against the shared
// services.
package session

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"sync"

	"github.com/retailcore/branch_retail_app/internal/adapters/filestore"
	portssvc "github.com/retailcore/branch_retail_app/internal/core/ports/services"
)

// Collaborators are the out-of-core I/O adapters a session can delegate to:
// snapshot persistence, the audit action log, and the report directory.
type Collaborators struct {
	Store     *filestore.Store
	ActionLog *filestore.ActionLog
	ReportDir string
}

// Server accepts connections and runs one Session per connection.
type Server struct {
	addr     string
	services *portssvc.ServiceContainer
	collab   Collaborators
	logger   *slog.Logger

	wg sync.WaitGroup
}

// NewServer creates a command protocol server.
func NewServer(addr string, services *portssvc.ServiceContainer, collab Collaborators, logger *slog.Logger) *Server {
	return &Server{
		addr:     addr,
		services: services,
		collab:   collab,
		logger:   logger,
	}
}

// Run listens until ctx is cancelled, then stops accepting and waits for the
// active sessions to drain.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.logger.Info("command server listening", slog.String("addr", s.addr))

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				break
			}
			s.logger.Error("accept failed", slog.String("error", err.Error()))
			continue
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			NewSession(conn, s.services, s.collab, s.logger).Run(ctx)
		}()
	}

	s.wg.Wait()
	s.logger.Info("command server stopped")
	return nil
}
