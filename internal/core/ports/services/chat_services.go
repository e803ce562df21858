package services

import (
	"context"

	"github.com/retailcore/branch_retail_app/internal/core/domain"
)

// ChatSvcFacade manages inter-branch chat sessions. Reads return snapshots;
// membership rules are enforced here, synchronization lives in the registry.
type ChatSvcFacade interface {
	// StartChat creates an active chat seeded with the caller's branch and
	// the target branch. Fails with apperrors.ErrValidation when the target
	// equals the caller's own branch and apperrors.ErrNotFound when the
	// target branch does not exist.
	StartChat(ctx context.Context, ownBranchID, targetBranchID string) (*domain.ChatSession, error)

	// JoinChat adds the caller's branch to an active chat (idempotent).
	JoinChat(ctx context.Context, chatID, branchID string) (*domain.ChatSession, error)

	// SendMessage appends a message. The sender must be an ADMIN or belong
	// to a participating branch, and the chat must be active.
	SendMessage(ctx context.Context, chatID string, sender domain.Employee, content string) error

	// GetChat returns a chat snapshot, applying the same membership rule as
	// SendMessage for non-admin callers.
	GetChat(ctx context.Context, chatID string, caller domain.Employee) (*domain.ChatSession, error)

	ListChats(ctx context.Context) ([]domain.ChatSession, error)
}
