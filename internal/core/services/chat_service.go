package services

import (
	"context"
	"fmt"
	"time"

	"github.com/retailcore/branch_retail_app/internal/apperrors"
	"github.com/retailcore/branch_retail_app/internal/core/domain"
	portsrepo "github.com/retailcore/branch_retail_app/internal/core/ports/repositories"
	portssvc "github.com/retailcore/branch_retail_app/internal/core/ports/services"
)

// chatService implements ChatSvcFacade. Membership and role rules live here;
// id allocation and per-chat append synchronization live in the repository.
type chatService struct {
	chatRepo   portsrepo.ChatRepository
	branchRepo portsrepo.BranchRepository
}

// NewChatService creates the chat registry service.
func NewChatService(chatRepo portsrepo.ChatRepository, branchRepo portsrepo.BranchRepository) portssvc.ChatSvcFacade {
	return &chatService{chatRepo: chatRepo, branchRepo: branchRepo}
}

// StartChat creates an active chat seeded with both branches.
func (s *chatService) StartChat(ctx context.Context, ownBranchID, targetBranchID string) (*domain.ChatSession, error) {
	if targetBranchID == ownBranchID {
		return nil, fmt.Errorf("%w: cannot start a chat with your own branch", apperrors.ErrValidation)
	}
	if _, err := s.branchRepo.FindBranchByID(ctx, targetBranchID); err != nil {
		return nil, fmt.Errorf("branch %s: %w", targetBranchID, err)
	}
	return s.chatRepo.CreateChat(ctx, ownBranchID, targetBranchID)
}

// JoinChat adds the caller's branch to an active chat and returns the
// resulting snapshot. Joining a chat the branch already participates in is a
// no-op.
func (s *chatService) JoinChat(ctx context.Context, chatID, branchID string) (*domain.ChatSession, error) {
	chat, err := s.chatRepo.FindChatByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !chat.Active {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrChatInactive, chatID)
	}
	if err := s.chatRepo.AddBranch(ctx, chatID, branchID); err != nil {
		return nil, err
	}
	return s.chatRepo.FindChatByID(ctx, chatID)
}

// SendMessage appends a message after checking the sender's membership.
func (s *chatService) SendMessage(ctx context.Context, chatID string, sender domain.Employee, content string) error {
	chat, err := s.chatRepo.FindChatByID(ctx, chatID)
	if err != nil {
		return err
	}
	if !chat.Active {
		return fmt.Errorf("%w: %s", apperrors.ErrChatInactive, chatID)
	}
	if !sender.Role.IsAdmin() && !chat.HasBranch(sender.BranchID) {
		return fmt.Errorf("%w: branch %s is not part of chat %s", apperrors.ErrForbidden, sender.BranchID, chatID)
	}

	msg := domain.ChatMessage{
		SenderName:   sender.Name,
		SenderBranch: sender.BranchID,
		Content:      content,
		SentAt:       time.Now().UTC(),
	}
	return s.chatRepo.AppendMessage(ctx, chatID, msg)
}

// GetChat returns a chat snapshot; non-admin callers must belong to a
// participating branch.
func (s *chatService) GetChat(ctx context.Context, chatID string, caller domain.Employee) (*domain.ChatSession, error) {
	chat, err := s.chatRepo.FindChatByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !caller.Role.IsAdmin() && !chat.HasBranch(caller.BranchID) {
		return nil, fmt.Errorf("%w: branch %s is not part of chat %s", apperrors.ErrForbidden, caller.BranchID, chatID)
	}
	return chat, nil
}

// ListChats returns snapshots of every chat session.
func (s *chatService) ListChats(ctx context.Context) ([]domain.ChatSession, error) {
	return s.chatRepo.ListChats(ctx)
}
