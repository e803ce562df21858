package repositories

import (
	"context"

	"github.com/retailcore/branch_retail_app/internal/core/domain"
)

// ChatRepository defines the chat session registry. CreateChat allocates the
// next chat id exclusively: concurrent calls never observe the same id.
// AddBranch has set semantics and is idempotent. AppendMessage is
// synchronized per chat session, so appends to different chats proceed
// independently while one chat's log stays append-consistent under
// concurrent senders. Find/List return snapshot copies.
type ChatRepository interface {
	CreateChat(ctx context.Context, branchIDs ...string) (*domain.ChatSession, error)
	FindChatByID(ctx context.Context, chatID string) (*domain.ChatSession, error)
	ListChats(ctx context.Context) ([]domain.ChatSession, error)
	AddBranch(ctx context.Context, chatID, branchID string) error
	AppendMessage(ctx context.Context, chatID string, msg domain.ChatMessage) error
	DeactivateChat(ctx context.Context, chatID string) error
}
