package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/retailcore/branch_retail_app/internal/apperrors"
	"github.com/retailcore/branch_retail_app/internal/core/domain"
)

const firstChatNumber = 1000

// chatEntry is the registry's live representation of one chat session. Each
// entry carries its own mutex so appends to different chats proceed
// independently while one chat's message log stays append-consistent under
// concurrent senders.
type chatEntry struct {
	mu      sync.Mutex
	session domain.ChatSession
}

func (e *chatEntry) snapshot() domain.ChatSession {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := e.session
	snap.BranchIDs = append([]string(nil), e.session.BranchIDs...)
	snap.Messages = append([]domain.ChatMessage(nil), e.session.Messages...)
	return snap
}

// ChatRepository is the in-memory chat session registry. The registry mutex
// guards the id counter and the chat map; everything inside one chat is
// guarded by that chat's own mutex.
type ChatRepository struct {
	mu     sync.RWMutex
	nextID int
	byID   map[string]*chatEntry
}

// NewChatRepository creates an empty chat registry. Chat numbering starts at
// 1000.
func NewChatRepository() *ChatRepository {
	return &ChatRepository{
		nextID: firstChatNumber,
		byID:   make(map[string]*chatEntry),
	}
}

// CreateChat allocates the next chat id and registers an active session
// seeded with the given branches. Allocation is exclusive: concurrent calls
// never produce the same id.
func (r *ChatRepository) CreateChat(ctx context.Context, branchIDs ...string) (*domain.ChatSession, error) {
	r.mu.Lock()
	chatID := fmt.Sprintf("CHAT-%d", r.nextID)
	r.nextID++

	entry := &chatEntry{
		session: domain.ChatSession{
			ChatID:    chatID,
			BranchIDs: dedupe(branchIDs),
			Active:    true,
			CreatedAt: nowUTC(),
		},
	}
	r.byID[chatID] = entry
	r.mu.Unlock()

	snap := entry.snapshot()
	return &snap, nil
}

// FindChatByID returns a snapshot of the chat or apperrors.ErrNotFound.
func (r *ChatRepository) FindChatByID(ctx context.Context, chatID string) (*domain.ChatSession, error) {
	entry, err := r.entry(chatID)
	if err != nil {
		return nil, err
	}
	snap := entry.snapshot()
	return &snap, nil
}

// ListChats returns snapshots of every chat session ordered by id.
func (r *ChatRepository) ListChats(ctx context.Context) ([]domain.ChatSession, error) {
	r.mu.RLock()
	entries := make([]*chatEntry, 0, len(r.byID))
	for _, e := range r.byID {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	chats := make([]domain.ChatSession, 0, len(entries))
	for _, e := range entries {
		chats = append(chats, e.snapshot())
	}
	sort.Slice(chats, func(i, j int) bool { return chats[i].ChatID < chats[j].ChatID })
	return chats, nil
}

// AddBranch adds a branch to the chat's participant set. Idempotent.
func (r *ChatRepository) AddBranch(ctx context.Context, chatID, branchID string) error {
	entry, err := r.entry(chatID)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if !entry.session.Active {
		return fmt.Errorf("%w: %s", apperrors.ErrChatInactive, chatID)
	}
	for _, b := range entry.session.BranchIDs {
		if b == branchID {
			return nil
		}
	}
	entry.session.BranchIDs = append(entry.session.BranchIDs, branchID)
	return nil
}

// AppendMessage appends one message to the chat's ordered log.
func (r *ChatRepository) AppendMessage(ctx context.Context, chatID string, msg domain.ChatMessage) error {
	entry, err := r.entry(chatID)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if !entry.session.Active {
		return fmt.Errorf("%w: %s", apperrors.ErrChatInactive, chatID)
	}
	entry.session.Messages = append(entry.session.Messages, msg)
	return nil
}

// DeactivateChat marks the chat inactive. The session is kept; chats are
// never physically deleted.
func (r *ChatRepository) DeactivateChat(ctx context.Context, chatID string) error {
	entry, err := r.entry(chatID)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.session.Active = false
	return nil
}

func (r *ChatRepository) entry(chatID string) (*chatEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.byID[chatID]
	if !exists {
		return nil, fmt.Errorf("%w: chat %s", apperrors.ErrNotFound, chatID)
	}
	return entry, nil
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
