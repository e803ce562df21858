package domain

import "time"

// ChatMessage is one entry in a chat session's message log, immutable once
// appended.
type ChatMessage struct {
	SenderName   string    `json:"senderName"`
	SenderBranch string    `json:"senderBranch"`
	Content      string    `json:"content"`
	SentAt       time.Time `json:"sentAt"`
}

// ChatSession is a point-in-time snapshot of one inter-branch chat room.
// Chat sessions are never physically deleted, only deactivated. The snapshot
// is a value: mutating it does not affect the registry's copy.
type ChatSession struct {
	ChatID    string        `json:"chatID"`   // "CHAT-<n>", n monotonically increasing from 1000
	BranchIDs []string      `json:"branchIDs"` // Participating branches, set semantics
	Messages  []ChatMessage `json:"messages"`  // Append-only, ordered
	Active    bool          `json:"active"`
	CreatedAt time.Time     `json:"createdAt"`
}

// HasBranch reports whether the given branch participates in the chat.
func (c ChatSession) HasBranch(branchID string) bool {
	for _, b := range c.BranchIDs {
		if b == branchID {
			return true
		}
	}
	return false
}
