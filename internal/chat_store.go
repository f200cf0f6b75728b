package internal

import (
	"sort"
	"strings"
	"sync"
)

// ChatStore owns the pairwise conversations, keyed by canonical conversation
// id, and persists the whole mapping through its archive after every append.
// One lock guards each mutate-then-persist sequence.
type ChatStore struct {
	mu      sync.Mutex
	convos  map[string][]ChatMessage
	archive *ChatArchive
}

// NewChatStore creates a store over archive, loading any persisted history.
// A failed load is logged and degraded to an empty store rather than an
// error: the operator keeps a working (if amnesiac) chat.
func NewChatStore(archive *ChatArchive) *ChatStore {
	convos, err := archive.Load()
	if err != nil {
		LogWarn("failed to load conversations, starting empty: %v", err)
		convos = make(map[string][]ChatMessage)
	}
	return &ChatStore{
		convos:  convos,
		archive: archive,
	}
}

// ConversationID returns the canonical id for two participants: lowercased
// emails joined by "::", the case-insensitively smaller one first. The id is
// the same regardless of argument order. ok is false when either side is
// missing.
func ConversationID(a, b string) (string, bool) {
	if a == "" || b == "" {
		return "", false
	}
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la <= lb {
		return la + "::" + lb, true
	}
	return lb + "::" + la, true
}

// GetConversation returns the full message history between a and b in append
// order. Missing participants or an unknown pair yield an empty slice, never
// an error.
func (s *ChatStore) GetConversation(a, b string) []ChatMessage {
	id, ok := ConversationID(a, b)
	if !ok {
		return []ChatMessage{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.convos[id]
	out := make([]ChatMessage, len(msgs))
	copy(out, msgs)
	return out
}

// AppendMessage appends m to its conversation and persists the entire store
// before returning. When the persist fails the in-memory append is kept, so
// memory can run ahead of disk until the next successful append. A message
// with a missing participant is dropped silently.
func (s *ChatStore) AppendMessage(m ChatMessage) error {
	id, ok := ConversationID(m.FromEmail, m.ToEmail)
	if !ok {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.convos[id] = append(s.convos[id], m)
	if err := s.archive.Save(s.convos); err != nil {
		LogError("failed to persist conversations: %v", err)
		return err
	}
	return nil
}

// ListConversationsFor returns the counterpart emails of every conversation
// involving email, matched case-insensitively and sorted for stable output.
func (s *ChatStore) ListConversationsFor(email string) []string {
	others := make([]string, 0)
	if email == "" {
		return others
	}
	low := strings.ToLower(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	for id := range s.convos {
		parts := strings.SplitN(id, "::", 2)
		if len(parts) != 2 {
			continue
		}
		switch low {
		case parts[0]:
			others = append(others, parts[1])
		case parts[1]:
			others = append(others, parts[0])
		}
	}
	sort.Strings(others)
	return others
}

// Snapshot returns an export-ready view of one conversation
func (s *ChatStore) Snapshot(a, b string) (*Conversation, bool) {
	id, ok := ConversationID(a, b)
	if !ok {
		return nil, false
	}
	return &Conversation{
		ID:           id,
		Participants: strings.SplitN(id, "::", 2),
		Messages:     s.GetConversation(a, b),
	}, true
}
