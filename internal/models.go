package internal

import "time"

// Resource represents a shareable item listed by a campus member.
// OwnerEmail is optional; an empty string means the owner did not provide one
// and chat with the owner is unavailable.
type Resource struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	OwnerName    string `json:"owner" yaml:"owner"`
	OwnerContact string `json:"ownerContact" yaml:"owner_contact"`
	OwnerEmail   string `json:"ownerEmail,omitempty" yaml:"owner_email,omitempty"`
	Available    bool   `json:"available" yaml:"available"`
}

// ChatMessage is a single direct message between two campus members.
// Messages are immutable once created and only ever appended.
type ChatMessage struct {
	FromEmail       string `json:"fromEmail" yaml:"from_email"`
	ToEmail         string `json:"toEmail" yaml:"to_email"`
	TimestampMillis int64  `json:"timestamp" yaml:"timestamp"`
	Text            string `json:"text" yaml:"text"`
}

// NewChatMessage builds a message stamped with the current wall clock.
func NewChatMessage(from, to, text string) ChatMessage {
	return ChatMessage{
		FromEmail:       from,
		ToEmail:         to,
		TimestampMillis: time.Now().UnixMilli(),
		Text:            text,
	}
}

// Time returns the message timestamp as a time.Time
func (m ChatMessage) Time() time.Time {
	return time.Unix(0, m.TimestampMillis*int64(time.Millisecond))
}

// Conversation is a snapshot of one pairwise message history, used by the
// export formats.
type Conversation struct {
	ID           string        `json:"id" yaml:"id"`
	Participants []string      `json:"participants" yaml:"participants"`
	Messages     []ChatMessage `json:"messages" yaml:"messages"`
}
