package internal

import (
	"testing"
	"time"
)

func TestNewChatMessage(t *testing.T) {
	before := time.Now().UnixMilli()
	m := NewChatMessage("bob@x.edu", "alice@x.edu", "hi")
	after := time.Now().UnixMilli()

	if m.FromEmail != "bob@x.edu" || m.ToEmail != "alice@x.edu" || m.Text != "hi" {
		t.Errorf("NewChatMessage() = %+v", m)
	}
	if m.TimestampMillis < before || m.TimestampMillis > after {
		t.Errorf("NewChatMessage() timestamp %d outside [%d, %d]", m.TimestampMillis, before, after)
	}
}

func TestChatMessage_Time(t *testing.T) {
	m := ChatMessage{TimestampMillis: 1700000000000}
	if got := m.Time().UnixMilli(); got != 1700000000000 {
		t.Errorf("Time().UnixMilli() = %d, want 1700000000000", got)
	}
}
