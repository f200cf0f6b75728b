package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/njoroge/campus-share/internal"
)

// JSONLExporter exports a conversation as JSONL (one message per line)
type JSONLExporter struct{}

// Export writes each message of the conversation as one JSON line
func (e *JSONLExporter) Export(conv *internal.Conversation, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, msg := range conv.Messages {
		if err := enc.Encode(msg); err != nil {
			return fmt.Errorf("failed to encode message: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
