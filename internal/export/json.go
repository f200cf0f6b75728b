package export

import (
	"encoding/json"
	"io"

	"github.com/njoroge/campus-share/internal"
)

// JSONExporter exports a conversation as pretty-printed JSON
type JSONExporter struct{}

// Export writes the conversation to w in JSON format
func (e *JSONExporter) Export(conv *internal.Conversation, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(conv)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
