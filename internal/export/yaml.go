package export

import (
	"io"

	"github.com/njoroge/campus-share/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports a conversation in YAML format
type YAMLExporter struct{}

// Export writes the conversation to w in YAML format
func (e *YAMLExporter) Export(conv *internal.Conversation, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(conv)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
