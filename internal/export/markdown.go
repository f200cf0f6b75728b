package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/njoroge/campus-share/internal"
)

// MarkdownExporter exports a conversation in Markdown format
type MarkdownExporter struct{}

// Export writes the conversation to w as a Markdown transcript
func (e *MarkdownExporter) Export(conv *internal.Conversation, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Conversation %s\n\n", conv.ID)
	_, _ = fmt.Fprintf(w, "**Participants:** %s  \n", strings.Join(conv.Participants, ", "))
	_, _ = fmt.Fprintf(w, "**Messages:** %d\n\n", len(conv.Messages))
	_, _ = fmt.Fprintf(w, "---\n\n")

	for i, msg := range conv.Messages {
		stamp := msg.Time().Format("02-Jan 15:04")
		_, _ = fmt.Fprintf(w, "**%s** (%s):\n\n%s\n\n", msg.FromEmail, stamp, escapeMarkdown(msg.Text))

		if i < len(conv.Messages)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	return nil
}

// escapeMarkdown escapes emphasis markers outside code blocks
func escapeMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	var result []string
	inCodeBlock := false

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			inCodeBlock = !inCodeBlock
			result = append(result, line)
		} else if inCodeBlock {
			result = append(result, line)
		} else {
			line = strings.ReplaceAll(line, "**", "\\*\\*")
			line = strings.ReplaceAll(line, "__", "\\_\\_")
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n")
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
