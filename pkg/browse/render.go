package browse

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// renderContent renders memory content for the detail view, syntax
// highlighting fenced code blocks. Non-code text is returned as-is, so a
// highlighting failure never loses content.
func renderContent(content string) string {
	if !strings.Contains(content, "```") {
		return content
	}

	var out strings.Builder
	lines := strings.Split(content, "\n")

	var codeLines []string
	var language string
	inCode := false

	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if !inCode {
				inCode = true
				language = strings.TrimPrefix(strings.TrimSpace(line), "```")
				codeLines = codeLines[:0]
				continue
			}
			inCode = false
			out.WriteString(highlight(strings.Join(codeLines, "\n"), language))
			out.WriteString("\n")
			continue
		}
		if inCode {
			codeLines = append(codeLines, line)
			continue
		}
		out.WriteString(line)
		out.WriteString("\n")
	}

	// Unterminated fence: emit what we have
	if inCode {
		out.WriteString(highlight(strings.Join(codeLines, "\n"), language))
		out.WriteString("\n")
	}

	return strings.TrimRight(out.String(), "\n")
}

func highlight(code, language string) string {
	if language == "" {
		language = "text"
	}

	var buf strings.Builder
	if err := quick.Highlight(&buf, code, language, "terminal256", "monokai"); err != nil {
		return code
	}
	return buf.String()
}
