package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdownParser = goldmark.New()

// extractMarkdown parses markdown and returns its text content with
// formatting stripped. Block boundaries become blank lines so the chunker
// can still see paragraph structure.
func extractMarkdown(r io.Reader) (string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read markdown: %w", err)
	}
	if len(content) == 0 {
		return "", nil
	}

	reader := text.NewReader(content)
	doc := markdownParser.Parser().Parse(reader)

	var sb strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading, *ast.Paragraph, *ast.ListItem:
			if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "\n\n") {
				sb.WriteString("\n\n")
			}
		case *ast.Text:
			sb.Write(node.Segment.Value(content))
			if node.SoftLineBreak() || node.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(node.Value)
		case *ast.CodeBlock:
			writeLines(&sb, node, content)
		case *ast.FencedCodeBlock:
			writeLines(&sb, node, content)
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(sb.String()), nil
}

// writeLines appends a code block's raw lines, separated from surrounding
// text by a blank line.
func writeLines(sb *strings.Builder, n ast.Node, content []byte) {
	if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "\n\n") {
		sb.WriteString("\n\n")
	}
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(content))
	}
}
