package importer

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownImporter flattens Markdown using goldmark. Headings are emitted
// as standalone lines so downstream heading recognition can pick them up;
// body blocks are separated by blank lines.
type MarkdownImporter struct{}

func (p *MarkdownImporter) Extract(r io.Reader) (string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var buf strings.Builder
	writeBlock := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if buf.Len() > 0 {
			buf.WriteString("\n\n")
		}
		buf.WriteString(s)
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			writeBlock(string(h.Text(src)))
			continue
		}
		writeBlock(nodeText(n, src))
	}

	return buf.String(), nil
}

// nodeText collects the text content of a goldmark AST node.
func nodeText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(nodeText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
