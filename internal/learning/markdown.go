package learning

import (
	"bytes"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const defaultMarkdownName = "Unnamed Set"

var (
	frontPrefixes = []string{"**Front:**", "Front:"}
	backPrefixes  = []string{"**Back:**", "Back:"}
)

// LoadMarkdown reads cards from a Markdown document. The first level-one
// heading names the set; a "Front:" line followed by a "Back:" line forms a
// card. Either label may be bold.
func LoadMarkdown(path string) (*Set, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	set := parseMarkdown(src)
	if set.IsEmpty() {
		return nil, &FormatError{Path: path, Reason: "no cards found in Markdown file"}
	}
	return set, nil
}

func parseMarkdown(src []byte) *Set {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	set := &Set{Name: defaultMarkdownName}
	named := false
	var front *string

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			if n.Level == 1 && !named {
				set.Name = strings.TrimSpace(rawText(n, src))
				named = true
			}
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph, *ast.TextBlock:
			for i := 0; i < n.Lines().Len(); i++ {
				seg := n.Lines().At(i)
				line := strings.TrimSpace(string(seg.Value(src)))
				if v, ok := cutAny(line, frontPrefixes); ok {
					front = &v
				} else if v, ok := cutAny(line, backPrefixes); ok && front != nil {
					set.Cards = append(set.Cards, Card{Front: *front, Back: v})
					front = nil
				}
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return set
}

// rawText joins the source lines of a block node.
func rawText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for i := 0; i < n.Lines().Len(); i++ {
		seg := n.Lines().At(i)
		buf.Write(seg.Value(src))
	}
	return buf.String()
}

func cutAny(s string, prefixes []string) (string, bool) {
	for _, p := range prefixes {
		if rest, ok := strings.CutPrefix(s, p); ok {
			return strings.TrimSpace(rest), true
		}
	}
	return "", false
}
