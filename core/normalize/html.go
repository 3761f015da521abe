package normalize

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/sitehash/core"
	"github.com/gaurav-prasanna/sitehash/core/textenc"
)

// HTML normalizes an HTML document down to its visible text. The document
// is rendered in the session first so that script-driven DOM mutations are
// reflected, then the rendered DOM is reduced to the text a human would
// see: no markup, no script or style source, no comments, whitespace
// collapsed.
func HTML(ctx context.Context, session core.RenderSession, algorithm string, contents []byte, charset string) (*core.NormalizedContent, error) {
	if charset != "" {
		recoded, err := textenc.Recode(contents, charset)
		if err != nil {
			return nil, err
		}
		contents = recoded
	}

	rendered, err := session.RenderHTML(ctx, string(contents))
	if err != nil {
		return nil, fmt.Errorf("rendering html: %w", err)
	}

	visible, err := VisibleText(rendered)
	if err != nil {
		return nil, fmt.Errorf("extracting visible text: %w", err)
	}
	return digested(algorithm, []byte(visible))
}

// VisibleText parses an HTML document and returns the trimmed text of all
// visible text nodes joined by single spaces. Nodes whose trimmed text is
// empty contribute nothing, not even a separator.
func VisibleText(doc string) (string, error) {
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	var parts []string
	for _, root := range parsed.Selection.Nodes {
		collectVisible(root, &parts)
	}
	return strings.Join(parts, " "), nil
}

func collectVisible(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode && isVisibleText(n) {
		if text := strings.TrimSpace(n.Data); text != "" {
			*parts = append(*parts, text)
		}
	}
	// Comment nodes have no children, so they never contribute text.
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectVisible(c, parts)
	}
}

// isVisibleText reports whether a text node would be visible on the
// rendered page. Text hanging directly off the document root or inside
// script/style elements is not.
func isVisibleText(n *html.Node) bool {
	parent := n.Parent
	if parent == nil || parent.Type == html.DocumentNode {
		return false
	}
	if parent.Type == html.ElementNode {
		switch parent.Data {
		case "script", "style":
			return false
		}
	}
	return true
}
