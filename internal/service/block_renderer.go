package service

import (
	"bytes"
	"net/url"
	"sort"
	"strings"

	"github.com/buttonicons/internal/buttonicon"
	"github.com/buttonicons/internal/db"
	"github.com/buttonicons/internal/locale"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	buttonWrapperClass = "wp-block-button"
	buttonLinkClass    = "wp-block-button__link wp-element-button"
)

var allowedHrefSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
	"tel":    true,
}

// BlockRenderer 将按钮区块渲染为 HTML，图标相关的类名与样式由 buttonicon 提供。
type BlockRenderer struct {
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
}

// NewBlockRenderer builds a renderer whose labels allow inline formatting only.
func NewBlockRenderer() *BlockRenderer {
	policy := bluemonday.NewPolicy()
	policy.AllowElements("strong", "em", "code", "del", "s", "br", "sub", "sup", "mark")

	return &BlockRenderer{
		markdown: goldmark.New(goldmark.WithExtensions(extension.Strikethrough)),
		policy:   policy,
	}
}

// RenderLabel converts the button text (inline markdown) to sanitized HTML.
func (r *BlockRenderer) RenderLabel(text string) (string, error) {
	flattened := strings.Join(strings.Fields(text), " ")
	if flattened == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(flattened), &buf); err != nil {
		return "", err
	}

	rendered := strings.TrimSpace(buf.String())
	rendered = strings.TrimSuffix(strings.TrimPrefix(rendered, "<p>"), "</p>")
	return r.policy.Sanitize(rendered), nil
}

// Render returns the HTML fragment for a block.
func (r *BlockRenderer) Render(block *db.ButtonBlock) (string, error) {
	node, err := r.buildBlockNode(block)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderPage wraps the block fragment in a standalone document.
func (r *BlockRenderer) RenderPage(block *db.ButtonBlock, language string) (string, error) {
	node, err := r.buildBlockNode(block)
	if err != nil {
		return "", err
	}

	pref := locale.PreferenceForLanguage(language)
	title := strings.Join(strings.Fields(block.Text), " ")
	if title == "" {
		title = locale.Pick(language, "Button", "按钮")
	}

	head := element(atom.Head, nil,
		element(atom.Meta, []html.Attribute{{Key: "charset", Val: "utf-8"}}),
		element(atom.Title, nil, &html.Node{Type: html.TextNode, Data: title}),
	)
	root := element(atom.Html, []html.Attribute{{Key: "lang", Val: pref.HTMLLang}},
		head,
		element(atom.Body, nil, node),
	)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(root)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *BlockRenderer) buildBlockNode(block *db.ButtonBlock) (*html.Node, error) {
	props := buttonicon.WrapRenderProps(buttonicon.RenderProps{
		Name:       block.Name,
		Attributes: block.AttributeBag(),
		ClassName:  block.ClassName,
		Style:      storedStyle(block.Style),
		Extra:      map[string]any{"clientId": block.ClientID},
	})

	wrapperAttrs := []html.Attribute{
		{Key: atom.Class.String(), Val: buttonicon.JoinClassNames(buttonWrapperClass, props.ClassName)},
	}
	if style := inlineStyle(props.Style); style != "" {
		wrapperAttrs = append(wrapperAttrs, html.Attribute{Key: atom.Style.String(), Val: style})
	}
	if clientID, ok := props.Extra["clientId"].(string); ok && clientID != "" {
		wrapperAttrs = append(wrapperAttrs, html.Attribute{Key: "data-block", Val: clientID})
	}

	linkAttrs := []html.Attribute{{Key: atom.Class.String(), Val: buttonLinkClass}}
	if href := safeHref(block.URL); href != "" {
		linkAttrs = append(linkAttrs, html.Attribute{Key: atom.Href.String(), Val: href})
	}
	link := element(atom.A, linkAttrs)

	label, err := r.RenderLabel(block.Text)
	if err != nil {
		return nil, err
	}
	if label != "" {
		children, err := html.ParseFragment(strings.NewReader(label), &html.Node{
			Type:     html.ElementNode,
			Data:     atom.A.String(),
			DataAtom: atom.A,
		})
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			link.AppendChild(child)
		}
	}

	return element(atom.Div, wrapperAttrs, link), nil
}

func element(a atom.Atom, attrs []html.Attribute, children ...*html.Node) *html.Node {
	node := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a, Attr: attrs}
	for _, child := range children {
		node.AppendChild(child)
	}
	return node
}

// storedStyle 丢弃库中不合法的声明，防止拼接出额外的 CSS。
func storedStyle(style map[string]string) map[string]string {
	if len(style) == 0 {
		return nil
	}
	kept := make(map[string]string, len(style))
	for key, value := range style {
		if validStyleDeclaration(key, value) {
			kept[key] = value
		}
	}
	return kept
}

// inlineStyle 以键名排序输出，保证渲染结果稳定。
func inlineStyle(style map[string]string) string {
	if len(style) == 0 {
		return ""
	}
	keys := make([]string, 0, len(style))
	for key := range style {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		if style[key] == "" {
			continue
		}
		parts = append(parts, key+": "+style[key])
	}
	return strings.Join(parts, "; ")
}

func safeHref(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return ""
	}
	if parsed.Scheme != "" && !allowedHrefSchemes[strings.ToLower(parsed.Scheme)] {
		return ""
	}
	return parsed.String()
}
