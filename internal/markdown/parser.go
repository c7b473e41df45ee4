package markdown

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

type Parser struct {
	md goldmark.Markdown
}

func NewParser() *Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			&frontmatter.Extender{},
		),
	)

	return &Parser{
		md: md,
	}
}

// Frontmatter decodes the YAML/TOML frontmatter of source without rendering the body.
// A document without frontmatter yields an empty, non-nil map.
func (p *Parser) Frontmatter(source []byte) (map[string]any, error) {
	context := parser.NewContext()
	p.md.Parser().Parse(text.NewReader(source), parser.WithContext(context))

	meta := make(map[string]any)
	data := frontmatter.Get(context)
	if data == nil {
		return meta, nil
	}

	err := data.Decode(&meta)
	if err != nil {
		return nil, fmt.Errorf("failed to decode frontmatter: %w", err)
	}

	return meta, nil
}
