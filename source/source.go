// Package source loads MiniJava program text from plain files and from
// Markdown documents with fenced code blocks.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// DefaultLanguages are the fenced code block languages extracted when none are configured.
var DefaultLanguages = []string{"java", "minijava"}

// Source is program text ready for the scanner.
type Source struct {
	Name     string
	Text     string
	Markdown bool // Text was extracted from a Markdown document
}

// IsMarkdown reports whether path names a Markdown document.
func IsMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	default:
		return false
	}
}

// Open reads the file at path. Markdown documents are reduced to the code
// blocks tagged with one of languages (DefaultLanguages when empty).
func Open(path string, languages []string) (*Source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source %s: %w", path, err)
	}

	if !IsMarkdown(path) {
		return &Source{Name: path, Text: string(content)}, nil
	}

	return &Source{Name: path, Text: Extract(content, languages), Markdown: true}, nil
}

// Extract keeps the contents of fenced code blocks tagged with one of
// languages and replaces every other byte except line breaks with a space.
// Byte offsets, lines and columns of the kept code are those of the document.
func Extract(content []byte, languages []string) string {
	if len(languages) == 0 {
		languages = DefaultLanguages
	}

	out := make([]byte, len(content))
	for i, b := range content {
		if b == '\n' {
			out[i] = '\n'
		} else {
			out[i] = ' '
		}
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(content))

	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		block, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		if !isProgramBlock(block, content, languages) {
			return ast.WalkSkipChildren, nil
		}

		lines := block.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			copy(out[line.Start:line.Stop], content[line.Start:line.Stop])
		}

		return ast.WalkSkipChildren, nil
	})

	return string(out)
}

// isProgramBlock checks the first word of the block's info string against languages
func isProgramBlock(block *ast.FencedCodeBlock, content []byte, languages []string) bool {
	if block.Info == nil {
		return false
	}

	language := strings.ToLower(string(block.Language(content)))

	return slices.ContainsFunc(languages, func(l string) bool {
		return strings.EqualFold(l, language)
	})
}
