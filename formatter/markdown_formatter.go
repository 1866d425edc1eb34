package formatter

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/sgagou3/MiniJava/source"
)

// ErrCodeBlock is wrapped by errors for code blocks that could not be formatted.
var ErrCodeBlock = errors.New("failed to format code block")

// MarkdownFormatter formats MiniJava code blocks within Markdown documents
type MarkdownFormatter struct {
	formatter *Formatter
	languages []string
}

// NewMarkdownFormatter creates a Markdown formatter for code blocks tagged with
// one of languages (source.DefaultLanguages when empty).
func NewMarkdownFormatter(indentSize int, languages []string) *MarkdownFormatter {
	if len(languages) == 0 {
		languages = source.DefaultLanguages
	}

	return &MarkdownFormatter{
		formatter: New(indentSize),
		languages: languages,
	}
}

// replacement swaps the bytes [start, stop) of the document
type replacement struct {
	start, stop int
	text        string
}

// Format formats every matching fenced code block and leaves the rest of the document untouched
func (f *MarkdownFormatter) Format(markdown string) (string, error) {
	content := []byte(markdown)

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(content))

	var replacements []replacement

	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		block, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		lines := block.Lines()
		if lines.Len() == 0 || !f.matches(block, content) {
			return ast.WalkSkipChildren, nil
		}

		first := lines.At(0)
		last := lines.At(lines.Len() - 1)

		var code strings.Builder
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			code.Write(line.Value(content))
		}

		formatted, err := f.formatter.Format(code.String())
		if err != nil {
			return ast.WalkStop, fmt.Errorf("%w at line %d: %w", ErrCodeBlock, lineOf(content, first.Start), err)
		}

		replacements = append(replacements, replacement{
			start: first.Start,
			stop:  last.Stop,
			text:  indentLines(formatted, prefixOf(content, first.Start)),
		})

		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return "", err
	}

	// apply back to front so earlier offsets stay valid
	result := markdown
	for _, r := range slices.Backward(replacements) {
		result = result[:r.start] + r.text + result[r.stop:]
	}

	return result, nil
}

func (f *MarkdownFormatter) matches(block *ast.FencedCodeBlock, content []byte) bool {
	if block.Info == nil {
		return false
	}

	language := string(block.Language(content))

	return slices.ContainsFunc(f.languages, func(l string) bool {
		return strings.EqualFold(l, language)
	})
}

// prefixOf returns the bytes between the start of the line holding offset and offset
func prefixOf(content []byte, offset int) string {
	start := offset
	for start > 0 && content[start-1] != '\n' {
		start--
	}

	return string(content[start:offset])
}

// lineOf returns the 1-based line number of offset
func lineOf(content []byte, offset int) int {
	return strings.Count(string(content[:offset]), "\n") + 1
}

// indentLines prefixes every line after the first with prefix; the first line
// keeps the prefix already present in the document
func indentLines(code, prefix string) string {
	lines := strings.Split(strings.TrimSuffix(code, "\n"), "\n")
	blank := strings.TrimRight(prefix, " \t")

	var sb strings.Builder
	for i, line := range lines {
		switch {
		case i == 0:
		case line == "":
			sb.WriteString(blank)
		default:
			sb.WriteString(prefix)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}
