package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgagou3/MiniJava/scanner"
)

const document = "# Counter ünïcödé\n" +
	"\n" +
	"Some prose with `class Inline {}` code.\n" +
	"\n" +
	"```java\n" +
	"class A {\n" +
	"  int x;\n" +
	"}\n" +
	"```\n" +
	"\n" +
	"```sql\n" +
	"select 1;\n" +
	"```\n" +
	"\n" +
	"- item\n" +
	"\n" +
	"  ```minijava\n" +
	"  class B {}\n" +
	"  ```\n"

func TestExtractKeepsPositions(t *testing.T) {
	extracted := Extract([]byte(document), nil)
	require.Len(t, extracted, len(document))
	assert.Equal(t, strings.Count(document, "\n"), strings.Count(extracted, "\n"))

	tokens, err := scanner.NewString(extracted).AllTokens()
	require.NoError(t, err)

	var lexemes []string
	for _, token := range tokens {
		lexemes = append(lexemes, token.Lexeme)
	}
	assert.Equal(t, []string{"class", "A", "{", "int", "x", ";", "}", "class", "B", "{", "}", ""}, lexemes)

	classA := tokens[0]
	assert.Equal(t, scanner.Position{Line: 6, Column: 1, Offset: strings.Index(document, "class A")}, classA.Position)

	classB := tokens[7]
	assert.Equal(t, 18, classB.Position.Line)
	assert.Equal(t, 3, classB.Position.Column)
	assert.Equal(t, strings.Index(document, "class B"), classB.Position.Offset)
}

func TestExtractLanguages(t *testing.T) {
	extracted := Extract([]byte(document), []string{"SQL"})

	assert.Contains(t, extracted, "select 1;")
	assert.NotContains(t, extracted, "class")
}

func TestExtractWithoutCodeBlocks(t *testing.T) {
	extracted := Extract([]byte("# Title\n\nno code here\n"), nil)
	assert.Equal(t, "       \n\n            \n", extracted)
}

func TestExtractIgnoresUntaggedBlocks(t *testing.T) {
	extracted := Extract([]byte("```\nclass A {}\n```\n"), nil)
	assert.Empty(t, strings.TrimSpace(extracted))
}

func TestIsMarkdown(t *testing.T) {
	assert.True(t, IsMarkdown("README.md"))
	assert.True(t, IsMarkdown("notes.MARKDOWN"))
	assert.False(t, IsMarkdown("Main.java"))
	assert.False(t, IsMarkdown("md"))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "Main.java")
	require.NoError(t, os.WriteFile(plain, []byte("class Main {}\n"), 0o644))

	src, err := Open(plain, nil)
	require.NoError(t, err)
	assert.Equal(t, plain, src.Name)
	assert.Equal(t, "class Main {}\n", src.Text)
	assert.False(t, src.Markdown)

	doc := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(doc, []byte(document), 0o644))

	src, err = Open(doc, nil)
	require.NoError(t, err)
	assert.True(t, src.Markdown)
	assert.Equal(t, Extract([]byte(document), nil), src.Text)
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.java"), nil)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to read source")
}
