package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/sgagou3/MiniJava"
	"github.com/sgagou3/MiniJava/formatter"
	"github.com/sgagou3/MiniJava/source"
)

var (
	ErrFileNotFormatted = errors.New("file is not formatted")
	ErrFormattingErrors = errors.New("some files had formatting errors")
)

// FormatCmd represents the format command
type FormatCmd struct {
	Paths  []string `arg:"" name:"path" help:"Source files, Markdown documents or directories"`
	Write  bool     `short:"w" help:"Write result to the input file instead of stdout"`
	Check  bool     `short:"c" help:"Check if files are formatted (exit 1 if not)"`
	Indent int      `help:"Spaces per nesting level (default from config)"`
}

// Run executes the format command
func (cmd *FormatCmd) Run(ctx *Context) error {
	config, err := ctx.loadConfig()
	if err != nil {
		return err
	}

	return cmd.format(ctx, config, os.Stdout)
}

// format formats every collected file, continuing past files that fail to parse
func (cmd *FormatCmd) format(ctx *Context, config *minijava.Config, w io.Writer) error {
	files, err := collectFiles(cmd.Paths)
	if err != nil {
		return err
	}

	indent := cmd.Indent
	if indent <= 0 {
		indent = config.Format.Indent
	}

	sourceFormatter := formatter.New(indent)
	markdownFormatter := formatter.NewMarkdownFormatter(indent, config.Source.MarkdownLanguages)

	warn := color.New(color.FgRed)
	failed, unformatted := 0, 0

	for _, file := range files {
		input, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to open file %s: %w", file, err)
		}

		var formatted string
		if source.IsMarkdown(file) {
			formatted, err = markdownFormatter.Format(string(input))
		} else {
			formatted, err = sourceFormatter.Format(string(input))
		}

		if err != nil {
			failed++
			warn.Fprintf(w, "Error formatting %s: %v\n", file, err)

			continue
		}

		switch {
		case cmd.Check:
			if formatted != string(input) {
				unformatted++
				fmt.Fprintf(w, "%s is not formatted\n", file)
			}

		case cmd.Write:
			if formatted == string(input) {
				continue
			}

			if err := replaceFile(file, formatted); err != nil {
				return err
			}

			if !ctx.Quiet {
				fmt.Fprintf(w, "Formatted: %s\n", file)
			}

		default:
			if _, err := io.WriteString(w, formatted); err != nil {
				return err
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrFormattingErrors, failed, len(files))
	}

	if unformatted > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrFileNotFormatted, unformatted, len(files))
	}

	return nil
}

// replaceFile writes content to a temporary file next to path and renames it over path
func replaceFile(path, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), ".minijava-format-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	_, err = tempFile.WriteString(content)
	if closeErr := tempFile.Close(); err == nil {
		err = closeErr
	}

	if err == nil {
		err = os.Chmod(tempFile.Name(), info.Mode().Perm())
	}

	if err == nil {
		err = os.Rename(tempFile.Name(), path)
	}

	if err != nil {
		os.Remove(tempFile.Name())
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// Help returns help text for the format command
func (cmd *FormatCmd) Help() string {
	return `Format MiniJava sources and the java/minijava code blocks of Markdown documents.

Formatting goes through the syntax tree: comments are dropped, fields are
printed before methods and operators get the minimal parentheses.

Examples:
  # Print the formatted source to stdout
  minijava format Main.java

  # Format a directory in place
  minijava format -w ./src/

  # Fail when a file needs formatting
  minijava format -c ./src/ README.md`
}
