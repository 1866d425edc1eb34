package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sgagou3/MiniJava"
	"github.com/sgagou3/MiniJava/parser"
	"github.com/sgagou3/MiniJava/source"
)

// isSourceFile checks if a file holds MiniJava source, directly or in Markdown
func isSourceFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".java", ".mjava":
		return true
	default:
		return source.IsMarkdown(path)
	}
}

// collectFiles expands directories into the source files below them, in lexical order.
// Files named explicitly are kept whatever their extension.
func collectFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputFileNotExist, path)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to stat input: %w", err)
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() && isSourceFile(p) {
				files = append(files, p)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk directory %s: %w", path, err)
		}
	}

	if len(files) == 0 {
		return nil, ErrNoSourceFiles
	}

	return files, nil
}

// loadSource reads path, extracting the configured code blocks from Markdown documents
func loadSource(path string, config *minijava.Config) (*source.Source, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrInputFileNotExist, path)
	}

	return source.Open(path, config.Source.MarkdownLanguages)
}

// parserOptions builds parser options for the source named name
func parserOptions(config *minijava.Config, name string) parser.Options {
	return parser.Options{
		PositionTrace: config.Parser.ShowPositions(),
		SourceName:    name,
	}
}
