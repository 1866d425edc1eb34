package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/sgagou3/MiniJava"
	"github.com/sgagou3/MiniJava/ast"
	"github.com/sgagou3/MiniJava/parser"
	"github.com/sgagou3/MiniJava/reporter"
	"github.com/sgagou3/MiniJava/scanner"
)

// CheckCmd represents the check command
type CheckCmd struct {
	Paths []string `arg:"" name:"path" help:"Source files, Markdown documents or directories"`
}

// Run executes the check command
func (cmd *CheckCmd) Run(ctx *Context) error {
	config, err := ctx.loadConfig()
	if err != nil {
		return err
	}

	return cmd.check(ctx, config, os.Stdout)
}

// check parses every collected file and prints Success or the first error for each
func (cmd *CheckCmd) check(ctx *Context, config *minijava.Config, w io.Writer) error {
	files, err := collectFiles(cmd.Paths)
	if err != nil {
		return err
	}

	success := color.New(color.FgGreen)
	failed := 0

	for _, file := range files {
		src, err := loadSource(file, config)
		if err != nil {
			return err
		}

		if ctx.Verbose {
			color.Blue("Checking %s", file)
		}

		rep := reporter.New(config.Output.UseColor() && !color.NoColor)

		p := parser.New(strings.NewReader(src.Text), parserOptions(config, file))
		if config.Parser.SyntaxOnly {
			rep.Report(p.Check())
		} else {
			_, err := p.Parse()
			rep.Report(err)
		}

		if !rep.IsEmpty() {
			failed++
			rep.Show(w)

			continue
		}

		if !ctx.Quiet {
			success.Fprintf(w, "Success: %s\n", file)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrCheckFailed, failed, len(files))
	}

	return nil
}

// ParseCmd represents the parse command
type ParseCmd struct {
	Path   string `arg:"" help:"Source file or Markdown document"`
	Format string `short:"f" help:"Output format: yaml or json (default from config)"`
	Output string `short:"o" help:"Output file (default: output.dir from config, or stdout)"`
}

// Run executes the parse command
func (cmd *ParseCmd) Run(ctx *Context) error {
	config, err := ctx.loadConfig()
	if err != nil {
		return err
	}

	return cmd.parse(ctx, config, os.Stdout)
}

// parse writes the tree of cmd.Path to the resolved destination
func (cmd *ParseCmd) parse(ctx *Context, config *minijava.Config, stdout io.Writer) error {
	src, err := loadSource(cmd.Path, config)
	if err != nil {
		return err
	}

	unit, err := parser.ParseString(src.Text, parserOptions(config, cmd.Path))
	if err != nil {
		return err
	}

	format := cmd.Format
	if format == "" {
		format = config.Output.Format
	}

	output := cmd.Output
	if output == "" && config.Output.Dir != "" {
		output = filepath.Join(config.Output.Dir, filepath.Base(cmd.Path)+".ast."+format)
	}

	if output == "" {
		return ast.Encode(stdout, unit, ast.Format(format))
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", output, err)
	}
	defer file.Close()

	if err := ast.Encode(file, unit, ast.Format(format)); err != nil {
		return err
	}

	if ctx.Verbose {
		color.Blue("Wrote %s", output)
	}

	return nil
}

// TokensCmd represents the tokens command
type TokensCmd struct {
	Path string `arg:"" help:"Source file or Markdown document"`
}

// Run executes the tokens command
func (cmd *TokensCmd) Run(ctx *Context) error {
	config, err := ctx.loadConfig()
	if err != nil {
		return err
	}

	return cmd.tokens(config, os.Stdout)
}

// tokens prints one token per line, with the reason after each ERROR token
func (cmd *TokensCmd) tokens(config *minijava.Config, w io.Writer) error {
	src, err := loadSource(cmd.Path, config)
	if err != nil {
		return err
	}

	invalid := 0
	warn := color.New(color.FgRed)

	for token, err := range scanner.NewString(src.Text).Tokens() {
		if err != nil {
			invalid++
			warn.Fprintf(w, "%s\t%v\n", token, err)

			continue
		}

		fmt.Fprintln(w, token)
	}

	if invalid > 0 {
		return fmt.Errorf("%w: %d in %s", ErrInvalidTokens, invalid, cmd.Path)
	}

	return nil
}
