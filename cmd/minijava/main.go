package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/sgagou3/MiniJava"
)

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
}

// loadConfig loads the configuration named on the command line and applies its colour setting
func (ctx *Context) loadConfig() (*minijava.Config, error) {
	config, err := minijava.LoadConfig(ctx.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if !config.Output.UseColor() {
		color.NoColor = true
	}

	if ctx.Verbose {
		color.Blue("Configuration loaded from: %s", ctx.Config)
	}

	return config, nil
}

// CLI represents the command-line interface
var CLI struct {
	Config  string     `help:"Configuration file path" default:"minijava.yaml"`
	Verbose bool       `help:"Enable verbose output" short:"v"`
	Quiet   bool       `help:"Suppress output" short:"q"`
	Check   CheckCmd   `cmd:"" help:"Check the syntax of MiniJava sources"`
	Parse   ParseCmd   `cmd:"" help:"Print the abstract syntax tree of a MiniJava source"`
	Format  FormatCmd  `cmd:"" help:"Format MiniJava sources"`
	Tokens  TokensCmd  `cmd:"" help:"Print the token stream of a MiniJava source"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run() error {
	fmt.Println("MiniJava v0.1.0")
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("minijava"),
		kong.Description("Front end for the MiniJava language"),
	)

	appCtx := &Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
